package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/gots/slice"
	"github.com/secmon-lab/issueflow/pkg/cli/config"
	"github.com/secmon-lab/issueflow/pkg/infra"
	"github.com/secmon-lab/issueflow/pkg/usecase"
	"github.com/secmon-lab/issueflow/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func reportCommand() *cli.Command {
	var (
		rt       runtime
		bigQuery config.BigQuery
		gcs      config.GCS

		topN       int64
		outputPath string
		asJSON     bool
	)

	reportFlags := []cli.Flag{
		&cli.Int64Flag{
			Name:        "top",
			Usage:       "Number of issues previewed in the report",
			Aliases:     []string{"n"},
			Value:       usecase.DefaultReportTopN,
			Destination: &topN,
		},
		&cli.StringFlag{
			Name:        "output",
			Usage:       "Write the report as JSON to the file",
			Destination: &outputPath,
			Sources:     cli.EnvVars("ISSUEFLOW_REPORT_OUTPUT"),
		},
		jsonFlag(&asJSON),
	}

	return &cli.Command{
		Name:    "report",
		Aliases: []string{"r"},
		Usage:   "Print the prioritization summary of open issues",
		Flags: slice.Flatten(
			reportFlags,
			rt.Flags(),
			bigQuery.Flags(),
			gcs.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.From(ctx).Debug("starting report",
				slog.Int64("top", topN),
				slog.String("output", outputPath),
				slog.Any("BigQuery", &bigQuery),
				slog.Any("GCS", &gcs),
			)

			var exports []infra.Option
			if bqClient, err := bigQuery.NewClient(ctx); err != nil {
				return err
			} else if bqClient != nil {
				exports = append(exports, infra.WithBigQuery(bqClient))
			}
			if storage, err := gcs.NewClient(ctx); err != nil {
				return err
			} else if storage != nil {
				exports = append(exports, infra.WithObjectStorage(storage))
			}

			uc, err := rt.newUseCase(ctx, exports...)
			if err != nil {
				return err
			}
			defer rt.Close()

			report, err := uc.Report(ctx, int(topN))
			if err != nil {
				return err
			}

			if outputPath != "" {
				if err := writeJSONFile(outputPath, report); err != nil {
					return err
				}
				logging.From(ctx).Info("report written", "path", outputPath)
			}

			if asJSON {
				if err := writeJSON(stdout(c), report); err != nil {
					return err
				}
			} else {
				renderReport(stdout(c), report)
			}

			return uc.ExportReport(ctx, report)
		},
	}
}
