package cli

import (
	"context"

	"github.com/urfave/cli/v3"
)

func healthCommand() *cli.Command {
	var (
		rt     runtime
		asJSON bool
	)

	return &cli.Command{
		Name:  "health",
		Usage: "Summarize the latest CI runs of tracked and active branches",
		Flags: append(rt.Flags(), jsonFlag(&asJSON)),
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, err := rt.newUseCase(ctx)
			if err != nil {
				return err
			}
			defer rt.Close()

			report, err := uc.BuildHealth(ctx)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(stdout(c), report)
			}
			renderHealth(stdout(c), report)
			return nil
		},
	}
}
