package config

import (
	"context"
	"log/slog"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/issueflow/pkg/domain/interfaces"
	"github.com/secmon-lab/issueflow/pkg/domain/types"
	"github.com/secmon-lab/issueflow/pkg/infra/bq"
	"github.com/urfave/cli/v3"
	"google.golang.org/api/impersonate"
	"google.golang.org/api/option"
)

type BigQuery struct {
	projectID                 types.GoogleProjectID
	datasetID                 types.BQDatasetID
	tableID                   types.BQTableID
	impersonateServiceAccount string
}

func (x *BigQuery) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "bigquery-project-id",
			Usage:       "BigQuery project ID to export reports",
			Category:    "BigQuery",
			Destination: (*string)(&x.projectID),
			Sources:     cli.EnvVars("ISSUEFLOW_BIGQUERY_PROJECT_ID"),
		},
		&cli.StringFlag{
			Name:        "bigquery-dataset-id",
			Usage:       "BigQuery dataset ID",
			Category:    "BigQuery",
			Destination: (*string)(&x.datasetID),
			Sources:     cli.EnvVars("ISSUEFLOW_BIGQUERY_DATASET_ID"),
		},
		&cli.StringFlag{
			Name:        "bigquery-table-id",
			Usage:       "BigQuery table ID",
			Category:    "BigQuery",
			Value:       "workflow_reports",
			Destination: (*string)(&x.tableID),
			Sources:     cli.EnvVars("ISSUEFLOW_BIGQUERY_TABLE_ID"),
		},
		&cli.StringFlag{
			Name:        "bigquery-impersonate-service-account",
			Usage:       "Service account to impersonate for BigQuery",
			Category:    "BigQuery",
			Destination: &x.impersonateServiceAccount,
			Sources:     cli.EnvVars("ISSUEFLOW_BIGQUERY_IMPERSONATE_SERVICE_ACCOUNT"),
		},
	}
}

func (x *BigQuery) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("projectID", x.projectID.String()),
		slog.String("datasetID", x.datasetID.String()),
		slog.String("tableID", x.tableID.String()),
		slog.String("impersonateServiceAccount", x.impersonateServiceAccount),
	)
}

// NewClient returns nil without error when BigQuery is not configured
func (x *BigQuery) NewClient(ctx context.Context) (interfaces.BigQuery, error) {
	if x.projectID == "" && x.datasetID == "" {
		return nil, nil
	}
	if x.projectID == "" || x.datasetID == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "both BigQuery project ID and dataset ID are required",
			goerr.V("projectID", x.projectID),
			goerr.V("datasetID", x.datasetID),
		)
	}

	var options []option.ClientOption
	if x.impersonateServiceAccount != "" {
		ts, err := impersonate.CredentialsTokenSource(ctx, impersonate.CredentialsConfig{
			TargetPrincipal: x.impersonateServiceAccount,
			Scopes: []string{
				bigquery.Scope,
				"https://www.googleapis.com/auth/cloud-platform",
			},
		})
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create token source for impersonation",
				goerr.V("serviceAccount", x.impersonateServiceAccount))
		}
		options = append(options, option.WithTokenSource(ts))
	}

	client, err := bq.New(ctx, x.projectID, x.datasetID, x.tableID, options...)
	if err != nil {
		return nil, err
	}
	return client, nil
}
