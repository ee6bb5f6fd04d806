package bq

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/bigquery/storage/managedwriter"
	"github.com/cenkalti/backoff/v4"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/issueflow/pkg/domain/interfaces"
	"github.com/secmon-lab/issueflow/pkg/domain/types"
	"github.com/secmon-lab/issueflow/pkg/utils/logging"
	"github.com/secmon-lab/issueflow/pkg/utils/safe"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// schemaRetryWindow bounds how long Insert waits for a freshly updated table schema to
// reach the storage write API
const schemaRetryWindow = 2 * time.Minute

// Client writes workflow reports into one BigQuery table
type Client struct {
	bqClient *bigquery.Client
	mwClient *managedwriter.Client
	project  types.GoogleProjectID
	dataset  types.BQDatasetID
	tableID  types.BQTableID
}

var _ interfaces.BigQuery = (*Client)(nil)

func New(ctx context.Context, projectID types.GoogleProjectID, datasetID types.BQDatasetID, tableID types.BQTableID, options ...option.ClientOption) (*Client, error) {
	if projectID == "" || datasetID == "" || tableID == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "project, dataset and table are required",
			goerr.V("projectID", projectID),
			goerr.V("datasetID", datasetID),
			goerr.V("tableID", tableID),
		)
	}

	mwClient, err := managedwriter.NewClient(ctx, projectID.String(), options...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create storage write client", goerr.V("projectID", projectID))
	}

	bqClient, err := bigquery.NewClient(ctx, projectID.String(), options...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create BigQuery client", goerr.V("projectID", projectID))
	}

	return &Client{
		bqClient: bqClient,
		mwClient: mwClient,
		project:  projectID,
		dataset:  datasetID,
		tableID:  tableID,
	}, nil
}

func (x *Client) table() *bigquery.Table {
	return x.bqClient.Dataset(x.dataset.String()).Table(x.tableID.String())
}

func (x *Client) values() []goerr.Option {
	return []goerr.Option{goerr.V("dataset", x.dataset), goerr.V("table", x.tableID)}
}

// CreateTable implements interfaces.BigQuery.
func (x *Client) CreateTable(ctx context.Context, md *bigquery.TableMetadata) error {
	if err := x.table().Create(ctx, md); err != nil {
		return goerr.Wrap(err, "failed to create table", x.values()...)
	}
	return nil
}

// GetMetadata implements interfaces.BigQuery. If the table does not exist, it returns nil.
func (x *Client) GetMetadata(ctx context.Context) (*bigquery.TableMetadata, error) {
	md, err := x.table().Metadata(ctx)
	if err != nil {
		var gErr *googleapi.Error
		if errors.As(err, &gErr) && gErr.Code == http.StatusNotFound {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to get table metadata", x.values()...)
	}

	return md, nil
}

// UpdateTable implements interfaces.BigQuery.
func (x *Client) UpdateTable(ctx context.Context, md bigquery.TableMetadataToUpdate, eTag string) error {
	if _, err := x.table().Update(ctx, md, eTag); err != nil {
		return goerr.Wrap(err, "failed to update table", append(x.values(), goerr.V("meta", md))...)
	}
	return nil
}

// Insert implements interfaces.BigQuery. data is encoded as one row of schema and appended
// through the default stream of the storage write API. A schema mismatch right after a
// table update is retried until the new schema is visible.
func (x *Client) Insert(ctx context.Context, schema bigquery.Schema, data any) error {
	enc, err := newRowEncoder(schema)
	if err != nil {
		return err
	}
	row, err := enc.encode(data)
	if err != nil {
		return err
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = time.Second
	bo.MaxElapsedTime = schemaRetryWindow

	op := func() error {
		err := x.appendRows(ctx, enc, [][]byte{row})
		if err != nil && !IsSchemaNotFoundError(err) {
			return backoff.Permanent(err)
		}
		return err
	}
	notify := func(err error, wait time.Duration) {
		logging.From(ctx).Info("table schema not yet visible, retrying insert",
			slog.Any("table", x.tableID),
			slog.Duration("wait", wait),
		)
	}

	return backoff.RetryNotify(op, backoff.WithContext(bo, ctx), notify)
}

func (x *Client) appendRows(ctx context.Context, enc *rowEncoder, rows [][]byte) error {
	ms, err := x.mwClient.NewManagedStream(ctx,
		managedwriter.WithDestinationTable(
			managedwriter.TableParentFromParts(x.project.String(), x.dataset.String(), x.tableID.String()),
		),
		managedwriter.WithSchemaDescriptor(enc.descriptor),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to create managed stream", x.values()...)
	}
	defer safe.Close(ms)

	result, err := ms.AppendRows(ctx, rows)
	if err != nil {
		return goerr.Wrap(err, "failed to append rows", x.values()...)
	}
	if _, err := result.FullResponse(ctx); err != nil {
		return goerr.Wrap(err, "failed to get append result", x.values()...)
	}

	return nil
}

// IsSchemaNotFoundError reports whether err is the storage write API rejecting a row
// because the destination table does not have the columns yet
func IsSchemaNotFoundError(err error) bool {
	for e := err; e != nil; e = errors.Unwrap(e) {
		st, ok := status.FromError(e)
		if !ok || st.Code() != codes.InvalidArgument {
			continue
		}
		if strings.Contains(st.Message(), "Input schema has more fields than BigQuery schema") {
			return true
		}
	}
	return false
}
