package gcs

import (
	"context"
	"log/slog"
	"path"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/issueflow/pkg/domain/interfaces"
	"github.com/secmon-lab/issueflow/pkg/domain/types"
	"github.com/secmon-lab/issueflow/pkg/utils/logging"
	"google.golang.org/api/option"
)

// Client archives objects into one Cloud Storage bucket
type Client struct {
	client *storage.Client
	bucket types.GCSBucket
	prefix string
}

var _ interfaces.ObjectStorage = (*Client)(nil)

type Option func(*Client)

// WithPrefix puts every object under prefix
func WithPrefix(prefix string) Option {
	return func(x *Client) {
		x.prefix = prefix
	}
}

func New(ctx context.Context, bucket types.GCSBucket, options []Option, clientOptions ...option.ClientOption) (*Client, error) {
	if bucket == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "bucket is empty")
	}

	client, err := storage.NewClient(ctx, clientOptions...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create storage client", goerr.V("bucket", bucket))
	}

	x := &Client{client: client, bucket: bucket}
	for _, opt := range options {
		opt(x)
	}
	return x, nil
}

// ObjectName returns the name object is stored as
func (x *Client) ObjectName(object string) string {
	if x.prefix == "" {
		return object
	}
	return path.Join(x.prefix, object)
}

func (x *Client) Put(ctx context.Context, object string, contentType string, data []byte) error {
	name := x.ObjectName(object)
	w := x.client.Bucket(x.bucket.String()).Object(name).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return goerr.Wrap(err, "failed to write object", goerr.V("bucket", x.bucket), goerr.V("object", name))
	}
	if err := w.Close(); err != nil {
		return goerr.Wrap(err, "failed to close object writer", goerr.V("bucket", x.bucket), goerr.V("object", name))
	}

	logging.From(ctx).Debug("object stored",
		slog.String("bucket", x.bucket.String()),
		slog.String("object", name),
		slog.Int("size", len(data)),
	)
	return nil
}

func (x *Client) Close() error {
	return x.client.Close()
}
