package config

import (
	"context"
	"log/slog"

	"github.com/secmon-lab/issueflow/pkg/domain/interfaces"
	"github.com/secmon-lab/issueflow/pkg/domain/types"
	"github.com/secmon-lab/issueflow/pkg/infra/gcs"
	"github.com/urfave/cli/v3"
)

type GCS struct {
	bucket types.GCSBucket
	prefix string
}

func (x *GCS) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "gcs-bucket",
			Usage:       "Cloud Storage bucket to archive reports",
			Category:    "Cloud Storage",
			Destination: (*string)(&x.bucket),
			Sources:     cli.EnvVars("ISSUEFLOW_GCS_BUCKET"),
		},
		&cli.StringFlag{
			Name:        "gcs-prefix",
			Usage:       "Object name prefix",
			Category:    "Cloud Storage",
			Destination: &x.prefix,
			Sources:     cli.EnvVars("ISSUEFLOW_GCS_PREFIX"),
		},
	}
}

func (x *GCS) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("bucket", x.bucket.String()),
		slog.String("prefix", x.prefix),
	)
}

// NewClient returns nil without error when no bucket is configured
func (x *GCS) NewClient(ctx context.Context) (interfaces.ObjectStorage, error) {
	if x.bucket == "" {
		return nil, nil
	}

	client, err := gcs.New(ctx, x.bucket, []gcs.Option{gcs.WithPrefix(x.prefix)})
	if err != nil {
		return nil, err
	}
	return client, nil
}
