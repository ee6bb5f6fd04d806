package config

import (
	"context"
	"log/slog"

	"github.com/secmon-lab/issueflow/pkg/domain/interfaces"
	"github.com/secmon-lab/issueflow/pkg/repository/firestore"
	"github.com/secmon-lab/issueflow/pkg/repository/memory"
	"github.com/urfave/cli/v3"
)

type Firestore struct {
	projectID  string
	databaseID string
	collection string
}

func (x *Firestore) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Usage:       "Firestore project ID to record workflow states (optional)",
			Category:    "Firestore",
			Sources:     cli.EnvVars("ISSUEFLOW_FIRESTORE_PROJECT_ID"),
			Destination: &x.projectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Usage:       "Firestore database ID",
			Category:    "Firestore",
			Sources:     cli.EnvVars("ISSUEFLOW_FIRESTORE_DATABASE_ID"),
			Value:       "(default)",
			Destination: &x.databaseID,
		},
		&cli.StringFlag{
			Name:        "firestore-collection",
			Usage:       "Root collection of workflow states",
			Category:    "Firestore",
			Sources:     cli.EnvVars("ISSUEFLOW_FIRESTORE_COLLECTION"),
			Value:       firestore.DefaultRootCollection,
			Destination: &x.collection,
		},
	}
}

func (x *Firestore) Enabled() bool {
	return x.projectID != ""
}

func (x *Firestore) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("projectID", x.projectID),
		slog.Any("databaseID", x.databaseID),
		slog.Any("collection", x.collection),
	)
}

// NewRepository returns the Firestore repository, or an in-memory one when Firestore is not
// configured
func (x *Firestore) NewRepository(ctx context.Context) (interfaces.WorkflowRepository, error) {
	if !x.Enabled() {
		return memory.New(), nil
	}
	return firestore.New(ctx, x.projectID, x.databaseID, firestore.WithRootCollection(x.collection))
}
