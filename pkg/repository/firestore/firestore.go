package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/issueflow/pkg/domain/interfaces"
)

const (
	// DefaultRootCollection holds one document per repository
	DefaultRootCollection = "repo"

	defaultDatabaseID = "(default)"
)

type Option func(*workflowRepository)

// WithRootCollection stores the repository documents under name instead of
// DefaultRootCollection. It lets several deployments share one database.
func WithRootCollection(name string) Option {
	return func(r *workflowRepository) {
		if name != "" {
			r.root = name
		}
	}
}

// New connects to Firestore. The "(default)" database is used when databaseID is empty.
func New(ctx context.Context, projectID, databaseID string, options ...Option) (interfaces.WorkflowRepository, error) {
	if databaseID == "" {
		databaseID = defaultDatabaseID
	}

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID),
		)
	}

	r := &workflowRepository{
		client: client,
		root:   DefaultRootCollection,
	}
	for _, opt := range options {
		opt(r)
	}
	return r, nil
}
