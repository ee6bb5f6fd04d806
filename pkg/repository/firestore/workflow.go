package firestore

import (
	"context"
	"strconv"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/issueflow/pkg/domain/model"
	"github.com/secmon-lab/issueflow/pkg/domain/types"
	"github.com/secmon-lab/issueflow/pkg/repository"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const collectionWorkflow = "workflow"

type workflowRepository struct {
	client *firestore.Client
	root   string
}

// ToFirestoreID converts "owner/repo" to a Firestore-safe document ID
// Uses colon (:) as separator since GitHub owner names cannot contain colons
func ToFirestoreID(repo string) (string, error) {
	owner, name, ok := strings.Cut(repo, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return "", goerr.Wrap(repository.ErrInvalidInput, "repo must be owner/name", goerr.V("repo", repo))
	}

	if strings.Contains(owner, ":") || strings.Contains(name, ":") {
		return "", goerr.Wrap(repository.ErrInvalidInput, "owner or repo contains invalid character ':'",
			goerr.V("repo", repo),
		)
	}

	return owner + ":" + name, nil
}

func (r *workflowRepository) workflows(repo string) (*firestore.CollectionRef, error) {
	repoID, err := ToFirestoreID(repo)
	if err != nil {
		return nil, err
	}
	return r.client.Collection(r.root).Doc(repoID).Collection(collectionWorkflow), nil
}

func (r *workflowRepository) PutState(ctx context.Context, state *model.WorkflowState) error {
	col, err := r.workflows(state.Repo)
	if err != nil {
		return err
	}

	docID := strconv.Itoa(int(state.IssueNumber))
	if _, err := col.Doc(docID).Set(ctx, state); err != nil {
		return goerr.Wrap(err, "failed to put workflow state",
			goerr.V("repo", state.Repo),
			goerr.V("issue", state.IssueNumber),
		)
	}

	return nil
}

func (r *workflowRepository) GetState(ctx context.Context, repo string, number types.IssueNumber) (*model.WorkflowState, error) {
	col, err := r.workflows(repo)
	if err != nil {
		return nil, err
	}

	snap, err := col.Doc(strconv.Itoa(int(number))).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to get workflow state",
			goerr.V("repo", repo),
			goerr.V("issue", number),
		)
	}

	var state model.WorkflowState
	if err := snap.DataTo(&state); err != nil {
		return nil, goerr.Wrap(err, "failed to decode workflow state",
			goerr.V("repo", repo),
			goerr.V("issue", number),
		)
	}

	return &state, nil
}

func (r *workflowRepository) ListStates(ctx context.Context, repo string) ([]*model.WorkflowState, error) {
	col, err := r.workflows(repo)
	if err != nil {
		return nil, err
	}

	iter := col.OrderBy("issue_number", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var states []*model.WorkflowState
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate workflow states", goerr.V("repo", repo))
		}

		var state model.WorkflowState
		if err := snap.DataTo(&state); err != nil {
			return nil, goerr.Wrap(err, "failed to decode workflow state",
				goerr.V("repo", repo),
				goerr.V("docID", snap.Ref.ID),
			)
		}
		states = append(states, &state)
	}

	return states, nil
}
