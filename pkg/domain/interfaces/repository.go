package interfaces

import (
	"context"

	"github.com/secmon-lab/issueflow/pkg/domain/model"
	"github.com/secmon-lab/issueflow/pkg/domain/types"
)

//go:generate moq -out ../mock/workflow_repository_mock.go -pkg mock . WorkflowRepository

// WorkflowRepository records the canonical workflow step per issue. It is an audit view;
// decisions are always made from live labels.
type WorkflowRepository interface {
	PutState(ctx context.Context, state *model.WorkflowState) error
	// GetState returns nil without error when no state is recorded
	GetState(ctx context.Context, repo string, number types.IssueNumber) (*model.WorkflowState, error)
	ListStates(ctx context.Context, repo string) ([]*model.WorkflowState, error)
}
