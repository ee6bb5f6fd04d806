package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/secmon-lab/issueflow/pkg/domain/model"
	"github.com/secmon-lab/issueflow/pkg/domain/types"
)

// UseCase is the part of the engine driven by webhook events
type UseCase interface {
	StartWorkflowByNumber(ctx context.Context, number types.IssueNumber) (types.BranchName, error)
	IntegrateUnclaimedBranches(ctx context.Context) (*model.IntegrationResult, error)
	CleanupOrphans(ctx context.Context) ([]*model.OrphanRecord, error)
	IsReadinessLabel(label string) bool
}
