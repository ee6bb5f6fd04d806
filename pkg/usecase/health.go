package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/issueflow/pkg/domain/model"
	"github.com/secmon-lab/issueflow/pkg/domain/types"
)

const (
	healthRunLimit  = 50
	healthMaxOthers = 5
)

// BuildHealth summarizes the latest CI run of the branches declared in the policy and of the
// other recently active branches
func (x *UseCase) BuildHealth(ctx context.Context) (*model.HealthReport, error) {
	ci := x.clients.CIStatus()
	if ci == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "CI status client is not configured")
	}

	runs, err := ci.ListWorkflowRuns(ctx, healthRunLimit)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list workflow runs")
	}

	return model.NewHealthReport(x.policy.Branches, runs, healthMaxOthers), nil
}
