package gh

import (
	"context"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/issueflow/pkg/domain/model"
	"github.com/secmon-lab/issueflow/pkg/domain/types"
)

// ListWorkflowRuns returns up to limit most recent CI runs of the repository
func (x *Client) ListWorkflowRuns(ctx context.Context, limit int) ([]*model.WorkflowRun, error) {
	if limit <= 0 || limit > perPage {
		limit = perPage
	}
	opt := &github.ListWorkflowRunsOptions{ListOptions: github.ListOptions{PerPage: limit}}

	var runs *github.WorkflowRuns
	err := x.do(ctx, "Actions.ListRepositoryWorkflowRuns", func(ctx context.Context) (*github.Response, error) {
		var resp *github.Response
		var err error
		runs, resp, err = x.client.Actions.ListRepositoryWorkflowRuns(ctx, x.owner(), x.name(), opt)
		return resp, err
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list workflow runs", goerr.V("repo", x.repo))
	}

	result := make([]*model.WorkflowRun, 0, len(runs.WorkflowRuns))
	for _, run := range runs.WorkflowRuns {
		result = append(result, &model.WorkflowRun{
			Branch:     types.BranchName(run.GetHeadBranch()),
			Status:     run.GetStatus(),
			Conclusion: run.GetConclusion(),
			CreatedAt:  run.GetCreatedAt().UTC(),
			RunNumber:  run.GetRunNumber(),
			HTMLURL:    run.GetHTMLURL(),
		})
	}
	return result, nil
}
