package usecase

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/issueflow/pkg/domain/model"
	"github.com/secmon-lab/issueflow/pkg/domain/types"
	"github.com/secmon-lab/issueflow/pkg/utils/logging"
)

// CreateIssue creates an issue with the given labels
func (x *UseCase) CreateIssue(ctx context.Context, input *model.NewIssue) (*model.Issue, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, goerr.Wrap(types.ErrValidationFailed, "issue title is empty")
	}

	issue, err := x.clients.IssueTracker().CreateIssue(ctx, input)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create issue", goerr.V("title", input.Title))
	}

	logging.From(ctx).Info("issue created", "issue", issue.Number, "url", issue.HTMLURL)
	return issue, nil
}

// UpdateIssueBody replaces the body of an issue
func (x *UseCase) UpdateIssueBody(ctx context.Context, number types.IssueNumber, body string) (*model.Issue, error) {
	issue, err := x.clients.IssueTracker().UpdateIssue(ctx, number, &model.IssueUpdate{Body: &body})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update issue", goerr.V("issue", number))
	}
	return issue, nil
}

// AddLabels adds labels to an issue, keeping the labels it already has
func (x *UseCase) AddLabels(ctx context.Context, number types.IssueNumber, labels ...string) (*model.Issue, error) {
	tracker := x.clients.IssueTracker()

	issue, err := tracker.GetIssue(ctx, number)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get issue", goerr.V("issue", number))
	}

	merged := model.UnionLabels(issue.Labels, labels...)
	updated, err := tracker.UpdateIssue(ctx, number, &model.IssueUpdate{Labels: merged})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update labels", goerr.V("issue", number), goerr.V("labels", merged))
	}
	return updated, nil
}

// Comment posts a comment on an issue
func (x *UseCase) Comment(ctx context.Context, number types.IssueNumber, body string) error {
	if strings.TrimSpace(body) == "" {
		return goerr.Wrap(types.ErrValidationFailed, "comment body is empty", goerr.V("issue", number))
	}
	if err := x.clients.IssueTracker().AddComment(ctx, number, body); err != nil {
		return goerr.Wrap(err, "failed to post comment", goerr.V("issue", number))
	}
	return nil
}
