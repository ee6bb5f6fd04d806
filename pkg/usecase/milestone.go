package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/issueflow/pkg/domain/model"
	"github.com/secmon-lab/issueflow/pkg/domain/types"
	"github.com/secmon-lab/issueflow/pkg/utils/logging"
)

// CreateMilestone creates a milestone. dueOn may be nil.
func (x *UseCase) CreateMilestone(ctx context.Context, title, description string, dueOn *time.Time) (*model.Milestone, error) {
	if strings.TrimSpace(title) == "" {
		return nil, goerr.Wrap(types.ErrValidationFailed, "milestone title is empty")
	}

	milestone, err := x.clients.IssueTracker().CreateMilestone(ctx, &model.Milestone{
		Title:       title,
		Description: description,
		DueOn:       dueOn,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create milestone", goerr.V("title", title))
	}

	logging.From(ctx).Info("milestone created", "number", milestone.Number, "title", milestone.Title)
	return milestone, nil
}

// MilestoneStatus reports the progress of a milestone
func (x *UseCase) MilestoneStatus(ctx context.Context, number int) (*model.MilestoneStatus, error) {
	tracker := x.clients.IssueTracker()

	milestone, err := tracker.GetMilestone(ctx, number)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get milestone", goerr.V("milestone", number))
	}

	issues, err := tracker.ListMilestoneIssues(ctx, number)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list milestone issues", goerr.V("milestone", number))
	}

	return model.NewMilestoneStatus(milestone, issues), nil
}

// LinkIssueToMilestone attaches an issue to a milestone and leaves a comment about it
func (x *UseCase) LinkIssueToMilestone(ctx context.Context, issueNumber types.IssueNumber, milestoneNumber int) error {
	tracker := x.clients.IssueTracker()

	milestone, err := tracker.GetMilestone(ctx, milestoneNumber)
	if err != nil {
		return goerr.Wrap(err, "failed to get milestone", goerr.V("milestone", milestoneNumber))
	}

	if _, err := tracker.UpdateIssue(ctx, issueNumber, &model.IssueUpdate{Milestone: &milestoneNumber}); err != nil {
		return goerr.Wrap(err, "failed to set milestone",
			goerr.V("issue", issueNumber),
			goerr.V("milestone", milestoneNumber),
		)
	}

	comment := fmt.Sprintf("🎯 **Added to Project:** %s", milestone.Title)
	if milestone.DueOn != nil {
		comment += fmt.Sprintf("\n**📅 Due Date:** %s", milestone.DueOn.Format("Mon Jan 02 2006"))
	}
	if err := tracker.AddComment(ctx, issueNumber, comment); err != nil {
		return goerr.Wrap(err, "failed to post milestone comment", goerr.V("issue", issueNumber))
	}

	return nil
}
