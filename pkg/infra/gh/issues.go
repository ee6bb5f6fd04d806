package gh

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/issueflow/pkg/domain/model"
	"github.com/secmon-lab/issueflow/pkg/domain/types"
)

func toIssue(issue *github.Issue) *model.Issue {
	labels := make([]string, 0, len(issue.Labels))
	for _, l := range issue.Labels {
		labels = append(labels, l.GetName())
	}

	result := &model.Issue{
		Number:    types.IssueNumber(issue.GetNumber()),
		Title:     issue.GetTitle(),
		Body:      issue.GetBody(),
		Labels:    labels,
		Assignee:  issue.GetAssignee().GetLogin(),
		State:     issue.GetState(),
		UpdatedAt: issue.GetUpdatedAt().UTC(),
		HTMLURL:   issue.GetHTMLURL(),
	}
	if issue.Milestone != nil {
		result.Milestone = toMilestone(issue.Milestone)
	}
	return result
}

func toMilestone(m *github.Milestone) *model.Milestone {
	result := &model.Milestone{
		Number:       m.GetNumber(),
		Title:        m.GetTitle(),
		Description:  m.GetDescription(),
		State:        m.GetState(),
		HTMLURL:      m.GetHTMLURL(),
		OpenIssues:   m.GetOpenIssues(),
		ClosedIssues: m.GetClosedIssues(),
	}
	if m.DueOn != nil {
		due := m.GetDueOn().UTC()
		result.DueOn = &due
	}
	return result
}

func (x *Client) listIssues(ctx context.Context, opt *github.IssueListByRepoOptions) ([]*model.Issue, error) {
	opt.ListOptions = github.ListOptions{PerPage: perPage}

	var issues []*model.Issue
	for {
		var page []*github.Issue
		var resp *github.Response
		err := x.do(ctx, "Issues.ListByRepo", func(ctx context.Context) (*github.Response, error) {
			var err error
			page, resp, err = x.client.Issues.ListByRepo(ctx, x.owner(), x.name(), opt)
			return resp, err
		})
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list issues", goerr.V("repo", x.repo), goerr.V("page", opt.Page))
		}

		for _, issue := range page {
			if issue.IsPullRequest() {
				continue
			}
			issues = append(issues, toIssue(issue))
		}

		if resp.NextPage == 0 {
			break
		}
		opt.Page = resp.NextPage
	}

	return issues, nil
}

// ListIssues returns all issues in state, following pagination. Pull requests are excluded.
func (x *Client) ListIssues(ctx context.Context, state types.IssueState) ([]*model.Issue, error) {
	return x.listIssues(ctx, &github.IssueListByRepoOptions{State: string(state)})
}

func (x *Client) GetIssue(ctx context.Context, number types.IssueNumber) (*model.Issue, error) {
	var issue *github.Issue
	err := x.do(ctx, "Issues.Get", func(ctx context.Context) (*github.Response, error) {
		var resp *github.Response
		var err error
		issue, resp, err = x.client.Issues.Get(ctx, x.owner(), x.name(), int(number))
		return resp, err
	})
	if err != nil {
		if statusCode(err) == http.StatusNotFound {
			return nil, goerr.Wrap(fmt.Errorf("%w: %w", types.ErrNotFound, err), "issue not found", goerr.V("number", number))
		}
		return nil, goerr.Wrap(err, "failed to get issue", goerr.V("number", number))
	}

	return toIssue(issue), nil
}

func (x *Client) CreateIssue(ctx context.Context, input *model.NewIssue) (*model.Issue, error) {
	req := &github.IssueRequest{
		Title:     github.String(input.Title),
		Body:      github.String(input.Body),
		Milestone: input.Milestone,
	}
	if input.Labels != nil {
		labels := append([]string{}, input.Labels...)
		req.Labels = &labels
	}

	var issue *github.Issue
	err := x.do(ctx, "Issues.Create", func(ctx context.Context) (*github.Response, error) {
		var resp *github.Response
		var err error
		issue, resp, err = x.client.Issues.Create(ctx, x.owner(), x.name(), req)
		return resp, err
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create issue", goerr.V("title", input.Title))
	}

	return toIssue(issue), nil
}

// UpdateIssue edits the issue. Labels, if not nil, replace the whole label set.
func (x *Client) UpdateIssue(ctx context.Context, number types.IssueNumber, input *model.IssueUpdate) (*model.Issue, error) {
	req := &github.IssueRequest{
		Title:     input.Title,
		Body:      input.Body,
		Milestone: input.Milestone,
	}
	if input.Labels != nil {
		labels := append([]string{}, input.Labels...)
		req.Labels = &labels
	}

	var issue *github.Issue
	err := x.do(ctx, "Issues.Edit", func(ctx context.Context) (*github.Response, error) {
		var resp *github.Response
		var err error
		issue, resp, err = x.client.Issues.Edit(ctx, x.owner(), x.name(), int(number), req)
		return resp, err
	})
	if err != nil {
		if statusCode(err) == http.StatusNotFound {
			return nil, goerr.Wrap(fmt.Errorf("%w: %w", types.ErrNotFound, err), "issue not found", goerr.V("number", number))
		}
		return nil, goerr.Wrap(err, "failed to update issue", goerr.V("number", number))
	}

	return toIssue(issue), nil
}

func (x *Client) AddComment(ctx context.Context, number types.IssueNumber, body string) error {
	comment := &github.IssueComment{Body: github.String(body)}
	err := x.do(ctx, "Issues.CreateComment", func(ctx context.Context) (*github.Response, error) {
		_, resp, err := x.client.Issues.CreateComment(ctx, x.owner(), x.name(), int(number), comment)
		return resp, err
	})
	if err != nil {
		return goerr.Wrap(err, "failed to add comment", goerr.V("number", number))
	}
	return nil
}

func (x *Client) GetMilestone(ctx context.Context, number int) (*model.Milestone, error) {
	var milestone *github.Milestone
	err := x.do(ctx, "Issues.GetMilestone", func(ctx context.Context) (*github.Response, error) {
		var resp *github.Response
		var err error
		milestone, resp, err = x.client.Issues.GetMilestone(ctx, x.owner(), x.name(), number)
		return resp, err
	})
	if err != nil {
		if statusCode(err) == http.StatusNotFound {
			return nil, goerr.Wrap(fmt.Errorf("%w: %w", types.ErrNotFound, err), "milestone not found", goerr.V("milestone", number))
		}
		return nil, goerr.Wrap(err, "failed to get milestone", goerr.V("milestone", number))
	}

	return toMilestone(milestone), nil
}

func (x *Client) CreateMilestone(ctx context.Context, input *model.Milestone) (*model.Milestone, error) {
	req := &github.Milestone{
		Title: github.String(input.Title),
		State: github.String("open"),
	}
	if input.Description != "" {
		req.Description = github.String(input.Description)
	}
	if input.DueOn != nil {
		req.DueOn = &github.Timestamp{Time: *input.DueOn}
	}

	var milestone *github.Milestone
	err := x.do(ctx, "Issues.CreateMilestone", func(ctx context.Context) (*github.Response, error) {
		var resp *github.Response
		var err error
		milestone, resp, err = x.client.Issues.CreateMilestone(ctx, x.owner(), x.name(), req)
		return resp, err
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create milestone", goerr.V("title", input.Title))
	}

	return toMilestone(milestone), nil
}

// ListMilestoneIssues returns open and closed issues attached to the milestone
func (x *Client) ListMilestoneIssues(ctx context.Context, number int) ([]*model.Issue, error) {
	return x.listIssues(ctx, &github.IssueListByRepoOptions{
		Milestone: strconv.Itoa(number),
		State:     string(types.IssueStateAll),
	})
}
