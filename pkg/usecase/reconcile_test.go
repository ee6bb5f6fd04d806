package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/issueflow/pkg/domain/mock"
	"github.com/secmon-lab/issueflow/pkg/domain/model"
	"github.com/secmon-lab/issueflow/pkg/domain/types"
	"github.com/secmon-lab/issueflow/pkg/infra"
	"github.com/secmon-lab/issueflow/pkg/usecase"
)

func TestIsUnclaimedCandidate(t *testing.T) {
	testCases := map[string]struct {
		branch types.BranchName
		expect bool
	}{
		"external feature branch":      {branch: "feature/dark-mode", expect: true},
		"workflow branch":              {branch: "feature/issue-12-dark-mode", expect: false},
		"issue word without number":    {branch: "feature/issue-tracker-ui", expect: true},
		"integration branch":           {branch: "feature/github-issues-sync", expect: false},
		"not a feature branch":         {branch: "fix/dark-mode", expect: false},
		"trunk":                        {branch: "main", expect: false},
		"prefix without slash":         {branch: "features/dark-mode", expect: false},
		"workflow pattern not at head": {branch: "feature/x-feature/issue-1-y", expect: true},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			gt.V(t, usecase.IsUnclaimedCandidate(tc.branch, "github-issues")).Equal(tc.expect)
		})
	}
}

func TestDefaultClassifiers(t *testing.T) {
	classifiers := usecase.DefaultClassifiers([]string{"jules", "google-labs-jules"})

	testCases := map[string]struct {
		commit *model.CommitMeta
		expect bool
	}{
		"agent author":        {commit: &model.CommitMeta{Author: "Jules Bot", Message: "update"}, expect: true},
		"agent login":         {commit: &model.CommitMeta{Author: "someone", AuthorLogin: "google-labs-jules[bot]", Message: "update"}, expect: true},
		"feat prefix":         {commit: &model.CommitMeta{Author: "alice", Message: "feat: add dark mode"}, expect: true},
		"feat not at head":    {commit: &model.CommitMeta{Author: "alice", Message: "fix feat: typo"}, expect: false},
		"implement keyword":   {commit: &model.CommitMeta{Author: "alice", Message: "Implement search"}, expect: true},
		"implement lowercase": {commit: &model.CommitMeta{Author: "alice", Message: "implement search"}, expect: false},
		"human commit":        {commit: &model.CommitMeta{Author: "alice", Message: "fix typo"}, expect: false},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			matched := false
			for _, c := range classifiers {
				if c.Classify(tc.commit) {
					matched = true
				}
			}
			gt.V(t, matched).Equal(tc.expect)
		})
	}
}

func TestFindIssueForBranch(t *testing.T) {
	issues := []*model.Issue{
		{Number: 1, Title: "Unrelated", Body: "nothing here"},
		{Number: 2, Title: "feature: Dark Mode Toggle", Body: ""},
		{Number: 3, Title: "Search", Body: "Work lives in `feature/search-v2`"},
	}

	testCases := map[string]struct {
		branch types.BranchName
		expect types.IssueNumber
	}{
		"body mentions branch":        {branch: "feature/search-v2", expect: 3},
		"title contains normalized":   {branch: "feature/dark-mode-toggle", expect: 2},
		"title match ignores case":    {branch: "feature/dark-mode", expect: 2},
		"no match":                    {branch: "feature/payments", expect: 0},
		"partial body match is a hit": {branch: "feature/search", expect: 3},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			issue := usecase.FindIssueForBranch(tc.branch, issues)
			if tc.expect == 0 {
				gt.True(t, issue == nil)
				return
			}
			gt.True(t, issue != nil)
			gt.V(t, issue.Number).Equal(tc.expect)
		})
	}
}

func TestNewIssueProposal(t *testing.T) {
	testCases := map[string]struct {
		branch   types.BranchName
		message  string
		title    string
		priority types.Priority
		labels   []string
	}{
		"medium with ui label": {
			branch:   "feature/user-profile-component",
			message:  "feat: add profile",
			title:    "feature: User Profile Component",
			priority: types.PriorityMedium,
			labels:   []string{"feature", "medium", "ui"},
		},
		"critical commit is high": {
			branch:   "feature/backend-api-retry",
			message:  "Implement critical retry fix",
			title:    "feature: Backend Api Retry",
			priority: types.PriorityHigh,
			labels:   []string{"feature", "high", "api"},
		},
		"minor commit is low with testing": {
			branch:   "feature/test-helpers",
			message:  "feat: minor cleanup\n\nUrgent details in body are ignored",
			title:    "feature: Test Helpers",
			priority: types.PriorityLow,
			labels:   []string{"feature", "low", "testing"},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			proposal := usecase.NewIssueProposal(&model.ExternalBranch{
				Branch: model.Branch{Name: tc.branch},
				Commit: model.CommitMeta{Author: "Jules", Message: tc.message},
			})
			gt.V(t, proposal.Title).Equal(tc.title)
			gt.V(t, proposal.Priority).Equal(tc.priority)
			gt.V(t, proposal.Labels).Equal(tc.labels)
			gt.S(t, proposal.Body).Contains("`" + string(tc.branch) + "`")
		})
	}
}

type reconcileFixture struct {
	uc       *usecase.UseCase
	tracker  *mock.IssueTrackerMock
	vcs      *mock.VersionControlMock
	branches []*model.Branch
	commits  map[types.BranchName]*model.CommitMeta
	issues   []*model.Issue
	created  []*model.NewIssue
}

func newReconcileFixture(t *testing.T) *reconcileFixture {
	fx := &reconcileFixture{
		commits: map[types.BranchName]*model.CommitMeta{},
	}

	fx.tracker = &mock.IssueTrackerMock{
		ListIssuesFunc: func(ctx context.Context, state types.IssueState) ([]*model.Issue, error) {
			return fx.issues, nil
		},
		CreateIssueFunc: func(ctx context.Context, input *model.NewIssue) (*model.Issue, error) {
			fx.created = append(fx.created, input)
			return &model.Issue{
				Number: types.IssueNumber(200 + len(fx.created)),
				Title:  input.Title,
				Body:   input.Body,
				Labels: input.Labels,
			}, nil
		},
		AddCommentFunc: func(ctx context.Context, number types.IssueNumber, body string) error {
			return nil
		},
		UpdateIssueFunc: func(ctx context.Context, number types.IssueNumber, input *model.IssueUpdate) (*model.Issue, error) {
			return &model.Issue{Number: number, Labels: input.Labels}, nil
		},
		WriteRepoFileFunc: func(ctx context.Context, file *model.RepoFile) error {
			return nil
		},
	}
	fx.vcs = &mock.VersionControlMock{
		ListRemoteBranchesFunc: func(ctx context.Context) ([]*model.Branch, error) {
			return fx.branches, nil
		},
		GetCommitMetaFunc: func(ctx context.Context, branch types.BranchName) (*model.CommitMeta, error) {
			commit, ok := fx.commits[branch]
			if !ok {
				return nil, types.ErrRefNotFound
			}
			return commit, nil
		},
	}

	fx.uc = usecase.New(infra.New(
		infra.WithIssueTracker(fx.tracker),
		infra.WithVersionControl(fx.vcs),
	))
	return fx
}

func (fx *reconcileFixture) addBranch(name types.BranchName, commit *model.CommitMeta) {
	fx.branches = append(fx.branches, &model.Branch{Name: name, HeadSHA: types.CommitSHA("sha-" + name)})
	if commit != nil {
		fx.commits[name] = commit
	}
}

func TestDetectUnclaimedBranches(t *testing.T) {
	fx := newReconcileFixture(t)
	fx.addBranch("main", nil)
	fx.addBranch("feature/issue-3-login", &model.CommitMeta{Author: "jules", Message: "feat: login"})
	fx.addBranch("feature/dark-mode", &model.CommitMeta{Author: "google-labs-jules[bot]", Message: "update"})
	fx.addBranch("feature/broken", nil)
	fx.addBranch("feature/manual-work", &model.CommitMeta{Author: "alice", Message: "wip"})
	fx.addBranch("feature/search-v2", &model.CommitMeta{Author: "bob", Message: "Implement search"})
	fx.issues = []*model.Issue{
		{Number: 9, Title: "Search", Body: "see `feature/search-v2`", State: "closed"},
	}

	result, err := fx.uc.DetectUnclaimedBranches(newTestContext())
	gt.NoError(t, err)
	gt.A(t, result).Length(2)

	// snapshot order is kept
	gt.V(t, result[0].Name).Equal(types.BranchName("feature/dark-mode"))
	gt.V(t, result[0].MatchedBy).Equal("agent-author")
	gt.False(t, result[0].HasIssue)

	gt.V(t, result[1].Name).Equal(types.BranchName("feature/search-v2"))
	gt.V(t, result[1].MatchedBy).Equal("implement-keyword")
	gt.True(t, result[1].HasIssue)
	gt.V(t, result[1].IssueMatch.Number).Equal(9)

	t.Run("issues of any state are considered", func(t *testing.T) {
		calls := fx.tracker.ListIssuesCalls()
		gt.A(t, calls).Length(1)
		gt.V(t, calls[0].State).Equal(types.IssueStateAll)
	})

	t.Run("workflow branches are not inspected", func(t *testing.T) {
		for _, call := range fx.vcs.GetCommitMetaCalls() {
			gt.V(t, call.Branch).NotEqual(types.BranchName("feature/issue-3-login"))
			gt.V(t, call.Branch).NotEqual(types.BranchName("main"))
		}
	})
}

func TestDetectWithCustomClassifier(t *testing.T) {
	fx := newReconcileFixture(t)
	fx.addBranch("feature/dark-mode", &model.CommitMeta{Author: "jules", Message: "feat: dark"})
	fx.addBranch("feature/copilot-search", &model.CommitMeta{Author: "copilot-swe-agent", Message: "Initial plan"})

	fx.uc = usecase.New(infra.New(
		infra.WithIssueTracker(fx.tracker),
		infra.WithVersionControl(fx.vcs),
	), usecase.WithClassifiers(model.ClassifierFunc{
		Label: "copilot",
		Func: func(commit *model.CommitMeta) bool {
			return strings.Contains(commit.Author, "copilot")
		},
	}))

	result, err := fx.uc.DetectUnclaimedBranches(newTestContext())
	gt.NoError(t, err)
	gt.A(t, result).Length(1)
	gt.V(t, result[0].Name).Equal(types.BranchName("feature/copilot-search"))
	gt.V(t, result[0].MatchedBy).Equal("copilot")
}

func TestIntegrateUnclaimedBranches(t *testing.T) {
	fx := newReconcileFixture(t)
	fx.addBranch("feature/dark-mode", &model.CommitMeta{Author: "jules", Message: "feat: dark mode", Timestamp: testNow})
	fx.addBranch("feature/payments-api", &model.CommitMeta{Author: "jules", Message: "feat: payments"})
	fx.addBranch("feature/search", &model.CommitMeta{Author: "jules", Message: "feat: search"})
	fx.issues = []*model.Issue{
		{Number: 4, Title: "feature: Search", Body: ""},
	}

	fx.tracker.CreateIssueFunc = func(ctx context.Context, input *model.NewIssue) (*model.Issue, error) {
		fx.created = append(fx.created, input)
		if strings.Contains(input.Title, "Payments") {
			return nil, errors.New("tracker unavailable")
		}
		return &model.Issue{Number: types.IssueNumber(300 + len(fx.created)), Title: input.Title, Labels: input.Labels}, nil
	}

	result, err := fx.uc.IntegrateUnclaimedBranches(newTestContext())
	gt.NoError(t, err)

	gt.A(t, result.Proposals).Length(2)
	gt.V(t, result.Proposals[0].Title).Equal("feature: Dark Mode")
	gt.V(t, result.Proposals[1].Title).Equal("feature: Payments Api")

	gt.V(t, result.Created).Equal(map[types.BranchName]types.IssueNumber{"feature/dark-mode": 301})
	gt.V(t, result.Failed).Equal([]types.BranchName{"feature/payments-api"})

	t.Run("link comment and context document for created issue", func(t *testing.T) {
		comments := fx.tracker.AddCommentCalls()
		gt.A(t, comments).Length(1)
		gt.V(t, comments[0].Number).Equal(301)
		gt.S(t, comments[0].Body).Contains("`feature/dark-mode`")

		writes := fx.tracker.WriteRepoFileCalls()
		gt.A(t, writes).Length(1)
		gt.V(t, writes[0].File.Branch).Equal(types.BranchName("feature/dark-mode"))
		gt.S(t, string(writes[0].File.Content)).Contains("# Issue #301: feature: Dark Mode")
	})
}

func TestIntegrateBranch(t *testing.T) {
	t.Run("creates issue for named branch", func(t *testing.T) {
		fx := newReconcileFixture(t)
		fx.commits["feature/ui-polish"] = &model.CommitMeta{Author: "alice", Message: "polish"}

		issue, err := fx.uc.IntegrateBranch(newTestContext(), "feature/ui-polish")
		gt.NoError(t, err)
		gt.V(t, issue.Title).Equal("feature: Ui Polish")
		gt.A(t, fx.created).Length(1)
		gt.V(t, fx.created[0].Labels).Equal([]string{"feature", "medium", "ui"})
	})

	t.Run("returns existing issue", func(t *testing.T) {
		fx := newReconcileFixture(t)
		fx.issues = []*model.Issue{{Number: 5, Title: "x", Body: "`feature/ui-polish`"}}

		issue, err := fx.uc.IntegrateBranch(newTestContext(), "feature/ui-polish")
		gt.NoError(t, err)
		gt.V(t, issue.Number).Equal(5)
		gt.A(t, fx.created).Length(0)
	})

	t.Run("rejects workflow branch", func(t *testing.T) {
		fx := newReconcileFixture(t)
		_, err := fx.uc.IntegrateBranch(newTestContext(), "feature/issue-1-login")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
	})
}

func TestFindOrphans(t *testing.T) {
	branches := []*model.Branch{{Name: "main"}, {Name: "feature/alive"}}
	issues := []*model.Issue{
		{Number: 1, Body: "Work in `feature/alive`"},
		{Number: 2, Body: "Moved from `feature/gone` to `feature/alive`, see `feature/gone` again"},
		{Number: 3, Body: "`feature/gone` and `feature/also-gone`"},
		{Number: 4, Body: "plain feature/gone without backticks"},
		{Number: 5, Body: ""},
	}

	orphans := usecase.FindOrphans(issues, branches)
	gt.A(t, orphans).Length(3)

	gt.V(t, orphans[0].Issue.Number).Equal(2)
	gt.V(t, orphans[0].DeletedBranch).Equal(types.BranchName("feature/gone"))
	gt.V(t, orphans[1].Issue.Number).Equal(3)
	gt.V(t, orphans[1].DeletedBranch).Equal(types.BranchName("feature/gone"))
	gt.V(t, orphans[2].Issue.Number).Equal(3)
	gt.V(t, orphans[2].DeletedBranch).Equal(types.BranchName("feature/also-gone"))

	t.Run("no issues", func(t *testing.T) {
		gt.A(t, usecase.FindOrphans(nil, branches)).Length(0)
	})

	t.Run("repeated mention in one body yields one record", func(t *testing.T) {
		repeated := []*model.Issue{
			{Number: 9, Body: "`feature/gone`\n\nStill waiting on `feature/gone`, see `feature/gone`"},
		}
		orphans := usecase.FindOrphans(repeated, branches)
		gt.A(t, orphans).Length(1)
		gt.V(t, orphans[0].Issue.Number).Equal(9)
		gt.V(t, orphans[0].DeletedBranch).Equal(types.BranchName("feature/gone"))
	})
}

func TestCleanupOrphans(t *testing.T) {
	fx := newReconcileFixture(t)
	fx.addBranch("main", nil)
	fx.issues = []*model.Issue{
		{Number: 7, Labels: []string{"bug"}, Body: "`feature/gone` and `feature/also-gone`"},
		{Number: 8, Labels: []string{"feature"}, Body: "`feature/missing`"},
	}

	var updates []*model.IssueUpdate
	fx.tracker.UpdateIssueFunc = func(ctx context.Context, number types.IssueNumber, input *model.IssueUpdate) (*model.Issue, error) {
		if number == 8 {
			return nil, errors.New("forbidden")
		}
		updates = append(updates, input)
		return &model.Issue{Number: number, Labels: input.Labels}, nil
	}

	marked, err := fx.uc.CleanupOrphans(newTestContext())
	gt.NoError(t, err)
	gt.A(t, marked).Length(2)

	t.Run("only open issues are checked", func(t *testing.T) {
		gt.V(t, fx.tracker.ListIssuesCalls()[0].State).Equal(types.IssueStateOpen)
	})

	t.Run("review comment per orphan", func(t *testing.T) {
		comments := fx.tracker.AddCommentCalls()
		gt.A(t, comments).Length(3)
		gt.S(t, comments[0].Body).Contains("⚠️ **Branch Deleted - Review Required**")
		gt.S(t, comments[0].Body).Contains("`feature/gone`")
		gt.S(t, comments[1].Body).Contains("`feature/also-gone`")
	})

	t.Run("labels are additive", func(t *testing.T) {
		gt.A(t, updates).Length(2)
		gt.V(t, updates[0].Labels).Equal([]string{"bug", "needs-review", "deleted-branch"})
		gt.V(t, updates[1].Labels).Equal([]string{"bug", "needs-review", "deleted-branch"})
	})

	t.Run("rerun posts the comment again", func(t *testing.T) {
		marked, err := fx.uc.CleanupOrphans(newTestContext())
		gt.NoError(t, err)
		gt.A(t, marked).Length(2)
		gt.A(t, fx.tracker.AddCommentCalls()).Length(6)
	})
}

func TestOrphanComment(t *testing.T) {
	comment := usecase.RenderOrphanCommentForTest("feature/gone")
	gt.S(t, comment).Contains("The branch `feature/gone` referenced by this issue has been deleted.")
	gt.S(t, comment).Contains("- [ ] Close issue if work is complete")
}

func TestProposalBodyDate(t *testing.T) {
	proposal := usecase.NewIssueProposal(&model.ExternalBranch{
		Branch: model.Branch{Name: "feature/dark-mode"},
		Commit: model.CommitMeta{
			Author:    "jules",
			Message:   "feat: dark mode\n\nlong description",
			Timestamp: time.Date(2024, 5, 31, 10, 0, 0, 0, time.UTC),
		},
	})
	gt.S(t, proposal.Body).Contains("**Last Updated:** Fri May 31 2024")
	gt.S(t, proposal.Body).Contains("### Work Already Done:\nfeat: dark mode\n")
	gt.S(t, proposal.Body).Contains("**Priority:** Medium")
}
