package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/issueflow/pkg/domain/interfaces"
	"github.com/secmon-lab/issueflow/pkg/domain/mock"
	"github.com/secmon-lab/issueflow/pkg/domain/model"
	"github.com/secmon-lab/issueflow/pkg/domain/types"
	"github.com/secmon-lab/issueflow/pkg/infra"
	"github.com/secmon-lab/issueflow/pkg/repository/memory"
	"github.com/secmon-lab/issueflow/pkg/usecase"
	"github.com/secmon-lab/issueflow/pkg/utils/logging"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

const (
	testOwner    = "example-org"
	testRepoName = "example-app"
	testTrunkSHA = types.CommitSHA("0123456789abcdef0123456789abcdef01234567")
)

// fixture wires an in-memory tracker and version control into a UseCase. Every remote
// mutation is recorded in calls, in order.
type fixture struct {
	uc       *usecase.UseCase
	tracker  *mock.IssueTrackerMock
	vcs      *mock.VersionControlMock
	repo     interfaces.WorkflowRepository
	mu       sync.Mutex
	issues   map[types.IssueNumber]*model.Issue
	files    map[string]*model.RepoFile
	branches map[types.BranchName]types.CommitSHA
	calls    []string
}

func newTestContext() context.Context {
	return logging.CtxWithTime(context.Background(), func() time.Time { return testNow })
}

func newFixture(t *testing.T, issues []*model.Issue, options ...usecase.Option) *fixture {
	t.Helper()

	fx := &fixture{
		issues:   map[types.IssueNumber]*model.Issue{},
		files:    map[string]*model.RepoFile{},
		branches: map[types.BranchName]types.CommitSHA{"main": testTrunkSHA},
	}
	for _, issue := range issues {
		fx.issues[issue.Number] = issue
	}

	fx.tracker = &mock.IssueTrackerMock{
		ListIssuesFunc: func(ctx context.Context, state types.IssueState) ([]*model.Issue, error) {
			var result []*model.Issue
			for _, issue := range issues {
				if state == types.IssueStateAll || issue.State == "" || issue.State == string(state) {
					result = append(result, fx.issues[issue.Number])
				}
			}
			return result, nil
		},
		GetIssueFunc: func(ctx context.Context, number types.IssueNumber) (*model.Issue, error) {
			issue, ok := fx.issues[number]
			if !ok {
				return nil, types.ErrNotFound
			}
			copied := *issue
			copied.Labels = append([]string{}, issue.Labels...)
			return &copied, nil
		},
		CreateIssueFunc: func(ctx context.Context, input *model.NewIssue) (*model.Issue, error) {
			fx.record("create-issue")
			issue := &model.Issue{
				Number: types.IssueNumber(100 + len(fx.issues)),
				Title:  input.Title,
				Body:   input.Body,
				Labels: input.Labels,
				State:  "open",
			}
			fx.issues[issue.Number] = issue
			return issue, nil
		},
		UpdateIssueFunc: func(ctx context.Context, number types.IssueNumber, input *model.IssueUpdate) (*model.Issue, error) {
			fx.record("update-issue")
			issue, ok := fx.issues[number]
			if !ok {
				return nil, types.ErrNotFound
			}
			if input.Labels != nil {
				issue.Labels = input.Labels
			}
			if input.Body != nil {
				issue.Body = *input.Body
			}
			return issue, nil
		},
		AddCommentFunc: func(ctx context.Context, number types.IssueNumber, body string) error {
			fx.record("comment")
			return nil
		},
		WriteRepoFileFunc: func(ctx context.Context, file *model.RepoFile) error {
			fx.record("write-file")
			key := string(file.Branch) + ":" + file.Path
			if cur, ok := fx.files[key]; ok && file.SHA != cur.SHA {
				return types.ErrConflict
			}
			stored := *file
			stored.SHA = "sha-" + key
			fx.files[key] = &stored
			return nil
		},
		GetRepoFileSHAFunc: func(ctx context.Context, path string, branch types.BranchName) (string, error) {
			cur, ok := fx.files[string(branch)+":"+path]
			if !ok {
				return "", types.ErrNotFound
			}
			return cur.SHA, nil
		},
	}

	fx.vcs = &mock.VersionControlMock{
		ResolveRefFunc: func(ctx context.Context, branch types.BranchName) (types.CommitSHA, error) {
			sha, ok := fx.branches[branch]
			if !ok {
				return "", types.ErrRefNotFound
			}
			return sha, nil
		},
		CreateBranchFunc: func(ctx context.Context, name types.BranchName, from types.CommitSHA) error {
			fx.record("create-branch")
			if _, ok := fx.branches[name]; ok {
				return types.ErrBranchExists
			}
			fx.branches[name] = from
			return nil
		},
		ListRemoteBranchesFunc: func(ctx context.Context) ([]*model.Branch, error) {
			var result []*model.Branch
			for name, sha := range fx.branches {
				result = append(result, &model.Branch{Name: name, HeadSHA: sha})
			}
			return result, nil
		},
	}

	fx.repo = memory.New()
	opts := append([]usecase.Option{
		usecase.WithRepo(model.GitHubRepo{Owner: testOwner, RepoName: testRepoName}),
	}, options...)
	fx.uc = usecase.New(infra.New(
		infra.WithIssueTracker(fx.tracker),
		infra.WithVersionControl(fx.vcs),
		infra.WithWorkflowRepository(fx.repo),
	), opts...)
	return fx
}

func (fx *fixture) record(call string) {
	fx.mu.Lock()
	defer fx.mu.Unlock()
	fx.calls = append(fx.calls, call)
}

func TestNew(t *testing.T) {
	t.Run("default readiness labels", func(t *testing.T) {
		uc := usecase.New(infra.New())
		gt.True(t, uc.IsReadinessLabel("ready-for-development"))
		gt.True(t, uc.IsReadinessLabel("Good First Issue"))
		gt.False(t, uc.IsReadinessLabel("in-progress"))
	})

	t.Run("policy replaces readiness labels", func(t *testing.T) {
		policy := model.DefaultPolicy()
		policy.ReadinessLabels = []string{"triaged"}
		uc := usecase.New(infra.New(), usecase.WithPolicy(policy))
		gt.True(t, uc.IsReadinessLabel("triaged"))
		gt.False(t, uc.IsReadinessLabel("ready-for-development"))
	})
}
