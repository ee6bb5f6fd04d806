package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/issueflow/pkg/domain/interfaces"
	"github.com/secmon-lab/issueflow/pkg/domain/model"
	"github.com/secmon-lab/issueflow/pkg/domain/types"
	"github.com/secmon-lab/issueflow/pkg/utils/errutil"
	"github.com/secmon-lab/issueflow/pkg/utils/logging"
)

type jobKind string

const (
	jobStartWorkflow  jobKind = "start_workflow"
	jobIntegrate      jobKind = "integrate_branches"
	jobCleanupOrphans jobKind = "cleanup_orphans"
)

// job is the work a webhook event asks for
type job struct {
	kind   jobKind
	repo   model.GitHubRepo
	number types.IssueNumber
	label  string
	branch types.BranchName
}

func (x *job) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("kind", string(x.kind)),
		slog.String("repo", x.repo.String()),
		slog.Int("number", int(x.number)),
		slog.String("label", x.label),
		slog.String("branch", x.branch.String()),
	)
}

// parseGitHubEvent validates the signature of the payload and converts the event into a
// job. It returns nil if the event needs no action.
func parseGitHubEvent(r *http.Request, secret types.GitHubWebhookSecret) (*job, error) {
	payload, err := github.ValidatePayload(r, []byte(secret))
	if err != nil {
		return nil, goerr.Wrap(err, "validating payload")
	}

	event, err := github.ParseWebHook(github.WebHookType(r), payload)
	if err != nil {
		return nil, goerr.Wrap(err, "parsing webhook", goerr.V("event", github.WebHookType(r)))
	}

	logging.From(r.Context()).Info("Received GitHub event", slog.String("type", fmt.Sprintf("%T", event)))

	return githubEventToJob(event), nil
}

func toRepo(repo *github.Repository) model.GitHubRepo {
	return model.GitHubRepo{
		Owner:    repo.GetOwner().GetLogin(),
		RepoName: repo.GetName(),
	}
}

func githubEventToJob(event any) *job {
	switch ev := event.(type) {
	case *github.IssuesEvent:
		if ev.GetAction() != "labeled" {
			logging.Default().Debug("ignore issues event", slog.String("action", ev.GetAction()))
			return nil
		}
		if ev.GetIssue().IsPullRequest() {
			return nil
		}
		return &job{
			kind:   jobStartWorkflow,
			repo:   toRepo(ev.GetRepo()),
			number: types.IssueNumber(ev.GetIssue().GetNumber()),
			label:  ev.GetLabel().GetName(),
		}

	case *github.CreateEvent:
		if ev.GetRefType() != "branch" {
			return nil
		}
		return &job{
			kind:   jobIntegrate,
			repo:   toRepo(ev.GetRepo()),
			branch: types.BranchName(ev.GetRef()),
		}

	case *github.DeleteEvent:
		if ev.GetRefType() != "branch" {
			return nil
		}
		return &job{
			kind:   jobCleanupOrphans,
			repo:   toRepo(ev.GetRepo()),
			branch: types.BranchName(ev.GetRef()),
		}

	case *github.PingEvent, *github.InstallationEvent, *github.InstallationRepositoriesEvent:
		return nil

	default:
		logging.Default().Warn("unsupported event", slog.String("event", fmt.Sprintf("%T", event)))
		return nil
	}
}

// runJob executes job. It is designed to be called from a background goroutine, so errors
// are reported instead of returned.
func runJob(ctx context.Context, uc interfaces.UseCase, job *job) {
	logger := logging.From(ctx).With(slog.Any("job", job))
	ctx = logging.With(ctx, logger)
	logger.Info("Starting webhook job")

	switch job.kind {
	case jobStartWorkflow:
		branch, err := uc.StartWorkflowByNumber(ctx, job.number)
		if err != nil {
			if errutil.IsAlreadyStarted(err) {
				logger.Info("workflow already started", slog.Any("error", err))
				return
			}
			errutil.HandleError(ctx, "failed to start workflow", err)
			return
		}
		logger.Info("workflow started", slog.Any("branch", branch))

	case jobIntegrate:
		result, err := uc.IntegrateUnclaimedBranches(ctx)
		if err != nil {
			errutil.HandleError(ctx, "failed to integrate unclaimed branches", err)
			return
		}
		logger.Info("unclaimed branches integrated",
			slog.Int("created", len(result.Created)),
			slog.Int("failed", len(result.Failed)),
		)

	case jobCleanupOrphans:
		marked, err := uc.CleanupOrphans(ctx)
		if err != nil {
			errutil.HandleError(ctx, "failed to clean up orphans", err)
			return
		}
		logger.Info("orphans marked for review", slog.Int("count", len(marked)))
	}
}
