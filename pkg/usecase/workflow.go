package usecase

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/issueflow/pkg/domain/model"
	"github.com/secmon-lab/issueflow/pkg/domain/types"
	"github.com/secmon-lab/issueflow/pkg/utils/logging"
)

const maxSlugLength = 50

var ptnNonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// BranchNameFor returns the feature branch name of an issue:
// feature/issue-<number>-<slug>, where slug is the lower-cased title with every run of
// characters outside [a-z0-9] collapsed to "-", truncated to 50 characters.
func BranchNameFor(number types.IssueNumber, title string) types.BranchName {
	slug := ptnNonSlugChars.ReplaceAllString(strings.ToLower(title), "-")
	if len(slug) > maxSlugLength {
		slug = slug[:maxSlugLength]
	}
	return types.BranchName(fmt.Sprintf("feature/issue-%d-%s", number, slug))
}

var stepComments = map[types.WorkflowStep]string{
	types.StepDevelopmentStarted:  "🚀 **Development Started** - Work in progress",
	types.StepDevelopmentPartial:  "🔄 **Partial Implementation** - Core features working, enhancements needed",
	types.StepDevelopmentComplete: "✅ **Development Complete** - Ready for testing",
	types.StepTestsAdded:          "🧪 **Tests Added** - Code coverage updated",
	types.StepBuildPassing:        "🔨 **Build Passing** - All checks green",
	types.StepPRToTesting:         "🔀 **PR to Testing** - Integration testing started",
	types.StepIntegrationTested:   "✅ **Integration Tests Pass** - Ready for main",
	types.StepPRToMain:            "🚀 **PR to Main** - Ready for final review",
	types.StepMerged:              "🎉 **Merged to Main** - Issue resolved",
}

// StepComment returns the comment posted when an issue advances to step. ok is false for
// steps that can not be advanced to.
func StepComment(step types.WorkflowStep) (string, bool) {
	comment, ok := stepComments[step]
	return comment, ok
}

// StartWorkflowByNumber fetches the issue and starts its workflow
func (x *UseCase) StartWorkflowByNumber(ctx context.Context, number types.IssueNumber) (types.BranchName, error) {
	issue, err := x.clients.IssueTracker().GetIssue(ctx, number)
	if err != nil {
		return "", goerr.Wrap(err, "failed to get issue", goerr.V("issue", number))
	}
	return x.StartWorkflow(ctx, issue)
}

// StartWorkflow creates the feature branch of the issue from the trunk head, writes the
// context document onto it, posts the start comment and labels the issue in-progress and
// feature-branch-created. Nothing is written to the tracker when the branch can not be
// created.
func (x *UseCase) StartWorkflow(ctx context.Context, issue *model.Issue) (types.BranchName, error) {
	if issue.WorkflowStarted() {
		return "", goerr.Wrap(types.ErrAlreadyStarted, "issue already has a feature branch", goerr.V("issue", issue.Number))
	}

	branch := BranchNameFor(issue.Number, issue.Title)
	logger := logging.From(ctx).With("issue", issue.Number, "branch", branch)

	if err := x.createBranch(ctx, branch); err != nil {
		if errors.Is(err, types.ErrBranchExists) {
			// the labels were checked above, so an earlier run stopped after creating the branch
			logger.Warn("feature branch exists but issue is not labeled as started, check the branch and add labels manually",
				"missing_labels", []string{types.LabelInProgress, types.LabelFeatureBranchCreated},
			)
		}
		return "", goerr.Wrap(err, "failed to start workflow", goerr.V("issue", issue.Number))
	}
	logger.Info("feature branch created", "from", x.trunk)

	annotated := annotate(logging.CtxTime(ctx), x.policy.StaleDays, issue)
	document := model.RenderContextDocument(annotated, branch)
	if err := x.writeContextDocument(ctx, branch, issue.Number, document); err != nil {
		logger.Warn("could not write context document", "error", err)
	}

	tracker := x.clients.IssueTracker()
	if err := tracker.AddComment(ctx, issue.Number, renderStartComment(annotated, branch, x.policy.ContextFile)); err != nil {
		return "", goerr.Wrap(err, "failed to post start comment", goerr.V("issue", issue.Number), goerr.V("branch", branch))
	}

	labels := model.UnionLabels(issue.Labels, types.LabelInProgress, types.LabelFeatureBranchCreated)
	if _, err := tracker.UpdateIssue(ctx, issue.Number, &model.IssueUpdate{Labels: labels}); err != nil {
		return "", goerr.Wrap(err, "failed to update labels", goerr.V("issue", issue.Number), goerr.V("labels", labels))
	}

	x.recordState(ctx, issue.Number, types.StepInProgress, branch)

	return branch, nil
}

func (x *UseCase) createBranch(ctx context.Context, branch types.BranchName) error {
	vcs := x.clients.VersionControl()

	sha, err := vcs.ResolveRef(ctx, x.trunk)
	if err != nil {
		return goerr.Wrap(fmt.Errorf("%w: %w", types.ErrBranchCreation, err), "failed to resolve trunk head",
			goerr.V("trunk", x.trunk),
			goerr.V("branch", branch),
		)
	}

	if err := vcs.CreateBranch(ctx, branch, sha); err != nil {
		return goerr.Wrap(fmt.Errorf("%w: %w", types.ErrBranchCreation, err), "failed to create branch",
			goerr.V("branch", branch),
			goerr.V("sha", sha),
		)
	}

	return nil
}

// writeContextDocument creates the context document on branch. When the file already
// exists, it is updated once with the sha of the existing blob.
func (x *UseCase) writeContextDocument(ctx context.Context, branch types.BranchName, number types.IssueNumber, document string) error {
	tracker := x.clients.IssueTracker()
	file := &model.RepoFile{
		Path:    x.policy.ContextFile,
		Content: []byte(document),
		Branch:  branch,
		Message: fmt.Sprintf("Add Claude context for issue #%d", number),
	}

	err := tracker.WriteRepoFile(ctx, file)
	if err == nil {
		return nil
	}
	if !errors.Is(err, types.ErrConflict) {
		return goerr.Wrap(err, "failed to create context document", goerr.V("branch", branch))
	}

	sha, err := tracker.GetRepoFileSHA(ctx, file.Path, branch)
	if err != nil {
		return goerr.Wrap(err, "failed to get existing context document", goerr.V("branch", branch))
	}
	file.SHA = sha
	file.Message = fmt.Sprintf("Update Claude context for issue #%d", number)

	if err := tracker.WriteRepoFile(ctx, file); err != nil {
		return goerr.Wrap(err, "failed to update context document", goerr.V("branch", branch))
	}
	return nil
}

// AdvanceWorkflow posts the comment of step and adds the step label to the issue. Steps
// without a comment are ignored and false is returned.
func (x *UseCase) AdvanceWorkflow(ctx context.Context, number types.IssueNumber, step types.WorkflowStep) (bool, error) {
	comment, ok := StepComment(step)
	if !ok {
		logging.From(ctx).Debug("ignore unknown workflow step", "issue", number, "step", step)
		return false, nil
	}

	tracker := x.clients.IssueTracker()
	if err := tracker.AddComment(ctx, number, comment); err != nil {
		return false, goerr.Wrap(err, "failed to post progress comment", goerr.V("issue", number), goerr.V("step", step))
	}

	issue, err := tracker.GetIssue(ctx, number)
	if err != nil {
		return false, goerr.Wrap(err, "failed to get issue", goerr.V("issue", number))
	}

	labels := model.UnionLabels(issue.Labels, string(step))
	if _, err := tracker.UpdateIssue(ctx, number, &model.IssueUpdate{Labels: labels}); err != nil {
		return false, goerr.Wrap(err, "failed to update labels", goerr.V("issue", number), goerr.V("labels", labels))
	}

	x.recordState(ctx, number, model.CurrentStep(labels), "")

	return true, nil
}

// recordState keeps the audit record of the canonical step. Failures do not affect the
// workflow.
func (x *UseCase) recordState(ctx context.Context, number types.IssueNumber, step types.WorkflowStep, branch types.BranchName) {
	repo := x.clients.WorkflowRepository()
	if repo == nil {
		return
	}

	state := &model.WorkflowState{
		Repo:        x.repoName(),
		IssueNumber: number,
		Step:        step,
		Branch:      branch,
		UpdatedAt:   logging.CtxTime(ctx),
	}
	if branch == "" {
		if prev, err := repo.GetState(ctx, state.Repo, number); err == nil && prev != nil {
			state.Branch = prev.Branch
		}
	}

	if err := repo.PutState(ctx, state); err != nil {
		logging.From(ctx).Warn("failed to record workflow state", "issue", number, "step", step, "error", err)
	}
}

func renderStartComment(issue *model.AnnotatedIssue, branch types.BranchName, contextFile string) string {
	var b strings.Builder

	b.WriteString("🚀 **Automated Workflow Started**\n\n")
	fmt.Fprintf(&b, "**Feature Branch:** `%s`\n\n", branch)
	fmt.Fprintf(&b, "**Claude Chat Context:** Created `%s` with issue details", contextFile)
	if m := issue.Milestone; m != nil {
		due := "Not set"
		if m.DueOn != nil {
			due = m.DueOn.Format("Mon Jan 02 2006")
		}
		fmt.Fprintf(&b, "\n**🎯 Project:** %s\n**📅 Due Date:** %s", m.Title, due)
	}
	b.WriteString("\n\n")

	b.WriteString("**Development Checklist:**\n")
	fmt.Fprintf(&b, "- [ ] Switch to feature branch: `git checkout %s`\n", branch)
	fmt.Fprintf(&b, "- [ ] Open Claude Code with context: %s\n", model.ContextHeading(issue.Number, issue.Title))
	b.WriteString(`- [ ] Implement solution
- [ ] Add/update tests
- [ ] Run the linters and type checks
- [ ] Create PR to ` + "`testing`" + ` branch
- [ ] Wait for integration tests to pass
- [ ] Create PR to ` + "`main`" + ` branch
- [ ] Close issue after merge

`)
	fmt.Fprintf(&b, "**Estimated Time:** %d hours\n", issue.EstimatedHours)
	fmt.Fprintf(&b, "**Priority:** %s\n\n", issue.Priority)

	b.WriteString("**Claude Code Setup:**\n```bash\n")
	fmt.Fprintf(&b, "git checkout %s\n", branch)
	fmt.Fprintf(&b, "# Claude Code will automatically detect the context from %s\n", contextFile)
	b.WriteString("```\n\n*🤖 Automated by issueflow*")

	return b.String()
}
