package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/issueflow/pkg/domain/model"
	"github.com/secmon-lab/issueflow/pkg/domain/types"
	"github.com/secmon-lab/issueflow/pkg/utils/errutil"
	"github.com/secmon-lab/issueflow/pkg/utils/logging"
)

var (
	ptnIssueBranchPrefix = regexp.MustCompile(`^feature/issue-\d+-`)
	ptnBranchReference   = regexp.MustCompile("`(feature/[^`]+)`")
)

// DefaultClassifiers returns the built-in commit classifiers. A head commit is treated as
// externally authored when the author name or login contains one of agentIdentities, the
// subject starts with "feat:", or the message contains "Implement".
func DefaultClassifiers(agentIdentities []string) []model.CommitClassifier {
	return []model.CommitClassifier{
		model.ClassifierFunc{
			Label: "agent-author",
			Func: func(commit *model.CommitMeta) bool {
				author := strings.ToLower(commit.Author)
				login := strings.ToLower(commit.AuthorLogin)
				for _, id := range agentIdentities {
					id = strings.ToLower(id)
					if id == "" {
						continue
					}
					if strings.Contains(author, id) || strings.Contains(login, id) {
						return true
					}
				}
				return false
			},
		},
		model.ClassifierFunc{
			Label: "feat-prefix",
			Func: func(commit *model.CommitMeta) bool {
				return strings.HasPrefix(commit.Subject(), "feat:")
			},
		},
		model.ClassifierFunc{
			Label: "implement-keyword",
			Func: func(commit *model.CommitMeta) bool {
				return strings.Contains(commit.Message, "Implement")
			},
		},
	}
}

// IsUnclaimedCandidate reports whether a branch may be an externally created feature branch
// that the workflow does not track yet
func IsUnclaimedCandidate(branch types.BranchName, integrationMarker string) bool {
	name := string(branch)
	if !strings.HasPrefix(name, "feature/") {
		return false
	}
	if ptnIssueBranchPrefix.MatchString(name) {
		return false
	}
	if integrationMarker != "" && strings.Contains(name, integrationMarker) {
		return false
	}
	return true
}

func classify(classifiers []model.CommitClassifier, commit *model.CommitMeta) (string, bool) {
	for _, c := range classifiers {
		if c.Classify(commit) {
			return c.Name(), true
		}
	}
	return "", false
}

// FindIssueForBranch returns the first issue whose body mentions the branch name, or whose
// lower-cased title contains the branch name without "feature/" and with dashes as spaces
func FindIssueForBranch(branch types.BranchName, issues []*model.Issue) *model.Issue {
	normalized := strings.ReplaceAll(strings.TrimPrefix(string(branch), "feature/"), "-", " ")
	for _, issue := range issues {
		if strings.Contains(issue.Body, string(branch)) {
			return issue
		}
		if strings.Contains(strings.ToLower(issue.Title), normalized) {
			return issue
		}
	}
	return nil
}

// NewIssueProposal builds the issue that should track an external branch
func NewIssueProposal(branch *model.ExternalBranch) *model.IssueProposal {
	name := string(branch.Name)
	title := model.TitleCase(strings.TrimPrefix(name, "feature/"))

	subject := strings.ToLower(branch.Commit.Subject())
	priority := types.PriorityMedium
	switch {
	case strings.Contains(subject, "critical"), strings.Contains(subject, "urgent"):
		priority = types.PriorityHigh
	case strings.Contains(subject, "minor"), strings.Contains(subject, "small"):
		priority = types.PriorityLow
	}

	labels := []string{types.LabelFeature, string(priority)}
	if strings.Contains(name, "ui") || strings.Contains(name, "component") {
		labels = append(labels, "ui")
	}
	if strings.Contains(name, "api") || strings.Contains(name, "backend") {
		labels = append(labels, "api")
	}
	if strings.Contains(name, "test") {
		labels = append(labels, "testing")
	}

	return &model.IssueProposal{
		Branch:   branch.Name,
		Commit:   branch.Commit,
		Title:    "feature: " + title,
		Body:     renderProposalBody(title, branch, priority),
		Labels:   labels,
		Priority: priority,
	}
}

// DetectUnclaimedBranches lists candidate branches whose head commit matches a classifier.
// HasIssue is set when an existing issue (open or closed) already refers to the branch.
// Branches that can not be inspected are logged and skipped.
func (x *UseCase) DetectUnclaimedBranches(ctx context.Context) ([]*model.ExternalBranch, error) {
	branches, err := x.clients.BranchLister().ListRemoteBranches(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list remote branches")
	}

	issues, err := x.clients.IssueTracker().ListIssues(ctx, types.IssueStateAll)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list issues")
	}

	var result []*model.ExternalBranch
	for _, branch := range branches {
		if !IsUnclaimedCandidate(branch.Name, x.policy.IntegrationMarker) {
			continue
		}

		ext, err := x.inspectBranch(ctx, branch, issues)
		if err != nil {
			logging.From(ctx).Warn("could not analyze branch", "branch", branch.Name, "error", err)
			continue
		}
		if ext != nil {
			result = append(result, ext)
		}
	}

	return result, nil
}

func (x *UseCase) inspectBranch(ctx context.Context, branch *model.Branch, issues []*model.Issue) (*model.ExternalBranch, error) {
	commit, err := x.clients.VersionControl().GetCommitMeta(ctx, branch.Name)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get head commit", goerr.V("branch", branch.Name))
	}

	matched, ok := classify(x.classifiers, commit)
	if !ok {
		logging.From(ctx).Debug("not an external branch", "branch", branch.Name, "author", commit.Author)
		return nil, nil
	}

	ext := &model.ExternalBranch{
		Branch:    *branch,
		Commit:    *commit,
		MatchedBy: matched,
	}
	if issue := FindIssueForBranch(branch.Name, issues); issue != nil {
		ext.HasIssue = true
		ext.IssueMatch = issue
	}
	return ext, nil
}

// IntegrateUnclaimedBranches creates an issue for every external branch that has none yet.
// Branches are processed in snapshot order; a failure on one branch does not stop the rest.
func (x *UseCase) IntegrateUnclaimedBranches(ctx context.Context) (*model.IntegrationResult, error) {
	branches, err := x.DetectUnclaimedBranches(ctx)
	if err != nil {
		return nil, err
	}

	result := &model.IntegrationResult{
		Proposals: []*model.IssueProposal{},
		Created:   map[types.BranchName]types.IssueNumber{},
	}

	for _, branch := range branches {
		if branch.HasIssue {
			logging.From(ctx).Info("branch already has issue, skipping", "branch", branch.Name, "issue", branch.IssueMatch.Number)
			continue
		}

		proposal := NewIssueProposal(branch)
		result.Proposals = append(result.Proposals, proposal)

		issue, err := x.applyProposal(ctx, proposal)
		if err != nil {
			errutil.HandleError(ctx, "failed to integrate branch", goerr.Wrap(err, "integration failed", goerr.V("branch", branch.Name)))
			result.Failed = append(result.Failed, branch.Name)
			continue
		}
		result.Created[branch.Name] = issue.Number
	}

	return result, nil
}

// IntegrateBranch creates an issue for one named branch. It fails with ErrValidationFailed
// when the branch is not an unclaimed candidate, and returns the existing issue when the
// branch is already tracked.
func (x *UseCase) IntegrateBranch(ctx context.Context, name types.BranchName) (*model.Issue, error) {
	if !IsUnclaimedCandidate(name, x.policy.IntegrationMarker) {
		return nil, goerr.Wrap(types.ErrValidationFailed, "branch is not an integration candidate", goerr.V("branch", name))
	}

	issues, err := x.clients.IssueTracker().ListIssues(ctx, types.IssueStateAll)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list issues")
	}
	if issue := FindIssueForBranch(name, issues); issue != nil {
		logging.From(ctx).Info("branch already has issue", "branch", name, "issue", issue.Number)
		return issue, nil
	}

	commit, err := x.clients.VersionControl().GetCommitMeta(ctx, name)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get head commit", goerr.V("branch", name))
	}

	proposal := NewIssueProposal(&model.ExternalBranch{
		Branch: model.Branch{Name: name, HeadSHA: commit.SHA},
		Commit: *commit,
	})
	return x.applyProposal(ctx, proposal)
}

func (x *UseCase) applyProposal(ctx context.Context, proposal *model.IssueProposal) (*model.Issue, error) {
	tracker := x.clients.IssueTracker()
	logger := logging.From(ctx).With("branch", proposal.Branch)

	issue, err := tracker.CreateIssue(ctx, &model.NewIssue{
		Title:  proposal.Title,
		Body:   proposal.Body,
		Labels: proposal.Labels,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create issue", goerr.V("title", proposal.Title))
	}
	logger.Info("issue created for branch", "issue", issue.Number)

	if err := tracker.AddComment(ctx, issue.Number, renderLinkComment(proposal)); err != nil {
		return nil, goerr.Wrap(err, "failed to post link comment", goerr.V("issue", issue.Number))
	}

	annotated := annotate(logging.CtxTime(ctx), x.policy.StaleDays, issue)
	document := model.RenderContextDocument(annotated, proposal.Branch)
	if err := x.writeContextDocument(ctx, proposal.Branch, issue.Number, document); err != nil {
		logger.Warn("could not add context document to branch", "error", err)
	}

	x.recordState(ctx, issue.Number, model.CurrentStep(issue.Labels), proposal.Branch)

	return issue, nil
}

// FindOrphans returns one record per (issue, branch) pair where an issue body references a
// `feature/...` branch that is not in branches. A branch mentioned several times in one body
// yields a single record.
func FindOrphans(issues []*model.Issue, branches []*model.Branch) []*model.OrphanRecord {
	existing := make(map[types.BranchName]struct{}, len(branches))
	for _, b := range branches {
		existing[b.Name] = struct{}{}
	}

	var orphans []*model.OrphanRecord
	for _, issue := range issues {
		seen := map[types.BranchName]struct{}{}
		for _, m := range ptnBranchReference.FindAllStringSubmatch(issue.Body, -1) {
			name := types.BranchName(m[1])
			if _, ok := existing[name]; ok {
				continue
			}
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			orphans = append(orphans, &model.OrphanRecord{Issue: issue, DeletedBranch: name})
		}
	}
	return orphans
}

// CheckOrphans finds open issues that reference deleted branches
func (x *UseCase) CheckOrphans(ctx context.Context) ([]*model.OrphanRecord, error) {
	branches, err := x.clients.BranchLister().ListRemoteBranches(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list remote branches")
	}

	issues, err := x.clients.IssueTracker().ListIssues(ctx, types.IssueStateOpen)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list issues")
	}

	orphans := FindOrphans(issues, branches)
	for _, o := range orphans {
		logging.From(ctx).Info("issue references deleted branch", "issue", o.Issue.Number, "branch", o.DeletedBranch)
	}
	return orphans, nil
}

// CleanupOrphans marks every orphaned issue for review: it posts the review comment and
// adds needs-review and deleted-branch labels. Issues already marked get the comment again.
// Records that could not be marked are left out of the returned list.
func (x *UseCase) CleanupOrphans(ctx context.Context) ([]*model.OrphanRecord, error) {
	orphans, err := x.CheckOrphans(ctx)
	if err != nil {
		return nil, err
	}

	var marked []*model.OrphanRecord
	for _, o := range orphans {
		if err := x.markForReview(ctx, o); err != nil {
			errutil.HandleError(ctx, "failed to mark issue for review", err)
			continue
		}
		marked = append(marked, o)
	}

	return marked, nil
}

func (x *UseCase) markForReview(ctx context.Context, orphan *model.OrphanRecord) error {
	tracker := x.clients.IssueTracker()
	number := orphan.Issue.Number

	if err := tracker.AddComment(ctx, number, renderOrphanComment(orphan.DeletedBranch)); err != nil {
		return goerr.Wrap(err, "failed to post review comment", goerr.V("issue", number), goerr.V("branch", orphan.DeletedBranch))
	}

	labels := model.UnionLabels(orphan.Issue.Labels, types.LabelNeedsReview, types.LabelDeletedBranch)
	if _, err := tracker.UpdateIssue(ctx, number, &model.IssueUpdate{Labels: labels}); err != nil {
		return goerr.Wrap(err, "failed to update labels", goerr.V("issue", number), goerr.V("labels", labels))
	}
	// Another orphan record of the same issue must not drop these labels.
	orphan.Issue.Labels = labels

	logging.From(ctx).Info("marked issue for review", "issue", number, "branch", orphan.DeletedBranch)
	return nil
}

func renderProposalBody(title string, branch *model.ExternalBranch, priority types.Priority) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Feature: %s\n\n", title)
	fmt.Fprintf(&b, "**Implemented by:** %s\n", branch.Commit.Author)
	fmt.Fprintf(&b, "**Branch:** `%s`\n", branch.Name)
	b.WriteString("**Status:** ✅ Implementation started\n\n")
	fmt.Fprintf(&b, "### Work Already Done:\n%s\n\n", branch.Commit.Subject())
	b.WriteString(`### Requirements:
- [ ] Review the existing implementation
- [ ] Add tests if needed
- [ ] Integrate with existing codebase
- [ ] Update documentation
- [ ] Prepare for production

### Next Steps:
`)
	fmt.Fprintf(&b, "1. Switch to branch: `git checkout %s`\n", branch.Name)
	b.WriteString("2. Review implementation details\n")
	b.WriteString("3. Continue development\n\n")
	if !branch.Commit.Timestamp.IsZero() {
		fmt.Fprintf(&b, "**Last Updated:** %s\n", branch.Commit.Timestamp.Format("Mon Jan 02 2006"))
	}
	fmt.Fprintf(&b, "**Priority:** %s\n", model.TitleCase(string(priority)))
	b.WriteString("**Estimated:** 2-4 hours (review + integration)")
	return b.String()
}

func renderLinkComment(proposal *model.IssueProposal) string {
	var b strings.Builder
	b.WriteString("🔗 **Branch Integration**\n\n")
	fmt.Fprintf(&b, "This issue is linked to existing branch: `%s`\n\n", proposal.Branch)
	b.WriteString("**Branch Details:**\n")
	fmt.Fprintf(&b, "- Last commit: %q\n", proposal.Commit.Subject())
	fmt.Fprintf(&b, "- Author: %s\n", proposal.Commit.Author)
	if !proposal.Commit.Timestamp.IsZero() {
		fmt.Fprintf(&b, "- Created: %s\n", proposal.Commit.Timestamp.Format("Mon Jan 02 2006"))
	}
	fmt.Fprintf(&b, "\n**To continue work:**\n```bash\ngit checkout %s\n```\n\n", proposal.Branch)
	b.WriteString("*🤖 Automated by issueflow*")
	return b.String()
}

func renderOrphanComment(branch types.BranchName) string {
	return fmt.Sprintf("⚠️ **Branch Deleted - Review Required**\n\n"+
		"The branch `%s` referenced by this issue has been deleted.\n\n"+
		"**Action Required:**\n"+
		"- [ ] Review if work was completed and merged elsewhere\n"+
		"- [ ] Close issue if work is complete\n"+
		"- [ ] Recreate branch if work is still needed\n"+
		"- [ ] Archive issue if no longer relevant\n\n"+
		"**Options:**\n"+
		"1. **Work Complete**: Close this issue\n"+
		"2. **Work Incomplete**: Create new branch or reopen deleted branch\n"+
		"3. **No Longer Needed**: Add `archived` label and close\n\n"+
		"*🤖 Automated by issueflow*", branch)
}
