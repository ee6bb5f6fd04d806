package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/secmon-lab/issueflow/pkg/domain/model"
	"github.com/secmon-lab/issueflow/pkg/domain/types"
)

var (
	bold   = color.New(color.Bold).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
)

func priorityColor(p types.Priority) func(a ...any) string {
	switch p {
	case types.PriorityCritical:
		return red
	case types.PriorityHigh:
		return yellow
	case types.PriorityMedium:
		return cyan
	default:
		return fmt.Sprint
	}
}

func renderReport(w io.Writer, report *model.WorkflowReport) {
	fmt.Fprintf(w, "%s %s\n\n", bold("Issue Workflow Report"), report.Repo)
	fmt.Fprintf(w, "Total open issues: %d\n", report.TotalIssues)
	for _, p := range types.Priorities {
		fmt.Fprintf(w, "  %-9s %d\n", priorityColor(p)(p.String()), report.ByPriority.Get(p))
	}
	fmt.Fprintf(w, "Needs attention:   %s\n", yellow(report.NeedsAttention))
	fmt.Fprintf(w, "In progress:       %d\n", report.InProgress)
	fmt.Fprintf(w, "Estimated workload: %dh\n", report.EstimatedWorkload)

	if len(report.TopPriority) == 0 {
		return
	}

	fmt.Fprintf(w, "\n%s\n", bold("Top priority"))
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ISSUE\tPRIORITY\tESTIMATE\tASSIGNEE\tSTEP\tTITLE")
	for _, issue := range report.TopPriority {
		fmt.Fprintf(tw, "#%d\t%s\t%dh\t%s\t%s\t%s\n",
			issue.Number,
			issue.Priority,
			issue.EstimatedHours,
			issue.Assignee,
			issue.CurrentStep,
			issue.Title,
		)
	}
	_ = tw.Flush()
}

func renderAutoStart(w io.Writer, result *model.AutoStartResult) {
	if len(result.Selected) == 0 {
		fmt.Fprintln(w, "No ready issue to start")
		return
	}

	for _, number := range result.Selected {
		if branch, ok := result.Started[number]; ok {
			fmt.Fprintf(w, "%s #%d -> %s\n", green("started"), number, branch)
		}
	}
	for _, number := range result.Skipped {
		fmt.Fprintf(w, "%s #%d (already started)\n", cyan("skipped"), number)
	}
	for _, number := range result.Failed {
		fmt.Fprintf(w, "%s  #%d\n", red("failed"), number)
	}
}

func renderUnclaimedBranches(w io.Writer, branches []*model.ExternalBranch) {
	if len(branches) == 0 {
		fmt.Fprintln(w, "No unclaimed branch found")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "BRANCH\tAUTHOR\tMATCHED BY\tISSUE")
	for _, b := range branches {
		issue := yellow("none")
		if b.IssueMatch != nil {
			issue = fmt.Sprintf("#%d", b.IssueMatch.Number)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", b.Name, b.Commit.Author, b.MatchedBy, issue)
	}
	_ = tw.Flush()
}

func renderIntegration(w io.Writer, result *model.IntegrationResult) {
	if len(result.Proposals) == 0 {
		fmt.Fprintln(w, "No branch to integrate")
		return
	}

	for _, proposal := range result.Proposals {
		if number, ok := result.Created[proposal.Branch]; ok {
			fmt.Fprintf(w, "%s #%d %s (%s)\n", green("created"), number, proposal.Title, proposal.Branch)
		}
	}
	for _, branch := range result.Failed {
		fmt.Fprintf(w, "%s  %s\n", red("failed"), branch)
	}
}

func renderOrphans(w io.Writer, orphans []*model.OrphanRecord) {
	if len(orphans) == 0 {
		fmt.Fprintln(w, green("No orphaned issue found"))
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ISSUE\tDELETED BRANCH\tTITLE")
	for _, o := range orphans {
		fmt.Fprintf(tw, "#%d\t%s\t%s\n", o.Issue.Number, o.DeletedBranch, o.Issue.Title)
	}
	_ = tw.Flush()
}

func renderHealth(w io.Writer, report *model.HealthReport) {
	fmt.Fprintln(w, bold("Build health"))

	if len(report.Tracked) > 0 {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "BRANCH\tPRIORITY\tLATEST\tEXPECTATION")
		for _, h := range report.Tracked {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", h.Branch, h.Expectation.Priority, runSummary(h.Latest), h.Expectation.Expectation)
		}
		_ = tw.Flush()
	}

	if len(report.Others) > 0 {
		fmt.Fprintf(w, "\n%s\n", bold("Other active branches"))
		for _, run := range report.Others {
			fmt.Fprintf(w, "  %s %s\n", run.Branch, runSummary(run))
		}
	}

	fmt.Fprintln(w)
	switch {
	case report.FailingCritical > 0:
		fmt.Fprintln(w, red(fmt.Sprintf("%d critical branch(es) failing: immediate action required", report.FailingCritical)))
	case report.FailingHigh > 0:
		fmt.Fprintln(w, yellow(fmt.Sprintf("%d high priority branch(es) failing: investigate soon", report.FailingHigh)))
	default:
		fmt.Fprintln(w, green("All tracked branches are healthy"))
	}
}

func runSummary(run *model.WorkflowRun) string {
	if run == nil {
		return "no run"
	}
	result := run.Conclusion
	if result == "" {
		result = run.Status
	}
	switch {
	case run.Failing():
		result = red(result)
	case run.Conclusion == "success":
		result = green(result)
	}
	return fmt.Sprintf("#%d %s", run.RunNumber, result)
}

func renderMilestoneStatus(w io.Writer, status *model.MilestoneStatus) {
	m := status.Milestone
	fmt.Fprintf(w, "%s #%d %s (%s)\n", bold("Milestone"), m.Number, m.Title, m.State)
	if m.DueOn != nil {
		fmt.Fprintf(w, "Due: %s\n", m.DueOn.Format("2006-01-02"))
	}
	fmt.Fprintf(w, "Progress: %s (%d/%d closed)\n",
		green(fmt.Sprintf("%d%%", status.CompletionPercentage)),
		status.ClosedIssues, status.TotalIssues)
	fmt.Fprintf(w, "Open: %d, Epics: %d\n", status.OpenIssues, status.Epics)
}

func renderContextInfo(w io.Writer, info *model.ContextInfo) {
	fmt.Fprintf(w, "%s %s\n", bold("Title:"), info.Heading())
	fmt.Fprintf(w, "Branch: %s\n", info.Branch)
	if info.HasDocument {
		fmt.Fprintf(w, "Context: %s\n", info.ContextFile)
	} else {
		fmt.Fprintf(w, "Context: %s\n", yellow("not found"))
	}
	if info.Priority != "" {
		fmt.Fprintf(w, "Priority: %s\n", info.Priority)
	}
	if info.EstimatedTime != "" {
		fmt.Fprintf(w, "Estimated time: %s\n", info.EstimatedTime)
	}
}
