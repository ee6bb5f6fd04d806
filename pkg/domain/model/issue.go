package model

import (
	"strings"
	"time"

	"github.com/secmon-lab/issueflow/pkg/domain/types"
)

// Issue is a point-in-time snapshot of a tracker issue
type Issue struct {
	Number    types.IssueNumber `json:"number"`
	Title     string            `json:"title"`
	Body      string            `json:"body"`
	Labels    []string          `json:"labels"`
	Assignee  string            `json:"assignee,omitempty"`
	Milestone *Milestone        `json:"milestone,omitempty"`
	State     string            `json:"state"`
	UpdatedAt time.Time         `json:"updated_at"`
	HTMLURL   string            `json:"html_url"`
}

// HasLabel reports whether the issue carries the label. Comparison ignores case.
func (x *Issue) HasLabel(label string) bool {
	for _, l := range x.Labels {
		if strings.EqualFold(l, label) {
			return true
		}
	}
	return false
}

// HasAnyLabel reports whether the issue carries at least one of labels
func (x *Issue) HasAnyLabel(labels ...string) bool {
	for _, l := range labels {
		if x.HasLabel(l) {
			return true
		}
	}
	return false
}

// WorkflowStarted reports whether the issue already went through StartWorkflow
func (x *Issue) WorkflowStarted() bool {
	return x.HasAnyLabel(types.LabelInProgress, types.LabelFeatureBranchCreated)
}

// Milestone is a tracker milestone. DueOn is nil when not set.
type Milestone struct {
	Number       int        `json:"number"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	State        string     `json:"state"`
	DueOn        *time.Time `json:"due_on,omitempty"`
	HTMLURL      string     `json:"html_url"`
	OpenIssues   int        `json:"open_issues"`
	ClosedIssues int        `json:"closed_issues"`
}

// AnnotatedIssue is an Issue with the view state computed by the prioritizer. It is never
// written back to the tracker.
type AnnotatedIssue struct {
	*Issue
	Priority       types.Priority     `json:"priority"`
	EstimatedHours int                `json:"estimated_hours"`
	NeedsAttention bool               `json:"needs_attention"`
	CurrentStep    types.WorkflowStep `json:"current_step"`
}

// NewIssue is the input of IssueTracker.CreateIssue
type NewIssue struct {
	Title     string
	Body      string
	Labels    []string
	Milestone *int
}

// IssueUpdate carries the fields to change. Nil means "leave unchanged". Labels must be
// the full desired set.
type IssueUpdate struct {
	Title     *string
	Body      *string
	Labels    []string
	Milestone *int
}

// UnionLabels appends labels that are not yet in current, preserving the order of current.
// Comparison ignores case.
func UnionLabels(current []string, add ...string) []string {
	result := make([]string, 0, len(current)+len(add))
	seen := make(map[string]struct{}, len(current)+len(add))
	for _, l := range append(append([]string{}, current...), add...) {
		key := strings.ToLower(l)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, l)
	}
	return result
}

// CurrentStep returns the maximal workflow step whose label is present. An issue without
// any step label is StepReady.
func CurrentStep(labels []string) types.WorkflowStep {
	current := types.StepReady
	issue := &Issue{Labels: labels}
	for _, step := range types.WorkflowSteps[1:] {
		if issue.HasLabel(string(step)) {
			current = step
		}
	}
	return current
}
