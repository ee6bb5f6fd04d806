package model

import (
	"time"

	"github.com/secmon-lab/issueflow/pkg/domain/types"
)

// WorkflowReport is the operator summary of one prioritization pass
type WorkflowReport struct {
	ID                types.RequestID `json:"id" bigquery:"id"`
	Repo              string          `json:"repo" bigquery:"repo"`
	Timestamp         time.Time       `json:"timestamp" bigquery:"timestamp"`
	TotalIssues       int             `json:"total_issues" bigquery:"total_issues"`
	ByPriority        PriorityCounts  `json:"by_priority" bigquery:"by_priority"`
	NeedsAttention    int             `json:"needs_attention" bigquery:"needs_attention"`
	InProgress        int             `json:"in_progress" bigquery:"in_progress"`
	EstimatedWorkload int             `json:"estimated_workload" bigquery:"estimated_workload"`
	TopPriority       []*TopIssue     `json:"top_priority" bigquery:"top_priority"`
}

// WorkflowReportRecord is the BigQuery row of a report. The storage write API takes
// TIMESTAMP columns as epoch microseconds.
type WorkflowReportRecord struct {
	WorkflowReport
	Timestamp int64 `bigquery:"timestamp" json:"timestamp"`
}

// NewWorkflowReportRecord converts report into its BigQuery row
func NewWorkflowReportRecord(report *WorkflowReport) *WorkflowReportRecord {
	return &WorkflowReportRecord{
		WorkflowReport: *report,
		Timestamp:      report.Timestamp.UnixMicro(),
	}
}

// PriorityCounts is the number of issues per tier
type PriorityCounts struct {
	Critical int `json:"critical" bigquery:"critical"`
	High     int `json:"high" bigquery:"high"`
	Medium   int `json:"medium" bigquery:"medium"`
	Low      int `json:"low" bigquery:"low"`
}

// Get returns the count of the tier
func (x PriorityCounts) Get(p types.Priority) int {
	switch p {
	case types.PriorityCritical:
		return x.Critical
	case types.PriorityHigh:
		return x.High
	case types.PriorityMedium:
		return x.Medium
	case types.PriorityLow:
		return x.Low
	}
	return 0
}

// TopIssue is a preview entry of the report
type TopIssue struct {
	Number         types.IssueNumber `json:"number" bigquery:"number"`
	Title          string            `json:"title" bigquery:"title"`
	Priority       types.Priority    `json:"priority" bigquery:"priority"`
	EstimatedHours int               `json:"estimated_hours" bigquery:"estimated_hours"`
	Assignee       string            `json:"assignee" bigquery:"assignee"`
	CurrentStep    string            `json:"current_step" bigquery:"current_step"`
}

// NewWorkflowReport aggregates prioritized issues. issues must already be sorted by the
// prioritizer; the first topN are previewed.
func NewWorkflowReport(now time.Time, issues []*AnnotatedIssue, topN int) *WorkflowReport {
	report := &WorkflowReport{
		Timestamp:   now.UTC(),
		TotalIssues: len(issues),
		TopPriority: []*TopIssue{},
	}

	for _, issue := range issues {
		switch issue.Priority {
		case types.PriorityCritical:
			report.ByPriority.Critical++
		case types.PriorityHigh:
			report.ByPriority.High++
		case types.PriorityMedium:
			report.ByPriority.Medium++
		case types.PriorityLow:
			report.ByPriority.Low++
		}
		if issue.NeedsAttention {
			report.NeedsAttention++
		}
		if issue.HasLabel(types.LabelInProgress) {
			report.InProgress++
		}
		report.EstimatedWorkload += issue.EstimatedHours
	}

	for i, issue := range issues {
		if i >= topN {
			break
		}
		assignee := issue.Assignee
		if assignee == "" {
			assignee = "unassigned"
		}
		report.TopPriority = append(report.TopPriority, &TopIssue{
			Number:         issue.Number,
			Title:          issue.Title,
			Priority:       issue.Priority,
			EstimatedHours: issue.EstimatedHours,
			Assignee:       assignee,
			CurrentStep:    string(issue.CurrentStep),
		})
	}

	return report
}

// MilestoneStatus is the progress of one milestone
type MilestoneStatus struct {
	Milestone            *Milestone `json:"milestone"`
	TotalIssues          int        `json:"total_issues"`
	OpenIssues           int        `json:"open_issues"`
	ClosedIssues         int        `json:"closed_issues"`
	CompletionPercentage int        `json:"completion_percentage"`
	Epics                int        `json:"epics"`
}

// NewMilestoneStatus counts the issues attached to a milestone
func NewMilestoneStatus(milestone *Milestone, issues []*Issue) *MilestoneStatus {
	status := &MilestoneStatus{
		Milestone:   milestone,
		TotalIssues: len(issues),
	}
	for _, issue := range issues {
		if issue.State == "closed" {
			status.ClosedIssues++
		} else {
			status.OpenIssues++
		}
		if issue.HasLabel(types.LabelEpic) {
			status.Epics++
		}
	}
	if status.TotalIssues > 0 {
		status.CompletionPercentage = int(float64(status.ClosedIssues)/float64(status.TotalIssues)*100 + 0.5)
	}
	return status
}
