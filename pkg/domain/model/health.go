package model

import (
	"sort"
	"time"

	"github.com/secmon-lab/issueflow/pkg/domain/types"
)

// BranchExpectation is the declared state of a well known branch, loaded from the policy
// file. It only feeds the build health report.
type BranchExpectation struct {
	Status      string         `yaml:"status" json:"status"`
	Expectation string         `yaml:"expectation" json:"expectation"`
	Priority    types.Priority `yaml:"priority" json:"priority"`
}

// WorkflowRun is one CI run as reported by the version-control host
type WorkflowRun struct {
	Branch     types.BranchName `json:"branch"`
	Status     string           `json:"status"`
	Conclusion string           `json:"conclusion"`
	CreatedAt  time.Time        `json:"created_at"`
	RunNumber  int              `json:"run_number"`
	HTMLURL    string           `json:"html_url"`
}

// Failing reports whether the run concluded with a failure
func (x *WorkflowRun) Failing() bool {
	return x.Conclusion == "failure"
}

// BranchHealth is the latest run of a tracked branch with its expectation
type BranchHealth struct {
	Branch      types.BranchName  `json:"branch"`
	Expectation BranchExpectation `json:"expectation"`
	Latest      *WorkflowRun      `json:"latest,omitempty"`
}

// HealthReport is the build health summary
type HealthReport struct {
	Tracked         []*BranchHealth `json:"tracked"`
	Others          []*WorkflowRun  `json:"others"`
	FailingCritical int             `json:"failing_critical"`
	FailingHigh     int             `json:"failing_high"`
}

// NewHealthReport keeps the latest run per branch, orders tracked branches by expectation
// priority (highest first, then name) and lists up to maxOthers untracked branches, most
// recent first.
func NewHealthReport(expectations map[types.BranchName]BranchExpectation, runs []*WorkflowRun, maxOthers int) *HealthReport {
	latest := make(map[types.BranchName]*WorkflowRun)
	for _, run := range runs {
		if cur, ok := latest[run.Branch]; !ok || run.CreatedAt.After(cur.CreatedAt) {
			latest[run.Branch] = run
		}
	}

	report := &HealthReport{}
	for name, exp := range expectations {
		report.Tracked = append(report.Tracked, &BranchHealth{
			Branch:      name,
			Expectation: exp,
			Latest:      latest[name],
		})
	}
	sort.Slice(report.Tracked, func(i, j int) bool {
		a, b := report.Tracked[i], report.Tracked[j]
		if a.Expectation.Priority.Rank() != b.Expectation.Priority.Rank() {
			return a.Expectation.Priority.Rank() > b.Expectation.Priority.Rank()
		}
		return a.Branch < b.Branch
	})

	for _, h := range report.Tracked {
		if h.Latest == nil || !h.Latest.Failing() {
			continue
		}
		switch h.Expectation.Priority {
		case types.PriorityCritical:
			report.FailingCritical++
		case types.PriorityHigh:
			report.FailingHigh++
		}
	}

	for name, run := range latest {
		if _, ok := expectations[name]; !ok {
			report.Others = append(report.Others, run)
		}
	}
	sort.Slice(report.Others, func(i, j int) bool {
		return report.Others[i].CreatedAt.After(report.Others[j].CreatedAt)
	})
	if len(report.Others) > maxOthers {
		report.Others = report.Others[:maxOthers]
	}

	return report
}
