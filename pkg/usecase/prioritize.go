package usecase

import (
	"math"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/secmon-lab/issueflow/pkg/domain/model"
	"github.com/secmon-lab/issueflow/pkg/domain/types"
)

// DefaultStaleDays is the inactivity period after which an issue needs attention
const DefaultStaleDays = 7

var baseHours = map[types.Priority]float64{
	types.PriorityCritical: 2,
	types.PriorityHigh:     6,
	types.PriorityMedium:   4,
	types.PriorityLow:      8,
}

// Prioritize annotates issues with priority, estimate, attention flag and current step, and
// sorts them by priority, highest first. Issues of the same priority keep their input
// order. It does no I/O.
func Prioritize(now time.Time, issues []*model.Issue) []*model.AnnotatedIssue {
	return prioritize(now, DefaultStaleDays, issues)
}

func prioritize(now time.Time, staleDays int, issues []*model.Issue) []*model.AnnotatedIssue {
	result := make([]*model.AnnotatedIssue, 0, len(issues))
	for _, issue := range issues {
		result = append(result, annotate(now, staleDays, issue))
	}

	slices.SortStableFunc(result, func(a, b *model.AnnotatedIssue) int {
		return b.Priority.Rank() - a.Priority.Rank()
	})

	return result
}

func annotate(now time.Time, staleDays int, issue *model.Issue) *model.AnnotatedIssue {
	priority := classifyPriority(issue)
	return &model.AnnotatedIssue{
		Issue:          issue,
		Priority:       priority,
		EstimatedHours: estimateHours(issue, priority),
		NeedsAttention: needsAttention(now, staleDays, issue),
		CurrentStep:    model.CurrentStep(issue.Labels),
	}
}

func classifyPriority(issue *model.Issue) types.Priority {
	switch {
	case issue.HasAnyLabel("critical", "bug", "security"):
		return types.PriorityCritical
	case issue.HasAnyLabel("high", "urgent"),
		strings.Contains(strings.ToLower(issue.Body), "urgent"):
		return types.PriorityHigh
	case issue.HasAnyLabel("low", "nice-to-have"):
		return types.PriorityLow
	default:
		return types.PriorityMedium
	}
}

func estimateHours(issue *model.Issue, priority types.Priority) int {
	hours := baseHours[priority]
	if issue.HasAnyLabel(types.LabelEnhancement, types.LabelFeature) {
		hours *= 1.5
	}
	if utf8.RuneCountInString(issue.Body) > 1000 {
		hours *= 1.2
	}
	return int(math.Round(hours))
}

func needsAttention(now time.Time, staleDays int, issue *model.Issue) bool {
	switch {
	case now.Sub(issue.UpdatedAt) > time.Duration(staleDays)*24*time.Hour:
		return true
	case issue.HasLabel(types.LabelStale):
		return true
	case issue.Assignee == "" && issue.HasLabel(types.LabelReadyForDevelopment):
		return true
	case issue.HasLabel(types.LabelWaitingForResponse):
		return true
	}
	return false
}
