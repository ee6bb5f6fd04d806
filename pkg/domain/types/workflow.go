package types

// Priority is the tier assigned to an issue by the prioritizer
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// Priorities lists all tiers from the highest to the lowest
var Priorities = []Priority{PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow}

// Rank returns the total order of the tier: critical(4) > high(3) > medium(2) > low(1).
// Unknown values rank 0.
func (x Priority) Rank() int {
	switch x {
	case PriorityCritical:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

func (x Priority) String() string { return string(x) }

// WorkflowStep is one stage of the linear development lifecycle. Each step except
// StepReady is recorded on the issue as a label of the same name.
type WorkflowStep string

const (
	StepReady               WorkflowStep = "ready"
	StepInProgress          WorkflowStep = "in-progress"
	StepDevelopmentStarted  WorkflowStep = "development-started"
	StepDevelopmentPartial  WorkflowStep = "development-partial"
	StepDevelopmentComplete WorkflowStep = "development-complete"
	StepTestsAdded          WorkflowStep = "tests-added"
	StepBuildPassing        WorkflowStep = "build-passing"
	StepPRToTesting         WorkflowStep = "pr-to-testing"
	StepIntegrationTested   WorkflowStep = "integration-tested"
	StepPRToMain            WorkflowStep = "pr-to-main"
	StepMerged              WorkflowStep = "merged"
)

// WorkflowSteps is the fixed order of the lifecycle
var WorkflowSteps = []WorkflowStep{
	StepReady,
	StepInProgress,
	StepDevelopmentStarted,
	StepDevelopmentPartial,
	StepDevelopmentComplete,
	StepTestsAdded,
	StepBuildPassing,
	StepPRToTesting,
	StepIntegrationTested,
	StepPRToMain,
	StepMerged,
}

// Index returns position of the step in WorkflowSteps, or -1 if unknown
func (x WorkflowStep) Index() int {
	for i, s := range WorkflowSteps {
		if s == x {
			return i
		}
	}
	return -1
}

func (x WorkflowStep) String() string { return string(x) }

// Well known labels
const (
	LabelInProgress           = "in-progress"
	LabelFeatureBranchCreated = "feature-branch-created"
	LabelReadyForDevelopment  = "ready-for-development"
	LabelGoodFirstIssue       = "good first issue"
	LabelNeedsReview          = "needs-review"
	LabelDeletedBranch        = "deleted-branch"
	LabelStale                = "stale"
	LabelWaitingForResponse   = "waiting-for-response"
	LabelFeature              = "feature"
	LabelEnhancement          = "enhancement"
	LabelEpic                 = "epic"
)
