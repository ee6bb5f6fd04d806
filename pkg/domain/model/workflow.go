package model

import (
	"time"

	"github.com/secmon-lab/issueflow/pkg/domain/types"
)

// WorkflowState is the canonical current step of one issue. Labels on the issue stay the
// source for decisions; this record only tracks what the engine applied last.
type WorkflowState struct {
	Repo        string             `json:"repo" firestore:"repo"`
	IssueNumber types.IssueNumber  `json:"issue_number" firestore:"issue_number"`
	Step        types.WorkflowStep `json:"step" firestore:"step"`
	Branch      types.BranchName   `json:"branch,omitempty" firestore:"branch"`
	UpdatedAt   time.Time          `json:"updated_at" firestore:"updated_at"`
}
