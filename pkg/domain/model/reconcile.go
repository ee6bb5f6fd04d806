package model

import (
	"github.com/secmon-lab/issueflow/pkg/domain/types"
)

// OrphanRecord pairs an open issue with a branch its body references but which no longer
// exists on the remote. It lives only for one reconciliation pass.
type OrphanRecord struct {
	Issue         *Issue           `json:"issue"`
	DeletedBranch types.BranchName `json:"deleted_branch"`
}

// CommitClassifier decides whether a head commit looks externally authored
type CommitClassifier interface {
	Name() string
	Classify(commit *CommitMeta) bool
}

// ClassifierFunc adapts a function to CommitClassifier
type ClassifierFunc struct {
	Label string
	Func  func(commit *CommitMeta) bool
}

func (x ClassifierFunc) Name() string                     { return x.Label }
func (x ClassifierFunc) Classify(commit *CommitMeta) bool { return x.Func(commit) }

// ExternalBranch is a candidate branch classified as externally authored
type ExternalBranch struct {
	Branch
	Commit     CommitMeta `json:"commit"`
	MatchedBy  string     `json:"matched_by"`
	HasIssue   bool       `json:"has_issue"`
	IssueMatch *Issue     `json:"issue_match,omitempty"`
}

// IssueProposal is an issue that should be created for an unclaimed branch
type IssueProposal struct {
	Branch   types.BranchName `json:"branch"`
	Commit   CommitMeta       `json:"commit"`
	Title    string           `json:"title"`
	Body     string           `json:"body"`
	Labels   []string         `json:"labels"`
	Priority types.Priority   `json:"priority"`
}
