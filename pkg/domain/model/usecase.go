package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/issueflow/pkg/domain/types"
)

// GitHubRepo identifies the repository every operation runs against
type GitHubRepo struct {
	Owner    string `json:"owner"`
	RepoName string `json:"repo_name"`
}

func (x *GitHubRepo) Validate() error {
	if x.Owner == "" {
		return goerr.Wrap(types.ErrValidationFailed, "owner is empty")
	}
	if x.RepoName == "" {
		return goerr.Wrap(types.ErrValidationFailed, "repo name is empty")
	}
	if strings.Contains(x.Owner, "/") || strings.Contains(x.RepoName, "/") {
		return goerr.Wrap(types.ErrValidationFailed, "owner or repo name contains '/'",
			goerr.V("owner", x.Owner),
			goerr.V("repo", x.RepoName),
		)
	}
	return nil
}

func (x GitHubRepo) String() string {
	return x.Owner + "/" + x.RepoName
}

// AutoStartResult summarizes one batch run of the orchestrator
type AutoStartResult struct {
	Selected []types.IssueNumber          `json:"selected"`
	Started  map[types.IssueNumber]string `json:"started"`
	Skipped  []types.IssueNumber          `json:"skipped"`
	Failed   []types.IssueNumber          `json:"failed"`
}

// IntegrationResult summarizes one unclaimed-branch integration run
type IntegrationResult struct {
	Proposals []*IssueProposal                       `json:"proposals"`
	Created   map[types.BranchName]types.IssueNumber `json:"created"`
	Failed    []types.BranchName                     `json:"failed"`
}
