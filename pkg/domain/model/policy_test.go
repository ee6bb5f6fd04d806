package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/issueflow/pkg/domain/model"
	"github.com/secmon-lab/issueflow/pkg/domain/types"
)

func TestPolicyValidate(t *testing.T) {
	gt.NoError(t, model.DefaultPolicy().Validate())

	testCases := map[string]func(p *model.Policy){
		"zero stale days":    func(p *model.Policy) { p.StaleDays = 0 },
		"empty context file": func(p *model.Policy) { p.ContextFile = "" },
		"unknown priority": func(p *model.Policy) {
			p.Branches = map[types.BranchName]model.BranchExpectation{"main": {Priority: "blocker"}}
		},
	}

	for name, mutate := range testCases {
		t.Run(name, func(t *testing.T) {
			p := model.DefaultPolicy()
			mutate(p)
			err := p.Validate()
			gt.True(t, errors.Is(err, types.ErrValidationFailed))
		})
	}
}

func TestGitHubRepoValidate(t *testing.T) {
	gt.NoError(t, (&model.GitHubRepo{Owner: "a", RepoName: "b"}).Validate())
	gt.Error(t, (&model.GitHubRepo{Owner: "", RepoName: "b"}).Validate())
	gt.Error(t, (&model.GitHubRepo{Owner: "a/b", RepoName: "c"}).Validate())
	gt.V(t, model.GitHubRepo{Owner: "a", RepoName: "b"}.String()).Equal("a/b")
}
