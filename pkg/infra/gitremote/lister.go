package gitremote

import (
	"context"
	"sort"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/go-git/go-git/v5/storage/memory"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/issueflow/pkg/domain/interfaces"
	"github.com/secmon-lab/issueflow/pkg/domain/model"
	"github.com/secmon-lab/issueflow/pkg/domain/types"
)

// Lister takes the branch snapshot with the git protocol, like `git ls-remote --heads`
type Lister struct {
	url  string
	auth transport.AuthMethod
}

var _ interfaces.BranchLister = (*Lister)(nil)

type ListerOption func(*Lister)

// WithToken authenticates HTTPS access with a GitHub token
func WithToken(token types.GitHubToken) ListerOption {
	return func(x *Lister) {
		if token != "" {
			x.auth = &http.BasicAuth{Username: "x-access-token", Password: string(token)}
		}
	}
}

func NewLister(url string, options ...ListerOption) *Lister {
	x := &Lister{url: url}
	for _, opt := range options {
		opt(x)
	}
	return x
}

// GitHubURL returns the HTTPS clone URL of repo
func GitHubURL(repo model.GitHubRepo) string {
	return "https://github.com/" + repo.String() + ".git"
}

func (x *Lister) ListRemoteBranches(ctx context.Context) ([]*model.Branch, error) {
	remote := git.NewRemote(memory.NewStorage(), &config.RemoteConfig{
		Name: "origin",
		URLs: []string{x.url},
	})

	refs, err := remote.ListContext(ctx, &git.ListOptions{Auth: x.auth})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list remote references", goerr.V("url", x.url))
	}

	var branches []*model.Branch
	for _, ref := range refs {
		if !ref.Name().IsBranch() {
			continue
		}
		branches = append(branches, &model.Branch{
			Name:    types.BranchName(ref.Name().Short()),
			HeadSHA: types.CommitSHA(ref.Hash().String()),
		})
	}
	sort.Slice(branches, func(i, j int) bool { return branches[i].Name < branches[j].Name })

	return branches, nil
}
