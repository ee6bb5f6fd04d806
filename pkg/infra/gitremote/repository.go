package gitremote

import (
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/issueflow/pkg/domain/model"
	"github.com/secmon-lab/issueflow/pkg/domain/types"
)

// Repository is the local clone the command runs in
type Repository struct {
	repo *git.Repository
	root string
}

// Open finds the repository containing path, walking up parent directories
func Open(path string) (*Repository, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open git repository", goerr.V("path", path))
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get worktree", goerr.V("path", path))
	}

	return &Repository{repo: repo, root: wt.Filesystem.Root()}, nil
}

// Root returns the top directory of the worktree
func (x *Repository) Root() string {
	return x.root
}

// CurrentBranch returns the checked out branch. A detached HEAD is an error.
func (x *Repository) CurrentBranch() (types.BranchName, error) {
	head, err := x.repo.Head()
	if err != nil {
		return "", goerr.Wrap(err, "failed to get HEAD")
	}
	if !head.Name().IsBranch() {
		return "", goerr.Wrap(types.ErrRefNotFound, "HEAD is not a branch", goerr.V("head", head.Name().String()))
	}
	return types.BranchName(head.Name().Short()), nil
}

// OriginURL returns the first URL of the origin remote
func (x *Repository) OriginURL() (string, error) {
	remote, err := x.repo.Remote("origin")
	if err != nil {
		return "", goerr.Wrap(err, "failed to get remote origin")
	}
	if len(remote.Config().URLs) == 0 {
		return "", goerr.Wrap(types.ErrInvalidOption, "no remote URL found")
	}
	return remote.Config().URLs[0], nil
}

// GitHubRepo detects owner and name of the repository from the origin remote
func (x *Repository) GitHubRepo() (model.GitHubRepo, error) {
	url, err := x.OriginURL()
	if err != nil {
		return model.GitHubRepo{}, err
	}
	return ParseGitHubRemote(url)
}

// ParseGitHubRemote extracts owner and repository name from an SSH or HTTPS remote URL of
// github.com
func ParseGitHubRemote(url string) (model.GitHubRepo, error) {
	url = strings.TrimSpace(url)

	var path string
	switch {
	case strings.HasPrefix(url, "git@github.com:"):
		path = strings.TrimPrefix(url, "git@github.com:")
	case strings.HasPrefix(url, "ssh://git@github.com/"):
		path = strings.TrimPrefix(url, "ssh://git@github.com/")
	case strings.Contains(url, "github.com/"):
		path = url[strings.Index(url, "github.com/")+len("github.com/"):]
	default:
		return model.GitHubRepo{}, goerr.Wrap(types.ErrInvalidOption, "not a GitHub remote URL", goerr.V("url", url))
	}

	parts := strings.Split(strings.TrimSuffix(strings.TrimSuffix(path, "/"), ".git"), "/")
	repo := model.GitHubRepo{}
	if len(parts) == 2 {
		repo.Owner, repo.RepoName = parts[0], parts[1]
	}
	if err := repo.Validate(); err != nil {
		return model.GitHubRepo{}, goerr.Wrap(err, "failed to parse GitHub owner/repo from git remote URL", goerr.V("url", url))
	}
	return repo, nil
}
