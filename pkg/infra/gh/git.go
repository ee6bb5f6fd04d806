package gh

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/issueflow/pkg/domain/model"
	"github.com/secmon-lab/issueflow/pkg/domain/types"
)

func (x *Client) ResolveRef(ctx context.Context, branch types.BranchName) (types.CommitSHA, error) {
	var ref *github.Reference
	err := x.do(ctx, "Git.GetRef", func(ctx context.Context) (*github.Response, error) {
		var resp *github.Response
		var err error
		ref, resp, err = x.client.Git.GetRef(ctx, x.owner(), x.name(), "heads/"+branch.String())
		return resp, err
	})
	if err != nil {
		if statusCode(err) == http.StatusNotFound {
			return "", goerr.Wrap(fmt.Errorf("%w: %w", types.ErrRefNotFound, err), "branch not found", goerr.V("branch", branch))
		}
		return "", goerr.Wrap(err, "failed to resolve branch", goerr.V("branch", branch))
	}

	return types.CommitSHA(ref.GetObject().GetSHA()), nil
}

func (x *Client) CreateBranch(ctx context.Context, name types.BranchName, from types.CommitSHA) error {
	ref := &github.Reference{
		Ref:    github.String("refs/heads/" + name.String()),
		Object: &github.GitObject{SHA: github.String(string(from))},
	}

	err := x.do(ctx, "Git.CreateRef", func(ctx context.Context) (*github.Response, error) {
		_, resp, err := x.client.Git.CreateRef(ctx, x.owner(), x.name(), ref)
		return resp, err
	})
	if err != nil {
		vals := []goerr.Option{goerr.V("branch", name), goerr.V("from", from)}
		if statusCode(err) == http.StatusUnprocessableEntity {
			if strings.Contains(errorMessage(err), "already exists") {
				return goerr.Wrap(fmt.Errorf("%w: %w", types.ErrBranchExists, err), "branch already exists", vals...)
			}
			return goerr.Wrap(fmt.Errorf("%w: %w", types.ErrRefNotFound, err), "base commit not found", vals...)
		}
		return goerr.Wrap(err, "failed to create branch", vals...)
	}

	return nil
}

// ListRemoteBranches returns every branch of the repository with its head commit
func (x *Client) ListRemoteBranches(ctx context.Context) ([]*model.Branch, error) {
	opt := &github.BranchListOptions{ListOptions: github.ListOptions{PerPage: perPage}}

	var branches []*model.Branch
	for {
		var page []*github.Branch
		var resp *github.Response
		err := x.do(ctx, "Repositories.ListBranches", func(ctx context.Context) (*github.Response, error) {
			var err error
			page, resp, err = x.client.Repositories.ListBranches(ctx, x.owner(), x.name(), opt)
			return resp, err
		})
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list branches", goerr.V("repo", x.repo))
		}

		for _, b := range page {
			branches = append(branches, &model.Branch{
				Name:    types.BranchName(b.GetName()),
				HeadSHA: types.CommitSHA(b.GetCommit().GetSHA()),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opt.Page = resp.NextPage
	}

	return branches, nil
}

// GetCommitMeta returns the head commit of branch
func (x *Client) GetCommitMeta(ctx context.Context, branch types.BranchName) (*model.CommitMeta, error) {
	var commit *github.RepositoryCommit
	err := x.do(ctx, "Repositories.GetCommit", func(ctx context.Context) (*github.Response, error) {
		var resp *github.Response
		var err error
		commit, resp, err = x.client.Repositories.GetCommit(ctx, x.owner(), x.name(), branch.String(), nil)
		return resp, err
	})
	if err != nil {
		if statusCode(err) == http.StatusNotFound || statusCode(err) == http.StatusUnprocessableEntity {
			return nil, goerr.Wrap(fmt.Errorf("%w: %w", types.ErrRefNotFound, err), "branch not found", goerr.V("branch", branch))
		}
		return nil, goerr.Wrap(err, "failed to get commit", goerr.V("branch", branch))
	}

	author := commit.GetCommit().GetAuthor()
	return &model.CommitMeta{
		SHA:         types.CommitSHA(commit.GetSHA()),
		Author:      author.GetName(),
		AuthorLogin: commit.GetAuthor().GetLogin(),
		Message:     commit.GetCommit().GetMessage(),
		Timestamp:   author.GetDate().UTC(),
	}, nil
}
