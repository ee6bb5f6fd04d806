package gh

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/issueflow/pkg/domain/model"
	"github.com/secmon-lab/issueflow/pkg/domain/types"
)

// WriteRepoFile commits file to its branch. A missing or stale SHA for an existing file
// results in types.ErrConflict.
func (x *Client) WriteRepoFile(ctx context.Context, file *model.RepoFile) error {
	opt := &github.RepositoryContentFileOptions{
		Message: github.String(file.Message),
		Content: file.Content,
		Branch:  github.String(file.Branch.String()),
	}
	if file.SHA != "" {
		opt.SHA = github.String(file.SHA)
	}

	err := x.do(ctx, "Repositories.UpdateFile", func(ctx context.Context) (*github.Response, error) {
		var resp *github.Response
		var err error
		if file.SHA == "" {
			_, resp, err = x.client.Repositories.CreateFile(ctx, x.owner(), x.name(), file.Path, opt)
		} else {
			_, resp, err = x.client.Repositories.UpdateFile(ctx, x.owner(), x.name(), file.Path, opt)
		}
		return resp, err
	})
	if err != nil {
		vals := []goerr.Option{goerr.V("path", file.Path), goerr.V("branch", file.Branch)}
		switch statusCode(err) {
		case http.StatusConflict, http.StatusUnprocessableEntity:
			return goerr.Wrap(fmt.Errorf("%w: %w", types.ErrConflict, err), "file conflict", vals...)
		case http.StatusNotFound:
			return goerr.Wrap(fmt.Errorf("%w: %w", types.ErrRefNotFound, err), "branch not found", vals...)
		}
		return goerr.Wrap(err, "failed to write file", vals...)
	}

	return nil
}

func (x *Client) GetRepoFileSHA(ctx context.Context, path string, branch types.BranchName) (string, error) {
	var content *github.RepositoryContent
	err := x.do(ctx, "Repositories.GetContents", func(ctx context.Context) (*github.Response, error) {
		var resp *github.Response
		var err error
		opt := &github.RepositoryContentGetOptions{Ref: branch.String()}
		content, _, resp, err = x.client.Repositories.GetContents(ctx, x.owner(), x.name(), path, opt)
		return resp, err
	})
	if err != nil {
		if statusCode(err) == http.StatusNotFound {
			return "", goerr.Wrap(fmt.Errorf("%w: %w", types.ErrNotFound, err), "file not found",
				goerr.V("path", path),
				goerr.V("branch", branch),
			)
		}
		return "", goerr.Wrap(err, "failed to get file", goerr.V("path", path), goerr.V("branch", branch))
	}
	if content == nil {
		return "", goerr.Wrap(types.ErrInvalidGitHubData, "path is a directory", goerr.V("path", path))
	}

	return content.GetSHA(), nil
}
