package config

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/issueflow/pkg/domain/interfaces"
	"github.com/secmon-lab/issueflow/pkg/domain/model"
	"github.com/secmon-lab/issueflow/pkg/domain/types"
	"github.com/secmon-lab/issueflow/pkg/infra/gh"
	"github.com/secmon-lab/issueflow/pkg/infra/gitremote"
	"github.com/urfave/cli/v3"
)

const (
	BranchSourceAPI = "api"
	BranchSourceGit = "git"
)

type GitHub struct {
	owner         string
	repo          string
	token         types.GitHubToken `masq:"secret"`
	appID         types.GitHubAppID
	installID     types.GitHubAppInstallID
	privateKey    types.GitHubAppPrivateKey `masq:"secret"`
	webhookSecret types.GitHubWebhookSecret `masq:"secret"`
	trunk         string
	baseURL       string
	branchSource  string
	timeout       time.Duration
	maxRetries    int64
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-owner",
			Usage:       "Repository owner (detected from the origin remote if omitted)",
			Category:    "GitHub",
			Destination: &x.owner,
			Sources:     cli.EnvVars("ISSUEFLOW_GITHUB_OWNER"),
		},
		&cli.StringFlag{
			Name:        "github-repo",
			Usage:       "Repository name (detected from the origin remote if omitted)",
			Category:    "GitHub",
			Destination: &x.repo,
			Sources:     cli.EnvVars("ISSUEFLOW_GITHUB_REPO"),
		},
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub token",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("ISSUEFLOW_GITHUB_TOKEN", "GITHUB_TOKEN"),
		},
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID, used instead of a token",
			Category:    "GitHub",
			Destination: (*int64)(&x.appID),
			Sources:     cli.EnvVars("ISSUEFLOW_GITHUB_APP_ID"),
		},
		&cli.Int64Flag{
			Name:        "github-app-installation-id",
			Usage:       "GitHub App installation ID (looked up by owner if omitted)",
			Category:    "GitHub",
			Destination: (*int64)(&x.installID),
			Sources:     cli.EnvVars("ISSUEFLOW_GITHUB_APP_INSTALLATION_ID"),
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App private key (PEM)",
			Category:    "GitHub",
			Destination: (*string)(&x.privateKey),
			Sources:     cli.EnvVars("ISSUEFLOW_GITHUB_APP_PRIVATE_KEY"),
		},
		&cli.StringFlag{
			Name:        "github-webhook-secret",
			Usage:       "GitHub webhook secret",
			Category:    "GitHub",
			Destination: (*string)(&x.webhookSecret),
			Sources:     cli.EnvVars("ISSUEFLOW_GITHUB_WEBHOOK_SECRET"),
		},
		&cli.StringFlag{
			Name:        "trunk-branch",
			Usage:       "Branch new feature branches are created from",
			Category:    "GitHub",
			Value:       "main",
			Destination: &x.trunk,
			Sources:     cli.EnvVars("ISSUEFLOW_TRUNK_BRANCH"),
		},
		&cli.StringFlag{
			Name:        "github-base-url",
			Usage:       "GitHub API base URL (for GitHub Enterprise)",
			Category:    "GitHub",
			Destination: &x.baseURL,
			Sources:     cli.EnvVars("ISSUEFLOW_GITHUB_BASE_URL"),
		},
		&cli.StringFlag{
			Name:        "branch-source",
			Usage:       "Source of the remote branch snapshot [api|git]",
			Category:    "GitHub",
			Value:       BranchSourceAPI,
			Destination: &x.branchSource,
			Sources:     cli.EnvVars("ISSUEFLOW_BRANCH_SOURCE"),
		},
		&cli.DurationFlag{
			Name:        "github-timeout",
			Usage:       "Timeout of one GitHub API call",
			Category:    "GitHub",
			Value:       gh.DefaultTimeout,
			Destination: &x.timeout,
			Sources:     cli.EnvVars("ISSUEFLOW_GITHUB_TIMEOUT"),
		},
		&cli.Int64Flag{
			Name:        "github-max-retries",
			Usage:       "Max retries of a transiently failed GitHub API call",
			Category:    "GitHub",
			Value:       gh.DefaultMaxRetries,
			Destination: &x.maxRetries,
			Sources:     cli.EnvVars("ISSUEFLOW_GITHUB_MAX_RETRIES"),
		},
	}
}

func (x *GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("owner", x.owner),
		slog.String("repo", x.repo),
		slog.Int("token.len", len(x.token)),
		slog.Int64("appID", int64(x.appID)),
		slog.Int64("installID", int64(x.installID)),
		slog.Int("privateKey.len", len(x.privateKey)),
		slog.Int("webhookSecret.len", len(x.webhookSecret)),
		slog.String("trunk", x.trunk),
		slog.String("baseURL", x.baseURL),
		slog.String("branchSource", x.branchSource),
		slog.Duration("timeout", x.timeout),
		slog.Int64("maxRetries", x.maxRetries),
	)
}

// Repo returns the target repository. Owner and name given by flags win over the ones
// detected from the origin remote of the git repository at dir.
func (x *GitHub) Repo(dir string) (model.GitHubRepo, error) {
	repo := model.GitHubRepo{Owner: x.owner, RepoName: x.repo}

	if repo.Owner == "" || repo.RepoName == "" {
		local, err := gitremote.Open(dir)
		if err != nil {
			return model.GitHubRepo{}, goerr.Wrap(err, "repository is not given and can not be detected", goerr.V("dir", dir))
		}
		detected, err := local.GitHubRepo()
		if err != nil {
			return model.GitHubRepo{}, err
		}
		if repo.Owner == "" {
			repo.Owner = detected.Owner
		}
		if repo.RepoName == "" {
			repo.RepoName = detected.RepoName
		}
	}

	if err := repo.Validate(); err != nil {
		return model.GitHubRepo{}, err
	}
	return repo, nil
}

// LoadSecrets fills the token and the webhook secret from the secret store when they are
// not given directly
func (x *GitHub) LoadSecrets(ctx context.Context, store interfaces.SecretStore, sm *SecretManager) error {
	if store == nil {
		return nil
	}

	if name := sm.TokenName(); x.token == "" && name != "" {
		raw, err := store.GetSecret(ctx, name)
		if err != nil {
			return goerr.Wrap(err, "failed to retrieve GitHub token")
		}
		x.token = types.GitHubToken(strings.TrimSpace(string(raw)))
	}

	if name := sm.WebhookSecretName(); x.webhookSecret == "" && name != "" {
		raw, err := store.GetSecret(ctx, name)
		if err != nil {
			return goerr.Wrap(err, "failed to retrieve GitHub webhook secret")
		}
		x.webhookSecret = types.GitHubWebhookSecret(strings.TrimSpace(string(raw)))
	}

	return nil
}

// HTTPClient returns an authenticated client. GitHub App credentials take precedence over
// the token.
func (x *GitHub) HTTPClient(ctx context.Context, owner string) (*http.Client, error) {
	if x.appID != 0 {
		if x.privateKey == "" {
			return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub App private key is required with GitHub App ID")
		}

		installID := x.installID
		if installID == 0 {
			found, err := gh.FindInstallationID(ctx, x.appID, x.privateKey, owner)
			if err != nil {
				return nil, err
			}
			installID = found
		}
		return gh.NewAppHTTPClient(x.appID, installID, x.privateKey)
	}

	if x.token == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub token or GitHub App is required")
	}
	return gh.NewTokenHTTPClient(ctx, x.token)
}

func (x *GitHub) NewClient(ctx context.Context, repo model.GitHubRepo) (*gh.Client, error) {
	httpClient, err := x.HTTPClient(ctx, repo.Owner)
	if err != nil {
		return nil, err
	}

	options := []gh.Option{
		gh.WithTimeout(x.timeout),
		gh.WithMaxRetries(int(x.maxRetries)),
	}
	if x.baseURL != "" {
		options = append(options, gh.WithBaseURL(x.baseURL))
	}

	return gh.New(httpClient, repo, options...)
}

// BranchLister returns the branch snapshot source selected by --branch-source. nil means
// the API client lists the branches.
func (x *GitHub) BranchLister(repo model.GitHubRepo) (interfaces.BranchLister, error) {
	switch x.branchSource {
	case "", BranchSourceAPI:
		return nil, nil
	case BranchSourceGit:
		return gitremote.NewLister(gitremote.GitHubURL(repo), gitremote.WithToken(x.token)), nil
	default:
		return nil, goerr.Wrap(types.ErrInvalidOption, "unknown branch source", goerr.V("source", x.branchSource))
	}
}

func (x *GitHub) TrunkBranch() types.BranchName {
	return types.BranchName(x.trunk)
}

func (x *GitHub) WebhookSecret() types.GitHubWebhookSecret {
	return x.webhookSecret
}
