package gh

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/issueflow/pkg/domain/types"
	"github.com/secmon-lab/issueflow/pkg/utils/logging"
	"golang.org/x/oauth2"
)

// NewTokenHTTPClient returns an HTTP client authenticated with a personal access token
func NewTokenHTTPClient(ctx context.Context, token types.GitHubToken) (*http.Client, error) {
	if token == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub token is empty")
	}
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(token)})
	return oauth2.NewClient(ctx, src), nil
}

// NewAppHTTPClient returns an HTTP client authenticated as an installation of a GitHub App
func NewAppHTTPClient(appID types.GitHubAppID, installID types.GitHubAppInstallID, pem types.GitHubAppPrivateKey) (*http.Client, error) {
	if appID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "appID is empty")
	}
	if installID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "installID is empty")
	}
	if pem == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "pem is empty")
	}

	itr, err := ghinstallation.New(http.DefaultTransport, int64(appID), int64(installID), []byte(pem))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create GitHub App installation transport",
			goerr.V("appID", appID),
			goerr.V("installID", installID),
		)
	}
	return &http.Client{Transport: itr}, nil
}

// FindInstallationID looks up the installation of the App for owner, trying an organization
// first and then a user account.
func FindInstallationID(ctx context.Context, appID types.GitHubAppID, pem types.GitHubAppPrivateKey, owner string) (types.GitHubAppInstallID, error) {
	itr, err := ghinstallation.NewAppsTransport(http.DefaultTransport, int64(appID), []byte(pem))
	if err != nil {
		return 0, goerr.Wrap(err, "failed to create app transport")
	}
	client := github.NewClient(&http.Client{Transport: itr})

	installation, resp, orgErr := client.Apps.FindOrganizationInstallation(ctx, owner)
	if orgErr == nil && installation != nil {
		logging.From(ctx).Info("Found organization installation",
			slog.String("owner", owner),
			slog.Int64("installID", installation.GetID()),
		)
		return types.GitHubAppInstallID(installation.GetID()), nil
	}

	if resp != nil && resp.StatusCode == http.StatusNotFound {
		installation, _, userErr := client.Apps.FindUserInstallation(ctx, owner)
		if userErr != nil {
			return 0, goerr.Wrap(userErr, "failed to find user installation for owner",
				goerr.V("owner", owner),
			)
		}
		if installation != nil {
			logging.From(ctx).Info("Found user installation",
				slog.String("owner", owner),
				slog.Int64("installID", installation.GetID()),
			)
			return types.GitHubAppInstallID(installation.GetID()), nil
		}
	}

	if orgErr != nil {
		return 0, goerr.Wrap(orgErr, "failed to find organization installation for owner",
			goerr.V("owner", owner),
		)
	}

	return 0, goerr.Wrap(types.ErrInvalidGitHubData, "installation not found for owner",
		goerr.V("owner", owner),
	)
}
