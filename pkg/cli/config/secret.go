package config

import (
	"context"
	"log/slog"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/secmon-lab/issueflow/pkg/domain/types"
	"github.com/secmon-lab/issueflow/pkg/infra/secret"
	"github.com/urfave/cli/v3"
)

// SecretManager points to the GitHub credentials kept in Google Cloud Secret Manager
type SecretManager struct {
	projectID     types.GoogleProjectID
	tokenSecret   string
	webhookSecret string
	version       string
}

func (x *SecretManager) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "secret-project-id",
			Usage:       "Google Cloud project ID of Secret Manager",
			Category:    "Secret Manager",
			Destination: (*string)(&x.projectID),
			Sources:     cli.EnvVars("ISSUEFLOW_SECRET_PROJECT_ID"),
		},
		&cli.StringFlag{
			Name:        "secret-github-token",
			Usage:       "Secret name (or full version resource name) of the GitHub token",
			Category:    "Secret Manager",
			Destination: &x.tokenSecret,
			Sources:     cli.EnvVars("ISSUEFLOW_SECRET_GITHUB_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "secret-github-webhook",
			Usage:       "Secret name (or full version resource name) of the GitHub webhook secret",
			Category:    "Secret Manager",
			Destination: &x.webhookSecret,
			Sources:     cli.EnvVars("ISSUEFLOW_SECRET_GITHUB_WEBHOOK"),
		},
		&cli.StringFlag{
			Name:        "secret-version",
			Usage:       "Secret version",
			Category:    "Secret Manager",
			Value:       "latest",
			Destination: &x.version,
			Sources:     cli.EnvVars("ISSUEFLOW_SECRET_VERSION"),
		},
	}
}

func (x *SecretManager) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("projectID", x.projectID.String()),
		slog.String("tokenSecret", x.tokenSecret),
		slog.String("webhookSecret", x.webhookSecret),
		slog.String("version", x.version),
	)
}

// Enabled reports whether any secret is configured
func (x *SecretManager) Enabled() bool {
	return x.tokenSecret != "" || x.webhookSecret != ""
}

// Validate checks that short secret names come with a project ID
func (x *SecretManager) Validate() error {
	for _, name := range []string{x.tokenSecret, x.webhookSecret} {
		if name != "" && !strings.HasPrefix(name, "projects/") && x.projectID == "" {
			return goerr.Wrap(types.ErrInvalidOption, "secret project ID is required for a short secret name", goerr.V("secret", name))
		}
	}
	return nil
}

func (x *SecretManager) NewClient(ctx context.Context) (*secret.Client, error) {
	return secret.New(ctx)
}

// TokenName returns the version resource name of the token secret, or empty if unset
func (x *SecretManager) TokenName() string {
	if x.tokenSecret == "" {
		return ""
	}
	return secret.VersionName(x.projectID, x.tokenSecret, x.version)
}

// WebhookSecretName returns the version resource name of the webhook secret, or empty if
// unset
func (x *SecretManager) WebhookSecretName() string {
	if x.webhookSecret == "" {
		return ""
	}
	return secret.VersionName(x.projectID, x.webhookSecret, x.version)
}
