package secret

import (
	"context"
	"fmt"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/issueflow/pkg/domain/interfaces"
	"github.com/secmon-lab/issueflow/pkg/domain/types"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Client reads secrets from Google Cloud Secret Manager
type Client struct {
	client *secretmanager.Client
}

var _ interfaces.SecretStore = (*Client)(nil)

func New(ctx context.Context, options ...option.ClientOption) (*Client, error) {
	client, err := secretmanager.NewClient(ctx, options...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create secret manager client")
	}
	return &Client{client: client}, nil
}

// VersionName builds the resource name of a secret version. A secret that is already a
// full resource name is returned as is.
func VersionName(projectID types.GoogleProjectID, secret, version string) string {
	if strings.HasPrefix(secret, "projects/") {
		return secret
	}
	if version == "" {
		version = "latest"
	}
	return fmt.Sprintf("projects/%s/secrets/%s/versions/%s", projectID, secret, version)
}

// GetSecret returns the payload of the secret version name
func (x *Client) GetSecret(ctx context.Context, name string) ([]byte, error) {
	resp, err := x.client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: name,
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(fmt.Errorf("%w: %w", types.ErrNotFound, err), "secret not found", goerr.V("name", name))
		}
		return nil, goerr.Wrap(err, "failed to access secret version", goerr.V("name", name))
	}

	return resp.GetPayload().GetData(), nil
}

func (x *Client) Close() error {
	return x.client.Close()
}
