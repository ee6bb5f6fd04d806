package gh

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/issueflow/pkg/domain/interfaces"
	"github.com/secmon-lab/issueflow/pkg/domain/model"
	"github.com/secmon-lab/issueflow/pkg/domain/types"
)

const (
	DefaultTimeout    = 30 * time.Second
	DefaultMaxRetries = 3

	perPage = 100
)

// Client is the GitHub binding of the issue tracker, version control and CI ports for one
// repository
type Client struct {
	client        *github.Client
	repo          model.GitHubRepo
	timeout       time.Duration
	maxRetries    uint64
	retryInterval time.Duration
}

var (
	_ interfaces.IssueTracker   = (*Client)(nil)
	_ interfaces.VersionControl = (*Client)(nil)
	_ interfaces.CIStatus       = (*Client)(nil)
)

type Option func(*Client) error

// WithTimeout sets the deadline of a single API request
func WithTimeout(d time.Duration) Option {
	return func(x *Client) error {
		if d <= 0 {
			return goerr.Wrap(types.ErrInvalidOption, "timeout must be positive", goerr.V("timeout", d))
		}
		x.timeout = d
		return nil
	}
}

// WithMaxRetries sets how many times a failed request is retried
func WithMaxRetries(n int) Option {
	return func(x *Client) error {
		if n < 0 {
			return goerr.Wrap(types.ErrInvalidOption, "max retries must not be negative", goerr.V("retries", n))
		}
		x.maxRetries = uint64(n)
		return nil
	}
}

// WithRetryInterval sets the first wait of the exponential backoff
func WithRetryInterval(d time.Duration) Option {
	return func(x *Client) error {
		x.retryInterval = d
		return nil
	}
}

// WithBaseURL points the client to GitHub Enterprise or a test server
func WithBaseURL(baseURL string) Option {
	return func(x *Client) error {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return goerr.Wrap(err, "invalid GitHub base URL", goerr.V("url", baseURL))
		}
		x.client.BaseURL = u
		return nil
	}
}

// New creates a client. httpClient carries the authentication, see NewTokenHTTPClient and
// NewAppHTTPClient.
func New(httpClient *http.Client, repo model.GitHubRepo, options ...Option) (*Client, error) {
	if err := repo.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid repository", goerr.V("repo", repo))
	}

	x := &Client{
		client:        github.NewClient(httpClient),
		repo:          repo,
		timeout:       DefaultTimeout,
		maxRetries:    DefaultMaxRetries,
		retryInterval: 500 * time.Millisecond,
	}
	for _, opt := range options {
		if err := opt(x); err != nil {
			return nil, err
		}
	}

	return x, nil
}

func (x *Client) owner() string { return x.repo.Owner }
func (x *Client) name() string  { return x.repo.RepoName }
