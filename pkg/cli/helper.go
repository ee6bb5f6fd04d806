package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/secmon-lab/issueflow/pkg/cli/config"
	"github.com/secmon-lab/issueflow/pkg/domain/model"
	"github.com/secmon-lab/issueflow/pkg/domain/types"
	"github.com/secmon-lab/issueflow/pkg/infra"
	"github.com/secmon-lab/issueflow/pkg/usecase"
	"github.com/secmon-lab/issueflow/pkg/utils/logging"
	"github.com/secmon-lab/issueflow/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

// runtime is the configuration every command talking to GitHub shares
type runtime struct {
	github    config.GitHub
	secrets   config.SecretManager
	policy    config.Policy
	firestore config.Firestore
	sentry    config.Sentry

	repo  model.GitHubRepo
	flush func()
}

func (x *runtime) Flags() []cli.Flag {
	return slice.Flatten(
		x.github.Flags(),
		x.secrets.Flags(),
		x.policy.Flags(),
		x.firestore.Flags(),
		x.sentry.Flags(),
	)
}

func (x *runtime) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("GitHub", &x.github),
		slog.Any("SecretManager", &x.secrets),
		slog.Any("Policy", &x.policy),
		slog.Any("Firestore", &x.firestore),
		slog.Any("Sentry", &x.sentry),
	)
}

// newUseCase resolves the repository and credentials, then wires the clients. Any failure
// here is a setup failure and no remote write has happened yet.
func (x *runtime) newUseCase(ctx context.Context, options ...infra.Option) (*usecase.UseCase, error) {
	logging.From(ctx).Debug("setting up", "config", x)

	repo, err := x.github.Repo(".")
	if err != nil {
		return nil, err
	}
	x.repo = repo

	if err := x.secrets.Validate(); err != nil {
		return nil, err
	}
	if x.secrets.Enabled() {
		store, err := x.secrets.NewClient(ctx)
		if err != nil {
			return nil, err
		}
		defer safe.Close(store)

		if err := x.github.LoadSecrets(ctx, store, &x.secrets); err != nil {
			return nil, err
		}
	}

	policy, err := x.policy.Load()
	if err != nil {
		return nil, err
	}

	flush, err := x.sentry.Configure(ctx)
	if err != nil {
		return nil, err
	}
	x.flush = flush

	client, err := x.github.NewClient(ctx, repo)
	if err != nil {
		return nil, err
	}
	lister, err := x.github.BranchLister(repo)
	if err != nil {
		return nil, err
	}
	workflowRepo, err := x.firestore.NewRepository(ctx)
	if err != nil {
		return nil, err
	}

	infraOptions := []infra.Option{
		infra.WithIssueTracker(client),
		infra.WithVersionControl(client),
		infra.WithCIStatus(client),
		infra.WithWorkflowRepository(workflowRepo),
	}
	if lister != nil {
		infraOptions = append(infraOptions, infra.WithBranchLister(lister))
	}
	infraOptions = append(infraOptions, options...)

	logging.From(ctx).Debug("use case ready", "repo", repo.String())

	return usecase.New(infra.New(infraOptions...),
		usecase.WithRepo(repo),
		usecase.WithTrunkBranch(x.github.TrunkBranch()),
		usecase.WithPolicy(policy),
	), nil
}

// Close sends the errors reported during the command
func (x *runtime) Close() {
	if x.flush != nil {
		x.flush()
	}
}

// requireArgs prints the usage line of c and fails when fewer than n arguments are given
func requireArgs(c *cli.Command, n int) error {
	if c.Args().Len() >= n {
		return nil
	}

	w := c.Root().ErrWriter
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintf(w, "Usage: %s %s\n", c.FullName(), c.ArgsUsage)
	fmt.Fprintf(w, "Run '%s --help' for details.\n", c.FullName())

	return goerr.Wrap(types.ErrInvalidOption, "missing argument",
		goerr.V("command", c.FullName()),
		goerr.V("required", n),
		goerr.V("given", c.Args().Len()),
	)
}

// parseIssueNumber accepts "12" and "#12"
func parseIssueNumber(s string) (types.IssueNumber, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(s), "#"))
	if err != nil || n <= 0 {
		return 0, goerr.Wrap(types.ErrInvalidOption, "invalid issue number", goerr.V("input", s))
	}
	return types.IssueNumber(n), nil
}

func parsePositiveInt(s, name string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, goerr.Wrap(types.ErrInvalidOption, "invalid "+name, goerr.V("input", s))
	}
	return n, nil
}

func stdout(c *cli.Command) io.Writer {
	if w := c.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return goerr.Wrap(err, "failed to encode JSON")
	}
	return nil
}

func jsonFlag(dst *bool) cli.Flag {
	return &cli.BoolFlag{
		Name:        "json",
		Usage:       "Print the result as JSON",
		Destination: dst,
	}
}

// writeJSONFile replaces path atomically with the JSON encoding of v
func writeJSONFile(path string, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return goerr.Wrap(err, "failed to marshal JSON", goerr.V("path", path))
	}
	return writeFileAtomic(path, append(raw, '\n'))
}

func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return goerr.Wrap(err, "failed to create temp file", goerr.V("path", path))
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		safe.Close(tmp)
		safe.Remove(tmpName)
		return goerr.Wrap(err, "failed to write temp file", goerr.V("path", tmpName))
	}
	if err := tmp.Close(); err != nil {
		safe.Remove(tmpName)
		return goerr.Wrap(err, "failed to close temp file", goerr.V("path", tmpName))
	}
	if err := os.Rename(tmpName, path); err != nil {
		safe.Remove(tmpName)
		return goerr.Wrap(err, "failed to replace file", goerr.V("path", path))
	}
	return nil
}
