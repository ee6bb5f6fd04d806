package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/issueflow/pkg/cli/config"
	"github.com/secmon-lab/issueflow/pkg/domain/model"
	"github.com/secmon-lab/issueflow/pkg/domain/types"
	"github.com/secmon-lab/issueflow/pkg/infra/gitremote"
	"github.com/secmon-lab/issueflow/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// workspace is the local checkout the context commands look at
type workspace struct {
	dir    string
	policy config.Policy
}

func (x *workspace) Flags() []cli.Flag {
	return append([]cli.Flag{
		&cli.StringFlag{
			Name:        "dir",
			Usage:       "Directory inside the git working tree",
			Value:       ".",
			Destination: &x.dir,
		},
	}, x.policy.Flags()...)
}

// load resolves the issue of the checked out branch. info is nil when the branch is not an
// issue branch.
func (x *workspace) load() (*model.ContextInfo, string, error) {
	local, err := gitremote.Open(x.dir)
	if err != nil {
		return nil, "", err
	}
	branch, err := local.CurrentBranch()
	if err != nil {
		return nil, "", err
	}
	policy, err := x.policy.Load()
	if err != nil {
		return nil, "", err
	}

	path := filepath.Join(local.Root(), policy.ContextFile)
	document, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, "", goerr.Wrap(err, "failed to read context document", goerr.V("path", path))
		}
		document = nil
	}

	info, ok := model.NewContextInfo(branch, policy.ContextFile, document)
	if !ok {
		return nil, local.Root(), nil
	}
	return info, local.Root(), nil
}

func contextCommand() *cli.Command {
	return &cli.Command{
		Name:  "context",
		Usage: "Show the issue context of the checked out branch",
		Commands: []*cli.Command{
			contextInfoCommand(),
			contextTitleCommand(),
			contextHintCommand(),
			contextSetupCommand(),
		},
	}
}

func contextInfoCommand() *cli.Command {
	var (
		ws     workspace
		asJSON bool
	)

	return &cli.Command{
		Name:  "info",
		Usage: "Show the issue context of the current branch",
		Flags: append(ws.Flags(), jsonFlag(&asJSON)),
		Action: func(ctx context.Context, c *cli.Command) error {
			info, _, err := ws.load()
			if err != nil {
				return err
			}
			return printContextInfo(stdout(c), info, asJSON)
		},
	}
}

func printContextInfo(w io.Writer, info *model.ContextInfo, asJSON bool) error {
	if asJSON {
		return writeJSON(w, info)
	}
	if info == nil {
		fmt.Fprintln(w, "Not on an issue branch. No context available.")
		return nil
	}
	renderContextInfo(w, info)
	return nil
}

func contextTitleCommand() *cli.Command {
	var ws workspace

	return &cli.Command{
		Name:  "title",
		Usage: "Print the suggested chat title of the current branch",
		Flags: ws.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			info, _, err := ws.load()
			if err != nil {
				return err
			}
			if info == nil {
				return goerr.Wrap(types.ErrNotFound, "no issue context available on the current branch")
			}

			fmt.Fprintln(stdout(c), info.Heading())
			return nil
		},
	}
}

func contextHintCommand() *cli.Command {
	var ws workspace

	return &cli.Command{
		Name:  "hint",
		Usage: "Write the title hint file at the root of the working tree",
		Flags: ws.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			info, root, err := ws.load()
			if err != nil {
				return err
			}
			return writeTitleHint(ctx, c, info, root)
		},
	}
}

func contextSetupCommand() *cli.Command {
	var ws workspace

	return &cli.Command{
		Name:  "setup",
		Usage: "Show the issue context and write the title hint file",
		Flags: ws.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			info, root, err := ws.load()
			if err != nil {
				return err
			}
			if err := printContextInfo(stdout(c), info, false); err != nil {
				return err
			}
			return writeTitleHint(ctx, c, info, root)
		},
	}
}

func writeTitleHint(ctx context.Context, c *cli.Command, info *model.ContextInfo, root string) error {
	if info == nil {
		fmt.Fprintln(stdout(c), "Not on an issue branch. No hint written.")
		return nil
	}

	hint := &model.TitleHint{
		SuggestedTitle: info.Heading(),
		Branch:         info.Branch,
		ContextFile:    info.ContextFile,
		Timestamp:      logging.CtxTime(ctx).UTC(),
	}
	path := filepath.Join(root, model.TitleHintFileName)
	if err := writeJSONFile(path, hint); err != nil {
		return err
	}

	logging.From(ctx).Debug("title hint written", "path", path)
	fmt.Fprintf(stdout(c), "%s title hint: %q\n", green("Created"), hint.SuggestedTitle)
	return nil
}
