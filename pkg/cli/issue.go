package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/issueflow/pkg/domain/model"
	"github.com/secmon-lab/issueflow/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

func issueCommand() *cli.Command {
	return &cli.Command{
		Name:  "issue",
		Usage: "Operate issues directly",
		Commands: []*cli.Command{
			issueCreateCommand(),
			issueUpdateCommand(),
			issueCommentCommand(),
			issueLabelCommand(),
		},
	}
}

type bodyInput struct {
	body     string
	bodyFile string
}

func (x *bodyInput) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "body",
			Usage:       "Body text",
			Aliases:     []string{"b"},
			Destination: &x.body,
		},
		&cli.StringFlag{
			Name:        "body-file",
			Usage:       "Read the body from the file",
			Aliases:     []string{"F"},
			Destination: &x.bodyFile,
		},
	}
}

// Read returns the body. --body-file wins over --body.
func (x *bodyInput) Read() (string, error) {
	if x.bodyFile == "" {
		return x.body, nil
	}
	raw, err := os.ReadFile(x.bodyFile)
	if err != nil {
		return "", goerr.Wrap(err, "failed to read body file", goerr.V("path", x.bodyFile))
	}
	return string(raw), nil
}

func issueCreateCommand() *cli.Command {
	var (
		rt        runtime
		input     bodyInput
		labels    []string
		milestone int64
	)

	flags := []cli.Flag{
		&cli.StringSliceFlag{
			Name:        "label",
			Usage:       "Label of the issue (repeatable)",
			Destination: &labels,
		},
		&cli.Int64Flag{
			Name:        "milestone",
			Usage:       "Milestone number",
			Aliases:     []string{"m"},
			Destination: &milestone,
		},
	}

	return &cli.Command{
		Name:      "create",
		Usage:     "Create an issue",
		ArgsUsage: "<title>",
		Flags:     append(append(flags, input.Flags()...), rt.Flags()...),
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := requireArgs(c, 1); err != nil {
				return err
			}
			body, err := input.Read()
			if err != nil {
				return err
			}

			newIssue := &model.NewIssue{
				Title:  c.Args().Get(0),
				Body:   body,
				Labels: labels,
			}
			if milestone > 0 {
				m := int(milestone)
				newIssue.Milestone = &m
			}

			uc, err := rt.newUseCase(ctx)
			if err != nil {
				return err
			}
			defer rt.Close()

			issue, err := uc.CreateIssue(ctx, newIssue)
			if err != nil {
				return err
			}

			fmt.Fprintf(stdout(c), "%s issue #%d %s\n", green("Created"), issue.Number, issue.HTMLURL)
			return nil
		},
	}
}

func issueUpdateCommand() *cli.Command {
	var (
		rt    runtime
		input bodyInput
	)

	return &cli.Command{
		Name:      "update",
		Usage:     "Replace the body of an issue",
		ArgsUsage: "<issue-number>",
		Flags:     append(input.Flags(), rt.Flags()...),
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := requireArgs(c, 1); err != nil {
				return err
			}
			number, err := parseIssueNumber(c.Args().Get(0))
			if err != nil {
				return err
			}
			body, err := input.Read()
			if err != nil {
				return err
			}
			if strings.TrimSpace(body) == "" {
				return goerr.Wrap(types.ErrInvalidOption, "--body or --body-file is required")
			}

			uc, err := rt.newUseCase(ctx)
			if err != nil {
				return err
			}
			defer rt.Close()

			if _, err := uc.UpdateIssueBody(ctx, number, body); err != nil {
				return err
			}

			fmt.Fprintf(stdout(c), "Issue #%d updated\n", number)
			return nil
		},
	}
}

func issueCommentCommand() *cli.Command {
	var (
		rt    runtime
		input bodyInput
	)

	return &cli.Command{
		Name:      "comment",
		Usage:     "Post a comment on an issue",
		ArgsUsage: "<issue-number> [body]",
		Flags:     append(input.Flags(), rt.Flags()...),
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := requireArgs(c, 1); err != nil {
				return err
			}
			number, err := parseIssueNumber(c.Args().Get(0))
			if err != nil {
				return err
			}

			body, err := input.Read()
			if err != nil {
				return err
			}
			if c.Args().Len() > 1 {
				body = strings.Join(c.Args().Tail(), " ")
			}

			uc, err := rt.newUseCase(ctx)
			if err != nil {
				return err
			}
			defer rt.Close()

			if err := uc.Comment(ctx, number, body); err != nil {
				return err
			}

			fmt.Fprintf(stdout(c), "Commented on issue #%d\n", number)
			return nil
		},
	}
}

func issueLabelCommand() *cli.Command {
	var rt runtime

	return &cli.Command{
		Name:      "label",
		Usage:     "Add labels to an issue, keeping its current labels",
		ArgsUsage: "<issue-number> <label>...",
		Flags:     rt.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := requireArgs(c, 2); err != nil {
				return err
			}
			number, err := parseIssueNumber(c.Args().Get(0))
			if err != nil {
				return err
			}

			uc, err := rt.newUseCase(ctx)
			if err != nil {
				return err
			}
			defer rt.Close()

			issue, err := uc.AddLabels(ctx, number, c.Args().Tail()...)
			if err != nil {
				return err
			}

			fmt.Fprintf(stdout(c), "Issue #%d labels: %s\n", number, strings.Join(issue.Labels, ", "))
			return nil
		},
	}
}
