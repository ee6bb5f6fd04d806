package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/issueflow/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

func milestoneCommand() *cli.Command {
	return &cli.Command{
		Name:  "milestone",
		Usage: "Manage milestones",
		Commands: []*cli.Command{
			milestoneCreateCommand(),
			milestoneStatusCommand(),
			milestoneLinkCommand(),
		},
	}
}

func milestoneCreateCommand() *cli.Command {
	var (
		rt          runtime
		description string
		due         string
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "description",
			Usage:       "Milestone description",
			Aliases:     []string{"d"},
			Destination: &description,
		},
		&cli.StringFlag{
			Name:        "due",
			Usage:       "Due date (YYYY-MM-DD)",
			Destination: &due,
		},
	}

	return &cli.Command{
		Name:      "create",
		Usage:     "Create a milestone",
		ArgsUsage: "<title>",
		Flags:     append(flags, rt.Flags()...),
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := requireArgs(c, 1); err != nil {
				return err
			}

			var dueOn *time.Time
			if due != "" {
				t, err := time.Parse("2006-01-02", due)
				if err != nil {
					return goerr.Wrap(types.ErrInvalidOption, "invalid due date", goerr.V("due", due))
				}
				dueOn = &t
			}

			uc, err := rt.newUseCase(ctx)
			if err != nil {
				return err
			}
			defer rt.Close()

			milestone, err := uc.CreateMilestone(ctx, c.Args().Get(0), description, dueOn)
			if err != nil {
				return err
			}

			fmt.Fprintf(stdout(c), "%s milestone #%d %s\n", green("Created"), milestone.Number, milestone.Title)
			return nil
		},
	}
}

func milestoneStatusCommand() *cli.Command {
	var (
		rt     runtime
		asJSON bool
	)

	return &cli.Command{
		Name:      "status",
		Usage:     "Show the progress of a milestone",
		ArgsUsage: "<milestone-number>",
		Flags:     append(rt.Flags(), jsonFlag(&asJSON)),
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := requireArgs(c, 1); err != nil {
				return err
			}
			number, err := parsePositiveInt(c.Args().Get(0), "milestone number")
			if err != nil {
				return err
			}

			uc, err := rt.newUseCase(ctx)
			if err != nil {
				return err
			}
			defer rt.Close()

			status, err := uc.MilestoneStatus(ctx, number)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(stdout(c), status)
			}
			renderMilestoneStatus(stdout(c), status)
			return nil
		},
	}
}

func milestoneLinkCommand() *cli.Command {
	var rt runtime

	return &cli.Command{
		Name:      "link",
		Usage:     "Attach an issue to a milestone",
		ArgsUsage: "<issue-number> <milestone-number>",
		Flags:     rt.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := requireArgs(c, 2); err != nil {
				return err
			}
			issue, err := parseIssueNumber(c.Args().Get(0))
			if err != nil {
				return err
			}
			milestone, err := parsePositiveInt(c.Args().Get(1), "milestone number")
			if err != nil {
				return err
			}

			uc, err := rt.newUseCase(ctx)
			if err != nil {
				return err
			}
			defer rt.Close()

			if err := uc.LinkIssueToMilestone(ctx, issue, milestone); err != nil {
				return err
			}

			fmt.Fprintf(stdout(c), "Issue #%d linked to milestone #%d\n", issue, milestone)
			return nil
		},
	}
}
