package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/issueflow/pkg/domain/types"
	"github.com/secmon-lab/issueflow/pkg/usecase"
	"github.com/secmon-lab/issueflow/pkg/utils/errutil"
	"github.com/secmon-lab/issueflow/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func startCommand() *cli.Command {
	var rt runtime

	return &cli.Command{
		Name:      "start",
		Usage:     "Start the workflow of an issue: create the feature branch, context document, comment and labels",
		ArgsUsage: "<issue-number>",
		Flags:     rt.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := requireArgs(c, 1); err != nil {
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

			branch, err := uc.StartWorkflowByNumber(ctx, number)
			if err != nil {
				if errutil.IsAlreadyStarted(err) {
					logging.From(ctx).Info("already started", "issue", number, "error", err)
					fmt.Fprintf(stdout(c), "Issue #%d is already started\n", number)
					return nil
				}
				return err
			}

			fmt.Fprintf(stdout(c), "%s workflow of issue #%d on branch %s\n", green("Started"), number, branch)
			return nil
		},
	}
}

func progressCommand() *cli.Command {
	var rt runtime

	return &cli.Command{
		Name:      "progress",
		Usage:     "Advance the workflow of an issue to a step",
		ArgsUsage: "<issue-number> <step>",
		Description: "Steps: development-started, development-partial, development-complete, tests-added, " +
			"build-passing, pr-to-testing, integration-tested, pr-to-main, merged",
		Flags: rt.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := requireArgs(c, 2); err != nil {
				return err
			}
			number, err := parseIssueNumber(c.Args().Get(0))
			if err != nil {
				return err
			}
			step := types.WorkflowStep(c.Args().Get(1))

			uc, err := rt.newUseCase(ctx)
			if err != nil {
				return err
			}
			defer rt.Close()

			advanced, err := uc.AdvanceWorkflow(ctx, number, step)
			if err != nil {
				return goerr.Wrap(err, "failed to advance workflow", goerr.V("issue", number), goerr.V("step", step))
			}
			if !advanced {
				fmt.Fprintf(stdout(c), "Unknown step %q, nothing to do\n", step)
				return nil
			}

			fmt.Fprintf(stdout(c), "Issue #%d moved to %s\n", number, cyan(step.String()))
			return nil
		},
	}
}

func autoCommand() *cli.Command {
	var (
		rt     runtime
		asJSON bool
	)

	return &cli.Command{
		Name:      "auto",
		Usage:     "Start the workflow of the highest priority ready issues",
		ArgsUsage: fmt.Sprintf("[max-issues (default %d)]", usecase.DefaultAutoStartMax),
		Flags:     append(rt.Flags(), jsonFlag(&asJSON)),
		Action: func(ctx context.Context, c *cli.Command) error {
			maxIssues := usecase.DefaultAutoStartMax
			if c.Args().Present() {
				n, err := parsePositiveInt(c.Args().Get(0), "max issues")
				if err != nil {
					return err
				}
				maxIssues = n
			}

			uc, err := rt.newUseCase(ctx)
			if err != nil {
				return err
			}
			defer rt.Close()

			result, err := uc.AutoStart(ctx, maxIssues)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(stdout(c), result)
			}
			renderAutoStart(stdout(c), result)
			return nil
		},
	}
}
