package cli

import (
	"context"
	"fmt"

	"github.com/secmon-lab/issueflow/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

func detectCommand() *cli.Command {
	var (
		rt     runtime
		asJSON bool
	)

	return &cli.Command{
		Name:  "detect",
		Usage: "List feature branches pushed by external agents that are not tracked by an issue",
		Flags: append(rt.Flags(), jsonFlag(&asJSON)),
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, err := rt.newUseCase(ctx)
			if err != nil {
				return err
			}
			defer rt.Close()

			branches, err := uc.DetectUnclaimedBranches(ctx)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(stdout(c), branches)
			}
			renderUnclaimedBranches(stdout(c), branches)
			return nil
		},
	}
}

func integrateCommand() *cli.Command {
	var (
		rt     runtime
		asJSON bool
	)

	return &cli.Command{
		Name:      "integrate",
		Aliases:   []string{"auto-integrate"},
		Usage:     "Create issues for unclaimed branches, or for one given branch",
		ArgsUsage: "[branch]",
		Flags:     append(rt.Flags(), jsonFlag(&asJSON)),
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, err := rt.newUseCase(ctx)
			if err != nil {
				return err
			}
			defer rt.Close()

			if c.Args().Present() {
				branch := types.BranchName(c.Args().Get(0))
				issue, err := uc.IntegrateBranch(ctx, branch)
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(stdout(c), issue)
				}
				fmt.Fprintf(stdout(c), "%s #%d %s (%s)\n", green("created"), issue.Number, issue.Title, branch)
				return nil
			}

			result, err := uc.IntegrateUnclaimedBranches(ctx)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(stdout(c), result)
			}
			renderIntegration(stdout(c), result)
			return nil
		},
	}
}

func checkOrphansCommand() *cli.Command {
	var (
		rt     runtime
		asJSON bool
	)

	return &cli.Command{
		Name:  "check-orphans",
		Usage: "List open issues that reference deleted feature branches",
		Flags: append(rt.Flags(), jsonFlag(&asJSON)),
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, err := rt.newUseCase(ctx)
			if err != nil {
				return err
			}
			defer rt.Close()

			orphans, err := uc.CheckOrphans(ctx)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(stdout(c), orphans)
			}
			renderOrphans(stdout(c), orphans)
			return nil
		},
	}
}

func cleanupCommand() *cli.Command {
	var (
		rt     runtime
		asJSON bool
	)

	return &cli.Command{
		Name:  "cleanup",
		Usage: "Mark issues referencing deleted feature branches for review",
		Flags: append(rt.Flags(), jsonFlag(&asJSON)),
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, err := rt.newUseCase(ctx)
			if err != nil {
				return err
			}
			defer rt.Close()

			orphans, err := uc.CleanupOrphans(ctx)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(stdout(c), orphans)
			}
			renderOrphans(stdout(c), orphans)
			if len(orphans) > 0 {
				fmt.Fprintf(stdout(c), "%d issue(s) marked for review\n", len(orphans))
			}
			return nil
		},
	}
}
