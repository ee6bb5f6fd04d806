package cli

import (
	"context"
	"io"

	"github.com/secmon-lab/issueflow/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// ConfigureLogging is exported for testing purposes
var ConfigureLogging = logging.Configure

type CLI struct {
	writer    io.Writer
	errWriter io.Writer
}

type Option func(*CLI)

// WithWriter sets the destination of command output. Default is stdout.
func WithWriter(w io.Writer) Option {
	return func(x *CLI) {
		x.writer = w
	}
}

// WithErrWriter sets the destination of usage errors. Default is stderr.
func WithErrWriter(w io.Writer) Option {
	return func(x *CLI) {
		x.errWriter = w
	}
}

func New(options ...Option) *CLI {
	x := &CLI{}
	for _, opt := range options {
		opt(x)
	}
	return x
}

func (x *CLI) Run(argv []string) error {
	var (
		logLevel  string
		logFormat string
		logOutput string
	)

	app := &cli.Command{
		Name:      "issueflow",
		Usage:     "Issue-driven development workflow automation for GitHub",
		Writer:    x.writer,
		ErrWriter: x.errWriter,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "Log level [trace|debug|info|warn|error]",
				Aliases:     []string{"l"},
				Sources:     cli.EnvVars("ISSUEFLOW_LOG_LEVEL"),
				Destination: &logLevel,
				Value:       "info",
			},
			&cli.StringFlag{
				Name:        "log-format",
				Usage:       "Log format [text|json]",
				Aliases:     []string{"f"},
				Sources:     cli.EnvVars("ISSUEFLOW_LOG_FORMAT"),
				Destination: &logFormat,
				Value:       "text",
			},
			&cli.StringFlag{
				Name:        "log-output",
				Usage:       "Log output [-|stdout|stderr|<file>]",
				Aliases:     []string{"o"},
				Sources:     cli.EnvVars("ISSUEFLOW_LOG_OUTPUT"),
				Destination: &logOutput,
				Value:       "stderr",
			},
		},
		Commands: []*cli.Command{
			reportCommand(),
			startCommand(),
			progressCommand(),
			autoCommand(),
			detectCommand(),
			integrateCommand(),
			checkOrphansCommand(),
			cleanupCommand(),
			healthCommand(),
			milestoneCommand(),
			issueCommand(),
			contextCommand(),
			serveCommand(),
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := ConfigureLogging(logFormat, logLevel, logOutput); err != nil {
				return ctx, err
			}
			return ctx, nil
		},
	}

	if err := app.Run(context.Background(), argv); err != nil {
		logging.Default().Error("fatal error", "error", err)
		return err
	}

	return nil
}
