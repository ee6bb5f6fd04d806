package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/secmon-lab/issueflow/pkg/cli/config"
	"github.com/secmon-lab/issueflow/pkg/controller/server"
	"github.com/secmon-lab/issueflow/pkg/infra"
	"github.com/secmon-lab/issueflow/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// jobQueueSize is the number of accepted webhook jobs that may wait for the running one
const jobQueueSize = 64

func serveCommand() *cli.Command {
	var (
		addr string

		rt       runtime
		bigQuery config.BigQuery
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("ISSUEFLOW_ADDR"),
			Destination: &addr,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode: react to GitHub webhooks",
		Flags: slice.Flatten(
			serveFlags,
			rt.Flags(),
			bigQuery.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("Runtime", &rt),
				slog.Any("BigQuery", &bigQuery),
			)

			var infraOptions []infra.Option
			if bqClient, err := bigQuery.NewClient(ctx); err != nil {
				return err
			} else if bqClient != nil {
				infraOptions = append(infraOptions, infra.WithBigQuery(bqClient))
			}

			uc, err := rt.newUseCase(ctx, infraOptions...)
			if err != nil {
				return err
			}
			defer rt.Close()

			secret := rt.github.WebhookSecret()
			if secret == "" {
				logging.Default().Warn("webhook secret is not configured, signatures are not verified")
			}
			jobs := server.NewJobQueue(jobQueueSize)
			defer jobs.Close()
			s := server.New(uc,
				server.WithGitHubSecret(secret),
				server.WithRepo(rt.repo),
				server.WithDispatcher(jobs.Dispatch),
			)

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      30 * time.Second,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}

				logging.Default().Info("waiting for queued webhook jobs")
				jobs.Close()
			}

			return nil
		},
	}
}
