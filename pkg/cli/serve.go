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
	"github.com/quickfolio/quickfolio/pkg/cli/config"
	"github.com/quickfolio/quickfolio/pkg/controller/server"
	"github.com/quickfolio/quickfolio/pkg/infra"
	"github.com/quickfolio/quickfolio/pkg/repository/memory"
	"github.com/quickfolio/quickfolio/pkg/usecase"
	"github.com/quickfolio/quickfolio/pkg/utils/logging"

	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		addr            string
		reuseOnConflict bool

		githubApp config.GitHubApp
		firestore config.Firestore
		sentry    config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("QUICKFOLIO_ADDR"),
			Destination: &addr,
		},
		&cli.BoolFlag{
			Name:        "reuse-on-conflict",
			Usage:       "Redeploy into an existing repository instead of failing",
			Sources:     cli.EnvVars("QUICKFOLIO_REUSE_ON_CONFLICT"),
			Destination: &reuseOnConflict,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode",
		Flags: slice.Flatten(
			serveFlags,
			githubApp.Flags(),
			firestore.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("ReuseOnConflict", reuseOnConflict),
				slog.Any("GitHubApp", githubApp),
				slog.Any("Firestore", firestore),
				slog.Any("Sentry", sentry),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			ghApp, err := githubApp.New()
			if err != nil {
				return err
			}

			infraOptions := []infra.Option{
				infra.WithGitHub(ghApp),
			}

			if firestore.Enabled() {
				deployments, err := firestore.NewRepository(ctx)
				if err != nil {
					return err
				}
				infraOptions = append(infraOptions, infra.WithDeployments(deployments))
			} else {
				infraOptions = append(infraOptions, infra.WithDeployments(memory.New()))
			}

			clients := infra.New(infraOptions...)

			var ucOptions []usecase.Option
			if reuseOnConflict {
				ucOptions = append(ucOptions, usecase.WithReuseOnConflict())
			}

			uc := usecase.New(clients, ucOptions...)
			s := server.New(uc)

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
			}

			return nil
		},
	}
}
