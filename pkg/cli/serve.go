package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/ecotrack/pkg/cli/config"
	controller "github.com/secmon-lab/ecotrack/pkg/controller/http"
	"github.com/secmon-lab/ecotrack/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg    config.Server
		backendCfg   config.Backend
		refreshCfg   config.Refresh
		dashboardCfg config.Dashboard
		slackCfg     config.Slack
	)

	flags := joinFlags(
		serverCfg.Flags(),
		backendCfg.Flags(),
		refreshCfg.Flags(),
		dashboardCfg.Flags(),
		slackCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start the dashboard server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting ecotrack server",
				slog.Any("server", serverCfg),
				slog.Any("backend", backendCfg),
				slog.Any("refresh", refreshCfg),
				slog.Any("dashboard", dashboardCfg),
				slog.Any("slack", slackCfg),
			)

			deps, err := buildApp(&backendCfg, &dashboardCfg)
			if err != nil {
				return err
			}
			defer func() {
				if err := deps.registry.Close(); err != nil {
					logger.Warn("Failed to release charts", "error", err)
				}
			}()

			notifier, err := slackCfg.ConfigureOptional(logger, serverCfg.PublicURL)
			if err != nil {
				return goerr.Wrap(err, "failed to configure Slack")
			}

			var loaderOpts []usecase.LoaderOption
			if notifier != nil {
				loaderOpts = append(loaderOpts, usecase.WithMilestoneWatcher(usecase.NewMilestoneWatcher(notifier)))
			}
			loader := deps.loader(loaderOpts...)
			submission := usecase.NewSubmission(deps.client, loader)
			scheduler := usecase.NewScheduler(loader, refreshCfg.Interval)

			server, err := controller.NewServer(
				ctx,
				controller.NewConfig(serverCfg.Addr, scheduler.Interval(), deps.dashboard.Categories),
				controller.NewUseCases(deps.renderer, loader, submission),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			if err := scheduler.Start(ctx); err != nil {
				return goerr.Wrap(err, "failed to start refresh scheduler")
			}

			serverErr := make(chan error, 1)
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					serverErr <- err
				}
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sigChan)

			var runErr error
			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			case err := <-serverErr:
				runErr = goerr.Wrap(err, "HTTP server error")
			}

			scheduler.Stop()

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return runErr
		},
	}
}
