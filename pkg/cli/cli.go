package cli

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/ecotrack/pkg/cli/config"
	"github.com/urfave/cli/v3"
)

// defaultEnvFile is loaded when ECOTRACK_ENV_FILE is not set
const defaultEnvFile = ".env"

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	if err := loadEnvFile(); err != nil {
		return err
	}

	var loggerCfg config.Logger

	app := &cli.Command{
		Name:    "ecotrack",
		Usage:   "Environmental issue dashboard",
		Version: "0.1.0",
		Flags:   loggerCfg.Flags(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, err := loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		Commands: []*cli.Command{
			cmdServe(),
			cmdRefresh(),
			cmdSubmit(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		slog.Error("Command failed", "error", err)
		return goerr.Wrap(err, "CLI execution failed")
	}

	return nil
}

// loadEnvFile reads environment variables from ECOTRACK_ENV_FILE or ./.env.
// Variables already set in the process environment are kept.
func loadEnvFile() error {
	path := os.Getenv("ECOTRACK_ENV_FILE")
	if path == "" {
		if _, err := os.Stat(defaultEnvFile); errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		path = defaultEnvFile
	}

	if err := godotenv.Load(path); err != nil {
		return goerr.Wrap(err, "failed to load env file", goerr.V("path", path))
	}
	return nil
}
