package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/ecotrack/pkg/domain/model"
	"github.com/secmon-lab/ecotrack/pkg/service/backend"
	"github.com/urfave/cli/v3"
)

// Backend holds the statistics backend configuration
type Backend struct {
	BaseURL string
	Timeout time.Duration
}

// Flags returns CLI flags for Backend configuration
func (b *Backend) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "backend-url",
			Usage:       "Base URL of the statistics API",
			Category:    "Backend",
			Value:       "http://localhost:5000/api",
			Sources:     cli.EnvVars("ECOTRACK_BACKEND_URL"),
			Destination: &b.BaseURL,
		},
		&cli.DurationFlag{
			Name:        "backend-timeout",
			Usage:       "Timeout of a single backend request",
			Category:    "Backend",
			Value:       10 * time.Second,
			Sources:     cli.EnvVars("ECOTRACK_BACKEND_TIMEOUT"),
			Destination: &b.Timeout,
		},
	}
}

// Configure creates the backend client. Endpoint paths and the recent limit come from dash.
func (b *Backend) Configure(dash *model.DashboardConfig) (*backend.Client, error) {
	if b.BaseURL == "" {
		return nil, goerr.New("backend URL is required")
	}
	if dash == nil {
		dash = model.DefaultDashboardConfig()
	}

	client, err := backend.New(b.BaseURL,
		backend.WithPaths(dash.Endpoints),
		backend.WithRecentLimit(dash.RecentLimit),
		backend.WithTimeout(b.Timeout),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to configure backend client", goerr.V("url", b.BaseURL))
	}
	return client, nil
}

// LogValue returns structured log value
func (b Backend) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("base_url", b.BaseURL),
		slog.Duration("timeout", b.Timeout),
	)
}
