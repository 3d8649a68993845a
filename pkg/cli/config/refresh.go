package config

import (
	"log/slog"
	"time"

	"github.com/secmon-lab/ecotrack/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// Refresh holds the refresh schedule configuration
type Refresh struct {
	Interval time.Duration
}

// Flags returns CLI flags for Refresh configuration
func (r *Refresh) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.DurationFlag{
			Name:        "refresh-interval",
			Usage:       "Period between two dashboard refresh cycles",
			Category:    "Refresh",
			Value:       usecase.DefaultRefreshInterval,
			Sources:     cli.EnvVars("ECOTRACK_REFRESH_INTERVAL"),
			Destination: &r.Interval,
		},
	}
}

// LogValue returns structured log value
func (r Refresh) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Duration("interval", r.Interval),
	)
}
