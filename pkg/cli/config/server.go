package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"
)

// Server holds server configuration
type Server struct {
	Addr      string
	PublicURL string
}

// Flags returns CLI flags for Server configuration
func (s *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Server address",
			Value:       "localhost:8080",
			Sources:     cli.EnvVars("ECOTRACK_ADDR"),
			Destination: &s.Addr,
		},
		&cli.StringFlag{
			Name:        "public-url",
			Usage:       "Public URL of the dashboard, linked from Slack announcements",
			Value:       "",
			Sources:     cli.EnvVars("ECOTRACK_PUBLIC_URL"),
			Destination: &s.PublicURL,
		},
	}
}

// LogValue returns structured log value
func (s Server) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("addr", s.Addr),
		slog.String("public_url", s.PublicURL),
	)
}
