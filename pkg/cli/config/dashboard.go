package config

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/ecotrack/pkg/domain/model"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Dashboard holds the location of the optional dashboard YAML file
type Dashboard struct {
	ConfigPath string
}

// Flags returns CLI flags for Dashboard configuration
func (d *Dashboard) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "dashboard-config",
			Usage:       "Path to the dashboard YAML file (endpoint paths, recent limit, categories)",
			Category:    "Dashboard",
			Sources:     cli.EnvVars("ECOTRACK_DASHBOARD_CONFIG"),
			Destination: &d.ConfigPath,
		},
	}
}

// Configure loads the dashboard configuration. Defaults are used when no path is set.
func (d *Dashboard) Configure() (*model.DashboardConfig, error) {
	if d.ConfigPath == "" {
		return model.DefaultDashboardConfig(), nil
	}
	return LoadDashboardFromFile(d.ConfigPath)
}

// LogValue returns structured log value
func (d Dashboard) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("config_path", d.ConfigPath),
	)
}

// LoadDashboardFromFile loads the dashboard configuration from a YAML file. An empty
// file yields the defaults. Unknown keys are rejected so a misspelled endpoint does
// not silently fall back to its default path.
func LoadDashboardFromFile(path string) (*model.DashboardConfig, error) {
	if path == "" {
		return nil, goerr.New("configuration file path is required")
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, goerr.Wrap(err, "configuration file not found", goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to open configuration file", goerr.V("path", path))
	}
	defer f.Close()

	var config model.DashboardConfig
	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return nil, goerr.Wrap(err, "failed to parse YAML configuration", goerr.V("path", path))
	}

	config.ApplyDefaults()
	if err := config.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid configuration", goerr.V("path", path))
	}

	return &config, nil
}
