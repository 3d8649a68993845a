package cli

import (
	"github.com/secmon-lab/ecotrack/pkg/cli/config"
	"github.com/secmon-lab/ecotrack/pkg/domain/model"
	"github.com/secmon-lab/ecotrack/pkg/service/backend"
	"github.com/secmon-lab/ecotrack/pkg/service/chart"
	"github.com/secmon-lab/ecotrack/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// joinFlags combines multiple flag slices into one
func joinFlags(flags ...[]cli.Flag) []cli.Flag {
	var result []cli.Flag
	for _, f := range flags {
		result = append(result, f...)
	}
	return result
}

// app holds the components shared by the commands
type app struct {
	dashboard *model.DashboardConfig
	client    *backend.Client
	registry  *chart.Registry
	renderer  *usecase.Renderer
}

func buildApp(backendCfg *config.Backend, dashboardCfg *config.Dashboard) (*app, error) {
	dash, err := dashboardCfg.Configure()
	if err != nil {
		return nil, err
	}

	client, err := backendCfg.Configure(dash)
	if err != nil {
		return nil, err
	}

	registry := chart.NewRegistry(chart.NewFactory())
	return &app{
		dashboard: dash,
		client:    client,
		registry:  registry,
		renderer:  usecase.NewRenderer(registry, dash.Categories),
	}, nil
}

func (a *app) loader(opts ...usecase.LoaderOption) *usecase.Loader {
	opts = append([]usecase.LoaderOption{usecase.WithRecentLimit(a.dashboard.RecentLimit)}, opts...)
	return usecase.NewLoader(a.client, a.renderer, opts...)
}
