package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/ecotrack/pkg/domain/model"
	"github.com/secmon-lab/ecotrack/pkg/domain/types"
)

func TestDashboardConfigDefaults(t *testing.T) {
	cfg := &model.DashboardConfig{
		Endpoints: model.EndpointPaths{Overview: "/overview"},
	}
	cfg.ApplyDefaults()
	gt.NoError(t, cfg.Validate())

	gt.Equal(t, cfg.Endpoints.Path(types.EndpointOverview), "/overview")
	gt.Equal(t, cfg.Endpoints.Path(types.EndpointRecent), "/stats/recent")
	gt.Equal(t, cfg.Endpoints.CreateReport, "/reports")
	gt.Equal(t, cfg.RecentLimit, model.DefaultRecentLimit)
	gt.V(t, cfg.Categories).NotNil()
}

func TestDashboardConfigValidate(t *testing.T) {
	t.Run("default is valid", func(t *testing.T) {
		gt.NoError(t, model.DefaultDashboardConfig().Validate())
	})

	t.Run("relative path", func(t *testing.T) {
		cfg := model.DefaultDashboardConfig()
		cfg.Endpoints.Trends = "stats/trends"
		gt.Error(t, cfg.Validate())
	})

	t.Run("negative limit", func(t *testing.T) {
		cfg := model.DefaultDashboardConfig()
		cfg.RecentLimit = -1
		gt.Error(t, cfg.Validate())
	})

	t.Run("unknown endpoint has no path", func(t *testing.T) {
		gt.Equal(t, model.DefaultEndpointPaths().Path(types.Endpoint("species")), "")
	})
}

func TestDashboardCopy(t *testing.T) {
	d := model.NewDashboard()
	d.Charts[types.ChartTrends] = &model.ChartSpec{
		Type: model.ChartTypeLine,
		Data: model.ChartData{
			Labels:   []string{"2024-01"},
			Datasets: []model.ChartDataset{{Data: []int64{3}}},
		},
		Options: model.ChartOptions{Scales: &model.ChartScales{Y: model.ChartAxis{BeginAtZero: true}}},
	}
	d.Reports = append(d.Reports, model.ReportRow{ID: "#1"})

	c := d.Copy()
	c.Charts[types.ChartTrends].Data.Datasets[0].Data[0] = 99
	c.Charts[types.ChartTrends].Options.Scales.Y.BeginAtZero = false
	c.Reports[0].ID = "#2"

	gt.Equal(t, d.Charts[types.ChartTrends].Data.Datasets[0].Data[0], int64(3))
	gt.True(t, d.Charts[types.ChartTrends].Options.Scales.Y.BeginAtZero)
	gt.Equal(t, d.Reports[0].ID, "#1")
}
