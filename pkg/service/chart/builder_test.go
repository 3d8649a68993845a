package chart_test

import (
	"encoding/json"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/ecotrack/pkg/domain/model"
	"github.com/secmon-lab/ecotrack/pkg/domain/types"
	"github.com/secmon-lab/ecotrack/pkg/service/chart"
)

func TestCategorySpec(t *testing.T) {
	spec := chart.CategorySpec([]model.CategoryStat{
		{Name: "Pollution", Icon: "🏭", Count: 12},
		{Name: "Wildlife", Icon: "🦊", Count: 4},
	})

	gt.Equal(t, spec.Type, model.ChartTypeDoughnut)
	gt.Equal(t, spec.Data.Labels, []string{"🏭 Pollution", "🦊 Wildlife"})
	gt.Equal(t, spec.Data.Datasets[0].Data, []int64{12, 4})
	gt.Equal(t, spec.Data.Datasets[0].BackgroundColor, chart.CategoryPalette)
	gt.Equal(t, spec.Options.Plugins.Legend.Position, "bottom")
	gt.V(t, spec.Options.Scales).Nil()
}

func TestTrendSpec(t *testing.T) {
	spec := chart.TrendSpec([]model.TrendPoint{{Month: "2024-01", Count: 3}, {Month: "2024-02", Count: 8}})

	gt.Equal(t, spec.Type, model.ChartTypeLine)
	gt.Equal(t, spec.Data.Labels, []string{"2024-01", "2024-02"})
	ds := spec.Data.Datasets[0]
	gt.True(t, ds.Fill)
	gt.Equal(t, ds.Tension, 0.4)
	gt.False(t, spec.Options.Plugins.Legend.Display)
	gt.True(t, spec.Options.Scales.Y.BeginAtZero)
}

func TestLocationSpec(t *testing.T) {
	spec := chart.LocationSpec([]model.LocationStat{{Name: "River Park", Count: 9}})

	gt.Equal(t, spec.Type, model.ChartTypeBar)
	gt.Equal(t, spec.Data.Labels, []string{"River Park"})
	gt.Equal(t, spec.Data.Datasets[0].BorderRadius, 5)
	gt.True(t, spec.Options.Scales.Y.BeginAtZero)
}

func TestSeveritySpec(t *testing.T) {
	t.Run("fixed domain order with zero fill", func(t *testing.T) {
		spec := chart.SeveritySpec([]model.SeverityStat{
			{Severity: types.SeverityCritical, Count: 2},
			{Severity: types.SeverityLow, Count: 7},
			{Severity: types.Severity("bogus"), Count: 100},
		})

		gt.Equal(t, spec.Type, model.ChartTypeBar)
		gt.Equal(t, spec.Data.Labels, []string{"LOW", "MEDIUM", "HIGH", "CRITICAL"})
		gt.Equal(t, spec.Data.Datasets[0].Data, []int64{7, 0, 0, 2})
		gt.Equal(t, spec.Data.Datasets[0].BackgroundColor, []string{"#3b82f6", "#f59e0b", "#fb923c", "#ef4444"})
		gt.True(t, spec.Options.Scales.Y.BeginAtZero)
	})

	t.Run("empty input", func(t *testing.T) {
		spec := chart.SeveritySpec(nil)
		gt.Equal(t, spec.Data.Datasets[0].Data, []int64{0, 0, 0, 0})
	})
}

func TestSpecJSON(t *testing.T) {
	raw, err := json.Marshal(chart.LocationSpec([]model.LocationStat{{Name: "Bay", Count: 1}}))
	gt.NoError(t, err).Required()

	var decoded map[string]any
	gt.NoError(t, json.Unmarshal(raw, &decoded)).Required()
	gt.Equal(t, decoded["type"], any("bar"))

	options := decoded["options"].(map[string]any)
	scales := options["scales"].(map[string]any)
	y := scales["y"].(map[string]any)
	gt.Equal(t, y["beginAtZero"], any(true))
}
