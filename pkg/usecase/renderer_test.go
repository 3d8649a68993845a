package usecase_test

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/ecotrack/pkg/domain/interfaces"
	"github.com/secmon-lab/ecotrack/pkg/domain/model"
	"github.com/secmon-lab/ecotrack/pkg/domain/types"
	"github.com/secmon-lab/ecotrack/pkg/service/chart"
	"github.com/secmon-lab/ecotrack/pkg/usecase"
)

func TestRendererRecentReports(t *testing.T) {
	renderer, _ := newRenderer()

	renderer.RenderRecentReports([]model.Report{
		{ID: 3, Title: "Smog", Category: "Pollution", CategoryIcon: "🏭", Location: ptr("Downtown"),
			Severity: types.SeverityHigh, Status: types.ReportStatusInProgress, CreatedAt: "2024-03-05 10:00:00"},
		{ID: 2, Title: "Felled trees", Category: "Deforestation", CategoryIcon: "🌳", Location: ptr(""),
			Severity: types.SeverityLow, Status: types.ReportStatusPending, CreatedAt: "not a date"},
		{ID: 1, Title: "Unknown", Category: "Noise",
			Severity: types.SeverityMedium, Status: types.ReportStatusResolved, CreatedAt: "2024-01-15T09:30:00Z"},
	})

	rows := renderer.Snapshot().Reports
	gt.A(t, rows).Length(3)

	gt.Equal(t, rows[0], model.ReportRow{
		ID:            "#3",
		Title:         "Smog",
		CategoryLabel: "🏭 Pollution",
		CategoryClass: "badge-pollution",
		Location:      "Downtown",
		Severity:      "high",
		SeverityClass: "severity-high",
		Status:        "in_progress",
		StatusClass:   "status-in_progress",
		Date:          "Mar 5, 2024",
	})

	gt.Equal(t, rows[1].ID, "#2")
	gt.Equal(t, rows[1].CategoryClass, "badge-deforestation")
	gt.Equal(t, rows[1].Location, "N/A")
	gt.Equal(t, rows[1].Date, "not a date")

	gt.Equal(t, rows[2].ID, "#1")
	gt.Equal(t, rows[2].CategoryLabel, "Noise")
	gt.Equal(t, rows[2].CategoryClass, "badge-pollution")
	gt.Equal(t, rows[2].Location, "N/A")
	gt.Equal(t, rows[2].Date, "Jan 15, 2024")

	renderer.RenderRecentReports(nil)
	gt.A(t, renderer.Snapshot().Reports).Length(0)
}

func TestRendererMilestones(t *testing.T) {
	renderer, _ := newRenderer()

	renderer.RenderMilestones([]model.Milestone{
		{Title: "First 100", Description: "Reach 100 reports", CurrentCount: 150, TargetCount: 100, Achieved: true},
		{Title: "Cleanup", CurrentCount: 3, TargetCount: 4},
		{Title: "Zero target", CurrentCount: 5, TargetCount: 0},
	})

	cards := renderer.Snapshot().Milestones
	gt.A(t, cards).Length(3)

	gt.Equal(t, cards[0].Title, "First 100 🏆")
	gt.Equal(t, cards[0].Progress, 100.0)
	gt.Equal(t, cards[0].ProgressLabel, "100%")
	gt.Equal(t, cards[0].StateLabel, "✅ Achieved!")

	gt.Equal(t, cards[1].Title, "Cleanup")
	gt.Equal(t, cards[1].Progress, 75.0)
	gt.Equal(t, cards[1].ProgressLabel, "75%")
	gt.Equal(t, cards[1].StateLabel, "🎯 In Progress")

	gt.Equal(t, cards[2].Progress, 0.0)
	gt.Equal(t, cards[2].ProgressLabel, "0%")
}

func TestRendererOverview(t *testing.T) {
	renderer, _ := newRenderer()

	renderer.RenderOverview(&model.OverviewResponse{
		TotalReports:    8,
		PendingReports:  ptr(int64(3)),
		ResolvedReports: ptr(int64(4)),
		CriticalReports: ptr(int64(1)),
	})

	gt.Equal(t, renderer.Snapshot().Counters, model.Counters{
		TotalReports:    8,
		PendingReports:  3,
		ResolvedReports: 4,
		CriticalReports: 1,
	})
}

func TestRendererCharts(t *testing.T) {
	t.Run("Not rendered yet", func(t *testing.T) {
		renderer, _ := newRenderer()

		_, err := renderer.Chart(types.ChartTrends)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrChartNotRendered))

		_, err = renderer.Chart(types.ChartName("pieChart"))
		gt.True(t, errors.Is(err, model.ErrChartNotRendered))
	})

	t.Run("Rerender replaces the chart", func(t *testing.T) {
		renderer, factory := newRenderer()

		gt.NoError(t, renderer.RenderLocations([]model.LocationStat{{Name: "A", Count: 1}}))
		gt.NoError(t, renderer.RenderLocations([]model.LocationStat{{Name: "B", Count: 2}}))
		gt.Equal(t, factory.LiveCount(types.ChartLocation), 1)

		spec, err := renderer.Chart(types.ChartLocation)
		gt.NoError(t, err).Required()
		gt.Equal(t, spec.Data.Labels, []string{"B"})
	})

	t.Run("Severity chart keeps the fixed domain", func(t *testing.T) {
		renderer, _ := newRenderer()

		gt.NoError(t, renderer.RenderSeverity(nil))
		spec, err := renderer.Chart(types.ChartSeverity)
		gt.NoError(t, err).Required()
		gt.Equal(t, spec.Data.Labels, []string{"LOW", "MEDIUM", "HIGH", "CRITICAL"})
	})

	t.Run("Snapshot is a copy", func(t *testing.T) {
		renderer, _ := newRenderer()
		gt.NoError(t, renderer.RenderTrends([]model.TrendPoint{{Month: "2024-01", Count: 1}}))

		snap := renderer.Snapshot()
		snap.Charts[types.ChartTrends].Data.Labels[0] = "changed"

		spec, err := renderer.Chart(types.ChartTrends)
		gt.NoError(t, err).Required()
		gt.Equal(t, spec.Data.Labels[0], "2024-01")
	})
}

// failingFactory refuses new charts while fail is set
type failingFactory struct {
	*chart.Factory
	fail atomic.Bool
}

func (f *failingFactory) NewChart(canvas types.ChartName, spec *model.ChartSpec) (interfaces.ChartInstance, error) {
	if f.fail.Load() {
		return nil, errors.New("canvas unavailable")
	}
	return f.Factory.NewChart(canvas, spec)
}

func TestRendererChartFailureDropsStaleSpec(t *testing.T) {
	factory := &failingFactory{Factory: chart.NewFactory()}
	registry := chart.NewRegistry(factory)
	renderer := usecase.NewRenderer(registry, nil)

	gt.NoError(t, renderer.RenderTrends([]model.TrendPoint{{Month: "2024-01", Count: 3}})).Required()
	_, err := renderer.Chart(types.ChartTrends)
	gt.NoError(t, err)

	factory.fail.Store(true)
	gt.Error(t, renderer.RenderTrends([]model.TrendPoint{{Month: "2024-02", Count: 4}}))

	_, live := registry.Get(types.ChartTrends)
	gt.False(t, live)
	_, err = renderer.Chart(types.ChartTrends)
	gt.True(t, errors.Is(err, model.ErrChartNotRendered))
	_, ok := renderer.Snapshot().Charts[types.ChartTrends]
	gt.False(t, ok)

	factory.fail.Store(false)
	gt.NoError(t, renderer.RenderTrends([]model.TrendPoint{{Month: "2024-03", Count: 5}}))
	spec, err := renderer.Chart(types.ChartTrends)
	gt.NoError(t, err).Required()
	gt.Equal(t, spec.Data.Labels, []string{"2024-03"})
}

func TestRendererEndpointStatus(t *testing.T) {
	now := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	renderer := usecase.NewRenderer(chart.NewRegistry(chart.NewFactory()), nil, usecase.WithClock(clock))

	renderer.MarkEndpoint(types.EndpointOverview, nil)
	now = now.Add(time.Minute)
	renderer.MarkEndpoint(types.EndpointOverview, errors.New("timeout"))

	status := renderer.Snapshot().Endpoints[types.EndpointOverview]
	gt.False(t, status.OK)
	gt.Equal(t, status.Error, "timeout")
	gt.Equal(t, status.CheckedAt, now)
	gt.Equal(t, status.LastSuccess, now.Add(-time.Minute))
}
