package usecase_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/secmon-lab/ecotrack/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/ecotrack/pkg/domain/model"
	"github.com/secmon-lab/ecotrack/pkg/domain/types"
	"github.com/secmon-lab/ecotrack/pkg/service/chart"
	"github.com/secmon-lab/ecotrack/pkg/usecase"
)

func ptr[T any](v T) *T {
	return &v
}

func newRenderer() (*usecase.Renderer, *chart.Factory) {
	factory := chart.NewFactory()
	return usecase.NewRenderer(chart.NewRegistry(factory), model.DefaultCategoryStyles()), factory
}

// healthyBackend returns a mock answering every statistics endpoint with fixed data
func healthyBackend() *mocks.StatsBackendMock {
	return &mocks.StatsBackendMock{
		OverviewFunc: func(ctx context.Context) (*model.OverviewResponse, error) {
			return &model.OverviewResponse{
				TotalReports: 42,
				ByStatus: []model.StatusCount{
					{Status: types.ReportStatusPending, Count: 10},
					{Status: types.ReportStatusInProgress, Count: 7},
					{Status: types.ReportStatusResolved, Count: 25},
				},
				BySeverity: []model.SeverityStat{
					{Severity: types.SeverityLow, Count: 20},
					{Severity: types.SeverityHigh, Count: 19},
					{Severity: types.SeverityCritical, Count: 3},
				},
			}, nil
		},
		CategoriesFunc: func(ctx context.Context) ([]model.CategoryStat, error) {
			return []model.CategoryStat{
				{Name: "Pollution", Icon: "🏭", Count: 30},
				{Name: "Wildlife", Icon: "🦊", Count: 12},
			}, nil
		},
		TrendsFunc: func(ctx context.Context) ([]model.TrendPoint, error) {
			return []model.TrendPoint{{Month: "2024-01", Count: 5}, {Month: "2024-02", Count: 9}}, nil
		},
		LocationsFunc: func(ctx context.Context) ([]model.LocationStat, error) {
			return []model.LocationStat{{Name: "River Park", Count: 8}}, nil
		},
		RecentReportsFunc: func(ctx context.Context, limit int) ([]model.Report, error) {
			return []model.Report{
				{ID: 7, Title: "Oil spill", Category: "Water Bodies", CategoryIcon: "💧", Location: ptr("Harbor"),
					Severity: types.SeverityCritical, Status: types.ReportStatusPending, CreatedAt: "2024-03-05 10:00:00"},
				{ID: 6, Title: "Illegal dumping", Category: "Waste Management", CategoryIcon: "🗑️",
					Severity: types.SeverityMedium, Status: types.ReportStatusResolved, CreatedAt: "2024-03-01T08:00:00Z"},
			}, nil
		},
		MilestonesFunc: func(ctx context.Context) ([]model.Milestone, error) {
			return []model.Milestone{
				{Title: "First 10 reports", CurrentCount: 42, TargetCount: 10, Achieved: true},
				{Title: "100 reports", CurrentCount: 42, TargetCount: 100},
			}, nil
		},
	}
}

// countingRefresher counts RefreshAll calls
type countingRefresher struct {
	calls atomic.Int64
	hook  func(ctx context.Context)
}

func (r *countingRefresher) RefreshAll(ctx context.Context) *usecase.RefreshResult {
	r.calls.Add(1)
	if r.hook != nil {
		r.hook(ctx)
	}
	return &usecase.RefreshResult{}
}

// waitCalls blocks until RefreshAll has been called want times
func (r *countingRefresher) waitCalls(t *testing.T, want int64) {
	t.Helper()

	deadline := time.After(time.Second)
	for r.calls.Load() < want {
		select {
		case <-deadline:
			t.Fatalf("RefreshAll called %d times, want %d", r.calls.Load(), want)
		case <-time.After(5 * time.Millisecond):
		}
	}
}
