package interfaces

//go:generate moq -out mocks/backend_mock.go -pkg mocks . StatsBackend

import (
	"context"

	"github.com/secmon-lab/ecotrack/pkg/domain/model"
)

// StatsBackend is the REST statistics backend the dashboard consumes
type StatsBackend interface {
	// Statistics endpoints
	Overview(ctx context.Context) (*model.OverviewResponse, error)
	Categories(ctx context.Context) ([]model.CategoryStat, error)
	Trends(ctx context.Context) ([]model.TrendPoint, error)
	Locations(ctx context.Context) ([]model.LocationStat, error)
	RecentReports(ctx context.Context, limit int) ([]model.Report, error)
	Milestones(ctx context.Context) ([]model.Milestone, error)

	// CreateReport submits a new report
	CreateReport(ctx context.Context, draft *model.ReportDraft) (*model.CreatedReport, error)
}
