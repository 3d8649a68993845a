package usecase

import (
	"context"

	"github.com/secmon-lab/ecotrack/pkg/domain/model"
	"github.com/secmon-lab/ecotrack/pkg/domain/types"
)

// Refresher runs one dashboard refresh cycle
type Refresher interface {
	// RefreshAll fetches every endpoint and renders what arrived
	RefreshAll(ctx context.Context) *RefreshResult
}

// FormSubmitter handles a report form submission
type FormSubmitter interface {
	Submit(ctx context.Context, values model.FormValues) model.FormState
}

// DashboardReader exposes the rendered view state
type DashboardReader interface {
	Snapshot() *model.Dashboard
	Chart(name types.ChartName) (*model.ChartSpec, error)
}

var _ DashboardReader = (*Renderer)(nil)
