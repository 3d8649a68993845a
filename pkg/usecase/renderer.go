package usecase

import (
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/ecotrack/pkg/domain/model"
	"github.com/secmon-lab/ecotrack/pkg/domain/types"
	"github.com/secmon-lab/ecotrack/pkg/service/chart"
)

// Renderer owns the dashboard view state. Every Render method fully replaces its slot.
type Renderer struct {
	mu         sync.RWMutex
	state      *model.Dashboard
	registry   *chart.Registry
	categories *model.CategoryStyles
	now        func() time.Time
}

// RendererOption configures Renderer
type RendererOption func(*Renderer)

// WithClock sets the time source used for UpdatedAt and endpoint status
func WithClock(now func() time.Time) RendererOption {
	return func(r *Renderer) {
		r.now = now
	}
}

// NewRenderer creates a renderer drawing charts through registry
func NewRenderer(registry *chart.Registry, categories *model.CategoryStyles, opts ...RendererOption) *Renderer {
	if categories == nil {
		categories = model.DefaultCategoryStyles()
	}

	r := &Renderer{
		state:      model.NewDashboard(),
		registry:   registry,
		categories: categories,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RenderOverview writes the four summary counters
func (r *Renderer) RenderOverview(overview *model.OverviewResponse) {
	stats := overview.Stats()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.state.Counters = model.Counters{
		TotalReports:    stats.Total,
		PendingReports:  stats.Pending,
		ResolvedReports: stats.Resolved,
		CriticalReports: stats.Critical,
	}
	r.touch()
}

// RenderCategories draws the category doughnut
func (r *Renderer) RenderCategories(stats []model.CategoryStat) error {
	return r.renderChart(types.ChartCategory, chart.CategorySpec(stats))
}

// RenderTrends draws the monthly trend line
func (r *Renderer) RenderTrends(points []model.TrendPoint) error {
	return r.renderChart(types.ChartTrends, chart.TrendSpec(points))
}

// RenderLocations draws the per-location bars
func (r *Renderer) RenderLocations(stats []model.LocationStat) error {
	return r.renderChart(types.ChartLocation, chart.LocationSpec(stats))
}

// RenderSeverity draws the per-severity bars
func (r *Renderer) RenderSeverity(stats []model.SeverityStat) error {
	return r.renderChart(types.ChartSeverity, chart.SeveritySpec(stats))
}

func (r *Renderer) renderChart(name types.ChartName, spec *model.ChartSpec) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	inst, err := r.registry.Render(name, spec)
	if err != nil {
		// the canvas lost its previous chart, so its spec must not be served either
		delete(r.state.Charts, name)
		r.touch()
		return goerr.Wrap(err, "failed to render chart", goerr.V("chart", name))
	}
	r.state.Charts[name] = inst.Spec()
	r.touch()
	return nil
}

// RenderRecentReports replaces the reports table, keeping the input order
func (r *Renderer) RenderRecentReports(reports []model.Report) {
	rows := make([]model.ReportRow, 0, len(reports))
	for _, report := range reports {
		rows = append(rows, r.reportRow(report))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.state.Reports = rows
	r.touch()
}

func (r *Renderer) reportRow(report model.Report) model.ReportRow {
	label := report.Category
	if report.CategoryIcon != "" {
		label = report.CategoryIcon + " " + report.Category
	}

	return model.ReportRow{
		ID:            "#" + report.ID.String(),
		Title:         report.Title,
		CategoryLabel: label,
		CategoryClass: r.categories.BadgeClass(report.Category),
		Location:      report.LocationOrPlaceholder(),
		Severity:      report.Severity.String(),
		SeverityClass: report.Severity.BadgeClass(),
		Status:        report.Status.String(),
		StatusClass:   report.Status.BadgeClass(),
		Date:          model.FormatDate(report.CreatedAt),
	}
}

// RenderMilestones replaces the milestone cards
func (r *Renderer) RenderMilestones(milestones []model.Milestone) {
	cards := make([]model.MilestoneCard, 0, len(milestones))
	for _, m := range milestones {
		card := model.MilestoneCard{
			Title:         m.Title,
			Achieved:      bool(m.Achieved),
			Description:   m.Description,
			Progress:      m.ProgressPercentage(),
			ProgressLabel: m.ProgressLabel(),
			CurrentCount:  m.CurrentCount,
			TargetCount:   m.TargetCount,
			StateLabel:    model.MilestonePendingLabel,
		}
		if card.Achieved {
			card.Title = m.Title + " " + model.MilestoneAchievedMarker
			card.StateLabel = model.MilestoneAchievedLabel
		}
		cards = append(cards, card)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.state.Milestones = cards
	r.touch()
}

// MarkEndpoint records the outcome of the latest fetch of ep
func (r *Renderer) MarkEndpoint(ep types.Endpoint, fetchErr error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	status := r.state.Endpoints[ep]
	status.Endpoint = ep
	status.CheckedAt = now
	if fetchErr != nil {
		status.OK = false
		status.Error = fetchErr.Error()
	} else {
		status.OK = true
		status.Error = ""
		status.LastSuccess = now
	}
	r.state.Endpoints[ep] = status
}

// Snapshot returns a deep copy of the view state
func (r *Renderer) Snapshot() *model.Dashboard {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state.Copy()
}

// Chart returns the spec currently drawn on the canvas
func (r *Renderer) Chart(name types.ChartName) (*model.ChartSpec, error) {
	if !name.IsValid() {
		return nil, goerr.Wrap(model.ErrChartNotRendered, "unknown chart", goerr.V("chart", name))
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	spec, ok := r.state.Charts[name]
	if !ok {
		return nil, goerr.Wrap(model.ErrChartNotRendered, "chart has no data yet", goerr.V("chart", name))
	}
	return spec.Copy(), nil
}

func (r *Renderer) touch() {
	r.state.UpdatedAt = r.now()
}
