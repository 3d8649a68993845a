package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/ecotrack/pkg/domain/interfaces"
	"github.com/secmon-lab/ecotrack/pkg/domain/model"
	"github.com/secmon-lab/ecotrack/pkg/domain/types"
	"golang.org/x/sync/errgroup"
)

// RefreshResult summarizes one refresh cycle
type RefreshResult struct {
	CycleID    types.CycleID             `json:"cycle_id"`
	StartedAt  time.Time                 `json:"started_at"`
	FinishedAt time.Time                 `json:"finished_at"`
	Succeeded  []types.Endpoint          `json:"succeeded"`
	Failed     map[types.Endpoint]string `json:"failed"`

	errs map[types.Endpoint]error
}

// AllFailed reports whether no endpoint could be refreshed
func (r *RefreshResult) AllFailed() bool {
	return len(r.Succeeded) == 0 && len(r.Failed) > 0
}

// Err returns the error recorded for ep, if any
func (r *RefreshResult) Err(ep types.Endpoint) error {
	return r.errs[ep]
}

// Loader fetches every statistics endpoint and hands each payload to the renderer
type Loader struct {
	backend     interfaces.StatsBackend
	renderer    *Renderer
	recentLimit int
	watcher     *MilestoneWatcher
}

// LoaderOption configures Loader
type LoaderOption func(*Loader)

// WithRecentLimit sets the number of recent reports requested per cycle
func WithRecentLimit(limit int) LoaderOption {
	return func(l *Loader) {
		if limit > 0 {
			l.recentLimit = limit
		}
	}
}

// WithMilestoneWatcher notifies watcher after milestones are rendered
func WithMilestoneWatcher(watcher *MilestoneWatcher) LoaderOption {
	return func(l *Loader) {
		l.watcher = watcher
	}
}

// NewLoader creates a new Loader
func NewLoader(backend interfaces.StatsBackend, renderer *Renderer, opts ...LoaderOption) *Loader {
	l := &Loader{
		backend:     backend,
		renderer:    renderer,
		recentLimit: model.DefaultRecentLimit,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ Refresher = (*Loader)(nil)

type loadTask struct {
	endpoint types.Endpoint
	run      func(ctx context.Context) error
}

func (l *Loader) tasks() []loadTask {
	return []loadTask{
		{types.EndpointOverview, l.loadOverview},
		{types.EndpointCategories, l.loadCategories},
		{types.EndpointTrends, l.loadTrends},
		{types.EndpointLocations, l.loadLocations},
		{types.EndpointRecent, l.loadRecent},
		{types.EndpointMilestones, l.loadMilestones},
	}
}

// RefreshAll fetches all endpoints concurrently. A failing endpoint leaves its own
// surface untouched and never blocks the others. It returns once every fetch has settled.
func (l *Loader) RefreshAll(ctx context.Context) *RefreshResult {
	cycleID := types.NewCycleID()
	ctx = model.WithCycleID(ctx, cycleID)
	logger := ctxlog.From(ctx).With("cycle_id", cycleID.String())
	ctx = ctxlog.With(ctx, logger)

	result := &RefreshResult{
		CycleID:   cycleID,
		StartedAt: time.Now(),
		Succeeded: []types.Endpoint{},
		Failed:    make(map[types.Endpoint]string),
		errs:      make(map[types.Endpoint]error),
	}

	var (
		mu sync.Mutex
		eg errgroup.Group
	)
	for _, task := range l.tasks() {
		eg.Go(func() error {
			err := task.run(ctx)
			l.renderer.MarkEndpoint(task.endpoint, err)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				logger.Warn("Failed to refresh dashboard section",
					"endpoint", task.endpoint,
					"error", err,
				)
				result.Failed[task.endpoint] = err.Error()
				result.errs[task.endpoint] = err
				return nil
			}
			result.Succeeded = append(result.Succeeded, task.endpoint)
			return nil
		})
	}
	_ = eg.Wait()

	sort.Slice(result.Succeeded, func(i, j int) bool {
		return result.Succeeded[i] < result.Succeeded[j]
	})
	result.FinishedAt = time.Now()

	logger.Info("Dashboard refreshed",
		"succeeded", len(result.Succeeded),
		"failed", len(result.Failed),
		"duration", result.FinishedAt.Sub(result.StartedAt),
	)
	return result
}

func (l *Loader) loadOverview(ctx context.Context) error {
	overview, err := l.backend.Overview(ctx)
	if err != nil {
		return err
	}
	l.renderer.RenderOverview(overview)
	return l.renderer.RenderSeverity(overview.SeverityBreakdown())
}

func (l *Loader) loadCategories(ctx context.Context) error {
	stats, err := l.backend.Categories(ctx)
	if err != nil {
		return err
	}
	return l.renderer.RenderCategories(stats)
}

func (l *Loader) loadTrends(ctx context.Context) error {
	points, err := l.backend.Trends(ctx)
	if err != nil {
		return err
	}
	return l.renderer.RenderTrends(points)
}

func (l *Loader) loadLocations(ctx context.Context) error {
	stats, err := l.backend.Locations(ctx)
	if err != nil {
		return err
	}
	return l.renderer.RenderLocations(stats)
}

func (l *Loader) loadRecent(ctx context.Context) error {
	reports, err := l.backend.RecentReports(ctx, l.recentLimit)
	if err != nil {
		return err
	}
	l.renderer.RenderRecentReports(reports)
	return nil
}

func (l *Loader) loadMilestones(ctx context.Context) error {
	milestones, err := l.backend.Milestones(ctx)
	if err != nil {
		return err
	}
	l.renderer.RenderMilestones(milestones)

	if l.watcher != nil {
		l.watcher.Observe(ctx, milestones)
	}
	return nil
}
