package usecase

import (
	"context"
	"runtime/debug"
	"sync"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// DefaultRefreshInterval is the period between two refresh cycles
const DefaultRefreshInterval = 30 * time.Second

// Scheduler runs refresh cycles periodically. A tick never waits for the previous
// cycle, so slow cycles may overlap and the last one to render a surface wins.
type Scheduler struct {
	refresher Refresher
	interval  time.Duration

	mu      sync.Mutex
	started bool
	stopped bool
	stop    chan struct{}
	done    chan struct{}
	cycles  sync.WaitGroup
}

// NewScheduler creates a scheduler. A non-positive interval falls back to DefaultRefreshInterval.
func NewScheduler(refresher Refresher, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	return &Scheduler{
		refresher: refresher,
		interval:  interval,
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// Interval returns the refresh period
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Start runs one cycle immediately and then one per tick until Stop is called or ctx is done
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return goerr.New("scheduler already started")
	}
	s.started = true

	ctxlog.From(ctx).Info("Starting refresh scheduler", "interval", s.interval)

	s.launch(ctx)
	go s.loop(ctx)
	return nil
}

func (s *Scheduler) loop(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stop:
			return
		case <-ticker.C:
			s.launch(ctx)
		}
	}
}

func (s *Scheduler) launch(ctx context.Context) {
	s.cycles.Add(1)
	go func() {
		defer s.cycles.Done()
		defer func() {
			if r := recover(); r != nil {
				ctxlog.From(ctx).Error("Panic in refresh cycle",
					"recover", r,
					"stack", string(debug.Stack()),
				)
			}
		}()
		s.refresher.RefreshAll(ctx)
	}()
}

// Stop stops the ticker and waits for in-flight cycles. Calling it more than once is a no-op.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.started || s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	close(s.stop)
	s.mu.Unlock()

	<-s.done
	s.cycles.Wait()
}

// RunOnce runs a single cycle synchronously
func (s *Scheduler) RunOnce(ctx context.Context) *RefreshResult {
	return s.refresher.RefreshAll(ctx)
}
