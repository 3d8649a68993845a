package usecase

import (
	"context"
	"sync"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/ecotrack/pkg/domain/interfaces"
	"github.com/secmon-lab/ecotrack/pkg/domain/model"
	"github.com/secmon-lab/ecotrack/pkg/utils/async"
)

// MilestoneWatcher announces milestones whose achieved flag flipped to true.
// State lives in memory only, so a restart re-seeds it.
type MilestoneWatcher struct {
	notifier interfaces.MilestoneNotifier

	mu       sync.Mutex
	seeded   bool
	achieved map[string]bool
}

// NewMilestoneWatcher creates a watcher sending announcements through notifier
func NewMilestoneWatcher(notifier interfaces.MilestoneNotifier) *MilestoneWatcher {
	return &MilestoneWatcher{
		notifier: notifier,
		achieved: make(map[string]bool),
	}
}

// Observe records the latest milestones and returns the ones that became achieved
// since the previous observation. The first observation only seeds the state.
func (w *MilestoneWatcher) Observe(ctx context.Context, milestones []model.Milestone) []model.Milestone {
	w.mu.Lock()
	defer w.mu.Unlock()

	var flipped []model.Milestone
	for _, m := range milestones {
		key := milestoneKey(m)
		achieved := bool(m.Achieved)
		if w.seeded && achieved && !w.achieved[key] {
			flipped = append(flipped, m)
		}
		w.achieved[key] = achieved
	}
	w.seeded = true

	for _, m := range flipped {
		ctxlog.From(ctx).Info("Milestone achieved", "title", m.Title, "target", m.TargetCount)
		async.Dispatch(ctx, func(ctx context.Context) error {
			return w.notifier.NotifyMilestoneAchieved(ctx, m)
		})
	}
	return flipped
}

func milestoneKey(m model.Milestone) string {
	if m.MilestoneType == "" {
		return m.Title
	}
	return m.MilestoneType + "/" + m.Title
}
