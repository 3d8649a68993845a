package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/ecotrack/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/ecotrack/pkg/domain/model"
	"github.com/secmon-lab/ecotrack/pkg/usecase"
)

func TestMilestoneWatcher(t *testing.T) {
	ctx := context.Background()

	notified := make(chan model.Milestone, 10)
	notifier := &mocks.MilestoneNotifierMock{
		NotifyMilestoneAchievedFunc: func(ctx context.Context, milestone model.Milestone) error {
			notified <- milestone
			return nil
		},
	}
	watcher := usecase.NewMilestoneWatcher(notifier)

	// First observation only seeds the state
	flipped := watcher.Observe(ctx, []model.Milestone{
		{Title: "First 10", Achieved: true},
		{Title: "First 100", Achieved: false},
	})
	gt.A(t, flipped).Length(0)

	flipped = watcher.Observe(ctx, []model.Milestone{
		{Title: "First 10", Achieved: true},
		{Title: "First 100", Achieved: true},
		{Title: "Brand new", Achieved: true},
	})
	gt.A(t, flipped).Length(2)
	gt.Equal(t, flipped[0].Title, "First 100")
	gt.Equal(t, flipped[1].Title, "Brand new")

	got := map[string]bool{}
	for i := 0; i < 2; i++ {
		select {
		case m := <-notified:
			got[m.Title] = true
		case <-time.After(time.Second):
			t.Fatal("notification was not sent")
		}
	}
	gt.True(t, got["First 100"])
	gt.True(t, got["Brand new"])

	// Already announced milestones stay quiet
	flipped = watcher.Observe(ctx, []model.Milestone{
		{Title: "First 100", Achieved: true},
	})
	gt.A(t, flipped).Length(0)
}

func TestLoaderNotifiesWatcher(t *testing.T) {
	ctx := context.Background()

	notified := make(chan model.Milestone, 10)
	notifier := &mocks.MilestoneNotifierMock{
		NotifyMilestoneAchievedFunc: func(ctx context.Context, milestone model.Milestone) error {
			notified <- milestone
			return nil
		},
	}

	backend := healthyBackend()
	renderer, _ := newRenderer()
	loader := usecase.NewLoader(backend, renderer,
		usecase.WithMilestoneWatcher(usecase.NewMilestoneWatcher(notifier)))

	loader.RefreshAll(ctx)

	backend.MilestonesFunc = func(ctx context.Context) ([]model.Milestone, error) {
		return []model.Milestone{
			{Title: "First 10 reports", CurrentCount: 42, TargetCount: 10, Achieved: true},
			{Title: "100 reports", CurrentCount: 100, TargetCount: 100, Achieved: true},
		}, nil
	}
	loader.RefreshAll(ctx)

	select {
	case m := <-notified:
		gt.Equal(t, m.Title, "100 reports")
	case <-time.After(time.Second):
		t.Fatal("notification was not sent")
	}
}
