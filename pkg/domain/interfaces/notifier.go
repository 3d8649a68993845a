package interfaces

//go:generate moq -out mocks/notifier_mock.go -pkg mocks . MilestoneNotifier

import (
	"context"

	"github.com/secmon-lab/ecotrack/pkg/domain/model"
)

// MilestoneNotifier announces milestones that became achieved
type MilestoneNotifier interface {
	NotifyMilestoneAchieved(ctx context.Context, milestone model.Milestone) error
}
