package slack

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/ecotrack/pkg/domain/interfaces"
	"github.com/secmon-lab/ecotrack/pkg/domain/model"
	"github.com/slack-go/slack"
)

// MilestoneNotifier posts milestone announcements to a fixed channel
type MilestoneNotifier struct {
	service      *Service
	channelID    string
	dashboardURL string
}

var _ interfaces.MilestoneNotifier = (*MilestoneNotifier)(nil)

// NewMilestoneNotifier creates a notifier posting to channelID. dashboardURL is linked
// from each message when set.
func NewMilestoneNotifier(service *Service, channelID, dashboardURL string) (*MilestoneNotifier, error) {
	if service == nil {
		return nil, goerr.New("slack service is required")
	}
	if channelID == "" {
		return nil, goerr.New("slack channel is required")
	}

	return &MilestoneNotifier{
		service:      service,
		channelID:    channelID,
		dashboardURL: dashboardURL,
	}, nil
}

// NotifyMilestoneAchieved posts one announcement for m
func (n *MilestoneNotifier) NotifyMilestoneAchieved(ctx context.Context, m model.Milestone) error {
	channel, ts, err := n.service.PostMessage(ctx, n.channelID,
		slack.MsgOptionText(MilestoneText(m), false),
		slack.MsgOptionBlocks(BuildMilestoneBlocks(m, n.dashboardURL)...),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to announce milestone", goerr.V("title", m.Title))
	}

	ctxlog.From(ctx).Info("Milestone announced",
		"title", m.Title,
		"channel", channel,
		"ts", ts,
	)
	return nil
}
