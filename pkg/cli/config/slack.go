package config

import (
	"log/slog"

	"github.com/secmon-lab/ecotrack/pkg/domain/interfaces"
	slackSvc "github.com/secmon-lab/ecotrack/pkg/service/slack"
	"github.com/urfave/cli/v3"
)

// Slack holds Slack configuration of the milestone announcements
type Slack struct {
	OAuthToken string
	ChannelID  string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-oauth-token",
			Usage:       "Slack OAuth token for milestone announcements",
			Category:    "Slack",
			Sources:     cli.EnvVars("ECOTRACK_SLACK_OAUTH_TOKEN"),
			Destination: &s.OAuthToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel-id",
			Usage:       "Slack channel ID receiving milestone announcements",
			Category:    "Slack",
			Sources:     cli.EnvVars("ECOTRACK_SLACK_CHANNEL_ID"),
			Destination: &s.ChannelID,
		},
	}
}

// IsConfigured checks if Slack announcements are enabled
func (s *Slack) IsConfigured() bool {
	return s.OAuthToken != "" && s.ChannelID != ""
}

// ConfigureOptional creates the milestone notifier if configured, returns nil if not
func (s *Slack) ConfigureOptional(logger *slog.Logger, dashboardURL string) (interfaces.MilestoneNotifier, error) {
	if !s.IsConfigured() {
		logger.Info("Slack not configured - milestone announcements are disabled")
		return nil, nil
	}

	logger.Info("Configuring Slack milestone announcements", "channel", s.ChannelID)
	notifier, err := slackSvc.NewMilestoneNotifier(slackSvc.New(s.OAuthToken), s.ChannelID, dashboardURL)
	if err != nil {
		return nil, err
	}
	return notifier, nil
}

// LogValue returns structured log value
func (s Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_oauth_token", s.OAuthToken != ""),
		slog.String("channel_id", s.ChannelID),
	)
}
