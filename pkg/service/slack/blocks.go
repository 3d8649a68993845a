package slack

import (
	"fmt"

	"github.com/secmon-lab/ecotrack/pkg/domain/model"
	"github.com/slack-go/slack"
)

// MilestoneText is the plain-text fallback of a milestone announcement
func MilestoneText(m model.Milestone) string {
	return fmt.Sprintf("%s Milestone achieved: %s", model.MilestoneAchievedMarker, m.Title)
}

// BuildMilestoneBlocks builds the Block Kit layout of a milestone announcement
func BuildMilestoneBlocks(m model.Milestone, dashboardURL string) []slack.Block {
	blocks := []slack.Block{
		slack.NewHeaderBlock(
			slack.NewTextBlockObject(slack.PlainTextType, MilestoneText(m), true, false),
		),
	}

	if m.Description != "" {
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, m.Description, false, false),
			nil, nil,
		))
	}

	fields := []*slack.TextBlockObject{
		slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf("*Progress*\n%d / %d (%s)", m.CurrentCount, m.TargetCount, m.ProgressLabel()), false, false),
	}
	if m.MilestoneType != "" {
		fields = append(fields, slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf("*Type*\n%s", m.MilestoneType), false, false))
	}
	blocks = append(blocks, slack.NewSectionBlock(nil, fields, nil))

	if dashboardURL != "" {
		blocks = append(blocks, slack.NewContextBlock("",
			slack.NewTextBlockObject(slack.MarkdownType,
				fmt.Sprintf("<%s|Open the dashboard>", dashboardURL), false, false),
		))
	}

	return blocks
}
