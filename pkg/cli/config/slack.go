package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/snooze/pkg/service/slack"
	"github.com/urfave/cli/v3"
)

// Slack holds configuration for posting run reports to Slack
type Slack struct {
	botToken  string
	channelID string
}

// Flags returns CLI flags for Slack configuration
func (x *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-bot-token",
			Usage:       "Slack Bot User OAuth Token (chat:write) for run reports",
			Category:    "Slack",
			Destination: &x.botToken,
			Sources:     cli.EnvVars("SNOOZE_SLACK_BOT_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Slack channel ID that receives run reports",
			Category:    "Slack",
			Destination: &x.channelID,
			Sources:     cli.EnvVars("SNOOZE_SLACK_CHANNEL"),
		},
	}
}

// LogAttrs returns log attributes for the Slack configuration (secrets hidden)
func (x *Slack) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.String("channel_id", x.channelID),
		slog.Bool("bot_token_set", x.botToken != ""),
	}
}

// IsConfigured returns true if Slack reporting is enabled
func (x *Slack) IsConfigured() bool {
	return x.botToken != "" || x.channelID != ""
}

// ChannelID returns the report channel
func (x *Slack) ChannelID() string {
	return x.channelID
}

// Configure creates a Slack service. Returns nil if Slack is not configured.
func (x *Slack) Configure() (slack.Service, error) {
	if !x.IsConfigured() {
		return nil, nil
	}
	if x.botToken == "" || x.channelID == "" {
		return nil, goerr.Wrap(ErrIncompleteSlackCfg, "set both --slack-bot-token and --slack-channel")
	}

	svc, err := slack.New(x.botToken)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Slack service")
	}
	return svc, nil
}
