package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/domain/types"
	slackSvc "github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/service/slack"
)

// Slack holds Slack configuration for the weekly digest
type Slack struct {
	OAuthToken string
	ChannelID  string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-oauth-token",
			Usage:       "Slack bot token with chat:write scope",
			Category:    "Slack",
			Sources:     cli.EnvVars("PETSHOP_SLACK_OAUTH_TOKEN"),
			Destination: &s.OAuthToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Slack channel ID the weekly digest is posted to",
			Category:    "Slack",
			Sources:     cli.EnvVars("PETSHOP_SLACK_CHANNEL"),
			Destination: &s.ChannelID,
		},
	}
}

// Configure creates a Slack service, or nil if no token is set
func (s *Slack) Configure() *slackSvc.Service {
	if !s.IsConfigured() {
		return nil
	}
	return slackSvc.New(s.OAuthToken)
}

// Channel returns the digest channel
func (s *Slack) Channel() types.SlackChannelID {
	return types.SlackChannelID(s.ChannelID)
}

// IsConfigured checks if Slack is properly configured
func (s *Slack) IsConfigured() bool {
	return s.OAuthToken != "" && s.ChannelID != ""
}

// LogValue returns structured log value
func (s Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_oauth_token", s.OAuthToken != ""),
		slog.String("channel", s.ChannelID),
	)
}
