package notify

import (
	"context"
	"fmt"

	"github.com/slack-go/slack"

	"benchdash/internal/state"
)

// SlackNotifier posts console notifications to a Slack channel.
type SlackNotifier struct {
	client  *slack.Client
	channel string
}

// NewSlackNotifier creates a Slack notifier using a bot token.
func NewSlackNotifier(botToken, channel string) *SlackNotifier {
	if channel == "" {
		channel = "#general"
	}
	return &SlackNotifier{
		client:  slack.New(botToken),
		channel: channel,
	}
}

// Send posts the notification text, prefixed by its status.
func (s *SlackNotifier) Send(ctx context.Context, status state.Status, text string) error {
	msg := fmt.Sprintf("%s %s", statusEmoji(status), text)
	_, _, err := s.client.PostMessageContext(ctx, s.channel, slack.MsgOptionText(msg, false))
	if err != nil {
		return fmt.Errorf("failed to send slack notification: %w", err)
	}
	return nil
}

func statusEmoji(status state.Status) string {
	switch status {
	case state.StatusOK:
		return ":white_check_mark:"
	case state.StatusAlert:
		return ":warning:"
	case state.StatusError:
		return ":rotating_light:"
	default:
		return ":speech_balloon:"
	}
}
