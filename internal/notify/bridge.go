package notify

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/viper"

	"benchdash/internal/state"
)

// Bridge forwards alert and error notifications from the in-app
// holder to any configured external notifiers. OK notifications stay
// local; nobody wants a Slack ping for "saved".
type Bridge struct {
	notifiers []Notifier
	timeout   time.Duration
}

// NewBridge builds a bridge from configuration. With no provider
// configured the bridge is inert.
func NewBridge() *Bridge {
	b := &Bridge{timeout: 10 * time.Second}

	if viper.GetBool("notifications.slack.enabled") {
		botToken := os.Getenv("SLACK_BOT_USER_TOKEN")
		if botToken == "" {
			slog.Warn("SLACK_BOT_USER_TOKEN not set, slack notifications disabled")
		} else {
			b.notifiers = append(b.notifiers,
				NewSlackNotifier(botToken, viper.GetString("notifications.slack.channel")))
		}
	}

	return b
}

// Attach subscribes the bridge to a notification holder.
func (b *Bridge) Attach(h *state.NotificationHolder) {
	h.OnShow(b.Forward)
}

// Forward delivers one notification to all notifiers. Delivery is
// fire-and-forget; failures are logged, never surfaced to the holder.
func (b *Bridge) Forward(n state.Notification) {
	if len(b.notifiers) == 0 {
		return
	}
	if n.Status != state.StatusAlert && n.Status != state.StatusError {
		return
	}

	for _, notifier := range b.notifiers {
		go func(nt Notifier) {
			ctx, cancel := context.WithTimeout(context.Background(), b.timeout)
			defer cancel()
			if err := nt.Send(ctx, n.Status, n.Text); err != nil {
				slog.Error("Failed to forward notification", "error", err)
			}
		}(notifier)
	}
}
