package notify

import (
	"context"

	"benchdash/internal/state"
)

// Notifier delivers a console notification to an external channel.
type Notifier interface {
	Send(ctx context.Context, status state.Status, text string) error
}
