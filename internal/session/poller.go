package session

import (
	"context"
	"log/slog"
	"time"

	"benchdash/internal/telemetry"
)

// DefaultInterval is the credential re-check cadence. One second
// bounds the staleness window for logins performed by another process
// sharing the store.
const DefaultInterval = time.Second

// Poller re-reads the durable credential store and promotes a freshly
// written, well-formed token into the in-memory session. It exists so
// a login performed elsewhere against the same store is picked up
// without any cross-process messaging.
type Poller struct {
	cell     *Cell
	interval time.Duration
	metrics  *telemetry.Metrics
}

// NewPoller creates a poller for cell. A zero interval falls back to
// DefaultInterval; metrics may be nil.
func NewPoller(cell *Cell, interval time.Duration, metrics *telemetry.Metrics) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Poller{cell: cell, interval: interval, metrics: metrics}
}

// Start runs the polling loop until ctx is canceled.
func (p *Poller) Start(ctx context.Context) {
	slog.Debug("Starting credential poller", "interval", p.interval)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Debug("Stopping credential poller")
			return
		case <-ticker.C:
			p.tick()
		}
	}
}

// tick performs a single revalidation pass. Absent, malformed, or
// structurally invalid stored credentials are skipped silently.
func (p *Poller) tick() {
	if p.metrics != nil {
		p.metrics.PollTicks.Inc()
	}

	if p.cell.Get().Authenticated() {
		return
	}

	stored, err := p.cell.store.Read()
	if err != nil {
		return
	}
	if stored.Token == "" || !WellFormedToken(stored.Token) {
		return
	}

	p.cell.adopt(stored)
	if p.metrics != nil {
		p.metrics.PollPromotions.Inc()
	}
	slog.Info("Promoted stored session", "user", stored.User.Slug)
}
