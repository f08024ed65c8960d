package state

import (
	"sync"
	"time"

	"benchdash/internal/telemetry"
)

// Status classifies a console notification.
type Status string

const (
	StatusOK    Status = "ok"
	StatusAlert Status = "alert"
	StatusError Status = "error"
)

// Notification is the single transient status line the console shows.
type Notification struct {
	Status Status
	Text   string
}

// DefaultTTL is how long a notification stays up before auto-clearing.
const DefaultTTL = 4 * time.Second

// NotificationHolder keeps at most one notification and auto-clears
// it after a fixed delay. Each Show bumps a generation counter; the
// delayed clear only applies while its generation is still current,
// so re-arming never lets a stale timer wipe a newer notification.
type NotificationHolder struct {
	mu    sync.Mutex
	cur   *Notification
	gen   uint64
	ttl   time.Duration
	timer *time.Timer

	metrics *telemetry.Metrics
	onShow  func(Notification)
}

// NewNotificationHolder creates a holder. A zero ttl falls back to
// DefaultTTL; metrics may be nil.
func NewNotificationHolder(ttl time.Duration, metrics *telemetry.Metrics) *NotificationHolder {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &NotificationHolder{ttl: ttl, metrics: metrics}
}

// OnShow registers a hook invoked after each Show, outside the
// holder's lock. Used by the UI and the outbound notifier bridge.
func (h *NotificationHolder) OnShow(fn func(Notification)) {
	h.mu.Lock()
	h.onShow = fn
	h.mu.Unlock()
}

// Show overwrites any current notification and restarts the
// auto-clear timer.
func (h *NotificationHolder) Show(status Status, text string) {
	n := Notification{Status: status, Text: text}

	h.mu.Lock()
	h.gen++
	gen := h.gen
	h.cur = &n
	if h.timer != nil {
		h.timer.Stop()
	}
	h.timer = time.AfterFunc(h.ttl, func() { h.expire(gen) })
	hook := h.onShow
	h.mu.Unlock()

	if h.metrics != nil {
		h.metrics.NotificationsShown.WithLabelValues(string(status)).Inc()
	}
	if hook != nil {
		hook(n)
	}
}

// Dismiss clears the notification immediately, regardless of any
// pending timer.
func (h *NotificationHolder) Dismiss() {
	h.mu.Lock()
	h.gen++
	if h.timer != nil {
		h.timer.Stop()
		h.timer = nil
	}
	h.cur = nil
	h.mu.Unlock()
}

// Current returns the visible notification, if any.
func (h *NotificationHolder) Current() (Notification, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cur == nil {
		return Notification{}, false
	}
	return *h.cur, true
}

// expire is the delayed clear. A stale generation means a newer Show
// or Dismiss already superseded this timer.
func (h *NotificationHolder) expire(gen uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if gen != h.gen {
		return
	}
	h.cur = nil
	h.timer = nil
}
