package state

import (
	"sync"

	"benchdash/internal/telemetry"
)

// Redirect holds an optional pending navigation target. A target is
// consumed exactly once, when the current path differs from it; a
// target equal to the current path stays pending, so a redirect loop
// is never emitted.
type Redirect struct {
	mu      sync.Mutex
	pending string
	set     bool

	metrics *telemetry.Metrics
}

// NewRedirect creates a navigation intent holder; metrics may be nil.
func NewRedirect(metrics *telemetry.Metrics) *Redirect {
	return &Redirect{metrics: metrics}
}

// Request stores path as the pending navigation target, replacing any
// previous one.
func (r *Redirect) Request(path string) {
	r.mu.Lock()
	r.pending = path
	r.set = true
	r.mu.Unlock()
}

// Resolve compares the pending target against the current path. When
// they differ it returns the target once and clears it in the same
// step; when they match, or nothing is pending, it emits nothing.
func (r *Redirect) Resolve(current string) (string, bool) {
	r.mu.Lock()
	if !r.set || r.pending == current {
		r.mu.Unlock()
		return "", false
	}
	target := r.pending
	r.pending = ""
	r.set = false
	r.mu.Unlock()

	if r.metrics != nil {
		r.metrics.RedirectsEmitted.Inc()
	}
	return target, true
}

// Pending reports the stored target without consuming it.
func (r *Redirect) Pending() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pending, r.set
}
