package state

import "sync"

// Title holds the displayed page title. The change hook fires only
// when the value actually changes.
type Title struct {
	mu       sync.Mutex
	cur      string
	onChange func(string)
}

// NewTitle creates a title cell with an optional change hook.
func NewTitle(onChange func(string)) *Title {
	return &Title{onChange: onChange}
}

// Set updates the title. Setting the current value is a no-op.
func (t *Title) Set(s string) {
	t.mu.Lock()
	if s == t.cur {
		t.mu.Unlock()
		return
	}
	t.cur = s
	hook := t.onChange
	t.mu.Unlock()

	if hook != nil {
		hook(s)
	}
}

// Get returns the current title.
func (t *Title) Get() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cur
}
