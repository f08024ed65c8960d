package session

import "sync"

// Cell owns the in-memory session and its durable copy. Child
// components take the cell by reference instead of reading ambient
// globals, which keeps them testable.
type Cell struct {
	mu    sync.RWMutex
	cur   Session
	store CredentialStore
}

// NewCell creates a session cell backed by store. The in-memory state
// starts at the signed-out placeholder.
func NewCell(store CredentialStore) *Cell {
	return &Cell{store: store}
}

// Get returns the current session.
func (c *Cell) Get() Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cur
}

// Replace persists the session and swaps it into memory. No
// validation happens here; the revalidation poller vets externally
// written credentials before promoting them.
func (c *Cell) Replace(sess Session) error {
	if err := c.store.Write(sess); err != nil {
		return err
	}
	c.mu.Lock()
	c.cur = sess
	c.mu.Unlock()
	return nil
}

// Clear wipes the durable store and resets the in-memory state to the
// signed-out placeholder.
func (c *Cell) Clear() error {
	if err := c.store.Wipe(); err != nil {
		return err
	}
	c.mu.Lock()
	c.cur = Session{}
	c.mu.Unlock()
	return nil
}

// adopt swaps a stored session into memory without rewriting the
// store. Used by the poller once a stored credential checks out.
func (c *Cell) adopt(sess Session) {
	c.mu.Lock()
	c.cur = sess
	c.mu.Unlock()
}
