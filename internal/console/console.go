package console

import (
	"sync"

	"benchdash/internal/route"
	"benchdash/internal/session"
	"benchdash/internal/state"
)

// Console owns the client-side state cells of the dashboard app: the
// session, the ambient notification, the pending redirect, the page
// title, and the remembered project slug. Cells are passed by
// reference into whatever renders them, never read as globals.
type Console struct {
	Session       *session.Cell
	Notifications *state.NotificationHolder
	Redirect      *state.Redirect
	Title         *state.Title
	Project       *route.ProjectCell

	mu   sync.Mutex
	path string
}

// New wires a console rooted at startupPath. The project cell seeds
// itself from the startup path.
func New(cell *session.Cell, notifications *state.NotificationHolder, redirect *state.Redirect, title *state.Title, startupPath string) *Console {
	return &Console{
		Session:       cell,
		Notifications: notifications,
		Redirect:      redirect,
		Title:         title,
		Project:       route.NewProjectCell(startupPath),
		path:          startupPath,
	}
}

// Path returns the current resolved path.
func (c *Console) Path() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.path
}

// OrgSlug derives the organization slug from the current path. It is
// recomputed on every call, so it always tracks the path.
func (c *Console) OrgSlug() (string, bool) {
	return route.OrgSlug(c.Path())
}

// Navigate moves the console to path and applies the navigation
// rules: external shortcuts leave the app unchanged, console pages
// require a session, and a pending redirect fires once the resolved
// path differs from it. It returns the final path and whether it
// points outside the app.
func (c *Console) Navigate(path string) (string, bool) {
	if target, ok := route.External(path); ok {
		return target, true
	}

	c.setPath(path)

	if slug, ok := route.ProjectSlug(path); ok {
		c.Project.Set(slug)
	}

	if route.IsConsole(path) && !c.Session.Get().Authenticated() {
		c.Redirect.Request("/auth/login")
	}

	if target, ok := c.Redirect.Resolve(path); ok {
		c.setPath(target)
		if slug, ok := route.ProjectSlug(target); ok {
			c.Project.Set(slug)
		}
		return target, false
	}

	return path, false
}

func (c *Console) setPath(path string) {
	c.mu.Lock()
	c.path = path
	c.mu.Unlock()
}
