package console

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"benchdash/internal/route"
	"benchdash/internal/session"
	"benchdash/internal/state"
)

func newTestConsole(t *testing.T, startupPath string) *Console {
	t.Helper()
	store, err := session.NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)

	return New(
		session.NewCell(store),
		state.NewNotificationHolder(time.Hour, nil),
		state.NewRedirect(nil),
		state.NewTitle(nil),
		startupPath,
	)
}

func signIn(t *testing.T, c *Console) {
	t.Helper()
	require.NoError(t, c.Session.Replace(session.Session{
		User:  session.User{Slug: "muriel"},
		Token: "tok",
	}))
}

func TestConsoleSeedsProjectFromStartupPath(t *testing.T) {
	c := newTestConsole(t, "/console/projects/decode-json/perf")
	assert.Equal(t, "decode-json", c.Project.Get())
}

func TestConsoleOrgSlugTracksPath(t *testing.T) {
	c := newTestConsole(t, "/")
	signIn(t, c)

	_, ok := c.OrgSlug()
	assert.False(t, ok)

	c.Navigate("/console/organizations/pied-piper/projects/decode-json")
	org, ok := c.OrgSlug()
	require.True(t, ok)
	assert.Equal(t, "pied-piper", org)

	// Leaving the org tree drops the org slug but keeps the project.
	c.Navigate("/console/settings")
	_, ok = c.OrgSlug()
	assert.False(t, ok)
	assert.Equal(t, "decode-json", c.Project.Get())
}

func TestConsoleExternalShortcut(t *testing.T) {
	c := newTestConsole(t, "/console")
	signIn(t, c)

	target, external := c.Navigate("/repo")
	assert.True(t, external)
	assert.Equal(t, route.RepoURL, target)
	// External shortcuts do not move the in-app path.
	assert.Equal(t, "/console", c.Path())
}

func TestConsoleSignedOutRedirectsToLogin(t *testing.T) {
	c := newTestConsole(t, "/")

	final, external := c.Navigate("/console/projects/decode-json")
	assert.False(t, external)
	assert.Equal(t, "/auth/login", final)
	assert.Equal(t, "/auth/login", c.Path())

	// The redirect was consumed; navigating to public pages works.
	final, _ = c.Navigate("/docs/api")
	assert.Equal(t, "/docs/api", final)
}

func TestConsoleSignedInStaysPut(t *testing.T) {
	c := newTestConsole(t, "/")
	signIn(t, c)

	final, external := c.Navigate("/console/projects/decode-json")
	assert.False(t, external)
	assert.Equal(t, "/console/projects/decode-json", final)
	assert.Equal(t, "decode-json", c.Project.Get())
}

func TestConsolePendingRedirectFires(t *testing.T) {
	c := newTestConsole(t, "/auth/login")
	signIn(t, c)

	// A login page typically parks the original destination here.
	c.Redirect.Request("/console/projects/decode-json")

	final, _ := c.Navigate("/console")
	assert.Equal(t, "/console/projects/decode-json", final)
	assert.Equal(t, "decode-json", c.Project.Get())

	// One-shot: nothing left pending.
	_, pending := c.Redirect.Pending()
	assert.False(t, pending)
}
