package route

import (
	"strings"
	"sync"
)

// Anchor segments: a slug is the path segment following its anchor.
const (
	orgAnchor     = "organizations"
	projectAnchor = "projects"
)

// OrgSlug returns the organization slug embedded in path. Paths
// without the organizations anchor, or with nothing after it, carry
// no organization slug.
func OrgSlug(path string) (string, bool) {
	return slugAfter(path, orgAnchor)
}

// ProjectSlug returns the project slug embedded in path, if any.
func ProjectSlug(path string) (string, bool) {
	return slugAfter(path, projectAnchor)
}

func slugAfter(path, anchor string) (string, bool) {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	for i, seg := range segments {
		if seg == anchor && i+1 < len(segments) && segments[i+1] != "" {
			return segments[i+1], true
		}
	}
	return "", false
}

// ProjectCell remembers the active project across console routes that
// carry no project segment in their path. It is seeded once from the
// startup path and thereafter updated explicitly by navigation.
type ProjectCell struct {
	mu  sync.Mutex
	cur string
}

// NewProjectCell seeds the cell from the startup path.
func NewProjectCell(startupPath string) *ProjectCell {
	c := &ProjectCell{}
	if slug, ok := ProjectSlug(startupPath); ok {
		c.cur = slug
	}
	return c
}

// Get returns the remembered project slug, possibly empty.
func (c *ProjectCell) Get() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cur
}

// Set records the active project slug.
func (c *ProjectCell) Set(slug string) {
	c.mu.Lock()
	c.cur = slug
	c.mu.Unlock()
}
