package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitleSetOnlyFiresOnChange(t *testing.T) {
	var calls []string
	title := NewTitle(func(s string) { calls = append(calls, s) })

	title.Set("Projects")
	title.Set("Projects")
	title.Set("Reports")

	assert.Equal(t, []string{"Projects", "Reports"}, calls)
	assert.Equal(t, "Reports", title.Get())
}

func TestTitleNilHook(t *testing.T) {
	title := NewTitle(nil)
	title.Set("Projects")
	assert.Equal(t, "Projects", title.Get())
}
