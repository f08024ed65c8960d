package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCell(t *testing.T) (*Cell, *FileStore) {
	t.Helper()
	store, err := NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)
	return NewCell(store), store
}

func TestCellStartsSignedOut(t *testing.T) {
	cell, _ := newTestCell(t)
	assert.False(t, cell.Get().Authenticated())
	assert.Equal(t, Session{}, cell.Get())
}

func TestCellReplacePersists(t *testing.T) {
	cell, store := newTestCell(t)

	sess := Session{User: User{Slug: "muriel"}, Token: "tok"}
	require.NoError(t, cell.Replace(sess))

	assert.Equal(t, sess, cell.Get())

	stored, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, sess, stored)
}

func TestCellClearWipesStore(t *testing.T) {
	cell, store := newTestCell(t)
	require.NoError(t, cell.Replace(Session{Token: "tok"}))

	require.NoError(t, cell.Clear())

	assert.Equal(t, Session{}, cell.Get())
	_, err := store.Read()
	assert.Error(t, err)
}
