package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "console", "session.json")
	store, err := NewFileStore(path)
	require.NoError(t, err)

	sess := Session{
		User:  User{UUID: "u-1", Name: "Muriel", Slug: "muriel", Email: "muriel@example.com"},
		Token: "tok",
	}
	require.NoError(t, store.Write(sess))

	got, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, sess, got)
}

func TestFileStoreReadMissing(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)

	_, err = store.Read()
	assert.Error(t, err)
}

func TestFileStoreReadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	store, err := NewFileStore(path)
	require.NoError(t, err)

	_, err = store.Read()
	assert.Error(t, err)
}

func TestFileStoreWipe(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store, err := NewFileStore(path)
	require.NoError(t, err)

	require.NoError(t, store.Write(Session{Token: "tok"}))
	require.NoError(t, store.Wipe())

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Wiping an already-empty store is fine.
	assert.NoError(t, store.Wipe())
}
