package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// CredentialStore is the durable home of the serialized session. It
// is a single shared mutable resource: another process with access to
// the same store may write a fresh login at any time, which the
// revalidation poller picks up.
type CredentialStore interface {
	Read() (Session, error)
	Write(Session) error
	Wipe() error
}

// FileStore keeps the session as one JSON document on disk.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed credential store at path.
func NewFileStore(path string) (*FileStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return &FileStore{path: path}, nil
}

// Read loads and parses the stored session. A missing or malformed
// document is an error; callers decide whether to surface or skip it.
func (s *FileStore) Read() (Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Session{}, err
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return Session{}, fmt.Errorf("failed to parse stored session: %w", err)
	}
	return sess, nil
}

// Write replaces the stored session wholesale.
func (s *FileStore) Write(sess Session) error {
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	// Credentials, so keep the file private to the user.
	return os.WriteFile(s.path, data, 0600)
}

// Wipe removes the stored session entirely.
func (s *FileStore) Wipe() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
