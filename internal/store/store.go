// Package store keeps the encrypted clipboard entries received by the server.
//
// Contents are opaque to the store: they are sealed by the clients before
// reaching the server.
package store

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Store is implemented by every entry backend.
//
// Lookups of a missing entry return a nil content and a nil error. The
// "first" entry is the most recently added one.
type Store interface {
	Add(content []byte) (uuid.UUID, error)
	Copy(id uuid.UUID) ([]byte, error)
	CopyFirst() ([]byte, error)
	Remove(id uuid.UUID) ([]byte, error)
	RemoveFirst() ([]byte, error)
	ListAll() ([]uuid.UUID, error)
	Close() error
}

var ErrEmptyContent = errors.New("empty content")

// newID returns a time ordered id so that sorting ids sorts entries by age.
func newID() (uuid.UUID, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.Nil, fmt.Errorf("generate entry id: %w", err)
	}
	return id, nil
}

// Open returns a badger store at path, or a memory store when path is empty.
func Open(path string) (Store, error) {
	if path == "" {
		return NewMemStore(), nil
	}
	return OpenBadger(path)
}
