package store

import (
	"slices"
	"sync"

	"github.com/google/uuid"
)

type memEntry struct {
	id      uuid.UUID
	content []byte
}

// MemStore keeps entries in memory, oldest first.
type MemStore struct {
	mu      sync.Mutex
	entries []memEntry
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (s *MemStore) Add(content []byte) (uuid.UUID, error) {
	if len(content) == 0 {
		return uuid.Nil, ErrEmptyContent
	}

	id, err := newID()
	if err != nil {
		return uuid.Nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, memEntry{id: id, content: slices.Clone(content)})

	return id, nil
}

func (s *MemStore) Copy(id uuid.UUID) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(id); i >= 0 {
		return slices.Clone(s.entries[i].content), nil
	}
	return nil, nil
}

func (s *MemStore) CopyFirst() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.entries) == 0 {
		return nil, nil
	}
	return slices.Clone(s.entries[len(s.entries)-1].content), nil
}

func (s *MemStore) Remove(id uuid.UUID) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, nil
	}
	return s.removeAt(i), nil
}

func (s *MemStore) RemoveFirst() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.entries) == 0 {
		return nil, nil
	}
	return s.removeAt(len(s.entries) - 1), nil
}

func (s *MemStore) ListAll() ([]uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]uuid.UUID, len(s.entries))
	for i, e := range s.entries {
		ids[i] = e.id
	}
	return ids, nil
}

func (s *MemStore) Close() error { return nil }

func (s *MemStore) indexOf(id uuid.UUID) int {
	return slices.IndexFunc(s.entries, func(e memEntry) bool { return e.id == id })
}

func (s *MemStore) removeAt(i int) []byte {
	content := s.entries[i].content
	s.entries = slices.Delete(s.entries, i, i+1)
	return content
}
