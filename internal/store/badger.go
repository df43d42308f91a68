package store

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

// BadgerStore persists entries in a badger database. Keys are the raw
// UUIDv7 bytes, so badger's key order is the insertion order.
type BadgerStore struct {
	db *badger.DB
}

// OpenBadger opens or creates the database at path.
func OpenBadger(path string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger store %s: %w", path, err)
	}
	return &BadgerStore{db: db}, nil
}

func (s *BadgerStore) Add(content []byte) (uuid.UUID, error) {
	if len(content) == 0 {
		return uuid.Nil, ErrEmptyContent
	}

	id, err := newID()
	if err != nil {
		return uuid.Nil, err
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(id[:], content)
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("add entry: %w", err)
	}
	return id, nil
}

func (s *BadgerStore) Copy(id uuid.UUID) ([]byte, error) {
	var content []byte
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		content, err = get(txn, id[:])
		return err
	})
	return content, err
}

func (s *BadgerStore) CopyFirst() ([]byte, error) {
	var content []byte
	err := s.db.View(func(txn *badger.Txn) error {
		key, err := lastKey(txn)
		if err != nil || key == nil {
			return err
		}
		content, err = get(txn, key)
		return err
	})
	return content, err
}

func (s *BadgerStore) Remove(id uuid.UUID) ([]byte, error) {
	var content []byte
	err := s.db.Update(func(txn *badger.Txn) error {
		var err error
		content, err = get(txn, id[:])
		if err != nil || content == nil {
			return err
		}
		return txn.Delete(id[:])
	})
	if err != nil {
		return nil, fmt.Errorf("remove entry %s: %w", id, err)
	}
	return content, nil
}

func (s *BadgerStore) RemoveFirst() ([]byte, error) {
	var content []byte
	err := s.db.Update(func(txn *badger.Txn) error {
		key, err := lastKey(txn)
		if err != nil || key == nil {
			return err
		}
		content, err = get(txn, key)
		if err != nil {
			return err
		}
		return txn.Delete(key)
	})
	if err != nil {
		return nil, fmt.Errorf("remove first entry: %w", err)
	}
	return content, nil
}

func (s *BadgerStore) ListAll() ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			id, err := uuid.FromBytes(it.Item().KeyCopy(nil))
			if err != nil {
				return err
			}
			ids = append(ids, id)
		}
		return nil
	})
	return ids, err
}

func (s *BadgerStore) Close() error {
	return s.db.Close()
}

func get(txn *badger.Txn, key []byte) ([]byte, error) {
	item, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return item.ValueCopy(nil)
}

func lastKey(txn *badger.Txn) ([]byte, error) {
	opts := badger.DefaultIteratorOptions
	opts.PrefetchValues = false
	opts.Reverse = true

	it := txn.NewIterator(opts)
	defer it.Close()

	it.Rewind()
	if !it.Valid() {
		return nil, nil
	}
	return it.Item().KeyCopy(nil), nil
}
