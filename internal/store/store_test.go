package store

import (
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func openBadgerInMemory(t *testing.T) Store {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	require.NoError(t, err)
	return &BadgerStore{db: db}
}

func stores() map[string]func(t *testing.T) Store {
	return map[string]func(t *testing.T) Store{
		"mem":    func(t *testing.T) Store { return NewMemStore() },
		"badger": openBadgerInMemory,
	}
}

func TestStore(t *testing.T) {
	for name, open := range stores() {
		t.Run(name, func(t *testing.T) {
			t.Run("add and copy", func(t *testing.T) {
				st := open(t)
				defer st.Close()

				id, err := st.Add([]byte("foobar"))
				require.NoError(t, err)
				require.NotEqual(t, uuid.Nil, id)

				content, err := st.Copy(id)
				require.NoError(t, err)
				require.Equal(t, "foobar", string(content))

				// copy does not remove
				content, err = st.Copy(id)
				require.NoError(t, err)
				require.Equal(t, "foobar", string(content))
			})

			t.Run("first is most recent", func(t *testing.T) {
				st := open(t)
				defer st.Close()

				_, err := st.Add([]byte("one"))
				require.NoError(t, err)
				_, err = st.Add([]byte("two"))
				require.NoError(t, err)

				content, err := st.CopyFirst()
				require.NoError(t, err)
				require.Equal(t, "two", string(content))

				content, err = st.RemoveFirst()
				require.NoError(t, err)
				require.Equal(t, "two", string(content))

				content, err = st.RemoveFirst()
				require.NoError(t, err)
				require.Equal(t, "one", string(content))

				content, err = st.RemoveFirst()
				require.NoError(t, err)
				require.Nil(t, content)
			})

			t.Run("remove", func(t *testing.T) {
				st := open(t)
				defer st.Close()

				id, err := st.Add([]byte("foobar"))
				require.NoError(t, err)

				content, err := st.Remove(id)
				require.NoError(t, err)
				require.Equal(t, "foobar", string(content))

				content, err = st.Copy(id)
				require.NoError(t, err)
				require.Nil(t, content)

				content, err = st.Remove(id)
				require.NoError(t, err)
				require.Nil(t, content)
			})

			t.Run("list", func(t *testing.T) {
				st := open(t)
				defer st.Close()

				ids, err := st.ListAll()
				require.NoError(t, err)
				require.Empty(t, ids)

				var added []uuid.UUID
				for _, s := range []string{"a", "b", "c"} {
					id, err := st.Add([]byte(s))
					require.NoError(t, err)
					added = append(added, id)
				}

				ids, err = st.ListAll()
				require.NoError(t, err)
				require.Equal(t, added, ids)
			})

			t.Run("empty content", func(t *testing.T) {
				st := open(t)
				defer st.Close()

				_, err := st.Add(nil)
				require.ErrorIs(t, err, ErrEmptyContent)
			})

			t.Run("empty store", func(t *testing.T) {
				st := open(t)
				defer st.Close()

				content, err := st.CopyFirst()
				require.NoError(t, err)
				require.Nil(t, content)

				content, err = st.Copy(uuid.New())
				require.NoError(t, err)
				require.Nil(t, content)
			})
		})
	}
}

func TestOpen(t *testing.T) {
	st, err := Open("")
	require.NoError(t, err)
	require.IsType(t, &MemStore{}, st)

	st, err = Open(t.TempDir())
	require.NoError(t, err)
	require.IsType(t, &BadgerStore{}, st)
	require.NoError(t, st.Close())
}

func TestBadgerStorePersists(t *testing.T) {
	dir := t.TempDir()

	st, err := OpenBadger(dir)
	require.NoError(t, err)
	id, err := st.Add([]byte("persisted"))
	require.NoError(t, err)
	require.NoError(t, st.Close())

	st, err = OpenBadger(dir)
	require.NoError(t, err)
	defer st.Close()

	content, err := st.Copy(id)
	require.NoError(t, err)
	require.Equal(t, "persisted", string(content))
}
