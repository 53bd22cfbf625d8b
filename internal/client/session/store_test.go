package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store
}

func TestStore_SaveLoad(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save("token-abc", "alice"))

	token, username, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "token-abc", token)
	assert.Equal(t, "alice", username)
}

func TestStore_LoadEmpty(t *testing.T) {
	store := newTestStore(t)

	token, username, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Empty(t, username)
}

func TestStore_Clear(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save("token-abc", "alice"))
	require.NoError(t, store.Clear())

	token, username, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Empty(t, username)

	// Clearing an empty store is fine too.
	require.NoError(t, store.Clear())
}

func TestStore_Overwrite(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save("first-token", "alice"))
	require.NoError(t, store.Save("second-token", "bob"))

	token, username, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "second-token", token)
	assert.Equal(t, "bob", username)
}
