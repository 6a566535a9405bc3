package prefs

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.db")
	store, err := New(path)
	require.NoError(t, err)
	defer store.Close()

	value, err := store.Get("key")
	require.NoError(t, err)
	assert.Empty(t, value)

	require.NoError(t, store.Set("key", "one"))
	require.NoError(t, store.Set("key", "two"))
	value, err = store.Get("key")
	require.NoError(t, err)
	assert.Equal(t, "two", value)

	require.NoError(t, store.Remove("key"))
	value, err = store.Get("key")
	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.db")
	store, err := New(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(KeyUsername, "ada"))
	require.NoError(t, store.Close())

	reopened, err := New(path)
	require.NoError(t, err)
	defer reopened.Close()

	value, err := reopened.Get(KeyUsername)
	require.NoError(t, err)
	assert.Equal(t, "ada", value)
}
