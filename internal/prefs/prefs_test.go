package prefs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryMissingKeyReadsEmpty(t *testing.T) {
	store := NewMemory()
	value, err := store.Get("missing")
	require.NoError(t, err)
	assert.Empty(t, value)

	// Removing an absent key is not an error.
	require.NoError(t, store.Remove("missing"))
}

func TestSessionRoundTrip(t *testing.T) {
	store := NewMemory()
	require.NoError(t, SaveSession(store, &Session{
		Token:        "tok",
		Username:     "ada",
		Email:        "ada@example.com",
		ProfileImage: "avatar.png",
	}))

	session, err := LoadSession(store)
	require.NoError(t, err)
	assert.Equal(t, "tok", session.Token)
	assert.Equal(t, "ada", session.Username)
	assert.Equal(t, "avatar.png", session.ProfileImage)
}

func TestClearSessionPreservesUserContent(t *testing.T) {
	store := NewMemory()
	require.NoError(t, SaveSession(store, &Session{Token: "tok", Username: "ada", ProfileImage: "avatar.png"}))
	require.NoError(t, SetPinnedPlans(store, []int64{1, 2}))
	require.NoError(t, SetLastActiveTrip(store, 7))

	require.NoError(t, ClearSession(store))

	session, err := LoadSession(store)
	require.NoError(t, err)
	assert.Empty(t, session.Token)
	assert.Empty(t, session.ProfileImage)
	// Logout is not a data wipe: pins and the trip pointer survive.
	assert.Equal(t, "ada", session.Username)
	assert.Equal(t, []int64{1, 2}, PinnedPlans(store))
	assert.Equal(t, int64(7), LastActiveTrip(store))
}

func TestPinnedPlansCorruptEntryReadsEmpty(t *testing.T) {
	store := NewMemory()
	require.NoError(t, store.Set(KeyPinnedPlans, "not json"))
	assert.Nil(t, PinnedPlans(store))
}

func TestLastActiveTripAbsentReadsZero(t *testing.T) {
	store := NewMemory()
	assert.Equal(t, int64(0), LastActiveTrip(store))

	require.NoError(t, SetLastActiveTrip(store, 42))
	assert.Equal(t, int64(42), LastActiveTrip(store))

	require.NoError(t, ClearLastActiveTrip(store))
	assert.Equal(t, int64(0), LastActiveTrip(store))
}

func TestTokensAdapter(t *testing.T) {
	store := NewMemory()
	tokens := Tokens{Store: store}

	token, err := tokens.Token()
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, store.Set(KeyToken, "abc"))
	token, err = tokens.Token()
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	require.NoError(t, tokens.ClearToken())
	token, err = tokens.Token()
	require.NoError(t, err)
	assert.Empty(t, token)
}
