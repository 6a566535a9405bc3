package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHistory() *History {
	return &History{entries: []string{}, index: -1, path: "/dev/null"}
}

func TestNavigation(t *testing.T) {
	h := newTestHistory()
	h.Add("first")
	h.Add("second")

	entry, ok := h.Previous("draft")
	require.True(t, ok)
	assert.Equal(t, "second", entry)

	entry, ok = h.Previous("")
	require.True(t, ok)
	assert.Equal(t, "first", entry)

	// Stepping past the oldest entry stays there.
	entry, ok = h.Previous("")
	assert.False(t, ok)
	assert.Equal(t, "first", entry)

	entry, ok = h.Next()
	require.True(t, ok)
	assert.Equal(t, "second", entry)

	// Stepping past the newest entry restores the stashed draft.
	entry, ok = h.Next()
	require.True(t, ok)
	assert.Equal(t, "draft", entry)
}

func TestAddCollapsesDuplicatesAndTrims(t *testing.T) {
	h := newTestHistory()
	h.Add("  spaced  ")
	h.Add("spaced")
	assert.Len(t, h.entries, 1)

	h.Add("")
	assert.Len(t, h.entries, 1)
}

func TestResetLeavesNavigation(t *testing.T) {
	h := newTestHistory()
	h.Add("entry")
	_, ok := h.Previous("draft")
	require.True(t, ok)

	h.Reset()
	_, ok = h.Next()
	assert.False(t, ok)
}
