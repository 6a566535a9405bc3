package sidebar

import (
	"testing"

	"github.com/scylladb/go-set/i64set"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripgpt/internal/api"
)

func plans() []*api.TravelPlan {
	return []*api.TravelPlan{
		{ID: 1, Title: "Summer in Paris", Destination: "Paris"},
		{ID: 2, Title: "Tokyo food tour", Destination: "Tokyo"},
		{ID: 3, Title: "Weekend escape", Destination: "Lisbon"},
	}
}

func TestFilterBySearchEmptyQueryIsIdentity(t *testing.T) {
	input := plans()
	assert.Equal(t, input, FilterBySearch(input, ""))
}

func TestFilterBySearchMatchesTitleAndDestination(t *testing.T) {
	input := plans()

	byTitle := FilterBySearch(input, "food")
	require.Len(t, byTitle, 1)
	assert.Equal(t, int64(2), byTitle[0].ID)

	byDestination := FilterBySearch(input, "lisbon")
	require.Len(t, byDestination, 1)
	assert.Equal(t, int64(3), byDestination[0].ID)

	assert.Empty(t, FilterBySearch(input, "antarctica"))
}

func TestFilterBySearchIsCaseInsensitive(t *testing.T) {
	matched := FilterBySearch(plans(), "PARIS")
	require.Len(t, matched, 1)
	assert.Equal(t, int64(1), matched[0].ID)
}

func TestDerivePinnedIsSubsetInOrder(t *testing.T) {
	input := plans()
	pinned := DerivePinned(input, i64set.New(3, 1))
	require.Len(t, pinned, 2)
	assert.Equal(t, int64(1), pinned[0].ID)
	assert.Equal(t, int64(3), pinned[1].ID)
}

func TestDerivePinnedDropsDanglingIDs(t *testing.T) {
	pinned := DerivePinned(plans(), i64set.New(2, 999))
	require.Len(t, pinned, 1)
	assert.Equal(t, int64(2), pinned[0].ID)
}

func TestDerivePinnedEmptySet(t *testing.T) {
	assert.Empty(t, DerivePinned(plans(), i64set.New()))
	assert.Empty(t, DerivePinned(plans(), nil))
}
