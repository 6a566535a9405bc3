package session

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePromptDefaults(t *testing.T) {
	request := ParsePrompt("surprise me")
	assert.Equal(t, "Custom Destination", request.Destination)
	assert.Equal(t, 7, request.Duration)
	assert.Equal(t, "USD", request.Currency)
	assert.Equal(t, 1, request.GroupSize)
	assert.Nil(t, request.Budget)
	assert.Equal(t, "surprise me", request.Title)
}

func TestParsePromptDuration(t *testing.T) {
	assert.Equal(t, 5, ParsePrompt("5 days in Rome").Duration)
	assert.Equal(t, 10, ParsePrompt("a 10-day adventure").Duration)
	assert.Equal(t, 1, ParsePrompt("1 day city break").Duration)
}

func TestParsePromptDestination(t *testing.T) {
	assert.Equal(t, "Paris", ParsePrompt("plan a trip to Paris").Destination)
	assert.Equal(t, "New York", ParsePrompt("a week in New York next month").Destination)
	assert.Equal(t, "Custom Destination", ParsePrompt("somewhere warm").Destination)
}

func TestParsePromptBudget(t *testing.T) {
	request := ParsePrompt("trip to Tokyo with $2,500 budget")
	require.NotNil(t, request.Budget)
	assert.Equal(t, 2500.0, *request.Budget)

	assert.Nil(t, ParsePrompt("trip to Tokyo").Budget)
}

func TestParsePromptGroupSize(t *testing.T) {
	assert.Equal(t, 1, ParsePrompt("solo trip to Lisbon").GroupSize)
	assert.Equal(t, 2, ParsePrompt("romantic getaway to Venice").GroupSize)
	assert.Equal(t, 4, ParsePrompt("family holiday in Orlando").GroupSize)
}

func TestParsePromptPreferences(t *testing.T) {
	request := ParsePrompt("food and hiking trip to Peru, on a budget")
	assert.Contains(t, request.Preferences, "food")
	assert.Contains(t, request.Preferences, "adventure")
	assert.Contains(t, request.Preferences, "budget-friendly")
}

func TestParsePromptTitleTruncation(t *testing.T) {
	long := strings.Repeat("a", 50)
	title := ParsePrompt(long).Title
	assert.Len(t, title, 33)
	assert.True(t, strings.HasSuffix(title, "..."))
}

func TestParsePromptTitleTruncatesOnRunes(t *testing.T) {
	long := strings.Repeat("ü", 50)
	title := ParsePrompt(long).Title
	assert.True(t, utf8.ValidString(title))
	assert.Equal(t, strings.Repeat("ü", 30)+"...", title)
}
