package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tripgpt/internal/api"
)

func TestExtractTemperature(t *testing.T) {
	tests := []struct {
		description string
		want        int
	}{
		{"clear sky, 298 K", 25},
		{"temperature 305", 32},
		{"Sunny, 25°C", 25},
		{"around 18 degrees with light rain", 18},
		{"temperature: 22", 22},
		{"77F and humid", 25},
		{"mild, 30 F overnight", 30},
		{"highs near 31 tomorrow", 31},
		{"", 25},
		{"no numbers at all", 25},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, ExtractTemperature(test.description), "description: %q", test.description)
	}
}

func TestExtractTemperatureKelvinBounds(t *testing.T) {
	// 250 and 320 are exclusive bounds for the Kelvin heuristic.
	assert.Equal(t, 25, ExtractTemperature("reading of 250"))
	assert.Equal(t, 25, ExtractTemperature("reading of 320"))
	assert.Equal(t, -22, ExtractTemperature("reading of 251"))
}

func TestExtractCondition(t *testing.T) {
	tests := []struct {
		description string
		want        string
	}{
		{"light rain showers", ConditionRainy},
		{"overcast all day", ConditionCloudy},
		{"sunny and fair", ConditionSunny},
		{"heavy snow flurries", ConditionSnow},
		{"thunder and lightning", ConditionThunderstorm},
		{"morning mist", ConditionFoggy},
		{"breezy afternoon", ConditionWindy},
		{"pleasant", ConditionClear},
		{"", ConditionClear},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, ExtractCondition(test.description), "description: %q", test.description)
	}
}

func TestSummarize(t *testing.T) {
	report := &api.WeatherReport{City: "Kolkata"}
	report.CurrentWeather.Description = "scattered clouds, 302 K"

	summary := Summarize(report)
	assert.Equal(t, "Kolkata", summary.City)
	assert.Equal(t, 29, summary.Temperature)
	assert.Equal(t, ConditionCloudy, summary.Condition)
	assert.Equal(t, "☁️", summary.Icon)
}

func TestMock(t *testing.T) {
	summary := Mock("Lisbon")
	assert.Equal(t, "Lisbon", summary.City)
	assert.NotEmpty(t, summary.Condition)
	assert.Equal(t, Icon(summary.Condition), summary.Icon)
	assert.Greater(t, summary.Temperature, 0)
}
