// Package weather normalizes the free-text weather descriptions the service
// returns into a temperature, a condition and an icon. The upstream provider
// is inconsistent about units, so extraction works through a chain of
// fallbacks rather than a single format.
package weather

import (
	"fmt"
	"math"
	"math/rand"
	"regexp"
	"strconv"
	"strings"

	"tripgpt/internal/api"
)

// Conditions recognized in description text.
const (
	ConditionSunny        = "Sunny"
	ConditionCloudy       = "Cloudy"
	ConditionRainy        = "Rainy"
	ConditionSnow         = "Snow"
	ConditionThunderstorm = "Thunderstorm"
	ConditionFoggy        = "Foggy"
	ConditionWindy        = "Windy"
	ConditionClear        = "Clear"
)

const defaultTemperature = 25

// Summary is a normalized weather report.
type Summary struct {
	City        string
	Description string
	Temperature int
	Condition   string
	Icon        string
}

var (
	threeDigitRegexp  = regexp.MustCompile(`\b(\d{3})\b`)
	celsiusRegexp     = regexp.MustCompile(`(?i)\b(\d+)\s*°?C\b`)
	degreesRegexp     = regexp.MustCompile(`(?i)\b(\d+)\s*degrees?\b`)
	temperatureRegexp = regexp.MustCompile(`(?i)temperature[^\d]*(\d+)`)
	fahrenheitRegexp  = regexp.MustCompile(`(?i)\b(\d+)\s*F\b`)
	smallNumberRegexp = regexp.MustCompile(`\b(\d{1,2})\b`)
)

// Summarize normalizes a raw report.
func Summarize(report *api.WeatherReport) *Summary {
	description := report.CurrentWeather.Description
	temperature := ExtractTemperature(description)
	condition := ExtractCondition(description)
	return &Summary{
		City:        report.City,
		Description: description,
		Temperature: temperature,
		Condition:   condition,
		Icon:        Icon(condition),
	}
}

// mockConditions back the offline widget when the service is unreachable.
var mockConditions = []struct {
	condition   string
	temperature int
}{
	{ConditionSunny, 28},
	{ConditionCloudy, 22},
	{ConditionRainy, 18},
	{ConditionClear, 24},
}

// Mock returns a made-up but plausible summary for a city, used when the
// weather service is unreachable.
func Mock(city string) *Summary {
	pick := mockConditions[rand.Intn(len(mockConditions))]
	return &Summary{
		City:        city,
		Description: fmt.Sprintf("%s, %d°C", pick.condition, pick.temperature),
		Temperature: pick.temperature,
		Condition:   pick.condition,
		Icon:        Icon(pick.condition),
	}
}

// ExtractTemperature pulls a Celsius temperature out of description text.
// Three-digit values in the 250 to 320 range are treated as Kelvin, explicit
// Fahrenheit above 50 is converted, and anything implausible falls back to a
// small number found in the text or the default of 25.
func ExtractTemperature(description string) int {
	temperature := extractRaw(description)
	if temperature > 60 || temperature < -50 {
		if realistic, ok := extractRealistic(description); ok {
			return realistic
		}
		return defaultTemperature
	}
	return temperature
}

func extractRaw(description string) int {
	if description == "" {
		return defaultTemperature
	}

	if match := threeDigitRegexp.FindStringSubmatch(description); match != nil {
		kelvin, _ := strconv.Atoi(match[1])
		if kelvin > 250 && kelvin < 320 {
			return int(math.Round(float64(kelvin) - 273.15))
		}
	}

	for _, pattern := range []*regexp.Regexp{celsiusRegexp, degreesRegexp, temperatureRegexp} {
		if match := pattern.FindStringSubmatch(description); match != nil {
			temperature, _ := strconv.Atoi(match[1])
			return temperature
		}
	}
	if match := fahrenheitRegexp.FindStringSubmatch(description); match != nil {
		temperature, _ := strconv.Atoi(match[1])
		if temperature > 50 {
			return int(math.Round(float64(temperature-32) * 5 / 9))
		}
		return temperature
	}

	for _, match := range smallNumberRegexp.FindAllStringSubmatch(description, -1) {
		temperature, _ := strconv.Atoi(match[1])
		if temperature >= -20 && temperature <= 50 {
			return temperature
		}
	}
	return defaultTemperature
}

func extractRealistic(description string) (int, bool) {
	for _, pattern := range []*regexp.Regexp{celsiusRegexp, degreesRegexp, temperatureRegexp} {
		if match := pattern.FindStringSubmatch(description); match != nil {
			temperature, _ := strconv.Atoi(match[1])
			if temperature >= -20 && temperature <= 50 {
				return temperature, true
			}
		}
	}
	return 0, false
}

// ExtractCondition classifies description text into one of the recognized
// conditions. Unrecognized text reads as Clear.
func ExtractCondition(description string) string {
	desc := strings.ToLower(description)
	switch {
	case containsAny(desc, "rain", "drizzle", "shower"):
		return ConditionRainy
	case containsAny(desc, "cloud", "overcast"):
		return ConditionCloudy
	case containsAny(desc, "sun", "clear", "fair"):
		return ConditionSunny
	case containsAny(desc, "snow", "flurries", "blizzard"):
		return ConditionSnow
	case containsAny(desc, "storm", "thunder", "lightning"):
		return ConditionThunderstorm
	case containsAny(desc, "fog", "mist", "haze"):
		return ConditionFoggy
	case containsAny(desc, "wind", "breezy"):
		return ConditionWindy
	}
	return ConditionClear
}

// Icon returns the display glyph for a condition.
func Icon(condition string) string {
	switch condition {
	case ConditionCloudy:
		return "☁️"
	case ConditionRainy:
		return "🌧️"
	case ConditionSnow:
		return "❄️"
	case ConditionThunderstorm:
		return "⛈️"
	case ConditionFoggy:
		return "🌫️"
	case ConditionWindy:
		return "💨"
	}
	return "☀️"
}

func containsAny(s string, substrings ...string) bool {
	for _, substring := range substrings {
		if strings.Contains(s, substring) {
			return true
		}
	}
	return false
}
