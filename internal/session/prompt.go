package session

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"tripgpt/internal/api"
)

var (
	durationRegexp    = regexp.MustCompile(`(\d+)[- ]?days?`)
	budgetRegexp      = regexp.MustCompile(`\$([\d,]+)`)
	destinationRegexp = regexp.MustCompile(`(?:\bto\b|\bin\b)\s+([A-Z][a-zA-Z]*(?:\s+[A-Z][a-zA-Z]*)*)`)
)

// preferenceKeywords maps free-text keywords to the preference tags the
// generation endpoint understands. Order determines the order of the
// extracted tags.
var preferenceKeywords = []struct {
	keyword string
	tag     string
}{
	{"adventure", "adventure"},
	{"hiking", "adventure"},
	{"culture", "culture"},
	{"museum", "culture"},
	{"history", "culture"},
	{"food", "food"},
	{"restaurant", "food"},
	{"cuisine", "food"},
	{"beach", "beach"},
	{"relax", "relaxation"},
	{"spa", "relaxation"},
	{"nightlife", "nightlife"},
	{"shopping", "shopping"},
	{"nature", "nature"},
	{"wildlife", "nature"},
	{"budget", "budget-friendly"},
	{"luxury", "luxury"},
}

// ParsePrompt extracts structured trip fields from a free-text prompt. Every
// field has a fallback so a vague prompt still produces a valid request.
func ParsePrompt(prompt string) *api.GeneratePlanRequest {
	request := &api.GeneratePlanRequest{
		Destination: "Custom Destination",
		Duration:    7,
		Currency:    "USD",
		GroupSize:   1,
	}
	lower := strings.ToLower(prompt)

	if match := durationRegexp.FindStringSubmatch(lower); match != nil {
		if days, err := strconv.Atoi(match[1]); err == nil && days > 0 {
			request.Duration = days
		}
	}

	if match := destinationRegexp.FindStringSubmatch(prompt); match != nil {
		request.Destination = match[1]
	}

	if match := budgetRegexp.FindStringSubmatch(prompt); match != nil {
		raw := strings.ReplaceAll(match[1], ",", "")
		if amount, err := strconv.ParseFloat(raw, 64); err == nil {
			request.Budget = &amount
		}
	}

	switch {
	case strings.Contains(lower, "solo"):
		request.GroupSize = 1
	case strings.Contains(lower, "couple"), strings.Contains(lower, "romantic"), strings.Contains(lower, "honeymoon"):
		request.GroupSize = 2
	case strings.Contains(lower, "family"):
		request.GroupSize = 4
	}

	seen := map[string]bool{}
	for _, entry := range preferenceKeywords {
		if strings.Contains(lower, entry.keyword) && !seen[entry.tag] {
			seen[entry.tag] = true
			request.Preferences = append(request.Preferences, entry.tag)
		}
	}

	request.Title = promptTitle(prompt)
	return request
}

func promptTitle(prompt string) string {
	trimmed := []rune(strings.TrimSpace(prompt))
	if len(trimmed) <= 30 {
		return string(trimmed)
	}
	return fmt.Sprintf("%s...", string(trimmed[:30]))
}
