// Package sidebar derives the planner's sidebar lists from the recent-plans
// collection. Both derivations are pure: they never mutate their inputs.
package sidebar

import (
	"strings"

	"github.com/scylladb/go-set/i64set"

	"tripgpt/internal/api"
)

// FilterBySearch returns the plans whose title or destination contains the
// query, case-insensitively. An empty query returns the input unchanged.
func FilterBySearch(plans []*api.TravelPlan, query string) []*api.TravelPlan {
	if query == "" {
		return plans
	}
	query = strings.ToLower(query)
	var matched []*api.TravelPlan
	for _, plan := range plans {
		if strings.Contains(strings.ToLower(plan.Title), query) ||
			strings.Contains(strings.ToLower(plan.Destination), query) {
			matched = append(matched, plan)
		}
	}
	return matched
}

// DerivePinned returns the plans whose ids are in the pin set, preserving the
// input order. Pinned ids with no matching plan are dropped.
func DerivePinned(plans []*api.TravelPlan, pins *i64set.Set) []*api.TravelPlan {
	if pins == nil || pins.Size() == 0 {
		return nil
	}
	var pinned []*api.TravelPlan
	for _, plan := range plans {
		if pins.Has(plan.ID) {
			pinned = append(pinned, plan)
		}
	}
	return pinned
}
