package planner

import (
	"github.com/scylladb/go-set/i64set"

	"tripgpt/internal/api"
	"tripgpt/internal/sidebar"
)

func filteredPinned(recent []*api.TravelPlan, pins *i64set.Set, query string) []*api.TravelPlan {
	return sidebar.DerivePinned(sidebar.FilterBySearch(recent, query), pins)
}

func filteredRecent(recent []*api.TravelPlan, pins *i64set.Set, query string) []*api.TravelPlan {
	var plans []*api.TravelPlan
	for _, plan := range sidebar.FilterBySearch(recent, query) {
		if pins == nil || !pins.Has(plan.ID) {
			plans = append(plans, plan)
		}
	}
	return plans
}
