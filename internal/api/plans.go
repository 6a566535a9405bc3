package api

import (
	"context"
	"fmt"
	"net/http"
)

// GeneratePlan asks the service to create a new plan from the parsed prompt
// fields. The returned record is server-owned from this point on.
func (c *Client) GeneratePlan(ctx context.Context, request *GeneratePlanRequest) (*TravelPlan, error) {
	plan := &TravelPlan{}
	if err := c.do(ctx, http.MethodPost, "/plans/generate", request, plan, true); err != nil {
		return nil, err
	}
	return plan, nil
}

// Chat sends a follow-up message on an existing plan. The response body is
// not authoritative for transcript ordering; callers re-fetch the plan after
// a successful chat.
func (c *Client) Chat(ctx context.Context, planID int64, message string) (*TravelPlan, error) {
	plan := &TravelPlan{}
	path := fmt.Sprintf("/plans/%d/chat", planID)
	if err := c.do(ctx, http.MethodPost, path, &ChatRequest{Message: message}, plan, true); err != nil {
		return nil, err
	}
	return plan, nil
}

// ListPlans fetches the user's plans, most recent first.
func (c *Client) ListPlans(ctx context.Context) ([]*TravelPlan, error) {
	var plans []*TravelPlan
	if err := c.do(ctx, http.MethodGet, "/plans", nil, &plans, true); err != nil {
		return nil, err
	}
	return plans, nil
}

// GetPlan fetches full plan detail, including the conversation history.
func (c *Client) GetPlan(ctx context.Context, planID int64) (*TravelPlan, error) {
	plan := &TravelPlan{}
	path := fmt.Sprintf("/plans/%d", planID)
	if err := c.do(ctx, http.MethodGet, path, nil, plan, true); err != nil {
		return nil, err
	}
	return plan, nil
}

// DeletePlan removes a plan. Local collections must only be updated after
// this returns nil.
func (c *Client) DeletePlan(ctx context.Context, planID int64) error {
	path := fmt.Sprintf("/plans/%d", planID)
	return c.do(ctx, http.MethodDelete, path, nil, nil, true)
}
