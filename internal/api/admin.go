package api

import (
	"context"
	"fmt"
	"net/http"
)

// AdminStats fetches system-wide usage statistics. Requires an admin account;
// the server rejects non-admin tokens with a 403 which surfaces as a
// KindRequestFailed error carrying the server detail.
func (c *Client) AdminStats(ctx context.Context) (*AdminStats, error) {
	stats := &AdminStats{}
	if err := c.do(ctx, http.MethodGet, "/admin/stats", nil, stats, true); err != nil {
		return nil, err
	}
	return stats, nil
}

// AdminUsers fetches the most recently active users.
func (c *Client) AdminUsers(ctx context.Context, limit int) ([]*AdminUser, error) {
	var users []*AdminUser
	path := fmt.Sprintf("/admin/users?limit=%d", limit)
	if err := c.do(ctx, http.MethodGet, path, nil, &users, true); err != nil {
		return nil, err
	}
	return users, nil
}

// AdminCleanup deletes records of the given kind older than the given number
// of days. Kind is one of "queries" or "api-usage".
func (c *Client) AdminCleanup(ctx context.Context, kind string, days int) (*CleanupResponse, error) {
	response := &CleanupResponse{}
	path := "/admin/cleanup/" + kind
	if err := c.do(ctx, http.MethodPost, path, &CleanupRequest{Days: days}, response, true); err != nil {
		return nil, err
	}
	return response, nil
}
