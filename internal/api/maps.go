package api

import (
	"context"
	"fmt"
	"net/http"
)

// defaultMapRadiusMeters is the search radius for nearby places.
const defaultMapRadiusMeters = 5000

// MapData fetches the geocoded center and nearby places for a plan's
// destination.
func (c *Client) MapData(ctx context.Context, planID int64) (*MapData, error) {
	data := &MapData{}
	path := fmt.Sprintf("/maps/plan/%d/map-data?radius=%d", planID, defaultMapRadiusMeters)
	if err := c.do(ctx, http.MethodGet, path, nil, data, true); err != nil {
		return nil, err
	}
	return data, nil
}
