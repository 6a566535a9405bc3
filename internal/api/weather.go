package api

import (
	"context"
	"net/http"
)

// CurrentWeather fetches the current conditions for a city. The endpoint is
// public; a missing token does not block the call.
func (c *Client) CurrentWeather(ctx context.Context, city string) (*WeatherReport, error) {
	report := &WeatherReport{}
	if err := c.do(ctx, http.MethodPost, "/weather/current", &WeatherRequest{City: city}, report, false); err != nil {
		return nil, err
	}
	return report, nil
}
