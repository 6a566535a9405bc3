// Package api implements the HTTP client for the trip-planner service.
// Every data-bearing operation of the application goes through here: request
// shaping, bearer-token attachment, and classification of failures into the
// typed kinds the rest of the client branches on.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

// TokenSource provides the bearer token for authenticated calls and lets the
// client discard a token the server has rejected.
type TokenSource interface {
	Token() (string, error)
	ClearToken() error
}

// Client dispatches requests against the trip-planner API. It never retries:
// every failure is surfaced to the caller of that call.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

// New client. timeout bounds each individual request.
func New(baseURL string, timeout time.Duration, tokens TokenSource) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
	}
}

// errorBody is the server's error envelope.
type errorBody struct {
	Detail string `json:"detail"`
}

// do dispatches one request. Authenticated calls fail fast with
// KindUnauthenticated when no token is stored; public calls never send a
// token even if one exists, to match the collaborating service's
// expectations.
func (c *Client) do(ctx context.Context, method, path string, body, out any, authenticated bool) error {
	var token string
	if authenticated {
		var err error
		token, err = c.tokens.Token()
		if err != nil {
			return errors.Wrap(err, "reading token")
		}
		if token == "" {
			return &Error{Kind: KindUnauthenticated}
		}
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "marshaling request body")
		}
		reader = bytes.NewReader(payload)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Wrap(err, "creating request")
	}
	request.Header.Set("Content-Type", "application/json")
	if authenticated {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return errors.Wrap(err, "calling api")
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusUnauthorized && authenticated {
		// Drop the dead token now so subsequent calls in this session fail
		// fast instead of retrying it.
		if err := c.tokens.ClearToken(); err != nil {
			return errors.Wrap(err, "clearing token")
		}
		return &Error{Kind: KindSessionExpired, StatusCode: response.StatusCode}
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		detail := readDetail(response.Body)
		if response.StatusCode == http.StatusNotFound {
			return &Error{Kind: KindNotFound, StatusCode: response.StatusCode, Detail: detail}
		}
		return &Error{Kind: KindRequestFailed, StatusCode: response.StatusCode, Detail: detail}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(response.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decoding response")
	}
	return nil
}

// readDetail extracts the server-provided error detail when present.
func readDetail(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 1<<16))
	if err != nil {
		return ""
	}
	envelope := errorBody{}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Detail != "" {
		return envelope.Detail
	}
	return ""
}
