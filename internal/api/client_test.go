package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripgpt/internal/prefs"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, prefs.Store) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	store := prefs.NewMemory()
	return New(server.URL, 5*time.Second, prefs.Tokens{Store: store}), store
}

func TestUnauthenticatedFailsBeforeRequest(t *testing.T) {
	var requests atomic.Int64
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))

	_, err := client.ListPlans(context.Background())
	require.Error(t, err)
	assert.True(t, IsUnauthenticated(err))
	assert.Equal(t, int64(0), requests.Load(), "no request should reach the server without a token")
}

func TestSessionExpiredClearsTokenWithoutRetry(t *testing.T) {
	var requests atomic.Int64
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	require.NoError(t, store.Set(prefs.KeyToken, "stale-token"))

	_, err := client.ListPlans(context.Background())
	require.Error(t, err)
	assert.True(t, IsSessionExpired(err))
	assert.Equal(t, int64(1), requests.Load(), "a rejected request must not be retried")

	token, err := store.Get(prefs.KeyToken)
	require.NoError(t, err)
	assert.Empty(t, token, "the rejected token must be discarded")
}

func TestNotFound(t *testing.T) {
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	require.NoError(t, store.Set(prefs.KeyToken, "token"))

	_, err := client.GetPlan(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	// The token stays valid after a 404.
	token, err := store.Get(prefs.KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "token", token)
}

func TestRequestFailedCarriesServerDetail(t *testing.T) {
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail": "duration must be positive"}`))
	}))
	require.NoError(t, store.Set(prefs.KeyToken, "token"))

	_, err := client.GeneratePlan(context.Background(), &GeneratePlanRequest{Title: "x"})
	require.Error(t, err)
	assert.False(t, IsSessionExpired(err))
	assert.Contains(t, err.Error(), "duration must be positive")
}

func TestAuthenticatedRequestSendsBearerToken(t *testing.T) {
	var header atomic.Value
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header.Store(r.Header.Get("Authorization"))
		w.Write([]byte(`[]`))
	}))
	require.NoError(t, store.Set(prefs.KeyToken, "abc123"))

	_, err := client.ListPlans(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc123", header.Load())
}

func TestPublicRequestOmitsToken(t *testing.T) {
	var header atomic.Value
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header.Store(r.Header.Get("Authorization"))
		w.Write([]byte(`{"city": "Paris", "current_weather": {"description": "Sunny, 25°C"}}`))
	}))
	require.NoError(t, store.Set(prefs.KeyToken, "abc123"))

	report, err := client.CurrentWeather(context.Background(), "Paris")
	require.NoError(t, err)
	assert.Equal(t, "Paris", report.City)
	assert.Equal(t, "", header.Load(), "public endpoints never see the token")
}

func TestLoginSendsEmailCredentials(t *testing.T) {
	var body atomic.Value
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		body.Store(string(raw))
		w.Write([]byte(`{"access_token": "tok", "username": "ada"}`))
	}))

	response, err := client.Login(context.Background(), &Credentials{
		Email:    "ada@example.com",
		Password: "hunter2",
	})
	require.NoError(t, err)
	assert.Equal(t, "tok", response.AccessToken)
	assert.JSONEq(t, `{"email": "ada@example.com", "password": "hunter2"}`, body.Load().(string))
}

func TestPublicRequestWorksLoggedOut(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"base_currency": "USD", "rates": {"EUR": "0.85"}}`))
	}))

	table, err := client.CurrencyRates(context.Background(), "USD")
	require.NoError(t, err)
	assert.Equal(t, "USD", table.BaseCurrency)
	assert.Equal(t, "0.85", table.Rates["EUR"].String())
}
