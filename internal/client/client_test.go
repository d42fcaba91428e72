// internal/client/client_test.go
package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient wires a client to a test server and replaces the retry
// sleep with a recorder so tests run instantly.
func newTestClient(t *testing.T, handler http.Handler) (*Client, *[]time.Duration) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(WithBaseURL(srv.URL), WithToken("test-token"))
	require.NoError(t, err)

	sleeps := &[]time.Duration{}
	c.sleep = func(d time.Duration) { *sleeps = append(*sleeps, d) }
	return c, sleeps
}

func TestNewRequiresConfig(t *testing.T) {
	t.Setenv("MEALIE_URL", "")
	t.Setenv("MEALIE_API_TOKEN", "")

	_, err := New()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MEALIE_URL")

	_, err = New(WithBaseURL("https://mealie.example.com"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MEALIE_API_TOKEN")
}

func TestNewReadsEnvironment(t *testing.T) {
	t.Setenv("MEALIE_URL", "https://mealie.example.com/")
	t.Setenv("MEALIE_API_TOKEN", "env-token")

	c, err := New()
	require.NoError(t, err)
	assert.Equal(t, "https://mealie.example.com", c.baseURL)
	assert.Equal(t, "env-token", c.token)
}

func TestBuildURL(t *testing.T) {
	c := &Client{baseURL: "https://mealie.example.com"}
	assert.Equal(t, "https://mealie.example.com/api/recipes", c.buildURL("/api/recipes", nil))
	assert.Equal(t, "https://mealie.example.com/api/recipes", c.buildURL("api/recipes", nil))
}

func TestGetParsesJSONBody(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		fmt.Fprint(w, `{"name": "Carbonara", "rating": 4.5}`)
	}))

	result, err := c.Get(context.Background(), "/api/recipes/carbonara", nil)
	require.NoError(t, err)

	obj, ok := result.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Carbonara", obj["name"])
	assert.Equal(t, 4.5, obj["rating"])
}

func TestGetReturnsRawStringWhenNotJSON(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "plain text body")
	}))

	result, err := c.Get(context.Background(), "/api/anything", nil)
	require.NoError(t, err)
	assert.Equal(t, "plain text body", result)
}

func TestGetReturnsNilOnEmptyBody(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	result, err := c.Get(context.Background(), "/api/anything", nil)
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestServerErrorRetriesWithBackoff(t *testing.T) {
	var calls atomic.Int64
	c, sleeps := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"detail": "boom"}`)
	}))

	_, err := c.Get(context.Background(), "/api/recipes", nil)
	require.Error(t, err)

	assert.Equal(t, int64(4), calls.Load())
	assert.Equal(t, []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}, *sleeps)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)
	assert.Equal(t, `{"detail": "boom"}`, httpErr.Body)
}

func TestServerErrorEventuallySucceeds(t *testing.T) {
	var calls atomic.Int64
	c, sleeps := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		fmt.Fprint(w, `{"ok": true}`)
	}))

	result, err := c.Get(context.Background(), "/api/recipes", nil)
	require.NoError(t, err)

	obj, ok := result.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, obj["ok"])
	assert.Equal(t, int64(2), calls.Load())
	assert.Equal(t, []time.Duration{1 * time.Second}, *sleeps)
}

func TestClientErrorDoesNotRetry(t *testing.T) {
	var calls atomic.Int64
	c, sleeps := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"detail": "Recipe not found"}`)
	}))

	_, err := c.Get(context.Background(), "/api/recipes/missing", nil)
	require.Error(t, err)

	assert.Equal(t, int64(1), calls.Load())
	assert.Empty(t, *sleeps)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
}

func TestTransportErrorRetries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c, err := New(WithBaseURL(srv.URL), WithToken("test-token"))
	require.NoError(t, err)
	sleeps := []time.Duration{}
	c.sleep = func(d time.Duration) { sleeps = append(sleeps, d) }

	_, err = c.Get(context.Background(), "/api/recipes", nil)
	require.Error(t, err)

	var transportErr *TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.Contains(t, transportErr.Error(), "Request failed")
	assert.Equal(t, []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}, sleeps)
}

func TestPostSendsJSONPayload(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		fmt.Fprint(w, `"new-recipe-slug"`)
	}))

	result, err := c.Post(context.Background(), "/api/recipes", map[string]any{"name": "New Recipe"})
	require.NoError(t, err)
	assert.Equal(t, "new-recipe-slug", result)
}

func TestTestConnection(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/app/about", r.URL.Path)
		fmt.Fprint(w, `{"version": "v2.0.0"}`)
	}))
	assert.NoError(t, c.TestConnection(context.Background()))

	failing, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	err := failing.TestConnection(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Connection test failed")
}
