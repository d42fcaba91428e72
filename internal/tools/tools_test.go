// internal/tools/tools_test.go
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMealie points the tools layer at a test server for the duration
// of one test.
func fakeMealie(t *testing.T, handler http.Handler) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	t.Setenv("MEALIE_URL", srv.URL)
	t.Setenv("MEALIE_API_TOKEN", "test-token")
}

// decode parses a tool result for assertions.
func decode(t *testing.T, result string) map[string]any {
	t.Helper()
	parsed := map[string]any{}
	require.NoError(t, json.Unmarshal([]byte(result), &parsed), "tool output was not JSON: %s", result)
	return parsed
}

func TestPingConnected(t *testing.T) {
	fakeMealie(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/app/about", r.URL.Path)
		fmt.Fprint(w, `{"version": "v2.0.0"}`)
	}))

	assert.Equal(t, "pong - Mealie MCP server is running and connected to Mealie", Ping(context.Background()))
}

func TestPingConnectionFailed(t *testing.T) {
	fakeMealie(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	result := Ping(context.Background())
	assert.Contains(t, result, "MCP server running but Mealie connection failed")
}

func TestToolReportsMissingConfig(t *testing.T) {
	t.Setenv("MEALIE_URL", "")
	t.Setenv("MEALIE_API_TOKEN", "")

	parsed := decode(t, RecipesGet(context.Background(), "carbonara"))
	errMsg, ok := parsed["error"].(string)
	require.True(t, ok)
	assert.Contains(t, errMsg, "Unexpected error")
	assert.Contains(t, errMsg, "MEALIE_URL")
}

func TestToolReportsAPIError(t *testing.T) {
	fakeMealie(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		fmt.Fprint(w, `{"detail": [{"loc": ["body", "name"], "msg": "field required", "type": "value_error.missing"}]}`)
	}))

	parsed := decode(t, RecipesGet(context.Background(), "whatever"))
	assert.Contains(t, parsed["error"], "Validation Error (HTTP 422)")
	assert.Equal(t, float64(422), parsed["status_code"])
	assert.Contains(t, parsed["response_body"], "field required")
}

func TestToolReportsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	t.Setenv("MEALIE_URL", srv.URL)
	t.Setenv("MEALIE_API_TOKEN", "test-token")

	parsed := decode(t, RecipesGet(context.Background(), "whatever"))
	assert.Contains(t, parsed["error"], "Request failed")
	assert.Nil(t, parsed["status_code"])
	assert.Nil(t, parsed["response_body"])
}

func TestListEntries(t *testing.T) {
	assert.Nil(t, listEntries(nil))
	assert.Nil(t, listEntries("not a listing"))

	bare := []any{"a", "b"}
	assert.Equal(t, bare, listEntries(bare))

	paginated := map[string]any{"items": []any{"a"}, "total": float64(1)}
	assert.Equal(t, []any{"a"}, listEntries(paginated))

	single := map[string]any{"id": "x"}
	assert.Equal(t, []any{map[string]any{"id": "x"}}, listEntries(single))
}

func TestParseToolResult(t *testing.T) {
	parsed := parseToolResult(`{"success": true}`)
	assert.Equal(t, true, parsed["success"])

	parsed = parseToolResult("not json")
	assert.Equal(t, "not json", parsed["error"])
}
