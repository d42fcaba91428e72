// internal/server/server_test.go
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ThinkInAIXYZ/go-mcp/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *MealieServer {
	t.Helper()
	srv, err := NewMealieServer(&Config{Transport: "http", Host: "127.0.0.1", Port: 0})
	require.NoError(t, err)
	return srv
}

// fakeMealie points the tools layer at a test API for one test.
func fakeMealie(t *testing.T, handler http.Handler) {
	t.Helper()
	api := httptest.NewServer(handler)
	t.Cleanup(api.Close)
	t.Setenv("MEALIE_URL", api.URL)
	t.Setenv("MEALIE_API_TOKEN", "test-token")
}

func TestToolRegistryHasNoCollisions(t *testing.T) {
	groups := []map[string]toolHandler{
		pingToolHandlers(),
		recipeToolHandlers(),
		mealplanToolHandlers(),
		shoppingToolHandlers(),
		foodToolHandlers(),
		organizerToolHandlers(),
		cookbookToolHandlers(),
		commentToolHandlers(),
		timelineToolHandlers(),
		webhookToolHandlers(),
		notificationToolHandlers(),
		recipeActionToolHandlers(),
		parserToolHandlers(),
	}

	total := 0
	for _, group := range groups {
		total += len(group)
	}

	registry := toolRegistry()
	assert.Equal(t, total, len(registry), "duplicate tool names would shadow each other")
	assert.GreaterOrEqual(t, len(registry), 100)
}

func TestToolRegistryContainsExpectedNames(t *testing.T) {
	registry := toolRegistry()

	for _, name := range []string{
		"ping",
		"mealie_recipes_search",
		"mealie_recipes_update_structured_ingredients",
		"mealie_mealplans_update_batch",
		"mealie_mealplan_rules_create",
		"mealie_shopping_generate_from_mealplan",
		"mealie_foods_merge",
		"mealie_categories_list",
		"mealie_tags_update",
		"mealie_tools_delete",
		"mealie_cookbooks_create",
		"mealie_comments_get_recipe",
		"mealie_timeline_update_image",
		"mealie_webhooks_test",
		"mealie_notifications_test",
		"mealie_recipe_actions_trigger",
		"mealie_parser_ingredients_batch",
	} {
		assert.Contains(t, registry, name)
	}
}

func TestHandleToolsDispatchesPing(t *testing.T) {
	fakeMealie(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"version": "v2.0.0"}`))
	}))
	srv := newTestServer(t)

	body := `{"name": "ping", "arguments": {}}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rec := httptest.NewRecorder()

	srv.handleTools(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	require.Len(t, result.Content, 1)
	assert.Equal(t, "text", result.Content[0].Type)
	assert.Contains(t, result.Content[0].Text, "pong")
}

func TestHandleToolsUnknownTool(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name": "mealie_nonexistent"}`))
	rec := httptest.NewRecorder()

	srv.handleTools(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unknown tool: mealie_nonexistent")
}

func TestHandleToolsRejectsNonPost(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	srv.handleTools(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandleToolsInvalidJSON(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	srv.handleTools(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExtractParams(t *testing.T) {
	req := &protocol.CallToolRequest{
		Arguments: map[string]any{
			"query": "pasta",
			"limit": 5,
			"tags":  []any{"quick"},
		},
	}

	var params recipesSearchParams
	require.NoError(t, extractParams(req, &params))
	assert.Equal(t, "pasta", params.Query)
	assert.Equal(t, 5, params.Limit)
	assert.Equal(t, []string{"quick"}, params.Tags)
}

func TestExtractParamsPointerFields(t *testing.T) {
	req := &protocol.CallToolRequest{
		Arguments: map[string]any{
			"mealplan_id": "42",
			"title":       "__CLEAR__",
		},
	}

	var params mealplansUpdateParams
	require.NoError(t, extractParams(req, &params))
	assert.Equal(t, "42", params.MealplanID)
	require.NotNil(t, params.Title)
	assert.Equal(t, "__CLEAR__", *params.Title)
	assert.Nil(t, params.Text, "absent optional fields stay nil")
	assert.Nil(t, params.MealDate)
}

func TestHandleResourcesRouting(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/resources", nil)
	rec := httptest.NewRecorder()
	srv.handleResources(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/resources?uri=bogus://x", nil)
	rec = httptest.NewRecorder()
	srv.handleResources(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleResourcesRendersMarkdown(t *testing.T) {
	fakeMealie(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/households/mealplans/today", r.URL.Path)
		w.Write([]byte(`[]`))
	}))
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/resources?uri=mealplans://today", nil)
	rec := httptest.NewRecorder()
	srv.handleResources(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/markdown")
	assert.Contains(t, rec.Body.String(), "# Meals for")
	assert.Contains(t, rec.Body.String(), "*No meals planned for today*")
}

func TestRenderResourceDispatch(t *testing.T) {
	_, ok := renderResource(context.Background(), "bogus://anything")
	assert.False(t, ok)
}
