// internal/tools/shopping_test.go
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShoppingListsListCounts(t *testing.T) {
	fakeMealie(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/households/shopping/lists", r.URL.Path)
		fmt.Fprint(w, `{"items": [
			{"id": "l1", "name": "Groceries", "createdAt": "2026-08-20",
			 "listItems": [
				{"id": "i1", "checked": true},
				{"id": "i2", "checked": false},
				{"id": "i3", "checked": false}
			 ]},
			{"id": "l2", "name": "Empty"}
		]}`)
	}))

	parsed := decode(t, ShoppingListsList(context.Background()))
	assert.Equal(t, float64(2), parsed["count"])

	lists, ok := parsed["lists"].([]any)
	require.True(t, ok)
	require.Len(t, lists, 2)

	groceries := lists[0].(map[string]any)
	assert.Equal(t, "Groceries", groceries["name"])
	assert.Equal(t, float64(3), groceries["total_items"])
	assert.Equal(t, float64(1), groceries["checked_items"])
	assert.Equal(t, float64(2), groceries["unchecked_items"])

	empty := lists[1].(map[string]any)
	assert.Equal(t, float64(0), empty["total_items"])
}

func TestShoppingListsGetFlattensItems(t *testing.T) {
	fakeMealie(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/households/shopping/lists/l1", r.URL.Path)
		fmt.Fprint(w, `{"id": "l1", "name": "Groceries", "listItems": [
			{"id": "i1", "checked": false, "quantity": 2,
			 "unit": {"name": "cups"}, "food": {"name": "flour"}, "note": "", "display": "2 cups flour"}
		]}`)
	}))

	parsed := decode(t, ShoppingListsGet(context.Background(), "l1"))
	assert.Equal(t, "Groceries", parsed["name"])
	assert.Equal(t, float64(1), parsed["total_items"])
	assert.Equal(t, float64(0), parsed["checked_count"])

	items, ok := parsed["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 1)

	item := items[0].(map[string]any)
	assert.Equal(t, "cups", item["unit"])
	assert.Equal(t, "flour", item["food"])
	assert.Equal(t, "2 cups flour", item["display"])
}

func TestShoppingListsGetNotFound(t *testing.T) {
	fakeMealie(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	}))

	parsed := decode(t, ShoppingListsGet(context.Background(), "missing"))
	assert.Equal(t, "Shopping list 'missing' not found", parsed["error"])
}

func TestShoppingItemsAddBulkPartialFailure(t *testing.T) {
	var calls int
	fakeMealie(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/households/shopping/items", r.URL.Path)
		calls++
		if calls == 2 {
			w.WriteHeader(http.StatusUnprocessableEntity)
			fmt.Fprint(w, `{"detail": "invalid item"}`)
			return
		}
		fmt.Fprint(w, `{"id": "new"}`)
	}))

	parsed := decode(t, ShoppingItemsAddBulk(context.Background(), "l1", []string{"milk", "", "eggs"}))
	assert.Equal(t, float64(2), parsed["added_count"])
	assert.Equal(t, float64(3), parsed["total_requested"])
	assert.Contains(t, parsed["message"], "Added 2 of 3 items")
	assert.NotEmpty(t, parsed["errors"])
}

func TestShoppingGenerateFromMealplan(t *testing.T) {
	var createdName string
	fakeMealie(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/households/mealplans":
			fmt.Fprint(w, `{"items": [
				{"id": 1, "date": "2026-08-26", "recipeId": "r1"},
				{"id": 2, "date": "2026-08-27", "recipeId": "r2"},
				{"id": 3, "date": "2026-08-27", "title": "leftovers"}
			]}`)
		case r.Method == http.MethodPost && r.URL.Path == "/api/households/shopping/lists":
			var payload map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			createdName, _ = payload["name"].(string)
			fmt.Fprint(w, `{"id": "new-list"}`)
		case r.Method == http.MethodPost && r.URL.Path == "/api/households/shopping/lists/new-list/recipe/r1":
			fmt.Fprint(w, `{}`)
		case r.Method == http.MethodPost && r.URL.Path == "/api/households/shopping/lists/new-list/recipe/r2":
			w.WriteHeader(http.StatusUnprocessableEntity)
			fmt.Fprint(w, `{"detail": "recipe has no ingredients"}`)
		case r.Method == http.MethodGet && r.URL.Path == "/api/households/shopping/lists/new-list":
			fmt.Fprint(w, `{"id": "new-list", "listItems": [{"id": "i1"}, {"id": "i2"}]}`)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	parsed := decode(t, ShoppingGenerateFromMealplan(context.Background(), "2026-08-26", "2026-08-27", "Week 35"))
	assert.Equal(t, true, parsed["success"])
	assert.Equal(t, "Week 35", createdName)
	assert.Equal(t, "new-list", parsed["list_id"])
	assert.Equal(t, float64(1), parsed["recipes_processed"])
	assert.Equal(t, float64(2), parsed["total_items"])
	assert.NotEmpty(t, parsed["recipes_failed"])

	dateRange, ok := parsed["date_range"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "2026-08-26", dateRange["start"])
	assert.Equal(t, "2026-08-27", dateRange["end"])
}

func TestShoppingGenerateFromMealplanNoPlans(t *testing.T) {
	fakeMealie(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"items": []}`)
	}))

	parsed := decode(t, ShoppingGenerateFromMealplan(context.Background(), "2026-08-26", "2026-08-27", ""))
	assert.Equal(t, "No meal plans found for the specified date range", parsed["error"])
}
