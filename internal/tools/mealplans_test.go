// internal/tools/mealplans_test.go
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

func TestMealplansCreateRejectsInvalidEntryType(t *testing.T) {
	// Validation fails before any client or network use.
	parsed := decode(t, MealplansCreate(context.Background(), "2026-08-26", "brunch", "", "", ""))
	assert.Equal(t,
		"Invalid entry_type 'brunch'. Must be one of: breakfast, lunch, dinner, side, snack",
		parsed["error"])
}

func TestMealplansTodayGroupsByType(t *testing.T) {
	fakeMealie(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/households/mealplans/today", r.URL.Path)
		fmt.Fprint(w, `[
			{"id": 1, "entryType": "Dinner", "recipe": {"name": "Carbonara", "slug": "carbonara"}},
			{"id": 2, "entryType": "breakfast", "title": "Oatmeal", "text": "with berries"}
		]`)
	}))

	parsed := decode(t, MealplansToday(context.Background()))
	assert.Equal(t, float64(2), parsed["count"])

	meals, ok := parsed["meals"].(map[string]any)
	require.True(t, ok)

	dinner, ok := meals["dinner"].([]any)
	require.True(t, ok, "entry types are lowercased for grouping")
	require.Len(t, dinner, 1)
	entry := dinner[0].(map[string]any)
	assert.Equal(t, "Carbonara", entry["recipe_name"])
	assert.Equal(t, "carbonara", entry["recipe_slug"])

	breakfast, ok := meals["breakfast"].([]any)
	require.True(t, ok)
	require.Len(t, breakfast, 1)
	assert.Equal(t, "Oatmeal", breakfast[0].(map[string]any)["title"])
}

func TestMealplansSearchCaseInsensitive(t *testing.T) {
	fakeMealie(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"items": [
			{"id": 1, "date": "2026-08-26", "recipe": {"name": "Pulled Pork Tacos"}},
			{"id": 2, "date": "2026-08-27", "recipe": {"name": "Garden Salad"}},
			{"id": 3, "date": "2026-08-28", "title": "PORK roast night"}
		]}`)
	}))

	parsed := decode(t, MealplansSearch(context.Background(), "pork", "2026-08-26", "2026-08-31"))
	assert.Equal(t, true, parsed["success"])
	assert.Equal(t, "pork", parsed["query"])
	assert.Equal(t, float64(2), parsed["count"])
	assert.Len(t, parsed["meal_plans"], 2)
}

func TestMealplansUpdateClearsFieldWithSentinel(t *testing.T) {
	var sentBody map[string]any
	fakeMealie(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/households/mealplans/42", r.URL.Path)
		switch r.Method {
		case http.MethodGet:
			fmt.Fprint(w, `{"id": "42", "date": "2026-08-26", "entryType": "dinner",
				"title": "Old title", "text": "keep me", "recipeId": "r1"}`)
		case http.MethodPut:
			require.NoError(t, json.NewDecoder(r.Body).Decode(&sentBody))
			fmt.Fprint(w, `{"id": "42"}`)
		default:
			t.Errorf("unexpected method %s", r.Method)
		}
	}))

	clear := ClearField
	parsed := decode(t, MealplansUpdate(context.Background(), "42", nil, nil, nil, &clear, nil))
	assert.Equal(t, true, parsed["success"])
	assert.Equal(t, "Meal plan entry '42' updated", parsed["message"])

	require.NotNil(t, sentBody)
	// Cleared field is sent as an explicit null.
	value, present := sentBody["title"]
	assert.True(t, present)
	assert.Nil(t, value)
	// Untouched fields are preserved from the stored entry.
	assert.Equal(t, "keep me", sentBody["text"])
	assert.Equal(t, "r1", sentBody["recipeId"])
	assert.Equal(t, "2026-08-26", sentBody["date"])
	assert.Equal(t, "dinner", sentBody["entryType"])
}

func TestMealplansUpdateNotFound(t *testing.T) {
	fakeMealie(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	}))

	parsed := decode(t, MealplansUpdate(context.Background(), "nope", nil, nil, nil, nil, nil))
	assert.Equal(t, "Meal plan entry 'nope' not found", parsed["error"])
}

func TestMealplansDeleteRangeCollectsFailures(t *testing.T) {
	fakeMealie(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			fmt.Fprint(w, `{"items": [
				{"id": "a", "date": "2026-08-26"},
				{"id": "b", "date": "2026-08-27"}
			]}`)
		case r.Method == http.MethodDelete && r.URL.Path == "/api/households/mealplans/a":
			fmt.Fprint(w, `{}`)
		case r.Method == http.MethodDelete && r.URL.Path == "/api/households/mealplans/b":
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"detail": "not found"}`)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))

	parsed := decode(t, MealplansDeleteRange(context.Background(), "2026-08-26", "2026-08-27"))
	assert.Equal(t, false, parsed["success"])
	assert.Equal(t, float64(2), parsed["total"])
	assert.Equal(t, float64(1), parsed["deleted"])
	assert.Equal(t, float64(1), parsed["failed"])

	failures, ok := parsed["failures"].([]any)
	require.True(t, ok)
	require.Len(t, failures, 1)
	assert.Equal(t, "b", failures[0].(map[string]any)["id"])
}

func TestMealplansUpdateBatchPartialFailure(t *testing.T) {
	fakeMealie(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/households/mealplans/good":
			if r.Method == http.MethodGet {
				fmt.Fprint(w, `{"id": "good", "date": "2026-08-26", "entryType": "dinner"}`)
			} else {
				fmt.Fprint(w, `{"id": "good", "title": "updated"}`)
			}
		case "/api/households/mealplans/bad":
			fmt.Fprint(w, `{}`)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))

	title := "updated"
	parsed := decode(t, MealplansUpdateBatch(context.Background(), []MealplanBatchUpdate{
		{MealplanID: "good", Title: &title},
		{MealplanID: "bad", Title: &title},
	}))

	assert.Equal(t, false, parsed["success"])
	assert.Equal(t, float64(2), parsed["total"])
	assert.Equal(t, float64(1), parsed["updated"])
	assert.Equal(t, float64(1), parsed["failed"])
	assert.Len(t, parsed["entries"], 1)
}
