// internal/tools/recipes_test.go
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

func TestRecipesSearchReshapesListing(t *testing.T) {
	fakeMealie(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/recipes", r.URL.Path)
		assert.Equal(t, "pasta", r.URL.Query().Get("search"))
		assert.Equal(t, "10", r.URL.Query().Get("perPage"))
		fmt.Fprint(w, `{
			"page": 1, "perPage": 10, "total": 42, "totalPages": 5,
			"items": [
				{"name": "Carbonara", "slug": "carbonara", "description": "Roman classic",
				 "rating": 4.5,
				 "tags": [{"name": "pasta"}, {"name": "quick"}],
				 "recipeCategory": [{"name": "Dinner"}]},
				{"name": "Cacio e Pepe", "slug": "cacio-e-pepe"}
			]
		}`)
	}))

	parsed := decode(t, RecipesSearch(context.Background(), "pasta", nil, nil, 0))
	assert.Equal(t, float64(42), parsed["total"])
	assert.Equal(t, float64(2), parsed["count"])

	recipes, ok := parsed["recipes"].([]any)
	require.True(t, ok)
	require.Len(t, recipes, 2)

	first := recipes[0].(map[string]any)
	assert.Equal(t, "Carbonara", first["name"])
	assert.Equal(t, "carbonara", first["slug"])
	assert.Equal(t, []any{"pasta", "quick"}, first["tags"])
	assert.Equal(t, []any{"Dinner"}, first["categories"])
}

func TestRecipesListPagination(t *testing.T) {
	fakeMealie(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		fmt.Fprint(w, `{"page": 2, "perPage": 20, "total": 42, "totalPages": 3, "items": []}`)
	}))

	parsed := decode(t, RecipesList(context.Background(), 2, 20))
	assert.Equal(t, float64(2), parsed["page"])
	assert.Equal(t, float64(20), parsed["per_page"])
	assert.Equal(t, float64(42), parsed["total"])
	assert.Equal(t, float64(3), parsed["total_pages"])
	assert.Equal(t, []any{}, parsed["items"])
}

func TestRecipesCreateResolvesOrganizers(t *testing.T) {
	var updatePayload map[string]any
	fakeMealie(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/recipes":
			fmt.Fprint(w, `"weeknight-stir-fry"`)
		case r.Method == http.MethodGet && r.URL.Path == "/api/organizers/tags":
			fmt.Fprint(w, `{"items": [{"id": "t1", "name": "quick", "slug": "quick"}]}`)
		case r.Method == http.MethodPost && r.URL.Path == "/api/organizers/tags":
			fmt.Fprint(w, `{"id": "t2", "name": "weeknight", "slug": "weeknight"}`)
		case r.Method == http.MethodGet && r.URL.Path == "/api/organizers/categories":
			fmt.Fprint(w, `{"items": []}`)
		case r.Method == http.MethodPut && r.URL.Path == "/api/recipes/weeknight-stir-fry":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&updatePayload))
			fmt.Fprint(w, `{}`)
		case r.Method == http.MethodGet && r.URL.Path == "/api/recipes/weeknight-stir-fry":
			fmt.Fprint(w, `{"id": "r9", "name": "Weeknight Stir Fry", "slug": "weeknight-stir-fry"}`)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	parsed := decode(t, RecipesCreate(context.Background(), "Weeknight Stir Fry", "Fast dinner", "", "", "", "",
		[]string{"1 lb chicken"}, []string{"Cook it"}, []string{"quick", "weeknight"}, nil))

	assert.Equal(t, true, parsed["success"])
	assert.Equal(t, "Recipe 'Weeknight Stir Fry' created", parsed["message"])

	recipe, ok := parsed["recipe"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "weeknight-stir-fry", recipe["slug"])

	require.NotNil(t, updatePayload)
	tags, ok := updatePayload["tags"].([]any)
	require.True(t, ok)
	require.Len(t, tags, 2, "existing tag reused, missing tag created")

	ingredients, ok := updatePayload["recipeIngredient"].([]any)
	require.True(t, ok)
	require.Len(t, ingredients, 1)
	assert.Equal(t, "1 lb chicken", ingredients[0].(map[string]any)["note"])
}

func TestRecipesDeleteLooksUpName(t *testing.T) {
	fakeMealie(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			fmt.Fprint(w, `{"name": "Carbonara", "slug": "carbonara"}`)
		case http.MethodDelete:
			fmt.Fprint(w, `{}`)
		}
	}))

	parsed := decode(t, RecipesDelete(context.Background(), "carbonara"))
	assert.Equal(t, true, parsed["success"])
	assert.Equal(t, "Recipe 'Carbonara' deleted", parsed["message"])
}

func TestRecipesBulkDelete(t *testing.T) {
	var payload map[string]any
	fakeMealie(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/recipes/bulk-actions/delete", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		fmt.Fprint(w, `{}`)
	}))

	parsed := decode(t, RecipesBulkDelete(context.Background(), []string{"a", "b"}))
	assert.Equal(t, true, parsed["success"])
	assert.Equal(t, "Deleted 2 recipe(s)", parsed["message"])
	assert.Equal(t, []any{"a", "b"}, payload["recipes"])
}

func TestRecipesSetRating(t *testing.T) {
	var payload map[string]any
	fakeMealie(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/self/ratings/carbonara", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		fmt.Fprint(w, `{}`)
	}))

	favorite := true
	parsed := decode(t, RecipesSetRating(context.Background(), "carbonara", 4.5, &favorite))
	assert.Equal(t, true, parsed["success"])
	assert.Equal(t, 4.5, payload["rating"])
	assert.Equal(t, true, payload["isFavorite"])
}
