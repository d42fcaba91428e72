// internal/client/recipes.go
package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// ListRecipes fetches one page of the recipe listing. Query, tags, and
// categories are optional server-side filters.
func (c *Client) ListRecipes(ctx context.Context, page, perPage int, search string, tags, categories []string, orderBy, orderDirection string) (any, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("perPage", strconv.Itoa(perPage))
	if search != "" {
		query.Set("search", search)
	}
	for _, tag := range tags {
		query.Add("tags", tag)
	}
	for _, category := range categories {
		query.Add("categories", category)
	}
	if orderBy != "" {
		query.Set("orderBy", orderBy)
	}
	if orderDirection != "" {
		query.Set("orderDirection", orderDirection)
	}
	return c.Get(ctx, "/api/recipes", query)
}

func (c *Client) GetRecipe(ctx context.Context, slug string) (any, error) {
	return c.Get(ctx, fmt.Sprintf("/api/recipes/%s", slug), nil)
}

// CreateRecipe creates a recipe stub by name. Mealie returns the new
// slug as a bare JSON string.
func (c *Client) CreateRecipe(ctx context.Context, name string) (any, error) {
	return c.Post(ctx, "/api/recipes", map[string]any{"name": name})
}

func (c *Client) UpdateRecipe(ctx context.Context, slug string, payload map[string]any) (any, error) {
	return c.Put(ctx, fmt.Sprintf("/api/recipes/%s", slug), payload)
}

func (c *Client) PatchRecipe(ctx context.Context, slug string, payload map[string]any) (any, error) {
	return c.Patch(ctx, fmt.Sprintf("/api/recipes/%s", slug), payload)
}

func (c *Client) DeleteRecipe(ctx context.Context, slug string) (any, error) {
	return c.Delete(ctx, fmt.Sprintf("/api/recipes/%s", slug))
}

func (c *Client) CreateRecipeFromURL(ctx context.Context, recipeURL string, includeTags bool) (any, error) {
	return c.Post(ctx, "/api/recipes/create/url", map[string]any{
		"url":         recipeURL,
		"includeTags": includeTags,
	})
}

func (c *Client) CreateRecipesFromURLsBulk(ctx context.Context, urls []string, includeTags bool) (any, error) {
	return c.Post(ctx, "/api/recipes/create/url/bulk", map[string]any{
		"urls":         urls,
		"include_tags": includeTags,
	})
}

// CreateRecipeFromImage submits a base64-encoded image for the
// experimental AI recipe extraction endpoint.
func (c *Client) CreateRecipeFromImage(ctx context.Context, imageData, extension string) (any, error) {
	return c.Post(ctx, "/api/recipes/create/image", map[string]any{
		"image":     imageData,
		"extension": extension,
	})
}

func (c *Client) DuplicateRecipe(ctx context.Context, slug, newName string) (any, error) {
	payload := map[string]any{}
	if newName != "" {
		payload["name"] = newName
	}
	return c.Post(ctx, fmt.Sprintf("/api/recipes/%s/duplicate", slug), payload)
}

// UpdateRecipeLastMade stamps when a recipe was last cooked. An empty
// timestamp means "now" on the server side.
func (c *Client) UpdateRecipeLastMade(ctx context.Context, slug, timestamp string) (any, error) {
	payload := map[string]any{}
	if timestamp != "" {
		payload["timestamp"] = timestamp
	}
	return c.Patch(ctx, fmt.Sprintf("/api/recipes/%s/last-made", slug), payload)
}

// UpdateRecipeIngredients replaces a recipe's ingredient list without
// touching any other field.
func (c *Client) UpdateRecipeIngredients(ctx context.Context, slug string, ingredients []map[string]any) (any, error) {
	return c.Patch(ctx, fmt.Sprintf("/api/recipes/%s", slug), map[string]any{
		"recipeIngredient": ingredients,
	})
}

func (c *Client) UploadRecipeImage(ctx context.Context, slug string, imageData []byte, extension string) (any, error) {
	fileName := fmt.Sprintf("image.%s", extension)
	return c.upload(ctx, "PUT", fmt.Sprintf("/api/recipes/%s/image", slug),
		map[string]string{"extension": extension}, "image", fileName, imageData)
}

func (c *Client) BulkTagRecipes(ctx context.Context, recipeSlugs []string, tags []map[string]any) (any, error) {
	return c.Post(ctx, "/api/recipes/bulk-actions/tag", map[string]any{
		"recipes": recipeSlugs,
		"tags":    tags,
	})
}

func (c *Client) BulkCategorizeRecipes(ctx context.Context, recipeSlugs []string, categories []map[string]any) (any, error) {
	return c.Post(ctx, "/api/recipes/bulk-actions/categorize", map[string]any{
		"recipes":    recipeSlugs,
		"categories": categories,
	})
}

func (c *Client) BulkDeleteRecipes(ctx context.Context, recipeIDs []string) (any, error) {
	return c.Post(ctx, "/api/recipes/bulk-actions/delete", map[string]any{
		"recipes": recipeIDs,
	})
}

func (c *Client) BulkExportRecipes(ctx context.Context, recipeIDs []string, exportFormat string) (any, error) {
	return c.Post(ctx, "/api/recipes/bulk-actions/export", map[string]any{
		"recipes": recipeIDs,
		"format":  exportFormat,
	})
}

func (c *Client) BulkUpdateRecipeSettings(ctx context.Context, recipeIDs []string, settings map[string]any) (any, error) {
	return c.Post(ctx, "/api/recipes/bulk-actions/settings", map[string]any{
		"recipes":  recipeIDs,
		"settings": settings,
	})
}

func (c *Client) GetRecipeSuggestions(ctx context.Context, limit int) (any, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	return c.Get(ctx, "/api/recipes/suggestions", query)
}

func (c *Client) ListSharedRecipes(ctx context.Context, recipeID string) (any, error) {
	query := url.Values{}
	if recipeID != "" {
		query.Set("recipe_id", recipeID)
	}
	return c.Get(ctx, "/api/recipes/shared", query)
}

func (c *Client) CreateSharedRecipe(ctx context.Context, recipeID, expiresAt string) (any, error) {
	payload := map[string]any{"recipeId": recipeID}
	if expiresAt != "" {
		payload["expiresAt"] = expiresAt
	}
	return c.Post(ctx, "/api/recipes/shared", payload)
}

func (c *Client) GetSharedRecipe(ctx context.Context, itemID string) (any, error) {
	return c.Get(ctx, fmt.Sprintf("/api/recipes/shared/%s", itemID), nil)
}

func (c *Client) DeleteSharedRecipe(ctx context.Context, itemID string) (any, error) {
	return c.Delete(ctx, fmt.Sprintf("/api/recipes/shared/%s", itemID))
}

func (c *Client) AccessSharedRecipe(ctx context.Context, tokenID string) (any, error) {
	return c.Get(ctx, fmt.Sprintf("/api/recipes/shared/%s", tokenID), nil)
}
