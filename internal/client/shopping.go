// internal/client/shopping.go
package client

import (
	"context"
	"fmt"
)

func (c *Client) ListShoppingLists(ctx context.Context) (any, error) {
	return c.Get(ctx, "/api/households/shopping/lists", nil)
}

func (c *Client) GetShoppingList(ctx context.Context, listID string) (any, error) {
	return c.Get(ctx, fmt.Sprintf("/api/households/shopping/lists/%s", listID), nil)
}

func (c *Client) CreateShoppingList(ctx context.Context, name string) (any, error) {
	return c.Post(ctx, "/api/households/shopping/lists", map[string]any{"name": name})
}

func (c *Client) DeleteShoppingList(ctx context.Context, listID string) (any, error) {
	return c.Delete(ctx, fmt.Sprintf("/api/households/shopping/lists/%s", listID))
}

func (c *Client) CreateShoppingItem(ctx context.Context, payload map[string]any) (any, error) {
	return c.Post(ctx, "/api/households/shopping/items", payload)
}

func (c *Client) UpdateShoppingItem(ctx context.Context, itemID string, payload map[string]any) (any, error) {
	return c.Put(ctx, fmt.Sprintf("/api/households/shopping/items/%s", itemID), payload)
}

func (c *Client) DeleteShoppingItem(ctx context.Context, itemID string) (any, error) {
	return c.Delete(ctx, fmt.Sprintf("/api/households/shopping/items/%s", itemID))
}

// AddRecipeToShoppingList adds all of a recipe's ingredients to a list,
// optionally scaled.
func (c *Client) AddRecipeToShoppingList(ctx context.Context, listID, recipeID string, scale float64) (any, error) {
	payload := map[string]any{"recipeId": recipeID}
	if scale != 1.0 {
		payload["recipeIncrementQuantity"] = scale
	}
	return c.Post(ctx, fmt.Sprintf("/api/households/shopping/lists/%s/recipe/%s", listID, recipeID), payload)
}

func (c *Client) DeleteRecipeFromShoppingList(ctx context.Context, itemID, recipeID string) (any, error) {
	return c.Post(ctx, fmt.Sprintf("/api/households/shopping/lists/%s/recipe/%s/delete", itemID, recipeID), map[string]any{})
}
