// internal/client/actions.go
package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

func (c *Client) ListRecipeActions(ctx context.Context, page, perPage int, orderBy, orderDirection string) (any, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("perPage", strconv.Itoa(perPage))
	if orderBy != "" {
		query.Set("orderBy", orderBy)
	}
	if orderDirection != "" {
		query.Set("orderDirection", orderDirection)
	}
	return c.Get(ctx, "/api/households/recipe-actions", query)
}

func (c *Client) GetRecipeAction(ctx context.Context, itemID string) (any, error) {
	return c.Get(ctx, fmt.Sprintf("/api/households/recipe-actions/%s", itemID), nil)
}

func (c *Client) CreateRecipeAction(ctx context.Context, actionType, title, actionURL string) (any, error) {
	return c.Post(ctx, "/api/households/recipe-actions", map[string]any{
		"actionType": actionType,
		"title":      title,
		"url":        actionURL,
	})
}

func (c *Client) UpdateRecipeAction(ctx context.Context, itemID string, payload map[string]any) (any, error) {
	return c.Put(ctx, fmt.Sprintf("/api/households/recipe-actions/%s", itemID), payload)
}

func (c *Client) DeleteRecipeAction(ctx context.Context, itemID string) (any, error) {
	return c.Delete(ctx, fmt.Sprintf("/api/households/recipe-actions/%s", itemID))
}

// TriggerRecipeAction executes the configured action against a recipe.
func (c *Client) TriggerRecipeAction(ctx context.Context, itemID, recipeSlug string) (any, error) {
	return c.Post(ctx, fmt.Sprintf("/api/households/recipe-actions/%s/trigger/%s", itemID, recipeSlug), map[string]any{})
}
