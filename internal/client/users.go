// internal/client/users.go
package client

import (
	"context"
	"fmt"
)

// SetRecipeRating sets the current user's rating for a recipe and
// optionally toggles the favorite flag in the same call.
func (c *Client) SetRecipeRating(ctx context.Context, slug string, rating float64, isFavorite *bool) (any, error) {
	payload := map[string]any{"rating": rating}
	if isFavorite != nil {
		payload["isFavorite"] = *isFavorite
	}
	return c.Post(ctx, fmt.Sprintf("/api/users/self/ratings/%s", slug), payload)
}

func (c *Client) GetUserRatings(ctx context.Context) (any, error) {
	return c.Get(ctx, "/api/users/self/ratings", nil)
}

func (c *Client) GetRecipeRating(ctx context.Context, recipeID string) (any, error) {
	return c.Get(ctx, fmt.Sprintf("/api/users/self/ratings/%s", recipeID), nil)
}

func (c *Client) AddRecipeFavorite(ctx context.Context, slug string) (any, error) {
	return c.Post(ctx, fmt.Sprintf("/api/users/self/favorites/%s", slug), map[string]any{})
}

func (c *Client) RemoveRecipeFavorite(ctx context.Context, slug string) (any, error) {
	return c.Delete(ctx, fmt.Sprintf("/api/users/self/favorites/%s", slug))
}

func (c *Client) GetUserFavorites(ctx context.Context) (any, error) {
	return c.Get(ctx, "/api/users/self/favorites", nil)
}
