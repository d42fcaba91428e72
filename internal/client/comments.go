// internal/client/comments.go
package client

import (
	"context"
	"fmt"
)

func (c *Client) GetRecipeComments(ctx context.Context, recipeSlug string) (any, error) {
	return c.Get(ctx, fmt.Sprintf("/api/recipes/%s/comments", recipeSlug), nil)
}

func (c *Client) CreateComment(ctx context.Context, recipeID, text string) (any, error) {
	return c.Post(ctx, "/api/comments", map[string]any{
		"recipeId": recipeID,
		"text":     text,
	})
}

func (c *Client) GetComment(ctx context.Context, commentID string) (any, error) {
	return c.Get(ctx, fmt.Sprintf("/api/comments/%s", commentID), nil)
}

func (c *Client) UpdateComment(ctx context.Context, commentID, text string) (any, error) {
	return c.Put(ctx, fmt.Sprintf("/api/comments/%s", commentID), map[string]any{
		"id":   commentID,
		"text": text,
	})
}

func (c *Client) DeleteComment(ctx context.Context, commentID string) (any, error) {
	return c.Delete(ctx, fmt.Sprintf("/api/comments/%s", commentID))
}
