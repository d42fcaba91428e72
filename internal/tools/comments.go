// internal/tools/comments.go
package tools

import (
	"context"

	"github.com/mdlopresti/mealie-mcp-sub000/internal/client"
)

func CommentsGetRecipe(ctx context.Context, recipeSlug string) string {
	return run(func(c *client.Client) (any, error) {
		comments, err := c.GetRecipeComments(ctx, recipeSlug)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"success":  true,
			"comments": comments,
		}, nil
	})
}

func CommentsCreate(ctx context.Context, recipeID, text string) string {
	return run(func(c *client.Client) (any, error) {
		comment, err := c.CreateComment(ctx, recipeID, text)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"success": true,
			"message": "Comment created successfully",
			"comment": comment,
		}, nil
	})
}

func CommentsGet(ctx context.Context, commentID string) string {
	return run(func(c *client.Client) (any, error) {
		comment, err := c.GetComment(ctx, commentID)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"success": true,
			"comment": comment,
		}, nil
	})
}

func CommentsUpdate(ctx context.Context, commentID, text string) string {
	return run(func(c *client.Client) (any, error) {
		comment, err := c.UpdateComment(ctx, commentID, text)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"success": true,
			"message": "Comment updated successfully",
			"comment": comment,
		}, nil
	})
}

func CommentsDelete(ctx context.Context, commentID string) string {
	return run(func(c *client.Client) (any, error) {
		if _, err := c.DeleteComment(ctx, commentID); err != nil {
			return nil, err
		}
		return map[string]any{
			"success": true,
			"message": "Comment deleted successfully",
		}, nil
	})
}
