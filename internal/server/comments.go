// internal/server/comments.go
package server

import (
	"context"

	"github.com/mdlopresti/mealie-mcp-sub000/internal/tools"
)

type commentsGetRecipeParams struct {
	RecipeSlug string `json:"recipe_slug" description:"Recipe slug or ID"`
}

type commentsCreateParams struct {
	RecipeID string `json:"recipe_id" description:"Recipe ID to comment on"`
	Text     string `json:"text" description:"Comment text"`
}

type commentsGetParams struct {
	CommentID string `json:"comment_id" description:"Comment ID"`
}

type commentsUpdateParams struct {
	CommentID string `json:"comment_id" description:"Comment ID"`
	Text      string `json:"text" description:"New comment text"`
}

func commentToolHandlers() map[string]toolHandler {
	return map[string]toolHandler{
		"mealie_comments_get_recipe": tool(func(ctx context.Context, p commentsGetRecipeParams) string {
			return tools.CommentsGetRecipe(ctx, p.RecipeSlug)
		}),
		"mealie_comments_create": tool(func(ctx context.Context, p commentsCreateParams) string {
			return tools.CommentsCreate(ctx, p.RecipeID, p.Text)
		}),
		"mealie_comments_get": tool(func(ctx context.Context, p commentsGetParams) string {
			return tools.CommentsGet(ctx, p.CommentID)
		}),
		"mealie_comments_update": tool(func(ctx context.Context, p commentsUpdateParams) string {
			return tools.CommentsUpdate(ctx, p.CommentID, p.Text)
		}),
		"mealie_comments_delete": tool(func(ctx context.Context, p commentsGetParams) string {
			return tools.CommentsDelete(ctx, p.CommentID)
		}),
	}
}
