// internal/server/actions.go
package server

import (
	"context"

	"github.com/mdlopresti/mealie-mcp-sub000/internal/tools"
)

type recipeActionsListParams struct {
	Page           int    `json:"page,omitempty" description:"Page number (default 1)"`
	PerPage        int    `json:"per_page,omitempty" description:"Results per page (default 50)"`
	OrderBy        string `json:"order_by,omitempty" description:"Field to order by"`
	OrderDirection string `json:"order_direction,omitempty" description:"asc or desc"`
}

type recipeActionsGetParams struct {
	ItemID string `json:"item_id" description:"Recipe action ID"`
}

type recipeActionsCreateParams struct {
	ActionType string `json:"action_type" description:"Action type, link or post"`
	Title      string `json:"title" description:"Action title shown in the UI"`
	URL        string `json:"url" description:"Target URL, may contain recipe placeholders"`
}

type recipeActionsUpdateParams struct {
	ItemID     string  `json:"item_id" description:"Recipe action ID"`
	ActionType *string `json:"action_type,omitempty" description:"New action type"`
	Title      *string `json:"title,omitempty" description:"New title"`
	URL        *string `json:"url,omitempty" description:"New target URL"`
}

type recipeActionsTriggerParams struct {
	ItemID     string `json:"item_id" description:"Recipe action ID"`
	RecipeSlug string `json:"recipe_slug" description:"Recipe slug to run the action against"`
}

func recipeActionToolHandlers() map[string]toolHandler {
	return map[string]toolHandler{
		"mealie_recipe_actions_list": tool(func(ctx context.Context, p recipeActionsListParams) string {
			return tools.RecipeActionsList(ctx, p.Page, p.PerPage, p.OrderBy, p.OrderDirection)
		}),
		"mealie_recipe_actions_get": tool(func(ctx context.Context, p recipeActionsGetParams) string {
			return tools.RecipeActionsGet(ctx, p.ItemID)
		}),
		"mealie_recipe_actions_create": tool(func(ctx context.Context, p recipeActionsCreateParams) string {
			return tools.RecipeActionsCreate(ctx, p.ActionType, p.Title, p.URL)
		}),
		"mealie_recipe_actions_update": tool(func(ctx context.Context, p recipeActionsUpdateParams) string {
			return tools.RecipeActionsUpdate(ctx, p.ItemID, p.ActionType, p.Title, p.URL)
		}),
		"mealie_recipe_actions_delete": tool(func(ctx context.Context, p recipeActionsGetParams) string {
			return tools.RecipeActionsDelete(ctx, p.ItemID)
		}),
		"mealie_recipe_actions_trigger": tool(func(ctx context.Context, p recipeActionsTriggerParams) string {
			return tools.RecipeActionsTrigger(ctx, p.ItemID, p.RecipeSlug)
		}),
	}
}
