// internal/tools/actions.go
package tools

import (
	"context"

	"github.com/mdlopresti/mealie-mcp-sub000/internal/client"
)

func RecipeActionsList(ctx context.Context, page, perPage int, orderBy, orderDirection string) string {
	page, perPage = normalizePage(page, perPage)
	return run(func(c *client.Client) (any, error) {
		result, err := c.ListRecipeActions(ctx, page, perPage, orderBy, orderDirection)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"success": true,
			"actions": result,
		}, nil
	})
}

// RecipeActionsCreate registers a custom action. Type "link" opens
// the URL with the recipe slug appended; "post" sends recipe data to
// the URL.
func RecipeActionsCreate(ctx context.Context, actionType, title, actionURL string) string {
	return run(func(c *client.Client) (any, error) {
		action, err := c.CreateRecipeAction(ctx, actionType, title, actionURL)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"success": true,
			"message": "Recipe action created successfully",
			"action":  action,
		}, nil
	})
}

func RecipeActionsGet(ctx context.Context, itemID string) string {
	return run(func(c *client.Client) (any, error) {
		action, err := c.GetRecipeAction(ctx, itemID)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"success": true,
			"action":  action,
		}, nil
	})
}

// RecipeActionsUpdate merges changed fields into the stored action;
// the endpoint expects a complete PUT body.
func RecipeActionsUpdate(ctx context.Context, itemID string, actionType, title, actionURL *string) string {
	return run(func(c *client.Client) (any, error) {
		raw, err := c.GetRecipeAction(ctx, itemID)
		if err != nil {
			return nil, err
		}
		existing := client.AsObject(raw)

		payload := map[string]any{
			"id":         itemID,
			"actionType": existing["actionType"],
			"title":      existing["title"],
			"url":        existing["url"],
		}
		if actionType != nil {
			payload["actionType"] = *actionType
		}
		if title != nil {
			payload["title"] = *title
		}
		if actionURL != nil {
			payload["url"] = *actionURL
		}

		action, err := c.UpdateRecipeAction(ctx, itemID, payload)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"success": true,
			"message": "Recipe action updated successfully",
			"action":  action,
		}, nil
	})
}

func RecipeActionsDelete(ctx context.Context, itemID string) string {
	return run(func(c *client.Client) (any, error) {
		if _, err := c.DeleteRecipeAction(ctx, itemID); err != nil {
			return nil, err
		}
		return map[string]any{
			"success": true,
			"message": "Recipe action deleted successfully",
		}, nil
	})
}

func RecipeActionsTrigger(ctx context.Context, itemID, recipeSlug string) string {
	return run(func(c *client.Client) (any, error) {
		result, err := c.TriggerRecipeAction(ctx, itemID, recipeSlug)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"success": true,
			"message": "Recipe action triggered successfully",
			"result":  result,
		}, nil
	})
}
