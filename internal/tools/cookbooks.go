// internal/tools/cookbooks.go
package tools

import (
	"context"

	"github.com/mdlopresti/mealie-mcp-sub000/internal/client"
)

func CookbooksList(ctx context.Context) string {
	return run(func(c *client.Client) (any, error) {
		cookbooks, err := c.ListCookbooks(ctx)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"success":   true,
			"cookbooks": cookbooks,
		}, nil
	})
}

func CookbooksGet(ctx context.Context, cookbookID string) string {
	return run(func(c *client.Client) (any, error) {
		cookbook, err := c.GetCookbook(ctx, cookbookID)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"success":  true,
			"cookbook": cookbook,
		}, nil
	})
}

func CookbooksCreate(ctx context.Context, name, description, slug string, public bool) string {
	return run(func(c *client.Client) (any, error) {
		payload := map[string]any{
			"name":   name,
			"public": public,
		}
		if description != "" {
			payload["description"] = description
		}
		if slug != "" {
			payload["slug"] = slug
		}

		cookbook, err := c.CreateCookbook(ctx, payload)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"success":  true,
			"message":  "Cookbook created successfully",
			"cookbook": cookbook,
		}, nil
	})
}

func CookbooksUpdate(ctx context.Context, cookbookID string, name, description, slug *string, public *bool) string {
	return run(func(c *client.Client) (any, error) {
		payload := map[string]any{"id": cookbookID}
		if name != nil {
			payload["name"] = *name
		}
		if description != nil {
			payload["description"] = *description
		}
		if slug != nil {
			payload["slug"] = *slug
		}
		if public != nil {
			payload["public"] = *public
		}

		cookbook, err := c.UpdateCookbook(ctx, cookbookID, payload)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"success":  true,
			"message":  "Cookbook updated successfully",
			"cookbook": cookbook,
		}, nil
	})
}

func CookbooksDelete(ctx context.Context, cookbookID string) string {
	return run(func(c *client.Client) (any, error) {
		if _, err := c.DeleteCookbook(ctx, cookbookID); err != nil {
			return nil, err
		}
		return map[string]any{
			"success": true,
			"message": "Cookbook deleted successfully",
		}, nil
	})
}
