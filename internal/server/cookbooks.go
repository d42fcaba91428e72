// internal/server/cookbooks.go
package server

import (
	"context"

	"github.com/mdlopresti/mealie-mcp-sub000/internal/tools"
)

type cookbooksGetParams struct {
	CookbookID string `json:"cookbook_id" description:"Cookbook ID or slug"`
}

type cookbooksCreateParams struct {
	Name        string `json:"name" description:"Cookbook name"`
	Description string `json:"description,omitempty" description:"Cookbook description"`
	Slug        string `json:"slug,omitempty" description:"Cookbook slug"`
	Public      bool   `json:"public,omitempty" description:"Whether the cookbook is public"`
}

type cookbooksUpdateParams struct {
	CookbookID  string  `json:"cookbook_id" description:"Cookbook ID or slug"`
	Name        *string `json:"name,omitempty" description:"New cookbook name"`
	Description *string `json:"description,omitempty" description:"New description"`
	Slug        *string `json:"slug,omitempty" description:"New slug"`
	Public      *bool   `json:"public,omitempty" description:"New public state"`
}

func cookbookToolHandlers() map[string]toolHandler {
	return map[string]toolHandler{
		"mealie_cookbooks_list": tool(func(ctx context.Context, _ pingParams) string {
			return tools.CookbooksList(ctx)
		}),
		"mealie_cookbooks_get": tool(func(ctx context.Context, p cookbooksGetParams) string {
			return tools.CookbooksGet(ctx, p.CookbookID)
		}),
		"mealie_cookbooks_create": tool(func(ctx context.Context, p cookbooksCreateParams) string {
			return tools.CookbooksCreate(ctx, p.Name, p.Description, p.Slug, p.Public)
		}),
		"mealie_cookbooks_update": tool(func(ctx context.Context, p cookbooksUpdateParams) string {
			return tools.CookbooksUpdate(ctx, p.CookbookID, p.Name, p.Description, p.Slug, p.Public)
		}),
		"mealie_cookbooks_delete": tool(func(ctx context.Context, p cookbooksGetParams) string {
			return tools.CookbooksDelete(ctx, p.CookbookID)
		}),
	}
}
