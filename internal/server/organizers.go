// internal/server/organizers.go
package server

import (
	"context"
	"fmt"

	"github.com/mdlopresti/mealie-mcp-sub000/internal/client"
	"github.com/mdlopresti/mealie-mcp-sub000/internal/tools"
)

type organizersGetParams struct {
	ItemID string `json:"item_id" description:"Organizer ID or slug"`
}

type organizersCreateParams struct {
	Name string `json:"name" description:"Organizer name"`
}

type organizersUpdateParams struct {
	ItemID string  `json:"item_id" description:"Organizer ID or slug"`
	Name   *string `json:"name,omitempty" description:"New organizer name"`
	Slug   *string `json:"slug,omitempty" description:"New organizer slug"`
}

// organizerToolHandlers registers the same five operations for
// categories, tags, and tools.
func organizerToolHandlers() map[string]toolHandler {
	handlers := map[string]toolHandler{}
	for _, kind := range []string{
		client.OrganizerCategories,
		client.OrganizerTags,
		client.OrganizerTools,
	} {
		kind := kind
		handlers[fmt.Sprintf("mealie_%s_list", kind)] = tool(func(ctx context.Context, _ pingParams) string {
			return tools.OrganizersList(ctx, kind)
		})
		handlers[fmt.Sprintf("mealie_%s_get", kind)] = tool(func(ctx context.Context, p organizersGetParams) string {
			return tools.OrganizersGet(ctx, kind, p.ItemID)
		})
		handlers[fmt.Sprintf("mealie_%s_create", kind)] = tool(func(ctx context.Context, p organizersCreateParams) string {
			return tools.OrganizersCreate(ctx, kind, p.Name)
		})
		handlers[fmt.Sprintf("mealie_%s_update", kind)] = tool(func(ctx context.Context, p organizersUpdateParams) string {
			return tools.OrganizersUpdate(ctx, kind, p.ItemID, p.Name, p.Slug)
		})
		handlers[fmt.Sprintf("mealie_%s_delete", kind)] = tool(func(ctx context.Context, p organizersGetParams) string {
			return tools.OrganizersDelete(ctx, kind, p.ItemID)
		})
	}
	return handlers
}
