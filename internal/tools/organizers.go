// internal/tools/organizers.go
package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mdlopresti/mealie-mcp-sub000/internal/client"
)

// organizerLabel maps an organizer kind to its singular noun, used in
// messages and result keys.
func organizerLabel(kind string) string {
	switch kind {
	case client.OrganizerCategories:
		return "category"
	case client.OrganizerTags:
		return "tag"
	case client.OrganizerTools:
		return "tool"
	default:
		return strings.TrimSuffix(kind, "s")
	}
}

func OrganizersList(ctx context.Context, kind string) string {
	return run(func(c *client.Client) (any, error) {
		return c.ListOrganizers(ctx, kind)
	})
}

func OrganizersGet(ctx context.Context, kind, itemID string) string {
	return run(func(c *client.Client) (any, error) {
		return c.GetOrganizer(ctx, kind, itemID)
	})
}

func OrganizersCreate(ctx context.Context, kind, name string) string {
	label := organizerLabel(kind)
	return run(func(c *client.Client) (any, error) {
		created, err := c.CreateOrganizer(ctx, kind, name)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"success": true,
			"message": fmt.Sprintf("%s created successfully", capitalize(label)),
			label:     created,
		}, nil
	})
}

func OrganizersUpdate(ctx context.Context, kind, itemID string, name, slug *string) string {
	label := organizerLabel(kind)
	return run(func(c *client.Client) (any, error) {
		payload := map[string]any{"id": itemID}
		if name != nil {
			payload["name"] = *name
		}
		if slug != nil {
			payload["slug"] = *slug
		}

		updated, err := c.UpdateOrganizer(ctx, kind, itemID, payload)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"success": true,
			"message": fmt.Sprintf("%s updated successfully", capitalize(label)),
			label:     updated,
		}, nil
	})
}

func OrganizersDelete(ctx context.Context, kind, itemID string) string {
	label := organizerLabel(kind)
	return run(func(c *client.Client) (any, error) {
		if _, err := c.DeleteOrganizer(ctx, kind, itemID); err != nil {
			return nil, err
		}
		return map[string]any{
			"success": true,
			"message": fmt.Sprintf("%s deleted successfully", capitalize(label)),
		}, nil
	})
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
