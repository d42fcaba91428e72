// internal/client/organizers.go
package client

import (
	"context"
	"fmt"
)

// Organizer kinds share one endpoint family under /api/organizers.
const (
	OrganizerCategories = "categories"
	OrganizerTags       = "tags"
	OrganizerTools      = "tools"
)

func (c *Client) ListOrganizers(ctx context.Context, kind string) (any, error) {
	return c.Get(ctx, fmt.Sprintf("/api/organizers/%s", kind), nil)
}

func (c *Client) GetOrganizer(ctx context.Context, kind, itemID string) (any, error) {
	return c.Get(ctx, fmt.Sprintf("/api/organizers/%s/%s", kind, itemID), nil)
}

func (c *Client) CreateOrganizer(ctx context.Context, kind, name string) (any, error) {
	return c.Post(ctx, fmt.Sprintf("/api/organizers/%s", kind), map[string]any{"name": name})
}

func (c *Client) UpdateOrganizer(ctx context.Context, kind, itemID string, payload map[string]any) (any, error) {
	return c.Patch(ctx, fmt.Sprintf("/api/organizers/%s/%s", kind, itemID), payload)
}

func (c *Client) DeleteOrganizer(ctx context.Context, kind, itemID string) (any, error) {
	return c.Delete(ctx, fmt.Sprintf("/api/organizers/%s/%s", kind, itemID))
}
