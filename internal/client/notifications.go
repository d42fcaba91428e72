// internal/client/notifications.go
package client

import (
	"context"
	"fmt"
)

func (c *Client) ListNotifications(ctx context.Context) (any, error) {
	return c.Get(ctx, "/api/households/events/notifications", nil)
}

func (c *Client) GetNotification(ctx context.Context, itemID string) (any, error) {
	return c.Get(ctx, fmt.Sprintf("/api/households/events/notifications/%s", itemID), nil)
}

func (c *Client) CreateNotification(ctx context.Context, payload map[string]any) (any, error) {
	return c.Post(ctx, "/api/households/events/notifications", payload)
}

func (c *Client) UpdateNotification(ctx context.Context, itemID string, payload map[string]any) (any, error) {
	return c.Put(ctx, fmt.Sprintf("/api/households/events/notifications/%s", itemID), payload)
}

func (c *Client) DeleteNotification(ctx context.Context, itemID string) (any, error) {
	return c.Delete(ctx, fmt.Sprintf("/api/households/events/notifications/%s", itemID))
}

// TestNotification sends a test message through the configured
// Apprise URL.
func (c *Client) TestNotification(ctx context.Context, itemID string) (any, error) {
	return c.Post(ctx, fmt.Sprintf("/api/households/events/notifications/%s/test", itemID), map[string]any{})
}
