// internal/client/webhooks.go
package client

import (
	"context"
	"fmt"
)

func (c *Client) ListWebhooks(ctx context.Context) (any, error) {
	return c.Get(ctx, "/api/households/webhooks", nil)
}

func (c *Client) GetWebhook(ctx context.Context, itemID string) (any, error) {
	return c.Get(ctx, fmt.Sprintf("/api/households/webhooks/%s", itemID), nil)
}

func (c *Client) CreateWebhook(ctx context.Context, payload map[string]any) (any, error) {
	return c.Post(ctx, "/api/households/webhooks", payload)
}

func (c *Client) UpdateWebhook(ctx context.Context, itemID string, payload map[string]any) (any, error) {
	return c.Put(ctx, fmt.Sprintf("/api/households/webhooks/%s", itemID), payload)
}

func (c *Client) DeleteWebhook(ctx context.Context, itemID string) (any, error) {
	return c.Delete(ctx, fmt.Sprintf("/api/households/webhooks/%s", itemID))
}

// TestWebhook fires an immediate test delivery for the webhook.
func (c *Client) TestWebhook(ctx context.Context, itemID string) (any, error) {
	return c.Post(ctx, fmt.Sprintf("/api/households/webhooks/%s/test", itemID), map[string]any{})
}
