// internal/client/cookbooks.go
package client

import (
	"context"
	"fmt"
)

func (c *Client) ListCookbooks(ctx context.Context) (any, error) {
	return c.Get(ctx, "/api/households/cookbooks", nil)
}

func (c *Client) GetCookbook(ctx context.Context, cookbookID string) (any, error) {
	return c.Get(ctx, fmt.Sprintf("/api/households/cookbooks/%s", cookbookID), nil)
}

func (c *Client) CreateCookbook(ctx context.Context, payload map[string]any) (any, error) {
	return c.Post(ctx, "/api/households/cookbooks", payload)
}

func (c *Client) UpdateCookbook(ctx context.Context, cookbookID string, payload map[string]any) (any, error) {
	return c.Patch(ctx, fmt.Sprintf("/api/households/cookbooks/%s", cookbookID), payload)
}

func (c *Client) DeleteCookbook(ctx context.Context, cookbookID string) (any, error) {
	return c.Delete(ctx, fmt.Sprintf("/api/households/cookbooks/%s", cookbookID))
}
