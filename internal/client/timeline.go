// internal/client/timeline.go
package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

func (c *Client) ListTimelineEvents(ctx context.Context, page, perPage int, orderBy, orderDirection, queryFilter string) (any, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("perPage", strconv.Itoa(perPage))
	if orderBy != "" {
		query.Set("orderBy", orderBy)
	}
	if orderDirection != "" {
		query.Set("orderDirection", orderDirection)
	}
	if queryFilter != "" {
		query.Set("queryFilter", queryFilter)
	}
	return c.Get(ctx, "/api/recipes/timeline/events", query)
}

func (c *Client) GetTimelineEvent(ctx context.Context, eventID string) (any, error) {
	return c.Get(ctx, fmt.Sprintf("/api/recipes/timeline/events/%s", eventID), nil)
}

func (c *Client) CreateTimelineEvent(ctx context.Context, payload map[string]any) (any, error) {
	return c.Post(ctx, "/api/recipes/timeline/events", payload)
}

func (c *Client) UpdateTimelineEvent(ctx context.Context, eventID string, payload map[string]any) (any, error) {
	return c.Put(ctx, fmt.Sprintf("/api/recipes/timeline/events/%s", eventID), payload)
}

func (c *Client) DeleteTimelineEvent(ctx context.Context, eventID string) (any, error) {
	return c.Delete(ctx, fmt.Sprintf("/api/recipes/timeline/events/%s", eventID))
}

func (c *Client) UpdateTimelineEventImage(ctx context.Context, eventID string, imageData []byte, extension string) (any, error) {
	fileName := fmt.Sprintf("image.%s", extension)
	return c.upload(ctx, "PUT", fmt.Sprintf("/api/recipes/timeline/events/%s/image", eventID),
		map[string]string{"extension": extension}, "image", fileName, imageData)
}
