// internal/client/foods.go
package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

func pageQuery(page, perPage int) url.Values {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("perPage", strconv.Itoa(perPage))
	return query
}

func (c *Client) ListFoods(ctx context.Context, page, perPage int) (any, error) {
	return c.Get(ctx, "/api/foods", pageQuery(page, perPage))
}

func (c *Client) GetFood(ctx context.Context, foodID string) (any, error) {
	return c.Get(ctx, fmt.Sprintf("/api/foods/%s", foodID), nil)
}

func (c *Client) CreateFood(ctx context.Context, name, description, labelID string) (any, error) {
	payload := map[string]any{"name": name}
	if description != "" {
		payload["description"] = description
	}
	if labelID != "" {
		payload["labelId"] = labelID
	}
	return c.Post(ctx, "/api/foods", payload)
}

// UpdateFood replaces the full food record; callers fetch and mutate
// the existing record first since the endpoint expects a complete PUT.
func (c *Client) UpdateFood(ctx context.Context, foodID string, payload map[string]any) (any, error) {
	return c.Put(ctx, fmt.Sprintf("/api/foods/%s", foodID), payload)
}

func (c *Client) DeleteFood(ctx context.Context, foodID string) (any, error) {
	return c.Delete(ctx, fmt.Sprintf("/api/foods/%s", foodID))
}

func (c *Client) MergeFoods(ctx context.Context, fromFoodID, toFoodID string) (any, error) {
	return c.Post(ctx, "/api/foods/merge", map[string]any{
		"fromFood": fromFoodID,
		"toFood":   toFoodID,
	})
}

func (c *Client) ListUnits(ctx context.Context, page, perPage int) (any, error) {
	return c.Get(ctx, "/api/units", pageQuery(page, perPage))
}

func (c *Client) GetUnit(ctx context.Context, unitID string) (any, error) {
	return c.Get(ctx, fmt.Sprintf("/api/units/%s", unitID), nil)
}

func (c *Client) CreateUnit(ctx context.Context, payload map[string]any) (any, error) {
	return c.Post(ctx, "/api/units", payload)
}

func (c *Client) UpdateUnit(ctx context.Context, unitID string, payload map[string]any) (any, error) {
	return c.Patch(ctx, fmt.Sprintf("/api/units/%s", unitID), payload)
}

func (c *Client) DeleteUnit(ctx context.Context, unitID string) (any, error) {
	return c.Delete(ctx, fmt.Sprintf("/api/units/%s", unitID))
}

func (c *Client) MergeUnits(ctx context.Context, fromUnitID, toUnitID string) (any, error) {
	return c.Post(ctx, "/api/units/merge", map[string]any{
		"fromUnit": fromUnitID,
		"toUnit":   toUnitID,
	})
}
