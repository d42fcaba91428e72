// internal/client/mealplans.go
package client

import (
	"context"
	"fmt"
	"net/url"
)

func (c *Client) ListMealplans(ctx context.Context, startDate, endDate string) (any, error) {
	query := url.Values{}
	if startDate != "" {
		query.Set("start_date", startDate)
	}
	if endDate != "" {
		query.Set("end_date", endDate)
	}
	return c.Get(ctx, "/api/households/mealplans", query)
}

func (c *Client) GetTodaysMealplans(ctx context.Context) (any, error) {
	return c.Get(ctx, "/api/households/mealplans/today", nil)
}

func (c *Client) GetMealplan(ctx context.Context, mealplanID string) (any, error) {
	return c.Get(ctx, fmt.Sprintf("/api/households/mealplans/%s", mealplanID), nil)
}

func (c *Client) CreateMealplan(ctx context.Context, payload map[string]any) (any, error) {
	return c.Post(ctx, "/api/households/mealplans", payload)
}

func (c *Client) UpdateMealplan(ctx context.Context, mealplanID string, payload map[string]any) (any, error) {
	return c.Put(ctx, fmt.Sprintf("/api/households/mealplans/%s", mealplanID), payload)
}

func (c *Client) DeleteMealplan(ctx context.Context, mealplanID string) (any, error) {
	return c.Delete(ctx, fmt.Sprintf("/api/households/mealplans/%s", mealplanID))
}

func (c *Client) GetRandomMealplan(ctx context.Context) (any, error) {
	return c.Post(ctx, "/api/households/mealplans/random", map[string]any{})
}

func (c *Client) ListMealplanRules(ctx context.Context) (any, error) {
	return c.Get(ctx, "/api/households/mealplans/rules", nil)
}

func (c *Client) GetMealplanRule(ctx context.Context, ruleID string) (any, error) {
	return c.Get(ctx, fmt.Sprintf("/api/households/mealplans/rules/%s", ruleID), nil)
}

func (c *Client) CreateMealplanRule(ctx context.Context, payload map[string]any) (any, error) {
	return c.Post(ctx, "/api/households/mealplans/rules", payload)
}

func (c *Client) UpdateMealplanRule(ctx context.Context, ruleID string, payload map[string]any) (any, error) {
	return c.Patch(ctx, fmt.Sprintf("/api/households/mealplans/rules/%s", ruleID), payload)
}

func (c *Client) DeleteMealplanRule(ctx context.Context, ruleID string) (any, error) {
	return c.Delete(ctx, fmt.Sprintf("/api/households/mealplans/rules/%s", ruleID))
}
