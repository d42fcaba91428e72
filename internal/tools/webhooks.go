// internal/tools/webhooks.go
package tools

import (
	"context"
	"fmt"

	"github.com/mdlopresti/mealie-mcp-sub000/internal/client"
)

func webhookSummary(webhook client.Object) map[string]any {
	return map[string]any{
		"id":             webhook["id"],
		"name":           webhook.StrOr("name", ""),
		"url":            webhook["url"],
		"enabled":        webhook["enabled"],
		"webhook_type":   webhook["webhookType"],
		"scheduled_time": webhook["scheduledTime"],
		"group_id":       webhook["groupId"],
		"household_id":   webhook["householdId"],
	}
}

func WebhooksList(ctx context.Context) string {
	return run(func(c *client.Client) (any, error) {
		response, err := c.ListWebhooks(ctx)
		if err != nil {
			return nil, err
		}

		webhooks := make([]map[string]any, 0)
		for _, item := range listEntries(response) {
			webhooks = append(webhooks, webhookSummary(client.AsObject(item)))
		}

		return map[string]any{
			"total":    len(webhooks),
			"webhooks": webhooks,
		}, nil
	})
}

func WebhooksGet(ctx context.Context, itemID string) string {
	return run(func(c *client.Client) (any, error) {
		response, err := c.GetWebhook(ctx, itemID)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"success": true,
			"webhook": webhookSummary(client.AsObject(response)),
		}, nil
	})
}

// WebhooksCreate registers a scheduled webhook. The mealplan type
// posts the day's meal plan to the URL at the scheduled time.
func WebhooksCreate(ctx context.Context, webhookURL, scheduledTime string, enabled bool, name, webhookType string) string {
	if webhookType == "" {
		webhookType = "mealplan"
	}
	return run(func(c *client.Client) (any, error) {
		payload := map[string]any{
			"url":           webhookURL,
			"scheduledTime": scheduledTime,
			"enabled":       enabled,
			"name":          name,
			"webhookType":   webhookType,
		}

		response, err := c.CreateWebhook(ctx, payload)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"success": true,
			"message": "Webhook created successfully",
			"webhook": webhookSummary(client.AsObject(response)),
		}, nil
	})
}

// WebhooksUpdate merges changed fields into the stored webhook; the
// endpoint expects a complete PUT body.
func WebhooksUpdate(ctx context.Context, itemID string, webhookURL, scheduledTime *string, enabled *bool, name, webhookType *string) string {
	return run(func(c *client.Client) (any, error) {
		raw, err := c.GetWebhook(ctx, itemID)
		if err != nil {
			return nil, err
		}
		existing := client.AsObject(raw)

		payload := map[string]any{
			"id":            itemID,
			"url":           existing["url"],
			"scheduledTime": existing["scheduledTime"],
			"enabled":       existing["enabled"],
			"name":          existing.StrOr("name", ""),
			"webhookType":   existing["webhookType"],
		}
		if webhookURL != nil {
			payload["url"] = *webhookURL
		}
		if scheduledTime != nil {
			payload["scheduledTime"] = *scheduledTime
		}
		if enabled != nil {
			payload["enabled"] = *enabled
		}
		if name != nil {
			payload["name"] = *name
		}
		if webhookType != nil {
			payload["webhookType"] = *webhookType
		}

		response, err := c.UpdateWebhook(ctx, itemID, payload)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"success": true,
			"message": "Webhook updated successfully",
			"webhook": webhookSummary(client.AsObject(response)),
		}, nil
	})
}

func WebhooksDelete(ctx context.Context, itemID string) string {
	return run(func(c *client.Client) (any, error) {
		if _, err := c.DeleteWebhook(ctx, itemID); err != nil {
			return nil, err
		}
		return map[string]any{
			"success": true,
			"message": fmt.Sprintf("Webhook %s deleted successfully", itemID),
		}, nil
	})
}

func WebhooksTest(ctx context.Context, itemID string) string {
	return run(func(c *client.Client) (any, error) {
		if _, err := c.TestWebhook(ctx, itemID); err != nil {
			return nil, err
		}
		return map[string]any{
			"success":    true,
			"message":    "Test webhook request sent successfully",
			"webhook_id": itemID,
		}, nil
	})
}
