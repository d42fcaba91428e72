// internal/server/webhooks.go
package server

import (
	"context"

	"github.com/mdlopresti/mealie-mcp-sub000/internal/tools"
)

type webhooksGetParams struct {
	ItemID string `json:"item_id" description:"Webhook ID"`
}

type webhooksCreateParams struct {
	URL           string `json:"url" description:"URL the webhook posts to"`
	ScheduledTime string `json:"scheduled_time" description:"Time of day to fire, HH:MM"`
	Enabled       bool   `json:"enabled,omitempty" description:"Whether the webhook is active"`
	Name          string `json:"name,omitempty" description:"Webhook name"`
	WebhookType   string `json:"webhook_type,omitempty" description:"Webhook type (default mealplan)"`
}

type webhooksUpdateParams struct {
	ItemID        string  `json:"item_id" description:"Webhook ID"`
	URL           *string `json:"url,omitempty" description:"New target URL"`
	ScheduledTime *string `json:"scheduled_time,omitempty" description:"New fire time, HH:MM"`
	Enabled       *bool   `json:"enabled,omitempty" description:"New active state"`
	Name          *string `json:"name,omitempty" description:"New webhook name"`
	WebhookType   *string `json:"webhook_type,omitempty" description:"New webhook type"`
}

func webhookToolHandlers() map[string]toolHandler {
	return map[string]toolHandler{
		"mealie_webhooks_list": tool(func(ctx context.Context, _ pingParams) string {
			return tools.WebhooksList(ctx)
		}),
		"mealie_webhooks_get": tool(func(ctx context.Context, p webhooksGetParams) string {
			return tools.WebhooksGet(ctx, p.ItemID)
		}),
		"mealie_webhooks_create": tool(func(ctx context.Context, p webhooksCreateParams) string {
			return tools.WebhooksCreate(ctx, p.URL, p.ScheduledTime, p.Enabled, p.Name, p.WebhookType)
		}),
		"mealie_webhooks_update": tool(func(ctx context.Context, p webhooksUpdateParams) string {
			return tools.WebhooksUpdate(ctx, p.ItemID, p.URL, p.ScheduledTime, p.Enabled, p.Name, p.WebhookType)
		}),
		"mealie_webhooks_delete": tool(func(ctx context.Context, p webhooksGetParams) string {
			return tools.WebhooksDelete(ctx, p.ItemID)
		}),
		"mealie_webhooks_test": tool(func(ctx context.Context, p webhooksGetParams) string {
			return tools.WebhooksTest(ctx, p.ItemID)
		}),
	}
}
