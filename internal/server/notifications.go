// internal/server/notifications.go
package server

import (
	"context"

	"github.com/mdlopresti/mealie-mcp-sub000/internal/tools"
)

type notificationsGetParams struct {
	ItemID string `json:"item_id" description:"Notification ID"`
}

type notificationsCreateParams struct {
	Name       string         `json:"name" description:"Notification name"`
	AppriseURL string         `json:"apprise_url,omitempty" description:"Apprise destination URL"`
	Enabled    bool           `json:"enabled,omitempty" description:"Whether the notification is active"`
	Options    map[string]any `json:"options,omitempty" description:"Event option flags"`
}

type notificationsUpdateParams struct {
	ItemID     string         `json:"item_id" description:"Notification ID"`
	Name       *string        `json:"name,omitempty" description:"New notification name"`
	AppriseURL *string        `json:"apprise_url,omitempty" description:"New Apprise destination URL"`
	Enabled    *bool          `json:"enabled,omitempty" description:"New active state"`
	Options    map[string]any `json:"options,omitempty" description:"Replacement event option flags"`
}

func notificationToolHandlers() map[string]toolHandler {
	return map[string]toolHandler{
		"mealie_notifications_list": tool(func(ctx context.Context, _ pingParams) string {
			return tools.NotificationsList(ctx)
		}),
		"mealie_notifications_get": tool(func(ctx context.Context, p notificationsGetParams) string {
			return tools.NotificationsGet(ctx, p.ItemID)
		}),
		"mealie_notifications_create": tool(func(ctx context.Context, p notificationsCreateParams) string {
			return tools.NotificationsCreate(ctx, p.Name, p.AppriseURL, p.Enabled, p.Options)
		}),
		"mealie_notifications_update": tool(func(ctx context.Context, p notificationsUpdateParams) string {
			return tools.NotificationsUpdate(ctx, p.ItemID, p.Name, p.AppriseURL, p.Enabled, p.Options)
		}),
		"mealie_notifications_delete": tool(func(ctx context.Context, p notificationsGetParams) string {
			return tools.NotificationsDelete(ctx, p.ItemID)
		}),
		"mealie_notifications_test": tool(func(ctx context.Context, p notificationsGetParams) string {
			return tools.NotificationsTest(ctx, p.ItemID)
		}),
	}
}
