// internal/tools/notifications.go
package tools

import (
	"context"
	"fmt"

	"github.com/mdlopresti/mealie-mcp-sub000/internal/client"
)

func notificationSummary(notification client.Object) map[string]any {
	options := notification.Object("options")
	if options == nil {
		options = client.Object{}
	}
	return map[string]any{
		"id":           notification["id"],
		"name":         notification["name"],
		"enabled":      notification["enabled"],
		"group_id":     notification["groupId"],
		"household_id": notification["householdId"],
		"options":      options,
	}
}

func NotificationsList(ctx context.Context) string {
	return run(func(c *client.Client) (any, error) {
		response, err := c.ListNotifications(ctx)
		if err != nil {
			return nil, err
		}

		notifications := make([]map[string]any, 0)
		for _, item := range listEntries(response) {
			notifications = append(notifications, notificationSummary(client.AsObject(item)))
		}

		return map[string]any{
			"total":         len(notifications),
			"notifications": notifications,
		}, nil
	})
}

func NotificationsGet(ctx context.Context, itemID string) string {
	return run(func(c *client.Client) (any, error) {
		response, err := c.GetNotification(ctx, itemID)
		if err != nil {
			return nil, err
		}
		return notificationSummary(client.AsObject(response)), nil
	})
}

// NotificationsCreate registers an event notification backed by an
// Apprise URL. Options select which event types fire it.
func NotificationsCreate(ctx context.Context, name, appriseURL string, enabled bool, options map[string]any) string {
	return run(func(c *client.Client) (any, error) {
		payload := map[string]any{
			"name":    name,
			"enabled": enabled,
		}
		if appriseURL != "" {
			payload["appriseUrl"] = appriseURL
		}
		if options != nil {
			payload["options"] = options
		}

		response, err := c.CreateNotification(ctx, payload)
		if err != nil {
			return nil, err
		}
		result := notificationSummary(client.AsObject(response))
		result["message"] = "Notification created successfully"
		return result, nil
	})
}

// NotificationsUpdate merges changed fields into the stored
// notification; the endpoint expects a complete PUT body.
func NotificationsUpdate(ctx context.Context, itemID string, name, appriseURL *string, enabled *bool, options map[string]any) string {
	return run(func(c *client.Client) (any, error) {
		raw, err := c.GetNotification(ctx, itemID)
		if err != nil {
			return nil, err
		}
		existing := client.AsObject(raw)

		payload := map[string]any{
			"id":      itemID,
			"name":    existing["name"],
			"enabled": existing["enabled"],
		}
		if existing.Has("options") {
			payload["options"] = existing["options"]
		}
		if name != nil {
			payload["name"] = *name
		}
		if appriseURL != nil {
			payload["appriseUrl"] = *appriseURL
		}
		if enabled != nil {
			payload["enabled"] = *enabled
		}
		if options != nil {
			payload["options"] = options
		}

		response, err := c.UpdateNotification(ctx, itemID, payload)
		if err != nil {
			return nil, err
		}
		result := notificationSummary(client.AsObject(response))
		result["message"] = "Notification updated successfully"
		return result, nil
	})
}

func NotificationsDelete(ctx context.Context, itemID string) string {
	return run(func(c *client.Client) (any, error) {
		if _, err := c.DeleteNotification(ctx, itemID); err != nil {
			return nil, err
		}
		return map[string]any{
			"success": true,
			"message": fmt.Sprintf("Notification %s deleted successfully", itemID),
		}, nil
	})
}

// NotificationsTest sends a test message through the configured
// Apprise URL.
func NotificationsTest(ctx context.Context, itemID string) string {
	return run(func(c *client.Client) (any, error) {
		response, err := c.TestNotification(ctx, itemID)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"success":         true,
			"message":         "Test notification sent successfully",
			"notification_id": itemID,
			"response":        response,
		}, nil
	})
}
