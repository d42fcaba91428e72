// internal/tools/timeline.go
package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/mdlopresti/mealie-mcp-sub000/internal/client"
)

func timelineEventSummary(event client.Object) map[string]any {
	return map[string]any{
		"id":            event["id"],
		"recipe_id":     event["recipeId"],
		"user_id":       event["userId"],
		"subject":       event["subject"],
		"event_type":    event["eventType"],
		"event_message": event["eventMessage"],
		"timestamp":     event["timestamp"],
		"has_image":     event.Str("image") == "has image",
	}
}

func TimelineList(ctx context.Context, page, perPage int, orderBy, orderDirection, queryFilter string) string {
	page, perPage = normalizePage(page, perPage)
	return run(func(c *client.Client) (any, error) {
		response, err := c.ListTimelineEvents(ctx, page, perPage, orderBy, orderDirection, queryFilter)
		if err != nil {
			return nil, err
		}

		listing, ok := response.(map[string]any)
		if !ok || !client.Object(listing).Has("items") {
			return response, nil
		}
		result := client.Object(listing)

		events := make([]map[string]any, 0)
		for _, item := range result.List("items") {
			events = append(events, timelineEventSummary(client.AsObject(item)))
		}

		return map[string]any{
			"page":        result["page"],
			"per_page":    result["perPage"],
			"total":       result["total"],
			"total_pages": result["totalPages"],
			"events":      events,
		}, nil
	})
}

func TimelineGet(ctx context.Context, eventID string) string {
	return run(func(c *client.Client) (any, error) {
		response, err := c.GetTimelineEvent(ctx, eventID)
		if err != nil {
			return nil, err
		}
		event := client.AsObject(response)

		return map[string]any{
			"id":            event["id"],
			"recipe_id":     event["recipeId"],
			"user_id":       event["userId"],
			"group_id":      event["groupId"],
			"household_id":  event["householdId"],
			"subject":       event["subject"],
			"event_type":    event["eventType"],
			"event_message": event["eventMessage"],
			"timestamp":     event["timestamp"],
			"has_image":     event.Str("image") == "has image",
			"created_at":    event["createdAt"],
			"update_at":     event["updateAt"],
		}, nil
	})
}

func TimelineCreate(ctx context.Context, recipeID, subject, eventType, eventMessage, userID, timestamp string) string {
	if eventType == "" {
		eventType = "info"
	}
	return run(func(c *client.Client) (any, error) {
		payload := map[string]any{
			"recipeId":  recipeID,
			"subject":   subject,
			"eventType": eventType,
		}
		if eventMessage != "" {
			payload["eventMessage"] = eventMessage
		}
		if userID != "" {
			payload["userId"] = userID
		}
		if timestamp == "" {
			timestamp = time.Now().UTC().Format(time.RFC3339)
		}
		payload["timestamp"] = timestamp

		response, err := c.CreateTimelineEvent(ctx, payload)
		if err != nil {
			return nil, err
		}
		event := client.AsObject(response)

		return map[string]any{
			"id":            event["id"],
			"recipe_id":     event["recipeId"],
			"subject":       event["subject"],
			"event_type":    event["eventType"],
			"event_message": event["eventMessage"],
			"timestamp":     event["timestamp"],
			"message":       "Timeline event created successfully",
		}, nil
	})
}

func TimelineUpdate(ctx context.Context, eventID string, subject, eventType, eventMessage, timestamp *string) string {
	return run(func(c *client.Client) (any, error) {
		payload := map[string]any{}
		if subject != nil {
			payload["subject"] = *subject
		}
		if eventType != nil {
			payload["eventType"] = *eventType
		}
		if eventMessage != nil {
			payload["eventMessage"] = *eventMessage
		}
		if timestamp != nil {
			payload["timestamp"] = *timestamp
		}

		response, err := c.UpdateTimelineEvent(ctx, eventID, payload)
		if err != nil {
			return nil, err
		}
		event := client.AsObject(response)

		return map[string]any{
			"id":            event["id"],
			"recipe_id":     event["recipeId"],
			"subject":       event["subject"],
			"event_type":    event["eventType"],
			"event_message": event["eventMessage"],
			"timestamp":     event["timestamp"],
			"message":       "Timeline event updated successfully",
		}, nil
	})
}

func TimelineDelete(ctx context.Context, eventID string) string {
	return run(func(c *client.Client) (any, error) {
		if _, err := c.DeleteTimelineEvent(ctx, eventID); err != nil {
			return nil, err
		}
		return map[string]any{
			"success": true,
			"message": fmt.Sprintf("Timeline event %s deleted successfully", eventID),
		}, nil
	})
}

// TimelineUpdateImage downloads an image from a URL and attaches it
// to a timeline event.
func TimelineUpdateImage(ctx context.Context, eventID, imageURL string) string {
	return run(func(c *client.Client) (any, error) {
		imageData, extension, err := client.DownloadImage(ctx, imageURL)
		if err != nil {
			return nil, err
		}

		if _, err := c.UpdateTimelineEventImage(ctx, eventID, imageData, extension); err != nil {
			return nil, err
		}

		return map[string]any{
			"success":   true,
			"message":   fmt.Sprintf("Image uploaded successfully to event %s", eventID),
			"image_url": imageURL,
			"extension": extension,
			"event_id":  eventID,
		}, nil
	})
}
