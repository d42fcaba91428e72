// internal/server/timeline.go
package server

import (
	"context"

	"github.com/mdlopresti/mealie-mcp-sub000/internal/tools"
)

type timelineListParams struct {
	Page           int    `json:"page,omitempty" description:"Page number (default 1)"`
	PerPage        int    `json:"per_page,omitempty" description:"Results per page (default 50)"`
	OrderBy        string `json:"order_by,omitempty" description:"Field to order by"`
	OrderDirection string `json:"order_direction,omitempty" description:"asc or desc"`
	QueryFilter    string `json:"query_filter,omitempty" description:"Server-side query filter expression"`
}

type timelineGetParams struct {
	EventID string `json:"event_id" description:"Timeline event ID"`
}

type timelineCreateParams struct {
	RecipeID     string `json:"recipe_id" description:"Recipe ID the event belongs to"`
	Subject      string `json:"subject" description:"Event subject line"`
	EventType    string `json:"event_type,omitempty" description:"One of comment, info, system (default info)"`
	EventMessage string `json:"event_message,omitempty" description:"Event body text"`
	UserID       string `json:"user_id,omitempty" description:"User ID to attribute the event to"`
	Timestamp    string `json:"timestamp,omitempty" description:"ISO timestamp (defaults to now)"`
}

type timelineUpdateParams struct {
	EventID      string  `json:"event_id" description:"Timeline event ID"`
	Subject      *string `json:"subject,omitempty" description:"New subject line"`
	EventType    *string `json:"event_type,omitempty" description:"New event type"`
	EventMessage *string `json:"event_message,omitempty" description:"New body text"`
	Timestamp    *string `json:"timestamp,omitempty" description:"New ISO timestamp"`
}

type timelineUpdateImageParams struct {
	EventID  string `json:"event_id" description:"Timeline event ID"`
	ImageURL string `json:"image_url" description:"URL of the image to attach"`
}

func timelineToolHandlers() map[string]toolHandler {
	return map[string]toolHandler{
		"mealie_timeline_list": tool(func(ctx context.Context, p timelineListParams) string {
			return tools.TimelineList(ctx, p.Page, p.PerPage, p.OrderBy, p.OrderDirection, p.QueryFilter)
		}),
		"mealie_timeline_get": tool(func(ctx context.Context, p timelineGetParams) string {
			return tools.TimelineGet(ctx, p.EventID)
		}),
		"mealie_timeline_create": tool(func(ctx context.Context, p timelineCreateParams) string {
			return tools.TimelineCreate(ctx, p.RecipeID, p.Subject, p.EventType, p.EventMessage, p.UserID, p.Timestamp)
		}),
		"mealie_timeline_update": tool(func(ctx context.Context, p timelineUpdateParams) string {
			return tools.TimelineUpdate(ctx, p.EventID, p.Subject, p.EventType, p.EventMessage, p.Timestamp)
		}),
		"mealie_timeline_delete": tool(func(ctx context.Context, p timelineGetParams) string {
			return tools.TimelineDelete(ctx, p.EventID)
		}),
		"mealie_timeline_update_image": tool(func(ctx context.Context, p timelineUpdateImageParams) string {
			return tools.TimelineUpdateImage(ctx, p.EventID, p.ImageURL)
		}),
	}
}
