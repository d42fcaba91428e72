// internal/server/tools.go
package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThinkInAIXYZ/go-mcp/protocol"
)

type toolHandler func(ctx context.Context, req *protocol.CallToolRequest) (*protocol.CallToolResult, error)

// extractParams safely extracts parameters from the request arguments
func extractParams(req *protocol.CallToolRequest, target interface{}) error {
	jsonBytes, err := json.Marshal(req.Arguments)
	if err != nil {
		return fmt.Errorf("failed to marshal arguments: %w", err)
	}

	if err := json.Unmarshal(jsonBytes, target); err != nil {
		return fmt.Errorf("failed to unmarshal parameters: %w", err)
	}

	return nil
}

// textResult wraps a tool result string in a CallToolResult.
func textResult(text string) *protocol.CallToolResult {
	return &protocol.CallToolResult{
		Content: []protocol.Content{
			protocol.TextContent{
				Type: "text",
				Text: text,
			},
		},
	}
}

// tool adapts a typed tool function into a registry handler. Params are
// decoded from the request arguments before the function runs.
func tool[P any](fn func(ctx context.Context, params P) string) toolHandler {
	return func(ctx context.Context, req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
		var params P
		if err := extractParams(req, &params); err != nil {
			return nil, fmt.Errorf("invalid parameters: %w", err)
		}
		return textResult(fn(ctx, params)), nil
	}
}

// toolRegistry assembles every registered tool name into one dispatch map.
func toolRegistry() map[string]toolHandler {
	registry := map[string]toolHandler{}
	for _, group := range []map[string]toolHandler{
		pingToolHandlers(),
		recipeToolHandlers(),
		mealplanToolHandlers(),
		shoppingToolHandlers(),
		foodToolHandlers(),
		organizerToolHandlers(),
		cookbookToolHandlers(),
		commentToolHandlers(),
		timelineToolHandlers(),
		webhookToolHandlers(),
		notificationToolHandlers(),
		recipeActionToolHandlers(),
		parserToolHandlers(),
	} {
		for name, handler := range group {
			registry[name] = handler
		}
	}
	return registry
}
