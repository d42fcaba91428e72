// internal/tools/tools.go
//
// Package tools implements the MCP-exposed operations. Every function
// returns a JSON string and never returns an error: API failures and
// unexpected internal failures alike are serialized into an object
// with an "error" key, which is the contract the dispatch layer and
// the LLM agent rely on.
package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mdlopresti/mealie-mcp-sub000/internal/client"
)

// jsonString serializes a result for the MCP layer. Marshal failures
// are folded into the uniform error shape rather than propagated.
func jsonString(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorJSON(fmt.Errorf("failed to serialize result: %w", err))
	}
	return string(data)
}

// errorJSON converts any error into the uniform tool error object.
// HTTP failures carry their status code and raw body; transport
// failures carry nulls; anything else is reported generically.
func errorJSON(err error) string {
	var httpErr *client.HTTPError
	if errors.As(err, &httpErr) {
		return jsonString(map[string]any{
			"error":         err.Error(),
			"status_code":   httpErr.StatusCode,
			"response_body": httpErr.Body,
		})
	}

	var transportErr *client.TransportError
	if errors.As(err, &transportErr) {
		return jsonString(map[string]any{
			"error":         err.Error(),
			"status_code":   nil,
			"response_body": nil,
		})
	}

	return jsonString(map[string]any{
		"error": fmt.Sprintf("Unexpected error: %v", err),
	})
}

// run acquires a client, executes fn, and serializes either the result
// or the failure. The client is always released.
func run(fn func(c *client.Client) (any, error)) string {
	c, err := client.New()
	if err != nil {
		return errorJSON(err)
	}
	defer c.Close()

	result, err := fn(c)
	if err != nil {
		return errorJSON(err)
	}
	return jsonString(result)
}

// listEntries normalizes a listing response, which depending on the
// endpoint and Mealie version may be a paginated object with "items",
// a bare list, or a single record.
func listEntries(response any) []any {
	switch v := response.(type) {
	case nil:
		return nil
	case []any:
		return v
	case map[string]any:
		obj := client.Object(v)
		if obj.Has("items") {
			return obj.List("items")
		}
		return []any{v}
	default:
		return nil
	}
}

// parseToolResult decodes a tool's JSON output back into a map so
// batch operations can compose per-entry tools and inspect outcomes.
func parseToolResult(result string) map[string]any {
	parsed := map[string]any{}
	if err := json.Unmarshal([]byte(result), &parsed); err != nil {
		return map[string]any{"error": result}
	}
	return parsed
}

// Ping reports whether both the MCP server and the Mealie instance are
// reachable. Unlike the other tools it returns a plain string.
func Ping(ctx context.Context) string {
	c, err := client.New()
	if err != nil {
		return fmt.Sprintf("MCP server running but error occurred: %v", err)
	}
	defer c.Close()

	if err := c.TestConnection(ctx); err != nil {
		return fmt.Sprintf("MCP server running but Mealie connection failed: %v", err)
	}
	return "pong - Mealie MCP server is running and connected to Mealie"
}
