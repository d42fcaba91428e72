// internal/client/parse.go
package client

import (
	"encoding/json"
	"fmt"
	"strings"
)

type errorTemplate struct {
	title       string
	suggestions []string
	knownIssues map[string]string
}

var errorTemplates = map[int]errorTemplate{
	422: {
		title: "Validation Error",
		suggestions: []string{
			"Check that all required fields are provided",
			"Verify field values match expected types and formats",
			"Review the error details below for specific field issues",
		},
	},
	500: {
		title: "Server Error",
		suggestions: []string{
			"The Mealie server encountered an internal error",
			"This may be a bug in Mealie - check server logs: kubectl logs -f <pod-name> -n mealie",
			"Try the operation again, or simplify the request if possible",
		},
	},
	409: {
		title: "Conflict",
		suggestions: []string{
			"A resource with this name or identifier may already exist",
			"Try using a different name or identifier",
			"Use update/patch operations instead of create for existing resources",
		},
		knownIssues: map[string]string{
			"Recipe already exists": "https://github.com/mdlopresti/mealie-mcp/issues/7",
		},
	},
}

// ParseAPIError turns a status code and raw response body into a
// human-readable Diagnostic. It never fails: bodies that are not JSON,
// or JSON of an unrecognized shape, fall through to a raw echo.
func ParseAPIError(statusCode int, responseText string) Diagnostic {
	result := Diagnostic{
		Message:     fmt.Sprintf("HTTP %d Error", statusCode),
		Details:     []string{},
		Suggestions: []string{},
		RawResponse: responseText,
	}

	template, hasTemplate := errorTemplates[statusCode]
	if hasTemplate {
		result.Message = fmt.Sprintf("%s (HTTP %d)", template.title, statusCode)
		result.Suggestions = append(result.Suggestions, template.suggestions...)
	}

	var errorData any
	if err := json.Unmarshal([]byte(responseText), &errorData); err != nil {
		result.Details = append(result.Details, fmt.Sprintf("Raw error: %s", truncate(responseText, 200)))
		return result
	}

	errorMap, isMap := errorData.(map[string]any)

	switch {
	// FastAPI validation error: {"detail": [{"loc": [...], "msg": "...", "type": "..."}]}
	case isMap && hasKey(errorMap, "detail"):
		switch detail := errorMap["detail"].(type) {
		case []any:
			for _, entry := range detail {
				if errObj, ok := entry.(map[string]any); ok {
					fieldPath := joinLoc(errObj["loc"])
					msg := stringOr(errObj["msg"], "validation error")
					errType := stringOr(errObj["type"], "unknown")
					result.Details = append(result.Details,
						fmt.Sprintf("Field '%s': %s (type: %s)", fieldPath, msg, errType))
				} else {
					result.Details = append(result.Details, fmt.Sprintf("%v", entry))
				}
			}
		case string:
			result.Details = append(result.Details, detail)
			for knownMsg, issueURL := range template.knownIssues {
				if strings.Contains(strings.ToLower(detail), strings.ToLower(knownMsg)) {
					result.Suggestions = append(result.Suggestions, fmt.Sprintf("Known issue: %s", issueURL))
				}
			}
		default:
			result.Details = append(result.Details, fmt.Sprintf("Unexpected detail format: %v", detail))
		}

	case isMap && hasKey(errorMap, "error"):
		result.Details = append(result.Details, fmt.Sprintf("%v", errorMap["error"]))

	case isMap && hasKey(errorMap, "message"):
		result.Details = append(result.Details, fmt.Sprintf("%v", errorMap["message"]))

	case isMap:
		// Unknown structure, dump what we can.
		for key, value := range errorMap {
			switch v := value.(type) {
			case string:
				result.Details = append(result.Details, fmt.Sprintf("%s: %s", key, v))
			case []any:
				parts := make([]string, 0, 3)
				for i, item := range v {
					if i >= 3 {
						break
					}
					parts = append(parts, fmt.Sprintf("%v", item))
				}
				result.Details = append(result.Details, fmt.Sprintf("%s: %s", key, strings.Join(parts, ", ")))
			}
		}

	default:
		result.Details = append(result.Details, fmt.Sprintf("Unexpected error format: %s", truncate(fmt.Sprintf("%v", errorData), 200)))
	}

	return result
}

func joinLoc(loc any) string {
	entries, ok := loc.([]any)
	if !ok {
		return ""
	}
	parts := make([]string, 0, len(entries))
	for _, entry := range entries {
		parts = append(parts, fmt.Sprintf("%v", entry))
	}
	return strings.Join(parts, " -> ")
}

func stringOr(v any, fallback string) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fallback
}

func hasKey(m map[string]any, key string) bool {
	_, ok := m[key]
	return ok
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
