// internal/client/parse_test.go
package client

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValidationErrorDetailList(t *testing.T) {
	body := `{"detail": [{"loc": ["body", "name"], "msg": "field required", "type": "value_error.missing"}]}`

	diag := ParseAPIError(422, body)

	assert.Equal(t, "Validation Error (HTTP 422)", diag.Message)
	require.Len(t, diag.Details, 1)
	assert.Equal(t, "Field 'body -> name': field required (type: value_error.missing)", diag.Details[0])
	assert.NotEmpty(t, diag.Suggestions)
	assert.Equal(t, body, diag.RawResponse)
}

func TestParseDetailString(t *testing.T) {
	diag := ParseAPIError(404, `{"detail": "Recipe not found"}`)

	assert.Equal(t, "HTTP 404 Error", diag.Message)
	require.Len(t, diag.Details, 1)
	assert.Equal(t, "Recipe not found", diag.Details[0])
}

func TestParseConflictKnownIssue(t *testing.T) {
	diag := ParseAPIError(409, `{"detail": "recipe already exists"}`)

	assert.Equal(t, "Conflict (HTTP 409)", diag.Message)

	found := false
	for _, suggestion := range diag.Suggestions {
		if strings.Contains(suggestion, "Known issue:") {
			found = true
		}
	}
	assert.True(t, found, "expected a known-issue suggestion, got %v", diag.Suggestions)
}

func TestParseErrorAndMessageKeys(t *testing.T) {
	diag := ParseAPIError(400, `{"error": "bad input"}`)
	require.Len(t, diag.Details, 1)
	assert.Equal(t, "bad input", diag.Details[0])

	diag = ParseAPIError(400, `{"message": "something went wrong"}`)
	require.Len(t, diag.Details, 1)
	assert.Equal(t, "something went wrong", diag.Details[0])
}

func TestParseUnknownObjectShape(t *testing.T) {
	diag := ParseAPIError(400, `{"code": "E42", "hints": ["one", "two", "three", "four"]}`)

	assert.Contains(t, diag.Details, "code: E42")
	// List values are capped at three entries.
	assert.Contains(t, diag.Details, "hints: one, two, three")
}

func TestParseNonJSONBody(t *testing.T) {
	long := strings.Repeat("x", 300)
	diag := ParseAPIError(500, long)

	assert.Equal(t, "Server Error (HTTP 500)", diag.Message)
	require.Len(t, diag.Details, 1)
	assert.Equal(t, "Raw error: "+strings.Repeat("x", 200), diag.Details[0])
	assert.Equal(t, long, diag.RawResponse)
}

func TestParseNonObjectJSON(t *testing.T) {
	diag := ParseAPIError(400, `[1, 2, 3]`)

	require.Len(t, diag.Details, 1)
	assert.Contains(t, diag.Details[0], "Unexpected error format")
}

func TestParseStatusWithoutTemplate(t *testing.T) {
	diag := ParseAPIError(418, `{"detail": "teapot"}`)

	assert.Equal(t, "HTTP 418 Error", diag.Message)
	assert.Empty(t, diag.Suggestions)
}

// ParseAPIError must produce a usable diagnostic for any input pair.
func TestParseTotality(t *testing.T) {
	statuses := []int{200, 400, 404, 409, 422, 500, 502, 503, 999}
	bodies := []string{
		"",
		"not json at all",
		"{}",
		"[]",
		"null",
		"42",
		`"bare string"`,
		`{"detail": null}`,
		`{"detail": 12}`,
		`{"detail": [42, "mixed"]}`,
		`{"detail": [{"loc": null, "msg": null}]}`,
		strings.Repeat("{", 500),
	}

	for _, status := range statuses {
		for _, body := range bodies {
			diag := ParseAPIError(status, body)
			assert.NotEmpty(t, diag.Message, "status=%d body=%q", status, body)
			assert.Equal(t, body, diag.RawResponse, "status=%d body=%q", status, body)
			assert.Contains(t, diag.Message, fmt.Sprint(status))
		}
	}
}
