// internal/client/errors.go
package client

import (
	"fmt"
	"strings"
)

// Diagnostic is the structured breakdown of a failed API response:
// a category message, extracted detail lines, remediation suggestions,
// and the raw body preserved verbatim for debugging.
type Diagnostic struct {
	Message     string
	Details     []string
	Suggestions []string
	RawResponse string
}

// HTTPError is returned when the remote API answered with a 4xx or 5xx
// status. The diagnostic is computed eagerly at construction.
type HTTPError struct {
	StatusCode int
	Body       string
	Diagnostic Diagnostic
}

func newHTTPError(statusCode int, body string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Body:       body,
		Diagnostic: ParseAPIError(statusCode, body),
	}
}

func (e *HTTPError) Error() string {
	parts := []string{e.Diagnostic.Message}

	if len(e.Diagnostic.Details) > 0 {
		parts = append(parts, "\nDetails:")
		for _, detail := range e.Diagnostic.Details {
			parts = append(parts, fmt.Sprintf("  - %s", detail))
		}
	}

	if len(e.Diagnostic.Suggestions) > 0 {
		parts = append(parts, "\nSuggestions:")
		for _, suggestion := range e.Diagnostic.Suggestions {
			parts = append(parts, fmt.Sprintf("  - %s", suggestion))
		}
	}

	return strings.Join(parts, "\n")
}

// TransportError is returned when no HTTP response was ever received
// (connection refused, DNS failure, timeout) or when an unexpected
// client-side failure had to be wrapped.
type TransportError struct {
	Message string
	Err     error
}

func (e *TransportError) Error() string { return e.Message }

func (e *TransportError) Unwrap() error { return e.Err }
