// internal/client/errors_test.go
package client

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPErrorRendering(t *testing.T) {
	err := newHTTPError(422, `{"detail": [{"loc": ["body", "name"], "msg": "field required", "type": "value_error.missing"}]}`)

	rendered := err.Error()
	assert.Contains(t, rendered, "Validation Error (HTTP 422)")
	assert.Contains(t, rendered, "Details:")
	assert.Contains(t, rendered, "  - Field 'body -> name': field required (type: value_error.missing)")
	assert.Contains(t, rendered, "Suggestions:")
	assert.Contains(t, rendered, "  - Check that all required fields are provided")
}

func TestHTTPErrorRenderingWithoutDetails(t *testing.T) {
	err := newHTTPError(418, `{}`)

	rendered := err.Error()
	assert.Equal(t, "HTTP 418 Error", rendered)
	assert.NotContains(t, rendered, "Details:")
	assert.NotContains(t, rendered, "Suggestions:")
}

func TestTransportErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &TransportError{Message: "Request failed: connection refused", Err: cause}

	assert.Equal(t, "Request failed: connection refused", err.Error())
	require.ErrorIs(t, err, cause)
}
