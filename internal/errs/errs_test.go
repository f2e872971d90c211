package errs

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPErrorJSONShape(t *testing.T) {
	err := NewStoreError("duplicate key value violates unique constraint", "CUSTOMER_ALREADY_EXISTS")

	body, marshalErr := json.Marshal(err)
	require.NoError(t, marshalErr)

	assert.JSONEq(t, `{"error":"duplicate key value violates unique constraint"}`, string(body))
	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.Equal(t, "CUSTOMER_ALREADY_EXISTS", err.Code)
}

func TestNewHTTPErrorCode(t *testing.T) {
	err := NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed")

	assert.Equal(t, "METHOD_NOT_ALLOWED", err.Code)
	assert.Equal(t, http.StatusMethodNotAllowed, err.Status)
}

func TestNewStoreErrorDefaultsCode(t *testing.T) {
	err := NewStoreError("boom", "")

	assert.Equal(t, "INTERNAL_SERVER_ERROR", err.Code)
}

func TestHTTPErrorIs(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NewNotFoundError("Not Found"))

	assert.True(t, errors.Is(wrapped, &HTTPError{}))
	assert.False(t, errors.Is(errors.New("plain"), &HTTPError{}))

	var httpErr *HTTPError
	require.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}

func TestWithMessage(t *testing.T) {
	base := NewInternalServerError("original")
	copied := base.WithMessage("replaced")

	assert.Equal(t, "original", base.Message)
	assert.Equal(t, "replaced", copied.Message)
	assert.Equal(t, base.Code, copied.Code)
	assert.Equal(t, base.Status, copied.Status)
}
