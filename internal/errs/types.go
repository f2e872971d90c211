package errs

import (
	"net/http"
)

// NewHTTPError creates an HTTPError for an arbitrary status, with the code
// derived from the status text ("Method Not Allowed" -> "METHOD_NOT_ALLOWED").
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(status)),
		Message: message,
		Status:  status,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError. It is only used for
// unknown routes; a missing row is not an error.
func NewNotFoundError(message string) *HTTPError {
	return NewHTTPError(http.StatusNotFound, message)
}

// NewInternalServerError creates a 500 HTTPError carrying message as is.
//
// Store failures and malformed request bodies both surface through it, so
// message is whatever the store or decoder reported.
func NewInternalServerError(message string) *HTTPError {
	return NewHTTPError(http.StatusInternalServerError, message)
}

// NewStoreError creates the 500 HTTPError for a failed store operation,
// keeping a more specific code for logging.
func NewStoreError(message string, code string) *HTTPError {
	err := NewInternalServerError(message)
	if code != "" {
		err.Code = code
	}

	return err
}
