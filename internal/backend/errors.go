package backend

import (
	"errors"
	"fmt"
)

// ErrNotConfigured is returned before any network I/O when the backend base
// URL is missing. Callers should surface it as a configuration problem rather
// than a request failure.
var ErrNotConfigured = errors.New("backend URL not configured")

// invalidJSONMessage substitutes for a response body that should have been
// JSON but was not; it is displayed like any other server error.
const invalidJSONMessage = "Invalid JSON response"

// APIError is a non-2xx backend response. Message carries the body's error
// field when present, otherwise the HTTP status text.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API Error [%d]: %s", e.Status, e.Message)
}
