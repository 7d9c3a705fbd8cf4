package adapter

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is returned when the backend rejects the session.
// The message matches the contract the panel frontends rely on.
var ErrUnauthorized = errors.New("Unauthorized")

// APIError is a non-2xx backend response other than an authorization
// failure. Detail carries the backend's human-readable message when the
// error body could be parsed.
type APIError struct {
	// StatusCode is the HTTP status of the failed response.
	StatusCode int

	// Detail is the backend's "detail" field, empty when the error body
	// was missing or not JSON.
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
}
