package api

import (
	"errors"
	"fmt"
)

// ErrUnauthorized indicates a missing or rejected token. Callers treat
// it as a forced logout.
var ErrUnauthorized = errors.New("unauthorized")

// APIError is a non-2xx response from the backend.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend returned %d", e.Status)
}

// ErrInvalidPayload indicates the backend sent JSON that does not
// conform to the expected schema.
type ErrInvalidPayload struct {
	Endpoint string
	Err      error
}

func (e *ErrInvalidPayload) Error() string {
	return fmt.Sprintf("invalid payload from %s: %v", e.Endpoint, e.Err)
}

func (e *ErrInvalidPayload) Unwrap() error { return e.Err }
