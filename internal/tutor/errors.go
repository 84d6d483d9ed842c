package tutor

import (
	"encoding/json"
	"fmt"
	"time"
)

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrBadCompletion indicates the model returned content that does not
// conform to the requested schema.
type ErrBadCompletion struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrBadCompletion) Error() string {
	return fmt.Sprintf("bad completion: %v", e.Err)
}

func (e *ErrBadCompletion) Unwrap() error { return e.Err }

// ErrUnavailable indicates the provider is down or unreachable.
type ErrUnavailable struct {
	Err error
}

func (e *ErrUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("tutor provider unavailable: %v", e.Err)
	}
	return "tutor provider unavailable"
}

func (e *ErrUnavailable) Unwrap() error { return e.Err }
