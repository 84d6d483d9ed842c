package tutor

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// retryProvider is a decorator that retries transient errors with
// exponential backoff and jitter.
type retryProvider struct {
	inner  Provider
	config RetryConfig
}

// WithRetry wraps a Provider with retry logic.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &retryProvider{inner: p, config: cfg}
}

func (r *retryProvider) Complete(ctx context.Context, p Prompt) (*Completion, error) {
	var lastErr error
	badRetried := false

	for attempt := range r.config.MaxAttempts {
		resp, err := r.inner.Complete(ctx, p)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !shouldRetry(err, &badRetried) {
			return nil, err
		}
		if attempt == r.config.MaxAttempts-1 {
			break
		}

		wait := r.backoff(attempt, err)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}

	return nil, lastErr
}

func (r *retryProvider) Model() string {
	return r.inner.Model()
}

// shouldRetry determines if an error is worth another attempt.
func shouldRetry(err error, badRetried *bool) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	// A malformed completion gets exactly one retry.
	var bad *ErrBadCompletion
	if errors.As(err, &bad) {
		if *badRetried {
			return false
		}
		*badRetried = true
		return true
	}

	// Rate limits, outages and plain network errors are transient.
	return true
}

// backoff computes the wait duration for the given attempt.
func (r *retryProvider) backoff(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	wait := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt))
	if wait > float64(r.config.MaxWait) {
		wait = float64(r.config.MaxWait)
	}

	// ±20% jitter.
	wait += wait * 0.2 * (2*rand.Float64() - 1)
	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}
