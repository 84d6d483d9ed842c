package chat

import "time"

// Backoff is the reconnect delay schedule: the delay doubles per
// consecutive failed attempt up to Cap, and reconnection is abandoned
// after MaxAttempts failures.
type Backoff struct {
	Base        time.Duration
	Cap         time.Duration
	MaxAttempts int
}

// DefaultBackoff returns the standard schedule: 2s, 4s, 8s, 16s, 30s.
func DefaultBackoff() Backoff {
	return Backoff{
		Base:        2 * time.Second,
		Cap:         30 * time.Second,
		MaxAttempts: 5,
	}
}

// Delay returns the wait before the given 1-based attempt.
func (b Backoff) Delay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	d := b.Base
	for i := 1; i < attempt; i++ {
		d *= 2
		if d >= b.Cap {
			return b.Cap
		}
	}
	if d > b.Cap {
		return b.Cap
	}
	return d
}

// Exhausted reports whether attempt exceeds the schedule.
func (b Backoff) Exhausted(attempt int) bool {
	return attempt > b.MaxAttempts
}
