// Package ratelimit provides an optional client-side throttle for outbound
// API requests, built on a token bucket.
package ratelimit

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Limiter caps outbound requests at a fixed number per period. A nil
// *Limiter is valid and never blocks, so callers can hold one
// unconditionally.
type Limiter struct {
	bucket *rate.Limiter
}

// New creates a Limiter allowing at most requests per period, with a burst
// equal to requests.
func New(requests int, period time.Duration) *Limiter {
	rps := float64(requests) / period.Seconds()
	return &Limiter{
		bucket: rate.NewLimiter(rate.Limit(rps), requests),
	}
}

// Wait blocks until the limiter allows a request or the context is
// cancelled. It returns immediately on a nil limiter.
func (l *Limiter) Wait(ctx context.Context) error {
	if l == nil {
		return nil
	}
	return l.bucket.Wait(ctx)
}

// Allow reports whether a request may proceed immediately without blocking.
func (l *Limiter) Allow() bool {
	if l == nil {
		return true
	}
	return l.bucket.Allow()
}

// Tokens returns the number of tokens currently available.
func (l *Limiter) Tokens() float64 {
	if l == nil {
		return 0
	}
	return l.bucket.Tokens()
}
