package interfaces

import (
	"context"
	"time"
)

// RateLimitResult describes the outcome of a rate limit check.
type RateLimitResult struct {
	Allowed   bool
	Remaining int
	ResetAt   time.Time
	Limit     int
}

// IRateLimiter abstracts request throttling keyed by an opaque string
// (the service hashes client IPs before using them as keys).
type IRateLimiter interface {
	Check(ctx context.Context, key string, limit int, window time.Duration) (RateLimitResult, error)
}
