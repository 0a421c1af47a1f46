package ratelimit

import (
	"context"
	"sync"
	"time"

	"aviniti_tools/internal/usecase/interfaces"
)

type windowEntry struct {
	count   int
	resetAt time.Time
}

// MemoryRateLimiter is a fixed-window limiter held in process memory.
// Counts reset when a key's window expires; expired entries are dropped
// lazily on the next check for that key.
type MemoryRateLimiter struct {
	mu      sync.Mutex
	entries map[string]*windowEntry
	now     func() time.Time
}

func NewMemoryRateLimiter() *MemoryRateLimiter {
	return &MemoryRateLimiter{
		entries: make(map[string]*windowEntry),
		now:     time.Now,
	}
}

func (l *MemoryRateLimiter) Check(ctx context.Context, key string, limit int, window time.Duration) (interfaces.RateLimitResult, error) {
	if err := ctx.Err(); err != nil {
		return interfaces.RateLimitResult{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	e, ok := l.entries[key]
	if !ok || now.After(e.resetAt) {
		e = &windowEntry{count: 0, resetAt: now.Add(window)}
		l.entries[key] = e
	}

	if e.count >= limit {
		return interfaces.RateLimitResult{
			Allowed:   false,
			Remaining: 0,
			ResetAt:   e.resetAt,
			Limit:     limit,
		}, nil
	}

	e.count++
	return interfaces.RateLimitResult{
		Allowed:   true,
		Remaining: limit - e.count,
		ResetAt:   e.resetAt,
		Limit:     limit,
	}, nil
}
