package provider

import (
	"context"
	"sync"
	"time"
)

// RateLimiter is a token bucket used to pace calls to free-tier APIs.
type RateLimiter struct {
	mu          sync.Mutex
	tokens      int
	capacity    int
	refillEvery time.Duration
	last        time.Time
}

// NewRateLimiter creates a bucket holding capacity tokens that regains one
// token every refillEvery.
func NewRateLimiter(capacity int, refillEvery time.Duration) *RateLimiter {
	return &RateLimiter{
		tokens:      capacity,
		capacity:    capacity,
		refillEvery: refillEvery,
		last:        time.Now(),
	}
}

// Wait blocks until a token is available or ctx is cancelled.
func (r *RateLimiter) Wait(ctx context.Context) error {
	for {
		r.mu.Lock()
		r.refill()
		if r.tokens > 0 {
			r.tokens--
			r.mu.Unlock()
			return nil
		}
		r.mu.Unlock()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.refillEvery):
		}
	}
}

func (r *RateLimiter) refill() {
	now := time.Now()
	regained := int(now.Sub(r.last) / r.refillEvery)
	if regained > 0 {
		r.tokens += regained
		if r.tokens > r.capacity {
			r.tokens = r.capacity
		}
		r.last = r.last.Add(time.Duration(regained) * r.refillEvery)
	}
}
