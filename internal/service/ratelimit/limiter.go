package ratelimit

import (
	"sync"
	"time"
)

// Limiter is a single token bucket. Used to keep outbound geocoding calls
// under the provider's request ceiling.
type Limiter struct {
	mu         sync.Mutex
	tokens     float64
	capacity   float64
	refillRate float64 // tokens per second
	last       time.Time
}

// New creates a limiter with the given burst capacity and refill rate.
func New(capacity, refillPerSec float64) *Limiter {
	return &Limiter{
		tokens:     capacity,
		capacity:   capacity,
		refillRate: refillPerSec,
		last:       time.Now(),
	}
}

// Allow returns true if one token can be consumed.
func (l *Limiter) Allow() bool {
	now := time.Now()
	l.mu.Lock()
	defer l.mu.Unlock()

	elapsed := now.Sub(l.last).Seconds()
	if elapsed > 0 {
		l.tokens += elapsed * l.refillRate
		if l.tokens > l.capacity {
			l.tokens = l.capacity
		}
		l.last = now
	}
	if l.tokens >= 1 {
		l.tokens -= 1
		return true
	}
	return false
}
