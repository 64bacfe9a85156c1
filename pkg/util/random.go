package util

import (
	"math/rand"
	"sync"
	"time"
)

// Rand is the random source injected into components that pick canned text or
// add forecast noise. Tests pass a fixed-seed source to get exact output.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// lockedRand guards a math/rand source for use across concurrent requests.
type lockedRand struct {
	mu  sync.Mutex
	src *rand.Rand
}

func (r *lockedRand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src.Intn(n)
}

func (r *lockedRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src.Float64()
}

// NewLockedRand returns a goroutine-safe Rand seeded with the given seed.
func NewLockedRand(seed int64) Rand {
	return &lockedRand{src: rand.New(rand.NewSource(seed))}
}

// NewTimeSeededRand returns a goroutine-safe Rand seeded from the clock.
func NewTimeSeededRand() Rand {
	return NewLockedRand(time.Now().UnixNano())
}
