package testutil

import (
	"sync"
	"time"
)

// SteppedClock provides a deterministic time source for tests.
//
// Each call to Now advances the clock by a fixed step, so timestamps in a
// test are unique, strictly increasing, and reproducible across runs.
//
// Thread-safety: all methods are safe for concurrent use via internal mutex.
type SteppedClock struct {
	mu      sync.Mutex
	current time.Time
	step    time.Duration
}

// NewSteppedClock creates a clock starting at the given instant.
// The first call to Now returns start; each later call advances by step.
func NewSteppedClock(start time.Time, step time.Duration) *SteppedClock {
	return &SteppedClock{current: start, step: step}
}

// Now returns the current instant and advances the clock.
func (c *SteppedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.current
	c.current = c.current.Add(c.step)
	return t
}

// Peek returns the instant the next Now call will return, without advancing.
func (c *SteppedClock) Peek() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}
