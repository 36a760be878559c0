package gameserver

import (
	"context"
	"sync"
	"time"
)

// Clock invokes tick once per interval on its own goroutine.
//
// Clock is safe for concurrent use.
type Clock struct {
	interval time.Duration
	tick     func(ctx context.Context)

	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewClock creates a stopped Clock.
//
// Precondition: interval > 0; tick must be non-nil.
func NewClock(interval time.Duration, tick func(ctx context.Context)) *Clock {
	return &Clock{interval: interval, tick: tick}
}

// Start launches the tick loop. A running loop is cancelled first, so at
// most one loop is ever active.
//
// Postcondition: tick receives a context that is cancelled by the next
// Start or Stop, or when ctx ends.
func (c *Clock) Start(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	go c.run(ctx)
}

// Stop cancels the tick loop. It does not wait for an in-flight tick.
// Calling Stop is idempotent.
func (c *Clock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

// Running reports whether a tick loop is active.
func (c *Clock) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cancel != nil
}

func (c *Clock) run(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if ctx.Err() != nil {
				return
			}
			c.tick(ctx)
		case <-ctx.Done():
			return
		}
	}
}
