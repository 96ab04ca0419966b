package services

import (
	"context"
	"time"
)

// fakeClock advances a little on every Now call so spin loops terminate,
// and jumps forward on Sleep instead of blocking
type fakeClock struct {
	now    time.Time
	sleeps []time.Duration
	tick   time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{
		now:  time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC),
		tick: 10 * time.Microsecond,
	}
}

func (c *fakeClock) Now() time.Time {
	c.now = c.now.Add(c.tick)
	return c.now
}

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
	return nil
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}
