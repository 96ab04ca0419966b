package clock

import (
	"context"
	"time"

	"github.com/guitarlab/fretboard/internal/ports"
)

// System implements ports.Clock with the wall clock.
// time.Now carries a monotonic reading, so deadlines are unaffected by clock changes.
type System struct{}

var _ ports.Clock = System{}

// Now returns the current time
func (System) Now() time.Time {
	return time.Now()
}

// Sleep pauses for d, returning early with ctx.Err() if ctx is done
func (System) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
