package ports

import (
	"context"
	"time"
)

// Clock abstracts monotonic time for the beat scheduler
type Clock interface {
	Now() time.Time

	// Sleep pauses for d or until ctx is done, returning ctx.Err() in that case
	Sleep(ctx context.Context, d time.Duration) error
}
