package retry

import (
	"context"
	"time"
)

// Sleep blocks for d or until ctx is cancelled, whichever comes first.
// Returns the context error on cancellation so callers can stop promptly.
func Sleep(ctx context.Context, d time.Duration) error {
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
