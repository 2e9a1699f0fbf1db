package llm

import (
	"context"
	"time"
)

// sleepBackoff pauses between attempts but wakes immediately when the
// context is cancelled.
func sleepBackoff(ctx context.Context, d time.Duration) (err error) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		err = ctx.Err()
		return err
	case <-timer.C:
		return err
	}
}
