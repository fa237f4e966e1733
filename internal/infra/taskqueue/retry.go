package taskqueue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"
)

const defaultMaxRetries = 3

// errPermanent marks a failure that retrying cannot fix.
var errPermanent = errors.New("permanent task queue error")

func backoff(attempt int) time.Duration {
	return time.Duration(math.Pow(2, float64(attempt-1))) * 100 * time.Millisecond
}

// withRetry runs fn up to maxRetries times with exponential backoff
// (100ms, 200ms, 400ms, ...). It stops early on ctx cancellation or an
// errPermanent failure.
func withRetry(ctx context.Context, maxRetries int, operation, taskName string, fn func(ctx context.Context) error) error {
	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			wait := backoff(attempt)
			slog.DebugContext(ctx, "retrying "+operation,
				slog.String("task_name", taskName),
				slog.Int("attempt", attempt+1),
				slog.Duration("backoff", wait),
			)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		}

		err := fn(ctx)
		if err == nil {
			return nil
		}
		lastErr = err
		if errors.Is(err, errPermanent) {
			break
		}
	}

	slog.ErrorContext(ctx, "all retries exhausted for "+operation,
		slog.String("task_name", taskName),
		slog.Int("max_retries", maxRetries),
		slog.String("error", lastErr.Error()),
	)
	return fmt.Errorf("failed %s after %d attempts: %w", operation, maxRetries, lastErr)
}
