package httputil

import (
	"context"
	"errors"
	"time"

	"github.com/matzehuels/lablist/pkg/cache"
	apperr "github.com/matzehuels/lablist/pkg/errors"
)

// MaxRetryAfter caps the wait a server can request through Retry-After.
const MaxRetryAfter = 30 * time.Second

// Retry executes fn up to attempts times with exponential backoff.
// It only retries errors wrapped with [cache.RetryableError]; other errors are
// returned immediately. The delay doubles after each failed attempt, unless
// the error carries a longer Retry-After hint, which is honored up to
// [MaxRetryAfter].
// Returns the last error if all attempts fail, or ctx.Err() if cancelled.
func Retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	attempts = max(attempts, 1)
	var lastErr error

	for i := range attempts {
		if err := fn(); err == nil {
			return nil
		} else if lastErr = err; !cache.IsRetryable(err) {
			return err
		}

		if i < attempts-1 {
			wait := max(delay, retryAfter(lastErr))
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
				delay *= 2
			}
		}
	}
	return lastErr
}

// RetryWithBackoff is a convenience wrapper around [Retry] with sensible
// defaults: 3 attempts with 1 second initial delay (doubling each retry).
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	return Retry(ctx, 3, time.Second, fn)
}

func retryAfter(err error) time.Duration {
	var rl *apperr.RateLimitedError
	if !errors.As(err, &rl) || rl.RetryAfter <= 0 {
		return 0
	}
	return min(time.Duration(rl.RetryAfter)*time.Second, MaxRetryAfter)
}
