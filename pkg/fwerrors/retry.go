package fwerrors

import (
	"context"
	"time"
)

// RetryIntervals is the bounded exponential backoff schedule for
// Transient failures: 1s, 2s, 4s, 8s, capped at 10s, for a maximum of
// 5 attempts total (the initial attempt plus 4 retries).
var RetryIntervals = []time.Duration{
	1 * time.Second,
	2 * time.Second,
	4 * time.Second,
	8 * time.Second,
}

const maxAttempts = 5
const backoffCap = 10 * time.Second

// Retry calls fn up to maxAttempts times, waiting the next interval
// from RetryIntervals (capped at backoffCap) between attempts, as long
// as fn's error is a *TransientError. Any other error, or success,
// returns immediately. After exhausting all attempts it returns the
// last error as is (still a *TransientError), so the caller shell
// surfaces it as a stream error rather than retrying forever.
func Retry(ctx context.Context, fn func(ctx context.Context) error) error {
	var err error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		err = fn(ctx)
		if err == nil {
			return nil
		}
		if !IsTransient(err) {
			return err
		}
		if attempt == maxAttempts-1 {
			break
		}
		wait := backoffCap
		if attempt < len(RetryIntervals) {
			wait = RetryIntervals[attempt]
		}
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return err
}
