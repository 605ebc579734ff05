// Package retry runs fallible operations under a backoff schedule.
package retry

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"

	"github.com/bnema/hoard/pkg/backoff"
)

// Action is a single attempt of a retried operation.
type Action[T any] func(ctx context.Context) (T, error)

// Do runs action until it succeeds or the strategy is exhausted. The last
// error is returned once no delay is left.
func Do[T any](ctx context.Context, strategy backoff.Strategy, action Action[T]) (T, error) {
	return DoIf(ctx, strategy, action, func(error) bool { return true })
}

// DoIf is like Do but only retries errors accepted by retryable. A rejected
// error is returned immediately without consuming a step of the strategy.
func DoIf[T any](ctx context.Context, strategy backoff.Strategy, action Action[T], retryable func(error) bool) (T, error) {
	for attempt := 1; ; attempt++ {
		result, err := action(ctx)
		if err == nil {
			return result, nil
		}

		if !retryable(err) {
			return result, err
		}

		delay, ok := strategy.Next()
		if !ok {
			log.Warn("Retries exhausted", "attempts", attempt, "error", err)
			return result, err
		}

		log.Warn("Attempt failed, retrying", "attempt", attempt, "delay", delay, "error", err)

		if waitErr := sleep(ctx, delay); waitErr != nil {
			return result, errors.Join(waitErr, err)
		}
	}
}

func sleep(ctx context.Context, d time.Duration) error {
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
