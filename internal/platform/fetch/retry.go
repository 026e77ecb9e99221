// Copyright (c) 2026 NitikBatik. All rights reserved.

/*
Package fetch provides the reusable pieces behind every data-loading flow.

  - [Retry]: bounded attempts with linear or exponential backoff.
  - [Guard]: at most one fetch per identity, shared between concurrent callers.
  - [Sequence]: monotonic request numbers so superseded responses are dropped.
*/
package fetch

import (
	"context"
	"time"
)

// Backoff returns the delay to wait after the given attempt (1-based).
type Backoff func(attempt int) time.Duration

// Linear waits step, 2*step, 3*step, ...
func Linear(step time.Duration) Backoff {
	return func(attempt int) time.Duration {
		return step * time.Duration(attempt)
	}
}

// Exponential waits base, 2*base, 4*base, ... capped at ceiling (when positive).
func Exponential(base, ceiling time.Duration) Backoff {
	return func(attempt int) time.Duration {
		delay := base
		for i := 1; i < attempt; i++ {
			delay *= 2
			if ceiling > 0 && delay >= ceiling {
				return ceiling
			}
		}
		return delay
	}
}

// Policy parameterizes [Retry] for one call site.
type Policy[T any] struct {
	// MaxAttempts is the total number of calls, initial one included. Minimum 1.
	MaxAttempts int

	// Backoff computes the pause between attempts. Nil means no pause.
	Backoff Backoff

	// RetryIf decides whether an outcome warrants another attempt.
	// Nil retries on any error.
	RetryIf func(result T, err error) bool

	// Sleep waits between attempts. Nil uses [Sleep].
	Sleep func(ctx context.Context, d time.Duration) error
}

/*
Retry calls fn until the policy is satisfied or the attempt budget is spent.

Returns:
  - T: the result of the last attempt
  - int: number of attempts made
  - error: the last attempt's error, or the context error if the wait was cancelled
*/
func Retry[T any](ctx context.Context, policy Policy[T], fn func(ctx context.Context) (T, error)) (T, int, error) {
	maxAttempts := max(policy.MaxAttempts, 1)

	retryIf := policy.RetryIf
	if retryIf == nil {
		retryIf = func(_ T, err error) bool { return err != nil }
	}

	sleep := policy.Sleep
	if sleep == nil {
		sleep = Sleep
	}

	var (
		result T
		err    error
	)

	for attempt := 1; ; attempt++ {
		result, err = fn(ctx)

		if attempt >= maxAttempts || !retryIf(result, err) {
			return result, attempt, err
		}

		var delay time.Duration
		if policy.Backoff != nil {
			delay = policy.Backoff(attempt)
		}

		if waitErr := sleep(ctx, delay); waitErr != nil {
			return result, attempt, waitErr
		}
	}
}

// Sleep waits for d or until ctx is done.
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
