// Copyright (c) 2026 NitikBatik. All rights reserved.

package fetch_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/fetch"
)

// recordSleep captures requested delays without waiting.
func recordSleep(delays *[]time.Duration) func(context.Context, time.Duration) error {
	return func(_ context.Context, d time.Duration) error {
		*delays = append(*delays, d)
		return nil
	}
}

/*
TestRetry_EmptyResultBudget verifies an always-empty fetch is attempted exactly three times
with linear delays between attempts.
*/
func TestRetry_EmptyResultBudget(t *testing.T) {
	var delays []time.Duration
	calls := 0

	policy := fetch.Policy[[]string]{
		MaxAttempts: 3,
		Backoff:     fetch.Linear(time.Second),
		RetryIf:     func(items []string, err error) bool { return err == nil && len(items) == 0 },
		Sleep:       recordSleep(&delays),
	}

	items, attempts, err := fetch.Retry(context.Background(), policy, func(context.Context) ([]string, error) {
		calls++
		return nil, nil
	})

	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, 3, attempts)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, delays)
}

/*
TestRetry_StopsOnSuccess verifies a non-empty result ends the loop.
*/
func TestRetry_StopsOnSuccess(t *testing.T) {
	var delays []time.Duration
	calls := 0

	policy := fetch.Policy[[]string]{
		MaxAttempts: 3,
		Backoff:     fetch.Linear(time.Second),
		RetryIf:     func(items []string, err error) bool { return err == nil && len(items) == 0 },
		Sleep:       recordSleep(&delays),
	}

	items, attempts, err := fetch.Retry(context.Background(), policy, func(context.Context) ([]string, error) {
		calls++
		if calls < 2 {
			return nil, nil
		}
		return []string{"parang"}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"parang"}, items)
	assert.Equal(t, 2, attempts)
	assert.Len(t, delays, 1)
}

/*
TestRetry_HardErrorStops verifies errors are not retried when the predicate excludes them.
*/
func TestRetry_HardErrorStops(t *testing.T) {
	boom := errors.New("boom")
	calls := 0

	policy := fetch.Policy[[]string]{
		MaxAttempts: 3,
		RetryIf:     func(items []string, err error) bool { return err == nil && len(items) == 0 },
	}

	_, attempts, err := fetch.Retry(context.Background(), policy, func(context.Context) ([]string, error) {
		calls++
		return nil, boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, attempts)
	assert.Equal(t, 1, calls)
}

/*
TestRetry_DefaultRetriesErrors verifies the default predicate and the minimum budget.
*/
func TestRetry_DefaultRetriesErrors(t *testing.T) {
	var delays []time.Duration
	boom := errors.New("boom")

	_, attempts, err := fetch.Retry(context.Background(), fetch.Policy[int]{
		MaxAttempts: 4,
		Backoff:     fetch.Exponential(100*time.Millisecond, 300*time.Millisecond),
		Sleep:       recordSleep(&delays),
	}, func(context.Context) (int, error) { return 0, boom })

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 4, attempts)
	assert.Equal(t, []time.Duration{100 * time.Millisecond, 200 * time.Millisecond, 300 * time.Millisecond}, delays)

	_, attempts, _ = fetch.Retry(context.Background(), fetch.Policy[int]{}, func(context.Context) (int, error) { return 0, boom })
	assert.Equal(t, 1, attempts)
}

/*
TestRetry_Cancelled verifies a cancelled context interrupts the wait.
*/
func TestRetry_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, attempts, err := fetch.Retry(ctx, fetch.Policy[int]{
		MaxAttempts: 3,
		Backoff:     fetch.Linear(time.Hour),
	}, func(context.Context) (int, error) { return 0, errors.New("boom") })

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, attempts)
}

/*
TestGuard_SameIdentityFetchesOnce verifies duplicate mounts with the same identity
trigger exactly one fetch, sequentially and concurrently.
*/
func TestGuard_SameIdentityFetchesOnce(t *testing.T) {
	var guard fetch.Guard
	var calls atomic.Int32
	release := make(chan struct{})

	fn := func(context.Context) error {
		calls.Add(1)
		<-release
		return nil
	}

	var wg sync.WaitGroup
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = guard.Do(context.Background(), "shop:7", fn)
		}()
	}

	// Let both callers reach the guard before the fetch completes.
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	ran, err := guard.Do(context.Background(), "shop:7", fn)

	require.NoError(t, err)
	assert.False(t, ran)
	assert.Equal(t, int32(1), calls.Load())
}

/*
TestGuard_IdentityChangeAndReset verifies a new identity or a reset fetches again.
*/
func TestGuard_IdentityChangeAndReset(t *testing.T) {
	var guard fetch.Guard
	calls := 0
	fn := func(context.Context) error { calls++; return nil }

	ran, _ := guard.Do(context.Background(), "a", fn)
	assert.True(t, ran)

	ran, _ = guard.Do(context.Background(), "a", fn)
	assert.False(t, ran)

	ran, _ = guard.Do(context.Background(), "b", fn)
	assert.True(t, ran)
	assert.Equal(t, "b", guard.Identity())

	guard.Reset()
	ran, _ = guard.Do(context.Background(), "b", fn)
	assert.True(t, ran)

	assert.Equal(t, 3, calls)
}

/*
TestGuard_FailureStillMarksFetched verifies a failed fetch is not repeated implicitly.
*/
func TestGuard_FailureStillMarksFetched(t *testing.T) {
	var guard fetch.Guard
	boom := errors.New("boom")
	calls := 0

	_, err := guard.Do(context.Background(), "a", func(context.Context) error { calls++; return boom })
	assert.ErrorIs(t, err, boom)

	ran, err := guard.Do(context.Background(), "a", func(context.Context) error { calls++; return nil })
	assert.False(t, ran)
	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}

/*
TestSequence_Latest verifies only the newest number is current.
*/
func TestSequence_Latest(t *testing.T) {
	var seq fetch.Sequence

	first := seq.Next()
	second := seq.Next()

	assert.False(t, seq.Latest(first))
	assert.True(t, seq.Latest(second))
}
