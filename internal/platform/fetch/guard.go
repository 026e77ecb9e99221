// Copyright (c) 2026 NitikBatik. All rights reserved.

package fetch

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Guard remembers whether the current identity has already been fetched.
//
// An identity is whatever determines the data a view needs (a shop id, a search
// term and a page). Asking again for the same identity is a no-op; concurrent
// callers share the single in-flight call. A new identity starts over.
//
// The flag is set even when the fetch fails: the error is recorded by the store
// and a retry is an explicit [Guard.Reset].
type Guard struct {
	mu       sync.Mutex
	group    singleflight.Group
	identity string
	fetched  bool
}

// Do runs fn once for identity.
//
// It reports whether this caller actually ran fn. Callers that joined an
// in-flight call receive its error but report false.
func (guard *Guard) Do(ctx context.Context, identity string, fn func(ctx context.Context) error) (bool, error) {
	guard.mu.Lock()
	if identity != guard.identity {
		guard.identity = identity
		guard.fetched = false
	}
	if guard.fetched {
		guard.mu.Unlock()
		return false, nil
	}
	guard.mu.Unlock()

	ran := false
	_, err, _ := guard.group.Do(identity, func() (any, error) {
		// A call for this identity may have finished since the check above.
		guard.mu.Lock()
		done := guard.identity == identity && guard.fetched
		guard.mu.Unlock()
		if done {
			return nil, nil
		}

		ran = true
		err := fn(ctx)

		guard.mu.Lock()
		if guard.identity == identity {
			guard.fetched = true
		}
		guard.mu.Unlock()

		return nil, err
	})

	return ran, err
}

// Reset forces the next [Guard.Do] through, whatever the identity.
func (guard *Guard) Reset() {
	guard.mu.Lock()
	guard.fetched = false
	guard.mu.Unlock()
}

// Identity returns the identity last passed to [Guard.Do].
func (guard *Guard) Identity() string {
	guard.mu.Lock()
	defer guard.mu.Unlock()
	return guard.identity
}
