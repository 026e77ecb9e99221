// Copyright (c) 2026 NitikBatik. All rights reserved.

package session

import (
	"context"
	"sync"
	"time"
)

// # Revocation Contract

// Revocations records tokens that must no longer authenticate anyone,
// even though their expiry claim has not passed yet.
type Revocations interface {

	/*
		Revoke marks a token as unusable until the given instant.

		Parameters:
		  - context: context.Context
		  - token: string
		  - until: time.Time (the token's own expiry)

		Returns:
		  - error: storage failures
	*/
	Revoke(context context.Context, token string, until time.Time) error

	/*
		IsRevoked reports whether a token was revoked.

		Parameters:
		  - context: context.Context
		  - token: string

		Returns:
		  - bool: true if revoked
		  - error: storage failures
	*/
	IsRevoked(context context.Context, token string) (bool, error)
}

// # In-Memory Implementation

// MemoryRevocations keeps revoked tokens in process memory.
//
// It is used in development and tests, or when no Redis URL is configured.
// Revocations do not survive a restart nor span several instances.
type MemoryRevocations struct {
	mu      sync.Mutex
	entries map[string]time.Time
	now     func() time.Time
}

// NewMemoryRevocations creates an empty in-memory revocation list.
func NewMemoryRevocations() *MemoryRevocations {
	return &MemoryRevocations{entries: make(map[string]time.Time), now: time.Now}
}

// Revoke implements [Revocations].
func (list *MemoryRevocations) Revoke(_ context.Context, token string, until time.Time) error {
	list.mu.Lock()
	defer list.mu.Unlock()

	list.entries[TokenKey(token)] = until
	list.sweepLocked()

	return nil
}

// IsRevoked implements [Revocations].
func (list *MemoryRevocations) IsRevoked(_ context.Context, token string) (bool, error) {
	list.mu.Lock()
	defer list.mu.Unlock()

	until, found := list.entries[TokenKey(token)]
	if !found {
		return false, nil
	}

	if !list.now().Before(until) {
		delete(list.entries, TokenKey(token))
		return false, nil
	}

	return true, nil
}

// sweepLocked drops entries whose token has expired anyway.
func (list *MemoryRevocations) sweepLocked() {
	now := list.now()
	for key, until := range list.entries {
		if !now.Before(until) {
			delete(list.entries, key)
		}
	}
}
