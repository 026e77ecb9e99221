// Copyright (c) 2026 NitikBatik. All rights reserved.

/*
Package state provides the generic container behind every per-entity store.

A [List] holds one resource's list and detail state: the loaded items, the
current item, the pagination cursor, a loading flag and an error message.

# Rules

  - A successful list fetch replaces items and pagination and clears the error.
  - A failed fetch keeps the previous items and records the error.
  - A detail fetch answered with 404 clears the current item.
  - Responses to superseded requests are discarded.

All methods are safe for concurrent use.
*/
package state

import (
	"context"
	"slices"
	"sync"

	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/apperr"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/fetch"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/pkg/pagination"
)

// Snapshot is a consistent, read-only copy of a [List].
type Snapshot[T any] struct {
	Items      []T               `json:"items"`
	Current    *T                `json:"current"`
	Pagination pagination.Cursor `json:"pagination"`
	Loading    bool              `json:"loading"`
	Saving     bool              `json:"saving"`
	Error      string            `json:"error,omitempty"`
}

// List is the state of one resource type.
type List[T any] struct {
	mu  sync.RWMutex
	seq fetch.Sequence

	items      []T
	current    *T
	pagination pagination.Cursor
	loading    bool
	pending    int
	err        string
}

// # Fetch lifecycle

// Begin marks a fetch as started and returns its sequence number.
func (list *List[T]) Begin() uint64 {
	seq := list.seq.Next()

	list.mu.Lock()
	list.loading = true
	list.mu.Unlock()

	return seq
}

// ApplyList stores a list result. It reports false if seq was superseded.
func (list *List[T]) ApplyList(seq uint64, items []T, cursor pagination.Cursor) bool {
	list.mu.Lock()
	defer list.mu.Unlock()

	if !list.seq.Latest(seq) {
		return false
	}

	list.items = slices.Clone(items)
	list.pagination = cursor
	list.loading = false
	list.err = ""
	return true
}

// ApplyOne stores a detail result. It reports false if seq was superseded.
func (list *List[T]) ApplyOne(seq uint64, item T) bool {
	list.mu.Lock()
	defer list.mu.Unlock()

	if !list.seq.Latest(seq) {
		return false
	}

	list.current = &item
	list.loading = false
	list.err = ""
	return true
}

// Fail records a failed fetch and keeps the loaded data.
func (list *List[T]) Fail(seq uint64, err error) bool {
	list.mu.Lock()
	defer list.mu.Unlock()

	if !list.seq.Latest(seq) {
		return false
	}

	list.loading = false
	list.err = apperr.Message(err)
	return true
}

// Missing records a detail fetch that found nothing.
func (list *List[T]) Missing(seq uint64, err error) bool {
	list.mu.Lock()
	defer list.mu.Unlock()

	if !list.seq.Latest(seq) {
		return false
	}

	list.current = nil
	list.loading = false
	list.err = apperr.Message(err)
	return true
}

// LoadList runs a list fetch through the sequence guard.
//
// The outcome is recorded in the list; the error is also returned so callers
// can react to it (e.g. a forced logout).
func (list *List[T]) LoadList(ctx context.Context, fn func(ctx context.Context) ([]T, pagination.Cursor, error)) error {
	seq := list.Begin()

	items, cursor, err := fn(ctx)
	if err != nil {
		list.Fail(seq, err)
		return err
	}

	list.ApplyList(seq, items, cursor)
	return nil
}

// LoadOne runs a detail fetch through the sequence guard.
func (list *List[T]) LoadOne(ctx context.Context, fn func(ctx context.Context) (T, error)) error {
	seq := list.Begin()

	item, err := fn(ctx)
	switch {
	case apperr.HasCode(err, apperr.CodeNotFound):
		list.Missing(seq, err)
		return err
	case err != nil:
		list.Fail(seq, err)
		return err
	}

	list.ApplyOne(seq, item)
	return nil
}

// # Mutations

// Mutate runs a create, update or delete call.
//
// The error is recorded and returned. Mutations never touch the loaded items:
// the caller refreshes the list afterwards.
func (list *List[T]) Mutate(ctx context.Context, fn func(ctx context.Context) error) error {
	list.mu.Lock()
	list.pending++
	list.err = ""
	list.mu.Unlock()

	err := fn(ctx)

	list.mu.Lock()
	list.pending--
	if err != nil {
		list.err = apperr.Message(err)
	}
	list.mu.Unlock()

	return err
}

// SetCurrent replaces the current item, e.g. with the result of an update.
func (list *List[T]) SetCurrent(item *T) {
	list.mu.Lock()
	list.current = item
	list.mu.Unlock()
}

// Fault records an error that did not come from a fetch, such as a local validation failure.
func (list *List[T]) Fault(err error) {
	list.mu.Lock()
	list.err = apperr.Message(err)
	list.mu.Unlock()
}

// ClearError dismisses the error banner. It does not retry.
func (list *List[T]) ClearError() {
	list.mu.Lock()
	list.err = ""
	list.mu.Unlock()
}

// # Reads

// Snapshot returns a copy of the state.
func (list *List[T]) Snapshot() Snapshot[T] {
	list.mu.RLock()
	defer list.mu.RUnlock()

	snapshot := Snapshot[T]{
		Items:      slices.Clone(list.items),
		Pagination: list.pagination,
		Loading:    list.loading,
		Saving:     list.pending > 0,
		Error:      list.err,
	}
	if snapshot.Items == nil {
		snapshot.Items = []T{}
	}
	if list.current != nil {
		current := *list.current
		snapshot.Current = &current
	}

	return snapshot
}

// Items returns a copy of the loaded items.
func (list *List[T]) Items() []T {
	list.mu.RLock()
	defer list.mu.RUnlock()
	return slices.Clone(list.items)
}

// Current returns a copy of the current item, or nil.
func (list *List[T]) Current() *T {
	list.mu.RLock()
	defer list.mu.RUnlock()
	if list.current == nil {
		return nil
	}
	current := *list.current
	return &current
}

// Loading reports whether the latest fetch is still in flight.
func (list *List[T]) Loading() bool {
	list.mu.RLock()
	defer list.mu.RUnlock()
	return list.loading
}

// Err returns the recorded error message, or "".
func (list *List[T]) Err() string {
	list.mu.RLock()
	defer list.mu.RUnlock()
	return list.err
}
