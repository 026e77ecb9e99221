// Copyright (c) 2026 NitikBatik. All rights reserved.

/*
Package category holds the product categories.

The backend's category list is authoritative. The fixed [Fallback] set is used
only while that list cannot be obtained (fetch failed, or the backend returned
nothing), so product forms keep working when the category endpoint is down.
*/
package category

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/apiclient"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/apperr"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/ctxutil"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/state"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/pkg/convert"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/pkg/pagination"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/pkg/slice"
)

// Category is a product category.
type Category struct {
	ID   convert.ID `json:"id"`
	Name string     `json:"name"`
	Slug string     `json:"slug,omitempty"`
}

// Fallback is the built-in category set.
var Fallback = []Category{
	{ID: "1", Name: "Batik Tulis", Slug: "batik-tulis"},
	{ID: "2", Name: "Batik Cap", Slug: "batik-cap"},
	{ID: "3", Name: "Batik Printing", Slug: "batik-printing"},
	{ID: "4", Name: "Batik Kombinasi", Slug: "batik-kombinasi"},
	{ID: "5", Name: "Batik Lukis", Slug: "batik-lukis"},
	{ID: "6", Name: "Batik Jumputan", Slug: "batik-jumputan"},
}

// Store is the category state of one visitor.
type Store struct {
	client *apiclient.Client
	list   state.List[Category]

	mu sync.Mutex
	// missedIn is the request id of the last page load whose fetch came back empty.
	missedIn string
}

// NewStore creates an empty category store.
func NewStore(client *apiclient.Client) *Store {
	return &Store{client: client}
}

// Snapshot returns the current state.
func (store *Store) Snapshot() state.Snapshot[Category] { return store.list.Snapshot() }

// FetchAll loads every category.
//
// The endpoint answers either with a plain array or with a list page.
func (store *Store) FetchAll(ctx context.Context) error {
	return store.list.LoadList(ctx, func(ctx context.Context) ([]Category, pagination.Cursor, error) {
		var raw json.RawMessage
		if err := store.client.Get(ctx, "/categories", nil, &raw); err != nil {
			return nil, pagination.Cursor{}, err
		}
		return decode(raw)
	})
}

func decode(raw json.RawMessage) ([]Category, pagination.Cursor, error) {
	if len(raw) == 0 {
		return nil, pagination.Cursor{}, nil
	}

	var items []Category
	if err := json.Unmarshal(raw, &items); err == nil {
		return items, pagination.NewCursor(1, len(items), len(items)), nil
	}

	var page apiclient.Page[Category]
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, pagination.Cursor{}, apperr.BadResponse(fmt.Errorf("decode categories: %w", err))
	}
	return page.Items, page.Pagination, nil
}

/*
Authoritative returns the category set product forms must validate against.

Description: Loaded categories win. When none are loaded yet they are fetched,
at most once per page load; if that fails or yields nothing, [Fallback] is
returned for the rest of the page load and the next page load tries again.

Returns:
  - []Category: never empty
  - bool: true when the set came from the backend
*/
func (store *Store) Authoritative(context context.Context) ([]Category, bool) {
	if items := store.list.Items(); len(items) > 0 {
		return items, true
	}

	requestID := ctxutil.GetRequestID(context)
	if requestID != "" && store.missed(requestID) {
		return Fallback, false
	}

	if err := store.FetchAll(context); err != nil {
		ctxutil.GetLogger(context).WarnContext(context, "category_fallback_in_use",
			slog.String("error", err.Error()),
		)
	}

	if items := store.list.Items(); len(items) > 0 {
		return items, true
	}

	store.mu.Lock()
	store.missedIn = requestID
	store.mu.Unlock()

	return Fallback, false
}

func (store *Store) missed(requestID string) bool {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.missedIn == requestID
}

// Allowed returns the ids of [Store.Authoritative].
func (store *Store) Allowed(context context.Context) []string {
	items, _ := store.Authoritative(context)
	return slice.Map(items, func(c Category) string { return c.ID.String() })
}
