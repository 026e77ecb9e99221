// Copyright (c) 2026 NitikBatik. All rights reserved.

/*
Package shop holds seller shops ("toko").

The [Store] keeps two states apart. The seller's own shop is loaded by
[Store.FetchMine] and is nil while the seller has none; every mutation applies to
it. Shop pages browsed by any visitor are loaded with [Store.FetchOne] and
[Store.FetchList] and never disturb the seller's own shop.
*/
package shop

import (
	"context"
	"net/http"
	"net/url"
	"sync/atomic"

	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/apiclient"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/apperr"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/validate"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/state"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/pkg/pagination"
)

const basePath = "/stores"

// Store is the shop state of one visitor.
type Store struct {
	client *apiclient.Client
	list   state.List[Shop]
	mine   state.List[Shop]

	// mineLoaded is set once FetchMine has settled.
	mineLoaded atomic.Bool
}

// NewStore creates an empty shop store.
func NewStore(client *apiclient.Client) *Store {
	return &Store{client: client}
}

// Snapshot returns the browsing state (shop pages and lists).
func (store *Store) Snapshot() state.Snapshot[Shop] { return store.list.Snapshot() }

// Total counts every item on the backend. The loaded list is left untouched.
func (store *Store) Total(context context.Context) (int, error) {
	return store.client.Total(context, basePath)
}

// MineSnapshot returns the state of the seller's own shop.
func (store *Store) MineSnapshot() state.Snapshot[Shop] { return store.mine.Snapshot() }

// Mine returns the seller's own shop, or nil.
func (store *Store) Mine() *Shop { return store.mine.Current() }

// MineLoaded reports whether the seller's shop has been looked up.
func (store *Store) MineLoaded() bool { return store.mineLoaded.Load() }

// ClearError dismisses both error banners.
func (store *Store) ClearError() {
	store.list.ClearError()
	store.mine.ClearError()
}

// Reset forgets the seller's shop, e.g. after logout.
func (store *Store) Reset() {
	store.mine.SetCurrent(nil)
	store.mine.ClearError()
	store.mineLoaded.Store(false)
}

// # Queries

// FetchMine loads the shop of the logged-in seller.
//
// Having no shop is a normal state, not an error: a 404 leaves the current
// item nil without recording an error.
func (store *Store) FetchMine(context context.Context) error {
	seq := store.mine.Begin()

	var mine Shop
	err := store.client.Get(context, basePath+"/me", nil, &mine)

	switch {
	case apiclient.IsNotFound(err):
		store.mine.Missing(seq, nil)
		store.mineLoaded.Store(true)
		return nil
	case err != nil:
		store.mine.Fail(seq, err)
		return err
	}

	if mine.ID.IsZero() {
		store.mine.Missing(seq, nil)
	} else {
		store.mine.ApplyOne(seq, mine)
	}
	store.mineLoaded.Store(true)
	return nil
}

// FetchOne loads a shop by id for its public page.
func (store *Store) FetchOne(ctx context.Context, shopID string) error {
	return store.list.LoadOne(ctx, func(ctx context.Context) (Shop, error) {
		var s Shop
		err := store.client.Get(ctx, basePath+"/"+url.PathEscape(shopID), nil, &s)
		return s, err
	})
}

// FetchList loads one page of shops.
func (store *Store) FetchList(ctx context.Context, params pagination.Params) error {
	params = params.Normalize()

	return store.list.LoadList(ctx, func(ctx context.Context) ([]Shop, pagination.Cursor, error) {
		var page apiclient.Page[Shop]
		if err := store.client.Get(ctx, basePath, params.Query(), &page); err != nil {
			return nil, pagination.Cursor{}, err
		}
		return page.Items, page.Pagination, nil
	})
}

// # Mutations

/*
Create opens the seller's shop.

Description: A seller owns at most one shop. If the seller's shop is not known
yet it is fetched first; an existing shop rejects the call with a conflict
before anything is sent.

Returns:
  - *Shop: the created shop, now the store's current item
  - error: CONFLICT, VALIDATION_ERROR or upstream errors
*/
func (store *Store) Create(ctx context.Context, input Input) (*Shop, error) {
	if err := validateInput(input); err != nil {
		store.mine.Fault(err)
		return nil, err
	}

	if !store.mineLoaded.Load() {
		if err := store.FetchMine(ctx); err != nil {
			return nil, err
		}
	}
	if store.mine.Current() != nil {
		err := apperr.Conflict("Anda sudah memiliki toko")
		store.mine.Fault(err)
		return nil, err
	}

	var created Shop
	err := store.mine.Mutate(ctx, func(ctx context.Context) error {
		return store.client.Do(ctx, http.MethodPost, basePath, input, &created)
	})
	if err != nil {
		return nil, err
	}

	store.mine.SetCurrent(&created)
	return &created, nil
}

// Update edits a shop owned by the seller.
func (store *Store) Update(ctx context.Context, shopID string, input Input) (*Shop, error) {
	if err := validateInput(input); err != nil {
		store.mine.Fault(err)
		return nil, err
	}

	var updated Shop
	err := store.mine.Mutate(ctx, func(ctx context.Context) error {
		return store.client.Do(ctx, http.MethodPut, basePath+"/"+url.PathEscape(shopID), input, &updated)
	})
	if err != nil {
		return nil, err
	}

	store.mine.SetCurrent(&updated)
	return &updated, nil
}

// Delete removes a shop.
func (store *Store) Delete(ctx context.Context, shopID string) error {
	err := store.mine.Mutate(ctx, func(ctx context.Context) error {
		return store.client.Do(ctx, http.MethodDelete, basePath+"/"+url.PathEscape(shopID), nil, nil)
	})
	if err != nil {
		return err
	}

	if current := store.mine.Current(); current != nil && current.ID.String() == shopID {
		store.mine.SetCurrent(nil)
	}
	return nil
}

// UploadAvatar replaces the shop's avatar and returns the stored path.
func (store *Store) UploadAvatar(context context.Context, shopID string, file apiclient.File) (string, error) {
	return store.upload(context, shopID, "avatar", file, func(s *Shop, path string) { s.Avatar = path })
}

// UploadBanner replaces the shop's banner and returns the stored path.
func (store *Store) UploadBanner(context context.Context, shopID string, file apiclient.File) (string, error) {
	return store.upload(context, shopID, "banner", file, func(s *Shop, path string) { s.Banner = path })
}

func (store *Store) upload(ctx context.Context, shopID, kind string, file apiclient.File, apply func(*Shop, string)) (string, error) {
	var path string
	err := store.mine.Mutate(ctx, func(ctx context.Context) error {
		return store.client.Upload(ctx, basePath+"/"+url.PathEscape(shopID)+"/"+kind, file, "image", &path)
	})
	if err != nil {
		return "", err
	}

	if current := store.mine.Current(); current != nil && current.ID.String() == shopID {
		apply(current, path)
		store.mine.SetCurrent(current)
	}
	return path, nil
}

func validateInput(input Input) error {
	v := &validate.Validator{}
	v.Required("name", input.Name).
		MaxLen("name", input.Name, 100).
		Required("whatsapp", input.WhatsApp).
		Required("alamat", input.Alamat)

	if input.WhatsApp != "" {
		v.Phone("whatsapp", input.WhatsApp)
	}

	return v.Err()
}
