// Copyright (c) 2026 NitikBatik. All rights reserved.

// Package user holds the admin's view of registered accounts.
package user

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/apiclient"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/sec"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/state"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/pkg/convert"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/pkg/pagination"
)

const basePath = "/users"

// User is a registered account.
type User struct {
	ID        convert.ID   `json:"id"`
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	Role      sec.UserRole `json:"role"`
	CreatedAt time.Time    `json:"created_at"`
}

// Store is the user administration state.
type Store struct {
	client *apiclient.Client
	list   state.List[User]
}

// NewStore creates an empty user store.
func NewStore(client *apiclient.Client) *Store {
	return &Store{client: client}
}

// Snapshot returns the current state.
func (store *Store) Snapshot() state.Snapshot[User] { return store.list.Snapshot() }

// Total counts every item on the backend. The loaded list is left untouched.
func (store *Store) Total(context context.Context) (int, error) {
	return store.client.Total(context, basePath)
}

// ClearError dismisses the error banner.
func (store *Store) ClearError() { store.list.ClearError() }

// FetchList loads one page of accounts.
func (store *Store) FetchList(ctx context.Context, params pagination.Params) error {
	params = params.Normalize()

	return store.list.LoadList(ctx, func(ctx context.Context) ([]User, pagination.Cursor, error) {
		var page apiclient.Page[User]
		if err := store.client.Get(ctx, basePath, params.Query(), &page); err != nil {
			return nil, pagination.Cursor{}, err
		}
		return page.Items, page.Pagination, nil
	})
}

// Delete removes an account.
func (store *Store) Delete(ctx context.Context, userID string) error {
	return store.list.Mutate(ctx, func(ctx context.Context) error {
		return store.client.Do(ctx, http.MethodDelete, basePath+"/"+url.PathEscape(userID), nil, nil)
	})
}
