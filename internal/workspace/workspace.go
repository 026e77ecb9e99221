// Copyright (c) 2026 NitikBatik. All rights reserved.

/*
Package workspace gives every visitor their own set of stores.

A [Workspace] is the server-side counterpart of one browser tab group: it holds
one instance of each entity store and the view models composed from them. The
[Registry] maps the visitor cookie to a workspace and evicts workspaces nobody
has touched for a while.
*/
package workspace

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/apiclient"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/article"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/auth"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/category"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/ctxkey"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/product"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/session"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/shop"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/user"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/view"
)

// Workspace is the state of one visitor.
type Workspace struct {
	ID string

	Auth       *auth.Store
	Articles   *article.Store
	Categories *category.Store
	Products   *product.Store
	Inventory  *product.Store
	Shops      *shop.Store
	Users      *user.Store

	Views *view.Models

	lastSeen atomic.Int64
}

// New creates an empty, logged-out workspace.
//
// Inventory is the seller's own product list, kept apart from the public catalog.
func New(id string, client *apiclient.Client, revocations session.Revocations, sleep view.SleepFunc) *Workspace {
	categories := category.NewStore(client)

	workspace := &Workspace{
		ID:         id,
		Auth:       auth.NewStore(client, revocations),
		Articles:   article.NewStore(client),
		Categories: categories,
		Products:   product.NewStore(client, categories),
		Inventory:  product.NewStore(client, categories),
		Shops:      shop.NewStore(client),
		Users:      user.NewStore(client),
	}

	workspace.Views = view.NewModels(view.Stores{
		Auth:       workspace.Auth,
		Articles:   workspace.Articles,
		Categories: workspace.Categories,
		Products:   workspace.Products,
		Inventory:  workspace.Inventory,
		Shops:      workspace.Shops,
		Users:      workspace.Users,
	}, sleep)

	return workspace
}

// Hydrate replaces the authentication state with the request's session.
//
// When the authenticated user changes, state tied to the previous user is dropped.
func (workspace *Workspace) Hydrate(s *session.Session) {
	previous := workspace.Auth.Session()
	workspace.Auth.Hydrate(s)

	if userKey(previous) != userKey(s) {
		workspace.Shops.Reset()
	}
}

// ForceLogout ends the session after the backend rejected its token.
func (workspace *Workspace) ForceLogout(context context.Context, token string) {
	workspace.Auth.ForceLogout(context, token)
	workspace.Shops.Reset()
}

// LastSeen returns when the workspace was last used.
func (workspace *Workspace) LastSeen() time.Time {
	return time.Unix(0, workspace.lastSeen.Load())
}

func (workspace *Workspace) touch(now time.Time) {
	workspace.lastSeen.Store(now.UnixNano())
}

func userKey(s *session.Session) string {
	if s == nil || s.User == nil {
		return ""
	}
	return s.User.ID.String() + "|" + string(s.User.Role)
}

// # Context

// With stores a workspace in ctx.
func With(ctx context.Context, workspace *Workspace) context.Context {
	return context.WithValue(ctx, ctxkey.KeyWorkspace, workspace)
}

// From returns the workspace stored in ctx, or nil.
func From(ctx context.Context) *Workspace {
	workspace, _ := ctx.Value(ctxkey.KeyWorkspace).(*Workspace)
	return workspace
}

// OnUnauthorized logs out the workspace in ctx after the backend rejected token.
//
// It is installed as the API client's unauthorized hook.
func OnUnauthorized(ctx context.Context, token string) {
	if workspace := From(ctx); workspace != nil {
		workspace.ForceLogout(ctx, token)
	}
}
