// Copyright (c) 2026 NitikBatik. All rights reserved.

/*
Package view composes several stores into the models rendered by pages.

Each model owns no entity data of its own: it decides what to fetch, when, and
derives flags from the stores' snapshots. Models live in a visitor's workspace
next to the stores they read.

# Page loads

Every request is a new page load and fetches again. Within one request the fetch
guards suppress duplicate calls for the same inputs, so a failure is only
remembered until the visitor reloads.
*/
package view

import (
	"context"
	"time"

	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/article"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/auth"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/category"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/ctxutil"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/product"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/shop"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/user"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/pkg/pagination"
)

// Stores is the set of stores the models read.
type Stores struct {
	Auth       *auth.Store
	Articles   *article.Store
	Categories *category.Store
	Products   *product.Store
	Inventory  *product.Store
	Shops      *shop.Store
	Users      *user.Store
}

// SleepFunc waits between retry attempts; tests substitute a recorder.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Models bundles the view models of one visitor.
type Models struct {
	Manager   *ProductManager
	Latest    *LatestProducts
	Catalog   *Catalog
	ShopPage  *ShopPage
	Dashboard *ShopDashboard
	Overview  *AdminOverview
}

// Pager tells a paged screen which navigation links to offer.
type Pager struct {
	HasNext bool `json:"hasNext"`
	HasPrev bool `json:"hasPrev"`
}

// mounted scopes a fetch identity to the page load carrying ctx.
//
// Contexts without a request id share one unscoped identity.
func mounted(ctx context.Context, identity string) string {
	if requestID := ctxutil.GetRequestID(ctx); requestID != "" {
		return requestID + "|" + identity
	}
	return identity
}

func pagerOf(cursor pagination.Cursor) Pager {
	return Pager{HasNext: cursor.HasNext(), HasPrev: cursor.HasPrev()}
}

// NewModels wires every model to stores. A nil sleep uses the real clock.
func NewModels(stores Stores, sleep SleepFunc) *Models {
	return &Models{
		Manager:   NewProductManager(stores.Auth, stores.Shops, stores.Inventory),
		Latest:    NewLatestProducts(stores.Products, sleep),
		Catalog:   NewCatalog(stores.Products, stores.Categories),
		ShopPage:  NewShopPage(stores.Shops, stores.Products),
		Dashboard: NewShopDashboard(stores.Auth, stores.Shops),
		Overview:  NewAdminOverview(stores.Articles, stores.Products, stores.Shops, stores.Users),
	}
}
