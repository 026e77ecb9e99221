// Copyright (c) 2026 NitikBatik. All rights reserved.

package view

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/auth"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/product"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/session"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/shop"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/state"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/pkg/pagination"
)

// # Public shop page

// ShopPageModel is a shop with one page of its products.
type ShopPageModel struct {
	Shop     *shop.Shop                      `json:"shop"`
	Products state.Snapshot[product.Product] `json:"products"`
}

// ShopPage shows a shop to buyers.
type ShopPage struct {
	shops    *shop.Store
	products *product.Store
}

// NewShopPage creates the model.
func NewShopPage(shops *shop.Store, products *product.Store) *ShopPage {
	return &ShopPage{shops: shops, products: products}
}

// Load fetches the shop and its products concurrently.
//
// The returned error is the shop's when both fail, so a missing shop renders as not found.
func (page *ShopPage) Load(context context.Context, shopID string, params pagination.Params) (ShopPageModel, error) {
	var group errgroup.Group
	var shopErr, productsErr error

	group.Go(func() error {
		shopErr = page.shops.FetchOne(context, shopID)
		return nil
	})
	group.Go(func() error {
		productsErr = page.products.FetchByShop(context, shopID, params)
		return nil
	})
	_ = group.Wait()

	err := shopErr
	if err == nil {
		err = productsErr
	}

	return ShopPageModel{
		Shop:     page.shops.Snapshot().Current,
		Products: page.products.Snapshot(),
	}, err
}

// # Seller dashboard

// DashboardModel is the seller dashboard's landing state.
type DashboardModel struct {
	User     *session.User `json:"user"`
	Shop     *shop.Shop    `json:"shop"`
	HasStore bool          `json:"hasStore"`
	Loading  bool          `json:"loading"`
	Error    string        `json:"error,omitempty"`
}

// ShopDashboard combines the seller's identity with their shop.
type ShopDashboard struct {
	auth  *auth.Store
	shops *shop.Store
}

// NewShopDashboard creates the model.
func NewShopDashboard(auth *auth.Store, shops *shop.Store) *ShopDashboard {
	return &ShopDashboard{auth: auth, shops: shops}
}

// Load looks the seller's shop up once and returns the model.
func (dashboard *ShopDashboard) Load(context context.Context) (DashboardModel, error) {
	var err error
	if !dashboard.shops.MineLoaded() {
		err = dashboard.shops.FetchMine(context)
	}

	snapshot := dashboard.shops.MineSnapshot()
	return DashboardModel{
		User:     dashboard.auth.Snapshot().User,
		Shop:     snapshot.Current,
		HasStore: snapshot.Current != nil,
		Loading:  snapshot.Loading,
		Error:    snapshot.Error,
	}, err
}
