// Copyright (c) 2026 NitikBatik. All rights reserved.

package view

import (
	"context"
	"strconv"
	"sync"

	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/auth"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/apperr"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/fetch"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/sec"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/product"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/shop"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/state"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/pkg/pagination"
)

// ManagerModel is the seller's product management screen.
type ManagerModel struct {
	Shop     *shop.Shop                      `json:"shop"`
	Products state.Snapshot[product.Product] `json:"products"`
	Search   string                          `json:"search"`
	Page     int                             `json:"page"`
	Pager    Pager                           `json:"pager"`

	HasProducts       bool `json:"hasProducts"`
	IsEmpty           bool `json:"isEmpty"`
	NoResults         bool `json:"noResults"`
	HasStore          bool `json:"hasStore"`
	CanManageProducts bool `json:"canManageProducts"`
}

// ProductManager drives the seller's product list.
//
// The list is fetched once per {shop, search, page} within a page load: rendering
// the screen again with the same inputs, or concurrently, issues no further
// request. The next page load fetches again.
type ProductManager struct {
	auth      *auth.Store
	shops     *shop.Store
	inventory *product.Store
	guard     fetch.Guard

	mu     sync.Mutex
	search string
	page   int
}

// NewProductManager creates the model.
func NewProductManager(auth *auth.Store, shops *shop.Store, inventory *product.Store) *ProductManager {
	return &ProductManager{auth: auth, shops: shops, inventory: inventory, page: pagination.DefaultPage}
}

/*
Load fetches what the screen needs and returns its model.

Description: The seller's shop is looked up first when unknown. Without a shop
there is nothing to list. Otherwise the shop's products are fetched unless the
current identity was already fetched during this page load.

Returns:
  - ManagerModel: always usable, even alongside an error
  - error: the fetch error, also recorded in the stores
*/
func (manager *ProductManager) Load(ctx context.Context) (ManagerModel, error) {
	if !manager.shops.MineLoaded() {
		if err := manager.shops.FetchMine(ctx); err != nil {
			return manager.model(), err
		}
	}

	mine := manager.shops.Mine()
	if mine == nil {
		return manager.model(), nil
	}

	manager.mu.Lock()
	params := pagination.Params{Page: manager.page, Limit: pagination.DefaultLimit, Search: manager.search}
	manager.mu.Unlock()

	shopID := mine.ID.String()
	identity := shopID + "|" + params.Search + "|" + strconv.Itoa(params.Page)

	_, err := manager.guard.Do(ctx, mounted(ctx, identity), func(ctx context.Context) error {
		return manager.inventory.FetchByShop(ctx, shopID, params)
	})

	return manager.model(), err
}

// Search filters by term and returns to the first page.
func (manager *ProductManager) Search(context context.Context, term string) (ManagerModel, error) {
	manager.mu.Lock()
	manager.search = term
	manager.page = pagination.DefaultPage
	manager.mu.Unlock()

	return manager.Load(context)
}

// ClearSearch drops the filter and always re-fetches the first page.
func (manager *ProductManager) ClearSearch(context context.Context) (ManagerModel, error) {
	manager.guard.Reset()
	return manager.Search(context, "")
}

// GoTo moves to page, keeping the search term.
func (manager *ProductManager) GoTo(context context.Context, page int) (ManagerModel, error) {
	manager.mu.Lock()
	manager.page = max(page, pagination.DefaultPage)
	manager.mu.Unlock()

	return manager.Load(context)
}

// DismissError clears the product list's error banner without retrying.
func (manager *ProductManager) DismissError() ManagerModel {
	manager.inventory.ClearError()
	return manager.model()
}

// Refresh re-fetches the current identity, typically after a mutation.
func (manager *ProductManager) Refresh(context context.Context) (ManagerModel, error) {
	manager.guard.Reset()
	return manager.Load(context)
}

// # Mutations

// Create adds a product to the seller's shop and refreshes the list.
func (manager *ProductManager) Create(context context.Context, input product.Input) (*product.Product, error) {
	if err := manager.requireShop(); err != nil {
		return nil, err
	}

	created, err := manager.inventory.Create(context, input)
	if err != nil {
		return nil, err
	}

	_, _ = manager.Refresh(context)
	return created, nil
}

// Update edits a product of the seller's shop and refreshes the list.
func (manager *ProductManager) Update(context context.Context, productSlug string, input product.Input) (*product.Product, error) {
	if err := manager.requireShop(); err != nil {
		return nil, err
	}

	updated, err := manager.inventory.Update(context, productSlug, input)
	if err != nil {
		return nil, err
	}

	_, _ = manager.Refresh(context)
	return updated, nil
}

// Delete removes a product of the seller's shop and refreshes the list.
func (manager *ProductManager) Delete(context context.Context, productSlug string) error {
	if err := manager.requireShop(); err != nil {
		return err
	}

	if err := manager.inventory.Delete(context, productSlug); err != nil {
		return err
	}

	_, _ = manager.Refresh(context)
	return nil
}

func (manager *ProductManager) requireShop() error {
	if manager.auth.Role() != sec.RolePenjual {
		return apperr.Forbidden("Hanya penjual yang dapat mengelola produk")
	}
	if manager.shops.Mine() == nil {
		return apperr.Forbidden("Buat toko terlebih dahulu")
	}
	return nil
}

func (manager *ProductManager) model() ManagerModel {
	manager.mu.Lock()
	search, page := manager.search, manager.page
	manager.mu.Unlock()

	mine := manager.shops.Mine()
	products := manager.inventory.Snapshot()
	if mine == nil {
		products = state.Snapshot[product.Product]{}
	}

	// settled: the last fetch finished cleanly with nothing to show.
	settled := !products.Loading && len(products.Items) == 0 && products.Error == ""

	return ManagerModel{
		Shop:     mine,
		Products: products,
		Search:   search,
		Page:     page,
		Pager:    pagerOf(products.Pagination),

		HasProducts: len(products.Items) > 0,
		IsEmpty:           settled && search == "",
		NoResults:         settled && search != "",
		HasStore:          mine != nil,
		CanManageProducts: manager.auth.Role() == sec.RolePenjual && mine != nil,
	}
}
