// Copyright (c) 2026 NitikBatik. All rights reserved.

package view

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/category"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/product"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/state"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/pkg/pagination"
)

// Arrangement orders the products of the loaded page.
type Arrangement string

const (
	ArrangeNewest    Arrangement = "newest"
	ArrangeOldest    Arrangement = "oldest"
	ArrangePriceAsc  Arrangement = "price-asc"
	ArrangePriceDesc Arrangement = "price-desc"
	ArrangeName      Arrangement = "name"
)

// ParseArrangement maps a query value to an arrangement; unknown values keep backend order.
func ParseArrangement(s string) Arrangement {
	switch a := Arrangement(strings.ToLower(strings.TrimSpace(s))); a {
	case ArrangeNewest, ArrangeOldest, ArrangePriceAsc, ArrangePriceDesc, ArrangeName:
		return a
	default:
		return ""
	}
}

/*
Arrange returns a reordered copy of items.

Only the given page is reordered: nothing is re-fetched and other pages are not
considered, so the order across pages remains the backend's. Ties keep their
backend order. An empty arrangement returns the items unchanged.
*/
func Arrange(items []product.Product, by Arrangement) []product.Product {
	arranged := slices.Clone(items)

	var compare func(a, b product.Product) int
	switch by {
	case ArrangeNewest:
		compare = func(a, b product.Product) int { return b.CreatedAt.Compare(a.CreatedAt) }
	case ArrangeOldest:
		compare = func(a, b product.Product) int { return a.CreatedAt.Compare(b.CreatedAt) }
	case ArrangePriceAsc:
		compare = func(a, b product.Product) int { return cmp.Compare(a.Harga, b.Harga) }
	case ArrangePriceDesc:
		compare = func(a, b product.Product) int { return cmp.Compare(b.Harga, a.Harga) }
	case ArrangeName:
		compare = func(a, b product.Product) int {
			return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		}
	default:
		return arranged
	}

	slices.SortStableFunc(arranged, compare)
	return arranged
}

// CatalogModel is the all-products page.
type CatalogModel struct {
	Products   state.Snapshot[product.Product] `json:"products"`
	Arranged   Arrangement                     `json:"arrangedBy,omitempty"`
	Categories []category.Category             `json:"categories"`
	Pager      Pager                           `json:"pager"`
}

// Catalog is the public product listing.
type Catalog struct {
	products   *product.Store
	categories *category.Store
}

// NewCatalog creates the model.
func NewCatalog(products *product.Store, categories *category.Store) *Catalog {
	return &Catalog{products: products, categories: categories}
}

// Load fetches one server page and arranges it locally.
func (catalog *Catalog) Load(context context.Context, params pagination.Params, by Arrangement) (CatalogModel, error) {
	err := catalog.products.FetchList(context, params)

	snapshot := catalog.products.Snapshot()
	snapshot.Items = Arrange(snapshot.Items, by)

	categories, _ := catalog.categories.Authoritative(context)

	return CatalogModel{
		Products:   snapshot,
		Arranged:   by,
		Categories: categories,
		Pager:      pagerOf(snapshot.Pagination),
	}, err
}
