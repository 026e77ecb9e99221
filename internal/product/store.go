// Copyright (c) 2026 NitikBatik. All rights reserved.

/*
Package product holds the product catalog state.

The [Store] backs the public catalog, a shop's product list, the landing page's
latest products and the seller's product management screens. Product forms
validate their category against the authoritative category set.
*/
package product

import (
	"context"
	"net/http"
	"net/url"
	"slices"
	"strconv"

	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/apiclient"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/validate"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/state"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/pkg/pagination"
)

const (
	basePath = "/products"

	// MaxImages bounds the gallery of one product.
	MaxImages = 5

	// LatestLimit is how many products the landing page shows.
	LatestLimit = 8
)

// CategorySet provides the category ids a product may belong to.
type CategorySet interface {
	Allowed(ctx context.Context) []string
}

// Input is the editable part of a product.
type Input struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Harga       float64 `json:"harga"`
	CategoryID  string  `json:"category_id"`

	Thumbnail *apiclient.File  `json:"-"`
	Images    []apiclient.File `json:"-"`
}

// Store is the product state of one visitor.
type Store struct {
	client     *apiclient.Client
	categories CategorySet

	list   state.List[Product]
	latest state.List[Product]
}

// NewStore creates an empty product store.
func NewStore(client *apiclient.Client, categories CategorySet) *Store {
	return &Store{client: client, categories: categories}
}

// Snapshot returns the list and detail state.
func (store *Store) Snapshot() state.Snapshot[Product] { return store.list.Snapshot() }

// Total counts every item on the backend. The loaded list is left untouched.
func (store *Store) Total(context context.Context) (int, error) {
	return store.client.Total(context, basePath)
}

// Latest returns the landing page state.
func (store *Store) Latest() state.Snapshot[Product] { return store.latest.Snapshot() }

// ClearError dismisses the error banner.
func (store *Store) ClearError() { store.list.ClearError() }

// # Queries

// FetchList loads one catalog page. params.FilterKey narrows by category.
func (store *Store) FetchList(context context.Context, params pagination.Params) error {
	return store.fetchPage(context, basePath, params.Normalize())
}

// FetchByShop loads one page of a shop's products.
func (store *Store) FetchByShop(context context.Context, shopID string, params pagination.Params) error {
	return store.fetchPage(context, "/stores/"+url.PathEscape(shopID)+"/products", params.Normalize())
}

func (store *Store) fetchPage(ctx context.Context, path string, params pagination.Params) error {
	return store.list.LoadList(ctx, func(ctx context.Context) ([]Product, pagination.Cursor, error) {
		var page apiclient.Page[Product]
		if err := store.client.Get(ctx, path, params.Query(), &page); err != nil {
			return nil, pagination.Cursor{}, err
		}
		return page.Items, page.Pagination, nil
	})
}

// FetchLatest loads the newest products for the landing page and returns them.
func (store *Store) FetchLatest(ctx context.Context, limit int) ([]Product, error) {
	if limit <= 0 {
		limit = LatestLimit
	}
	query := url.Values{"limit": {strconv.Itoa(limit)}}

	err := store.latest.LoadList(ctx, func(ctx context.Context) ([]Product, pagination.Cursor, error) {
		var items []Product
		if err := store.client.Get(ctx, basePath+"/latest", query, &items); err != nil {
			return nil, pagination.Cursor{}, err
		}
		return items, pagination.NewCursor(1, limit, len(items)), nil
	})

	return store.latest.Items(), err
}

// FetchOne loads the product identified by slug.
func (store *Store) FetchOne(ctx context.Context, productSlug string) error {
	return store.list.LoadOne(ctx, func(ctx context.Context) (Product, error) {
		var p Product
		err := store.client.Get(ctx, basePath+"/"+url.PathEscape(productSlug), nil, &p)
		return p, err
	})
}

// # Mutations

/*
Create adds a product to the seller's shop.

Description: Fields are validated locally, including the category against the
authoritative set; a thumbnail is required. Files are sent as multipart.

Parameters:
  - context: context.Context
  - input: Input

Returns:
  - *Product: created product
  - error: validation or upstream errors (also recorded in the store)
*/
func (store *Store) Create(ctx context.Context, input Input) (*Product, error) {
	if err := store.validate(ctx, input, true); err != nil {
		store.list.Fault(err)
		return nil, err
	}

	var created Product
	err := store.list.Mutate(ctx, func(ctx context.Context) error {
		return store.client.Do(ctx, http.MethodPost, basePath, form(input), &created)
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

// Update edits the product identified by slug. Files are optional.
func (store *Store) Update(ctx context.Context, productSlug string, input Input) (*Product, error) {
	if err := store.validate(ctx, input, false); err != nil {
		store.list.Fault(err)
		return nil, err
	}

	var updated Product
	err := store.list.Mutate(ctx, func(ctx context.Context) error {
		return store.client.Do(ctx, http.MethodPut, basePath+"/"+url.PathEscape(productSlug), form(input), &updated)
	})
	if err != nil {
		return nil, err
	}

	store.list.SetCurrent(&updated)
	return &updated, nil
}

// Delete removes the product identified by slug.
func (store *Store) Delete(ctx context.Context, productSlug string) error {
	return store.list.Mutate(ctx, func(ctx context.Context) error {
		return store.client.Do(ctx, http.MethodDelete, basePath+"/"+url.PathEscape(productSlug), nil, nil)
	})
}

func (store *Store) validate(context context.Context, input Input, creating bool) error {
	v := &validate.Validator{}
	v.Required("name", input.Name).
		MaxLen("name", input.Name, 150).
		Required("description", input.Description).
		Positive("harga", input.Harga).
		Required("category_id", input.CategoryID).
		Custom("images", len(input.Images) > MaxImages, "Maksimal 5 gambar").
		Custom("thumbnail", creating && input.Thumbnail == nil, "Wajib diisi")

	if input.CategoryID != "" && !slices.Contains(store.categories.Allowed(context), input.CategoryID) {
		v.Custom("category_id", true, "Kategori tidak dikenal")
	}

	return v.Err()
}

func form(input Input) *apiclient.Form {
	f := apiclient.NewForm().
		Field("name", input.Name).
		Field("description", input.Description).
		Field("harga", strconv.FormatFloat(input.Harga, 'f', -1, 64)).
		Field("category_id", input.CategoryID).
		File("thumbnail", input.Thumbnail)

	for i := range input.Images {
		f.File("images", &input.Images[i])
	}

	return f
}
