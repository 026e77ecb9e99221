// Copyright (c) 2026 NitikBatik. All rights reserved.

/*
Package article holds the editorial articles of the storefront.

The [Store] keeps one visitor's view of the article list and the article being
read; admins also create, edit and delete articles through it. Article slugs are
derived here from the title, never by the backend.
*/
package article

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/apiclient"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/validate"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/state"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/pkg/pagination"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/pkg/slug"
)

const basePath = "/articles"

// Input is the editable part of an article.
type Input struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Excerpt     string `json:"excerpt"`

	// Image is the optional cover image.
	Image *apiclient.File `json:"-"`
}

// Store is the article state of one visitor.
type Store struct {
	client *apiclient.Client
	list   state.List[Article]
}

// NewStore creates an empty article store.
func NewStore(client *apiclient.Client) *Store {
	return &Store{client: client}
}

// Snapshot returns the current state.
func (store *Store) Snapshot() state.Snapshot[Article] { return store.list.Snapshot() }

// Total counts every item on the backend. The loaded list is left untouched.
func (store *Store) Total(context context.Context) (int, error) {
	return store.client.Total(context, basePath)
}

// ClearError dismisses the error banner.
func (store *Store) ClearError() { store.list.ClearError() }

// # Queries

// FetchList loads one page of articles.
func (store *Store) FetchList(ctx context.Context, params pagination.Params) error {
	params = params.Normalize()

	return store.list.LoadList(ctx, func(ctx context.Context) ([]Article, pagination.Cursor, error) {
		var page apiclient.Page[Article]
		if err := store.client.Get(ctx, basePath, params.Query(), &page); err != nil {
			return nil, pagination.Cursor{}, err
		}
		return page.Items, page.Pagination, nil
	})
}

// FetchOne loads the article identified by slug.
func (store *Store) FetchOne(ctx context.Context, articleSlug string) error {
	return store.list.LoadOne(ctx, func(ctx context.Context) (Article, error) {
		var a Article
		err := store.client.Get(ctx, basePath+"/"+url.PathEscape(articleSlug), nil, &a)
		return a, err
	})
}

// # Mutations

/*
Create publishes a new article.

Description: The slug is derived from the title. The description is sanitized
before it is sent. Validation failures never reach the backend.

Parameters:
  - context: context.Context
  - input: Input

Returns:
  - *Article: the created article as returned by the backend
  - error: validation or upstream errors (also recorded in the store)
*/
func (store *Store) Create(ctx context.Context, input Input) (*Article, error) {
	if err := validateInput(input); err != nil {
		store.list.Fault(err)
		return nil, err
	}

	var created Article
	err := store.list.Mutate(ctx, func(ctx context.Context) error {
		return store.client.Do(ctx, http.MethodPost, basePath, form(input, slug.Title(input.Title)), &created)
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

// Update edits the article identified by slug. The slug itself never changes.
func (store *Store) Update(ctx context.Context, articleSlug string, input Input) (*Article, error) {
	if err := validateInput(input); err != nil {
		store.list.Fault(err)
		return nil, err
	}

	var updated Article
	err := store.list.Mutate(ctx, func(ctx context.Context) error {
		return store.client.Do(ctx, http.MethodPut, basePath+"/"+url.PathEscape(articleSlug), form(input, ""), &updated)
	})
	if err != nil {
		return nil, err
	}

	store.list.SetCurrent(&updated)
	return &updated, nil
}

// Delete removes the article identified by slug.
func (store *Store) Delete(ctx context.Context, articleSlug string) error {
	return store.list.Mutate(ctx, func(ctx context.Context) error {
		return store.client.Do(ctx, http.MethodDelete, basePath+"/"+url.PathEscape(articleSlug), nil, nil)
	})
}

func validateInput(input Input) error {
	v := &validate.Validator{}
	v.Required("title", input.Title).
		MaxLen("title", input.Title, 200).
		Required("description", textPolicy.Sanitize(input.Description))

	if articleSlug := slug.Title(input.Title); input.Title != "" {
		v.Custom("title", articleSlug == "" || articleSlug == "-", "Judul harus mengandung huruf atau angka")
	}

	return v.Err()
}

func form(input Input, articleSlug string) *apiclient.Form {
	description := Sanitize(input.Description)

	excerpt := input.Excerpt
	if excerpt == "" {
		excerpt = Excerpt(description)
	}

	return apiclient.NewForm().
		Field("title", input.Title).
		Field("slug", articleSlug).
		Field("excerpt", excerpt).
		Field("description", description).
		File("image", input.Image)
}
