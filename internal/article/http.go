// Copyright (c) 2026 NitikBatik. All rights reserved.

package article

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/request"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/respond"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/pkg/pagination"
)

// StoreFunc resolves the article store of the visitor making the request.
type StoreFunc func(request *http.Request) *Store

// Handler serves the article pages.
type Handler struct {
	store StoreFunc
}

// NewHandler constructs a new [Handler].
func NewHandler(store StoreFunc) *Handler {
	return &Handler{store: store}
}

// PublicRoutes registers the reader pages.
//
// # Endpoints
//   - GET /        : Article list (page, limit, search).
//   - GET /{slug}  : Article detail.
func (handler *Handler) PublicRoutes(router chi.Router) {
	router.Get("/", handler.list)
	router.Get("/{slug}", handler.detail)
}

// AdminRoutes registers the editorial pages of the admin dashboard.
func (handler *Handler) AdminRoutes(router chi.Router) {
	router.Get("/", handler.list)
	router.Post("/", handler.create)
	router.Get("/{slug}", handler.detail)
	router.Put("/{slug}", handler.update)
	router.Delete("/{slug}", handler.delete)
	router.Post("/dismiss-error", handler.dismissError)
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	store := handler.store(request)
	err := store.FetchList(request.Context(), pagination.FromRequest(request))
	respond.View(writer, request, err, store.Snapshot())
}

func (handler *Handler) detail(writer http.ResponseWriter, request *http.Request) {
	store := handler.store(request)
	err := store.FetchOne(request.Context(), requestutil.Param(request, "slug"))
	respond.View(writer, request, err, store.Snapshot().Current)
}

/*
Create publishes an article.

POST /admin/dashboard/articles

Request:
  - Body: JSON Input, or multipart with an optional "image" file

Response:
  - 201: Article
  - 400: VALIDATION_ERROR (never sent upstream)
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	input, err := decodeInput(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.store(request).Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, created)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	input, err := decodeInput(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.store(request).Update(request.Context(), requestutil.Param(request, "slug"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, updated)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	if err := handler.store(request).Delete(request.Context(), requestutil.Param(request, "slug")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

func (handler *Handler) dismissError(writer http.ResponseWriter, request *http.Request) {
	handler.store(request).ClearError()
	respond.NoContent(writer)
}

func decodeInput(request *http.Request) (Input, error) {
	var input Input

	if !requestutil.IsMultipart(request) {
		err := requestutil.DecodeJSON(request, &input)
		return input, err
	}

	if err := requestutil.ParseMultipart(request); err != nil {
		return input, err
	}

	input.Title = request.FormValue("title")
	input.Description = request.FormValue("description")
	input.Excerpt = request.FormValue("excerpt")
	input.Image = requestutil.File(request, "image")

	return input, nil
}
