// Copyright (c) 2026 NitikBatik. All rights reserved.

package product

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/request"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/respond"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/pkg/convert"
)

// StoreFunc resolves the product store of the visitor making the request.
type StoreFunc func(request *http.Request) *Store

// Handler serves the product detail page.
//
// Listing pages compose several stores and live with the view models.
type Handler struct {
	store StoreFunc
}

// NewHandler constructs a new [Handler].
func NewHandler(store StoreFunc) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes registers GET /{slug} and POST /dismiss-error on router.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/{slug}", handler.detail)
	router.Post("/dismiss-error", handler.dismissError)
}

func (handler *Handler) detail(writer http.ResponseWriter, request *http.Request) {
	store := handler.store(request)
	err := store.FetchOne(request.Context(), requestutil.Param(request, "slug"))
	respond.View(writer, request, err, store.Snapshot().Current)
}

func (handler *Handler) dismissError(writer http.ResponseWriter, request *http.Request) {
	handler.store(request).ClearError()
	respond.NoContent(writer)
}

// DecodeInput reads a product form from a JSON or multipart body.
//
// Multipart bodies carry an optional "thumbnail" file and any number of "images".
func DecodeInput(request *http.Request) (Input, error) {
	var input Input

	if !requestutil.IsMultipart(request) {
		err := requestutil.DecodeJSON(request, &input)
		return input, err
	}

	if err := requestutil.ParseMultipart(request); err != nil {
		return input, err
	}

	input.Name = request.FormValue("name")
	input.Description = request.FormValue("description")
	input.Harga = convert.ToFloat64(request.FormValue("harga"))
	input.CategoryID = request.FormValue("category_id")
	input.Thumbnail = requestutil.File(request, "thumbnail")
	input.Images = requestutil.Files(request, "images")

	return input, nil
}
