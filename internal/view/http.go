// Copyright (c) 2026 NitikBatik. All rights reserved.

package view

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/apperr"
	requestutil "github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/request"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/respond"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/product"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/pkg/convert"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/pkg/pagination"
)

// ModelsFunc resolves the view models of the visitor making the request.
type ModelsFunc func(request *http.Request) *Models

// Handler serves the composed pages.
type Handler struct {
	models ModelsFunc
}

// NewHandler constructs a new [Handler].
func NewHandler(models ModelsFunc) *Handler {
	return &Handler{models: models}
}

// # Route Registration

// Landing serves GET / with the latest products.
func (handler *Handler) Landing(writer http.ResponseWriter, request *http.Request) {
	model, err := handler.models(request).Latest.Load(request.Context())
	respond.View(writer, request, err, model)
}

// CatalogRoutes registers GET / (page, limit, search, filter, sort).
func (handler *Handler) CatalogRoutes(router chi.Router) {
	router.Get("/", handler.catalog)
}

// ShopRoutes registers GET /{id}.
func (handler *Handler) ShopRoutes(router chi.Router) {
	router.Get("/{id}", handler.shopPage)
}

// SellerRoutes registers the seller dashboard pages.
//
// # Endpoints
//   - GET    /                  : Dashboard (identity and shop).
//   - GET    /products          : Product management (search, page, clear).
//   - POST   /products          : Create a product.
//   - POST   /products/refresh  : Re-fetch the current list.
//   - POST   /products/dismiss-error : Hide the list's error banner.
//   - PUT    /products/{slug}   : Edit a product.
//   - DELETE /products/{slug}   : Delete a product.
func (handler *Handler) SellerRoutes(router chi.Router) {
	router.Get("/", handler.dashboard)
	router.Route("/products", func(r chi.Router) {
		r.Get("/", handler.manage)
		r.Post("/", handler.createProduct)
		r.Post("/refresh", handler.refresh)
		r.Post("/dismiss-error", handler.dismissProductError)
		r.Put("/{slug}", handler.updateProduct)
		r.Delete("/{slug}", handler.deleteProduct)
	})
}

// AdminRoutes registers GET / with the platform totals.
func (handler *Handler) AdminRoutes(router chi.Router) {
	router.Get("/", handler.overview)
}

// # Public pages

func (handler *Handler) catalog(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)
	if category := request.URL.Query().Get("category"); category != "" {
		params.FilterKey = category
	}

	by := ParseArrangement(request.URL.Query().Get("sort"))
	model, err := handler.models(request).Catalog.Load(request.Context(), params, by)
	respond.View(writer, request, err, model)
}

func (handler *Handler) shopPage(writer http.ResponseWriter, request *http.Request) {
	shopID := requestutil.Param(request, "id")
	model, err := handler.models(request).ShopPage.Load(request.Context(), shopID, pagination.FromRequest(request))
	respond.View(writer, request, err, model)
}

// # Seller dashboard

func (handler *Handler) dashboard(writer http.ResponseWriter, request *http.Request) {
	model, err := handler.models(request).Dashboard.Load(request.Context())
	respond.View(writer, request, err, model)
}

/*
Manage renders the seller's product list.

GET /penjual/dashboard/products

Request:
  - search: replaces the filter and returns to page 1
  - clear: drops the filter
  - page: moves to a page under the current filter

Response:
  - 200: ManagerModel
*/
func (handler *Handler) manage(writer http.ResponseWriter, request *http.Request) {
	manager := handler.models(request).Manager
	query := request.URL.Query()

	var (
		model ManagerModel
		err   error
	)

	switch {
	case query.Has("clear"):
		model, err = manager.ClearSearch(request.Context())
	case query.Has("search"):
		model, err = manager.Search(request.Context(), strings.TrimSpace(query.Get("search")))
	case query.Has("page"):
		model, err = manager.GoTo(request.Context(), convert.ToIntD(query.Get("page"), pagination.DefaultPage))
	default:
		model, err = manager.Load(request.Context())
	}

	respond.View(writer, request, err, model)
}

func (handler *Handler) refresh(writer http.ResponseWriter, request *http.Request) {
	model, err := handler.models(request).Manager.Refresh(request.Context())
	respond.View(writer, request, err, model)
}

func (handler *Handler) dismissProductError(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.models(request).Manager.DismissError())
}

func (handler *Handler) createProduct(writer http.ResponseWriter, request *http.Request) {
	input, err := product.DecodeInput(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.models(request).Manager.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, created)
}

func (handler *Handler) updateProduct(writer http.ResponseWriter, request *http.Request) {
	input, err := product.DecodeInput(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	productSlug := requestutil.Param(request, "slug")
	if productSlug == "" {
		respond.Error(writer, request, apperr.NotFound("Produk"))
		return
	}

	updated, err := handler.models(request).Manager.Update(request.Context(), productSlug, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, updated)
}

func (handler *Handler) deleteProduct(writer http.ResponseWriter, request *http.Request) {
	if err := handler.models(request).Manager.Delete(request.Context(), requestutil.Param(request, "slug")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// # Admin dashboard

func (handler *Handler) overview(writer http.ResponseWriter, request *http.Request) {
	model, err := handler.models(request).Overview.Load(request.Context())
	respond.View(writer, request, err, model)
}
