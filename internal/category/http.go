// Copyright (c) 2026 NitikBatik. All rights reserved.

package category

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/respond"
)

// StoreFunc resolves the category store of the visitor making the request.
type StoreFunc func(request *http.Request) *Store

// Handler serves the category list.
type Handler struct {
	store StoreFunc
}

// NewHandler constructs a new [Handler].
func NewHandler(store StoreFunc) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes registers GET / on router.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.list)
}

// list answers with the authoritative set, flagging when the fallback is in use.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	items, live := handler.store(request).Authoritative(request.Context())
	respond.OK(writer, map[string]any{
		"items":    items,
		"fallback": !live,
	})
}
