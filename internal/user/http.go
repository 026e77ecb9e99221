// Copyright (c) 2026 NitikBatik. All rights reserved.

package user

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/apperr"
	requestutil "github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/request"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/respond"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/pkg/pagination"
)

// StoreFunc resolves the user store of the visitor making the request.
type StoreFunc func(request *http.Request) *Store

// Handler serves the admin's user management pages.
type Handler struct {
	store StoreFunc
}

// NewHandler constructs a new [Handler].
func NewHandler(store StoreFunc) *Handler {
	return &Handler{store: store}
}

// AdminRoutes registers GET /, DELETE /{id} and POST /dismiss-error.
func (handler *Handler) AdminRoutes(router chi.Router) {
	router.Get("/", handler.list)
	router.Delete("/{id}", handler.delete)
	router.Post("/dismiss-error", handler.dismissError)
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	store := handler.store(request)
	err := store.FetchList(request.Context(), pagination.FromRequest(request))
	respond.View(writer, request, err, store.Snapshot())
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	s, err := requestutil.RequiredSession(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	userID := requestutil.Param(request, "id")

	// An admin deleting their own account would lock themselves out mid-session.
	if s.User.ID.String() == userID {
		respond.Error(writer, request, apperr.Forbidden("Tidak dapat menghapus akun sendiri"))
		return
	}

	if err := handler.store(request).Delete(request.Context(), userID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

func (handler *Handler) dismissError(writer http.ResponseWriter, request *http.Request) {
	handler.store(request).ClearError()
	respond.NoContent(writer)
}
