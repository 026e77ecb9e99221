// Copyright (c) 2026 NitikBatik. All rights reserved.

package shop

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/apiclient"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/apperr"
	requestutil "github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/request"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/respond"
)

// StoreFunc resolves the shop store of the visitor making the request.
type StoreFunc func(request *http.Request) *Store

// Handler serves the seller's shop management endpoints.
type Handler struct {
	store StoreFunc
}

// NewHandler constructs a new [Handler].
func NewHandler(store StoreFunc) *Handler {
	return &Handler{store: store}
}

// SellerRoutes registers the shop endpoints of the seller dashboard.
//
// # Endpoints
//   - POST /        : Open the seller's shop (at most one).
//   - PUT  /        : Edit it.
//   - POST /avatar  : Replace its avatar ("image" file).
//   - POST /banner  : Replace its banner ("image" file).
//   - POST /dismiss-error : Hide the shop error banners.
func (handler *Handler) SellerRoutes(router chi.Router) {
	router.Post("/", handler.create)
	router.Put("/", handler.update)
	router.Post("/avatar", handler.uploadAvatar)
	router.Post("/banner", handler.uploadBanner)
	router.Post("/dismiss-error", handler.dismissError)
}

func (handler *Handler) dismissError(writer http.ResponseWriter, request *http.Request) {
	handler.store(request).ClearError()
	respond.NoContent(writer)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
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
	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	store := handler.store(request)
	mine, err := ownShop(request.Context(), store)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := store.Update(request.Context(), mine.ID.String(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, updated)
}

func (handler *Handler) uploadAvatar(writer http.ResponseWriter, request *http.Request) {
	handler.upload(writer, request, (*Store).UploadAvatar)
}

func (handler *Handler) uploadBanner(writer http.ResponseWriter, request *http.Request) {
	handler.upload(writer, request, (*Store).UploadBanner)
}

type uploadFunc func(store *Store, ctx context.Context, shopID string, file apiclient.File) (string, error)

func (handler *Handler) upload(writer http.ResponseWriter, request *http.Request, fn uploadFunc) {
	if err := requestutil.ParseMultipart(request); err != nil {
		respond.Error(writer, request, err)
		return
	}

	file := requestutil.File(request, "image")
	if file == nil {
		respond.Error(writer, request, apperr.ValidationError("Gambar wajib diunggah",
			apperr.FieldError{Field: "image", Message: "Wajib diisi"}))
		return
	}

	store := handler.store(request)
	mine, err := ownShop(request.Context(), store)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	path, err := fn(store, request.Context(), mine.ID.String(), *file)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{"path": path})
}

// ownShop returns the seller's shop, looking it up when not known yet.
func ownShop(ctx context.Context, store *Store) (*Shop, error) {
	if !store.MineLoaded() {
		if err := store.FetchMine(ctx); err != nil {
			return nil, err
		}
	}

	mine := store.Mine()
	if mine == nil {
		return nil, apperr.NotFound("Toko")
	}
	return mine, nil
}
