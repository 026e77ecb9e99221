// Copyright (c) 2026 NitikBatik. All rights reserved.

// Package classify asks the backend to recognize the batik motif of a photo.
//
// Sellers use the suggestion to pick a category when listing a product.
package classify

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/apiclient"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/apperr"
	requestutil "github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/request"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/respond"
)

// Result is a classification outcome.
type Result struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// Classifier sends images to the backend's classification endpoint.
type Classifier struct {
	client *apiclient.Client
}

// New creates a classifier.
func New(client *apiclient.Client) *Classifier {
	return &Classifier{client: client}
}

// Classify uploads an image under the "image" field.
func (classifier *Classifier) Classify(context context.Context, file apiclient.File) (*Result, error) {
	var result Result
	if err := classifier.client.Upload(context, "/classify", file, "image", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// RegisterRoutes registers POST / on router.
func (classifier *Classifier) RegisterRoutes(router chi.Router) {
	router.Post("/", classifier.handle)
}

func (classifier *Classifier) handle(writer http.ResponseWriter, request *http.Request) {
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

	result, err := classifier.Classify(request.Context(), *file)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}
