// Copyright (c) 2026 NitikBatik. All rights reserved.

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the router's parameter extraction, body decoding and
multipart file handling, ensuring consistent error handling.
*/
package requestutil

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/apiclient"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/apperr"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/constants"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/ctxutil"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/validate"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/session"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: any (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target any) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
RequiredSession ensures the request carries a session.

Returns:
  - *session.Session: The visitor session
  - error: apperr.Unauthorized if the request is anonymous
*/
func RequiredSession(request *http.Request) (*session.Session, error) {
	s := ctxutil.GetSession(request.Context())
	if s == nil {
		return nil, apperr.Unauthorized("Silakan login terlebih dahulu")
	}
	return s, nil
}

// # Multipart

// IsMultipart reports whether the body is multipart/form-data.
func IsMultipart(request *http.Request) bool {
	return strings.HasPrefix(request.Header.Get("Content-Type"), "multipart/form-data")
}

/*
ParseMultipart parses a multipart body bounded by the upload limit.

Returns:
  - error: validate.ErrInvalidJSON-like validation error on malformed bodies
*/
func ParseMultipart(request *http.Request) error {
	request.Body = http.MaxBytesReader(nil, request.Body, constants.MaxUploadBytes)
	if err := request.ParseMultipartForm(constants.MaxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return apperr.ValidationError("Ukuran file terlalu besar")
		}
		return apperr.ValidationError("Form tidak valid")
	}
	return nil
}

// File returns the first file of a parsed multipart field, or nil when absent.
//
// The returned body stays valid until the request ends.
func File(request *http.Request, field string) *apiclient.File {
	if request.MultipartForm == nil {
		return nil
	}
	headers := request.MultipartForm.File[field]
	if len(headers) == 0 {
		return nil
	}
	f, err := headers[0].Open()
	if err != nil {
		return nil
	}
	return &apiclient.File{Name: headers[0].Filename, Body: f}
}

// Files returns every file of a parsed multipart field.
func Files(request *http.Request, field string) []apiclient.File {
	if request.MultipartForm == nil {
		return nil
	}
	var files []apiclient.File
	for _, header := range request.MultipartForm.File[field] {
		f, err := header.Open()
		if err != nil {
			continue
		}
		files = append(files, apiclient.File{Name: header.Filename, Body: f})
	}
	return files
}
