// Copyright (c) 2026 NitikBatik. All rights reserved.

// Package respond provides HTTP response helpers used by all page handlers.
//
// # Architecture
//
// This package centralizes the presentation logic for HTTP responses.
// Every view model (success or error) follows the same JSON envelope so that
// any renderer can consume it without knowing which store produced it.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/apperr"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/constants"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/ctxutil"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/pkg/pagination"
)

// SuccessEnvelope is the JSON envelope for successful single-resource responses.
type SuccessEnvelope struct {
	Data any `json:"data"`
}

// PaginatedEnvelope is the JSON envelope for paginated list responses.
type PaginatedEnvelope struct {
	Data any               `json:"data"`
	Meta pagination.Cursor `json:"meta"`
}

// ErrorEnvelope is the JSON envelope for error responses.
type ErrorEnvelope struct {
	Error   string              `json:"error"`
	Code    string              `json:"code"`
	Details []apperr.FieldError `json:"details,omitempty"`
}

// JSON writes a JSON response with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload any) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// OK writes a 200 OK response with data wrapped in the standard success envelope.
func OK(writer http.ResponseWriter, data any) {
	JSON(writer, http.StatusOK, SuccessEnvelope{Data: data})
}

// Created writes a 201 Created response with data wrapped in the standard success envelope.
func Created(writer http.ResponseWriter, data any) {
	JSON(writer, http.StatusCreated, SuccessEnvelope{Data: data})
}

// Paginated writes a 200 OK response with paginated data and the cursor as metadata.
func Paginated(writer http.ResponseWriter, data any, cursor pagination.Cursor) {
	JSON(writer, http.StatusOK, PaginatedEnvelope{Data: data, Meta: cursor})
}

// NoContent writes a 204 No Content response.
func NoContent(writer http.ResponseWriter) {
	writer.WriteHeader(http.StatusNoContent)
}

// View writes a page view model built from store state.
//
// Fetch failures are already part of the view model (the store's error banner),
// so only a lost session, a denied access or a missing resource changes the response.
func View(writer http.ResponseWriter, request *http.Request, err error, data any) {
	switch {
	case apperr.HasCode(err, apperr.CodeUnauthorized),
		apperr.HasCode(err, apperr.CodeForbidden),
		apperr.HasCode(err, apperr.CodeNotFound):
		Error(writer, request, err)
	default:
		OK(writer, data)
	}
}

// Redirect sends the visitor elsewhere.
//
// GET and HEAD use 302; other methods use 303 so the browser follows with a GET.
func Redirect(writer http.ResponseWriter, request *http.Request, location string) {
	status := http.StatusSeeOther
	if request.Method == http.MethodGet || request.Method == http.MethodHead {
		status = http.StatusFound
	}
	http.Redirect(writer, request, location, status)
}

// Error converts any Go error into a standardized JSON error response.
//
// An [apperr.CodeUnauthorized] error means the session is gone (never issued, or
// rejected by the backend): the visitor is sent to the login page instead.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	if apperr.HasCode(err, apperr.CodeUnauthorized) {
		Redirect(writer, request, constants.RouteLogin)
		return
	}

	ctx := request.Context()
	logger := ctxutil.GetLogger(ctx)

	var appError *apperr.AppError
	if !errors.As(err, &appError) {
		// Unexpected internal error: log full details but hide them from the client.
		logger.ErrorContext(ctx, "unhandled_error_swallowed",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.GetRequestID(ctx)),
		)
		appError = apperr.Internal(err)
	}

	if appError.HTTPStatus >= 500 {
		logger.ErrorContext(ctx, "page_server_error",
			slog.String("code", appError.Code),
			slog.String("request_id", ctxutil.GetRequestID(ctx)),
			slog.Any("cause", appError.Cause),
		)
	}

	if appError.HTTPStatus == http.StatusTooManyRequests {
		writer.Header().Set("Retry-After", "1")
	}

	JSON(writer, appError.HTTPStatus, ErrorEnvelope{
		Error:   appError.Message,
		Code:    appError.Code,
		Details: appError.Details,
	})
}

// Health writes the readiness report.
func Health(writer http.ResponseWriter, healthy bool, checks map[string]string) {
	status, label := http.StatusOK, "ok"
	if !healthy {
		status, label = http.StatusServiceUnavailable, "degraded"
	}
	JSON(writer, status, map[string]any{
		constants.FieldStatus: label,
		constants.FieldChecks: checks,
	})
}
