// Copyright (c) 2026 NitikBatik. All rights reserved.

/*
Package apperr defines the centralized error handling framework for the storefront.

It provides a rich error type that bridges the gap between failures talking to the
NitikBatik REST backend and the responses this server renders.

Architecture:

  - AppError: A struct containing machine-readable Code and user-friendly messages.
  - Taxonomy: Validation, Transport (no response), Upstream (backend answered with an
    error status) and Setup (the request could not be built).
  - Mapping: Explicit mapping from AppError to standard HTTP Status Codes.

Every error that leaves a store should be wrapped as an [AppError] so that the
store-level error banner and page responses stay consistent.
*/
package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/constants"
)

// # Error Codes

const (
	CodeValidation       = "VALIDATION_ERROR"
	CodeNotFound         = "NOT_FOUND"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeBadCredentials   = "INVALID_CREDENTIALS"
	CodeForbidden        = "FORBIDDEN"
	CodeConflict         = "CONFLICT"
	CodeRateLimited      = "RATE_LIMITED"
	CodeTransport        = "TRANSPORT_ERROR"
	CodeUpstreamRejected = "UPSTREAM_REJECTED"
	CodeUpstream         = "UPSTREAM_ERROR"
	CodeSetup            = "REQUEST_SETUP"
	CodeInternal         = "INTERNAL_ERROR"
)

// AppError is the canonical error type of the storefront.
//
// It carries an HTTP status code, a machine-readable code, a client-safe
// message, and an optional slice of field-level validation errors.
//
// # Security
//
// The Cause field is for server-side logging only and is never sent to clients.
type AppError struct {
	// Code is a machine-readable error identifier (e.g. "NOT_FOUND", "TRANSPORT_ERROR").
	Code string `json:"code"`
	// Message is a human-readable description safe to return to the client.
	Message string `json:"error"`
	// HTTPStatus is the HTTP response status code.
	HTTPStatus int `json:"-"`
	// Cause is the underlying error, used for server-side logging only.
	Cause error `json:"-"`
	// Details holds per-field validation errors for VALIDATION_ERROR responses.
	Details []FieldError `json:"details,omitempty"`
}

// FieldError represents a single field-level validation failure.
type FieldError struct {
	// Field is the JSON field name that failed validation.
	Field string `json:"field"`
	// Message is the human-readable description of the failure.
	Message string `json:"message"`
}

// Error implements the error interface. It returns the client-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// # Client Errors (4xx)

// NotFound creates a 404 [AppError] for a named resource.
//
// Example:
//
//	apperr.NotFound("Produk") // Returns "Produk not found"
func NotFound(resource string) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    resource + " not found",
		HTTPStatus: http.StatusNotFound,
	}
}

// Unauthorized creates a 401 [AppError].
func Unauthorized(msg string) *AppError {
	return &AppError{
		Code:       CodeUnauthorized,
		Message:    msg,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// BadCredentials creates a 401 [AppError] for a rejected login.
//
// It is distinct from [Unauthorized]: a failed login must not force a logout redirect.
func BadCredentials(msg string) *AppError {
	return &AppError{
		Code:       CodeBadCredentials,
		Message:    fallback(strings.TrimSpace(msg), "Email atau password salah"),
		HTTPStatus: http.StatusUnauthorized,
	}
}

// Forbidden creates a 403 [AppError].
func Forbidden(msg string) *AppError {
	return &AppError{
		Code:       CodeForbidden,
		Message:    msg,
		HTTPStatus: http.StatusForbidden,
	}
}

// Conflict creates a 409 [AppError] for duplicate or unique-constraint violations.
func Conflict(msg string) *AppError {
	return &AppError{
		Code:       CodeConflict,
		Message:    msg,
		HTTPStatus: http.StatusConflict,
	}
}

// ValidationError creates a 400 [AppError] with optional per-field details.
// Validation errors are produced locally and never reach the backend.
func ValidationError(msg string, details ...FieldError) *AppError {
	return &AppError{
		Code:       CodeValidation,
		Message:    msg,
		HTTPStatus: http.StatusBadRequest,
		Details:    details,
	}
}

// RateLimited creates a 429 [AppError].
func RateLimited(retryAfterSeconds int) *AppError {
	return &AppError{
		Code:       CodeRateLimited,
		Message:    fmt.Sprintf("Too many requests. Try again in %ds.", retryAfterSeconds),
		HTTPStatus: http.StatusTooManyRequests,
	}
}

// # Upstream Errors

// Transport creates an [AppError] for a request that never received a response
// (network down, DNS failure, timeout).
func Transport(cause error) *AppError {
	return &AppError{
		Code:       CodeTransport,
		Message:    constants.GenericTransportMessage,
		HTTPStatus: http.StatusBadGateway,
		Cause:      cause,
	}
}

// Setup creates an [AppError] for a request that could not be constructed.
// It always indicates a programming error.
func Setup(cause error) *AppError {
	return &AppError{
		Code:       CodeSetup,
		Message:    "An unexpected error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// FromStatus classifies a backend error response.
//
// The message reported by the backend is preferred; when it is blank a generic
// fallback is used instead.
func FromStatus(status int, message string) *AppError {
	message = strings.TrimSpace(message)

	var appError *AppError
	switch {
	case status == http.StatusUnauthorized:
		appError = Unauthorized(fallback(message, "Sesi Anda telah berakhir, silakan login kembali"))
	case status == http.StatusForbidden:
		appError = Forbidden(fallback(message, "Anda tidak memiliki akses"))
	case status == http.StatusNotFound:
		appError = &AppError{
			Code:       CodeNotFound,
			Message:    fallback(message, "Data tidak ditemukan"),
			HTTPStatus: http.StatusNotFound,
		}
	case status >= 400 && status < 500:
		appError = &AppError{
			Code:       CodeUpstreamRejected,
			Message:    fallback(message, "Permintaan tidak valid"),
			HTTPStatus: status,
		}
	default:
		appError = &AppError{
			Code:       CodeUpstream,
			Message:    fallback(message, constants.GenericServerMessage),
			HTTPStatus: http.StatusBadGateway,
		}
	}

	appError.Cause = fmt.Errorf("upstream responded with status %d", status)
	return appError
}

// Rejected creates an [AppError] for a 2xx response whose envelope reports status:false.
func Rejected(message string) *AppError {
	return &AppError{
		Code:       CodeUpstreamRejected,
		Message:    fallback(strings.TrimSpace(message), "Permintaan ditolak oleh server"),
		HTTPStatus: http.StatusUnprocessableEntity,
		Cause:      errors.New("upstream envelope reported status false"),
	}
}

// BadResponse creates an [AppError] for a response body that could not be decoded.
func BadResponse(cause error) *AppError {
	return &AppError{
		Code:       CodeUpstream,
		Message:    constants.GenericServerMessage,
		HTTPStatus: http.StatusBadGateway,
		Cause:      cause,
	}
}

// # Server Errors (5xx)

// Internal creates a 500 [AppError] wrapping an unexpected server-side error.
// The cause is stored for logging but is never sent to the client.
func Internal(cause error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Message:    "An unexpected error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// # Helpers

// IsAppError reports whether err (or any error in its chain) is an [*AppError].
func IsAppError(err error) bool {
	var ae *AppError
	return errors.As(err, &ae)
}

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// HasCode reports whether err carries an [*AppError] with the given code.
func HasCode(err error, code string) bool {
	ae := As(err)
	return ae != nil && ae.Code == code
}

// Message returns the client-safe text of err for store banners.
func Message(err error) string {
	if err == nil {
		return ""
	}
	if ae := As(err); ae != nil {
		return ae.Message
	}
	return constants.GenericServerMessage
}

func fallback(message, def string) string {
	if message == "" {
		return def
	}
	return message
}
