// Copyright (c) 2026 NitikBatik. All rights reserved.

/*
Package apiclient is the single point of HTTP access to the NitikBatik REST backend.

Every request carries the visitor's raw token in the Authorization header (the
backend does not use the Bearer scheme). Responses are decoded from the backend
envelope {status, data, message} into a strict result: either the caller's value
is filled in, or an [*apperr.AppError] is returned.

# Error classification

  - The backend answered with an error status: [apperr.FromStatus].
  - No response was received (network, timeout): [apperr.Transport].
  - The request could not be built: [apperr.Setup].

A 401 additionally triggers the OnUnauthorized hook, which clears the visitor's
session regardless of how the caller handles the error.
*/
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/apperr"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/constants"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/ctxutil"
)

// maxErrorBody bounds how much of an error response is read for its message.
const maxErrorBody = 64 << 10

// UnauthorizedFunc is invoked when the backend rejects the visitor's token.
type UnauthorizedFunc func(ctx context.Context, token string)

// Client talks to the REST backend.
type Client struct {
	baseURL        string
	http           *http.Client
	onUnauthorized UnauthorizedFunc
}

// Option configures a [Client].
type Option func(*Client)

// WithUnauthorized registers the forced-logout hook.
func WithUnauthorized(fn UnauthorizedFunc) Option {
	return func(client *Client) { client.onUnauthorized = fn }
}

// New creates a client for the backend rooted at baseURL.
//
// # Parameters
//   - baseURL: e.g. "http://localhost:8081/api".
//   - timeout: fixed per-request timeout; non-positive values use the default.
func New(baseURL string, timeout time.Duration, options ...Option) *Client {
	if baseURL == "" {
		baseURL = constants.DefaultAPIBaseURL
	}
	if timeout <= 0 {
		timeout = constants.DefaultAPITimeout
	}

	client := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
	for _, option := range options {
		option(client)
	}

	return client
}

// # Requests

// Get issues a GET with the given query and decodes the envelope data into out.
func (client *Client) Get(context context.Context, path string, query url.Values, out any) error {
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	return client.Do(context, http.MethodGet, path, nil, out)
}

/*
Do issues a JSON request and decodes the envelope data into out.

Parameters:
  - context: request context; carries the visitor session
  - method: HTTP method
  - path: path relative to the base URL, may include a query string
  - body: JSON-encodable payload or nil; a [*Form] is sent as multipart
  - out: pointer to the destination value, or nil to discard data

Returns:
  - error: an [*apperr.AppError] describing the failure
*/
func (client *Client) Do(context context.Context, method, path string, body, out any) error {
	if form, ok := body.(*Form); ok {
		return client.send(context, method, path, form, out)
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return apperr.Setup(fmt.Errorf("encode %s %s: %w", method, path, err))
		}
		reader = bytes.NewReader(payload)
	}

	request, err := client.newRequest(context, method, path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	return client.execute(request, out)
}

// Total reads how many items a list endpoint holds, without keeping any of them.
func (client *Client) Total(context context.Context, path string) (int, error) {
	var page Page[json.RawMessage]
	query := url.Values{"page": {"1"}, "limit": {"1"}}
	if err := client.Get(context, path, query, &page); err != nil {
		return 0, err
	}
	return page.Pagination.TotalItems, nil
}

// Ping checks that the backend answers at all. Any HTTP status counts as reachable.
func (client *Client) Ping(context context.Context) error {
	request, err := http.NewRequestWithContext(context, http.MethodGet, client.baseURL, nil)
	if err != nil {
		return apperr.Setup(err)
	}

	response, err := client.http.Do(request)
	if err != nil {
		return apperr.Transport(err)
	}
	_ = response.Body.Close()

	return nil
}

func (client *Client) newRequest(context context.Context, method, path string, body io.Reader) (*http.Request, error) {
	request, err := http.NewRequestWithContext(context, method, client.url(path), body)
	if err != nil {
		return nil, apperr.Setup(fmt.Errorf("build %s %s: %w", method, path, err))
	}

	request.Header.Set("Accept", "application/json")
	if token := ctxutil.Token(context); token != "" {
		request.Header.Set(constants.HeaderAuthorization, token)
	}
	if id := ctxutil.GetRequestID(context); id != "" {
		request.Header.Set(constants.HeaderXRequestID, id)
	}

	return request, nil
}

func (client *Client) url(path string) string {
	return client.baseURL + "/" + strings.TrimLeft(path, "/")
}

// execute sends the request and classifies the outcome.
func (client *Client) execute(request *http.Request, out any) error {
	ctx := request.Context()
	logger := ctxutil.GetLogger(ctx)
	start := time.Now()

	response, err := client.http.Do(request)
	if err != nil {
		logger.WarnContext(ctx, "upstream_unreachable",
			slog.String("method", request.Method),
			slog.String("path", request.URL.Path),
			slog.String("error", err.Error()),
		)
		return apperr.Transport(err)
	}
	defer response.Body.Close()

	logger.DebugContext(ctx, "upstream_call",
		slog.String("method", request.Method),
		slog.String("path", request.URL.Path),
		slog.Int("status", response.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		appError := apperr.FromStatus(response.StatusCode, errorMessage(response.Body))
		if IsUnauthorized(appError) && client.onUnauthorized != nil {
			client.onUnauthorized(ctx, request.Header.Get(constants.HeaderAuthorization))
		}
		return appError
	}

	return decode(response.Body, out)
}

// errorMessage extracts the backend's message from an error body, if any.
func errorMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return ""
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return ""
	}

	return env.text()
}

// IsUnauthorized reports whether err is a backend rejection of the visitor's token.
func IsUnauthorized(err error) bool {
	return apperr.HasCode(err, apperr.CodeUnauthorized)
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	return apperr.HasCode(err, apperr.CodeNotFound)
}

// IsTransport reports whether err means no response was received.
func IsTransport(err error) bool {
	var appError *apperr.AppError
	return errors.As(err, &appError) && appError.Code == apperr.CodeTransport
}
