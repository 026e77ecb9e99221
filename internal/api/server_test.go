// Copyright (c) 2026 NitikBatik. All rights reserved.

package api_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/api"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/apiclient"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/classify"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/config"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/sec"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/session"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/session/sessiontest"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/workspace"
)

// backend fakes the REST API for one seller.
type backend struct {
	token  string
	reject atomic.Bool
}

func (b *backend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	write := func(body string) { _, _ = io.WriteString(w, body) }

	if r.URL.Path == "/login" {
		raw, _ := io.ReadAll(r.Body)
		if strings.Contains(string(raw), "salah") {
			w.WriteHeader(http.StatusUnauthorized)
			write(`{"status": false, "message": "Email atau password salah"}`)
			return
		}
		write(`{"status": true, "data": {"user": {"id": 5, "name": "Sari", "email": "sari@nitikbatik.id", "role": "penjual"}, "token": "` + b.token + `"}}`)
		return
	}

	if r.Header.Get("Authorization") != "" && b.reject.Load() {
		w.WriteHeader(http.StatusUnauthorized)
		write(`{"status": false, "message": "token expired"}`)
		return
	}

	switch r.URL.Path {
	case "/":
		write(`{"status": true}`)
	case "/stores/me":
		write(`{"status": true, "data": {"id": 7, "name": "Toko Sari"}}`)
	case "/stores/7/products":
		write(`{"status": true, "data": {"items": [{"id": 1, "name": "Parang"}], "pagination": {"page": 1, "limit": 12, "totalItems": 1, "totalPages": 1}}}`)
	case "/products/latest":
		write(`{"status": true, "data": [{"id": 1, "name": "Parang"}]}`)
	default:
		w.WriteHeader(http.StatusNotFound)
		write(`{"status": false, "message": "not found"}`)
	}
}

type harness struct {
	backend *backend
	server  *httptest.Server
	browser *http.Client
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	fake := &backend{token: sessiontest.Token(t, sec.RolePenjual, time.Now().Add(time.Hour))}
	upstream := httptest.NewServer(fake)
	t.Cleanup(upstream.Close)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{ServerPort: "0", Environment: "test"}

	client := apiclient.New(upstream.URL, time.Second, apiclient.WithUnauthorized(workspace.OnUnauthorized))
	revocations := session.NewMemoryRevocations()
	registry := workspace.NewRegistry(client, revocations, time.Hour)
	codec := session.NewCodec("", time.Hour, false)

	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{CheckBackend: client.Ping}, logger)
	handlers := api.NewHandlers(codec, classify.New(client), liveness, readiness)
	server := api.NewServer(ctx, cfg, logger, api.State{Codec: codec, Revocations: revocations, Registry: registry}, handlers)

	front := httptest.NewServer(server.Handler())
	t.Cleanup(front.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &harness{
		backend: fake,
		server:  front,
		browser: &http.Client{
			Jar: jar,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

func (h *harness) do(t *testing.T, method, path, body string) *http.Response {
	t.Helper()

	request, err := http.NewRequest(method, h.server.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	if body != "" {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := h.browser.Do(request)
	require.NoError(t, err)
	t.Cleanup(func() { _ = response.Body.Close() })
	return response
}

func data(t *testing.T, response *http.Response) map[string]any {
	t.Helper()
	var envelope struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.NewDecoder(response.Body).Decode(&envelope))
	return envelope.Data
}

/*
TestServer_SellerJourney walks a seller from login to a forced logout.
*/
func TestServer_SellerJourney(t *testing.T) {
	h := newHarness(t)

	// Anonymous visitors are sent to the login page.
	response := h.do(t, http.MethodGet, "/penjual/dashboard", "")
	assert.Equal(t, http.StatusFound, response.StatusCode)
	assert.Equal(t, "/login", response.Header.Get("Location"))

	// Login persists the session and points to the seller dashboard.
	response = h.do(t, http.MethodPost, "/login", `{"email": "sari@nitikbatik.id", "password": "rahasia"}`)
	require.Equal(t, http.StatusOK, response.StatusCode)
	assert.Equal(t, "/penjual/dashboard", data(t, response)["redirect"])

	response = h.do(t, http.MethodGet, "/penjual/dashboard", "")
	require.Equal(t, http.StatusOK, response.StatusCode)
	assert.Equal(t, true, data(t, response)["hasStore"])

	// Sellers are kept out of the admin dashboard.
	response = h.do(t, http.MethodGet, "/admin/dashboard", "")
	assert.Equal(t, http.StatusFound, response.StatusCode)
	assert.Equal(t, "/penjual/dashboard", response.Header.Get("Location"))

	response = h.do(t, http.MethodGet, "/penjual/dashboard/products", "")
	require.Equal(t, http.StatusOK, response.StatusCode)
	assert.Equal(t, true, data(t, response)["canManageProducts"])

	// The backend stops accepting the token.
	h.backend.reject.Store(true)

	response = h.do(t, http.MethodPost, "/penjual/dashboard/products/refresh", "")
	assert.Equal(t, http.StatusSeeOther, response.StatusCode)
	assert.Equal(t, "/login", response.Header.Get("Location"))

	// The same cookie no longer authenticates.
	h.backend.reject.Store(false)
	response = h.do(t, http.MethodGet, "/penjual/dashboard", "")
	assert.Equal(t, http.StatusFound, response.StatusCode)
	assert.Equal(t, "/login", response.Header.Get("Location"))
}

/*
TestServer_PublicPages verifies the landing page and probes need no session.
*/
func TestServer_PublicPages(t *testing.T) {
	h := newHarness(t)

	response := h.do(t, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, response.StatusCode)
	assert.Equal(t, true, data(t, response)["complete"])

	response = h.do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, response.StatusCode)

	response = h.do(t, http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusOK, response.StatusCode)

	response = h.do(t, http.MethodGet, "/stores/404", "")
	assert.Equal(t, http.StatusNotFound, response.StatusCode)
}

/*
TestServer_BadCredentials verifies a rejected login answers 401 instead of redirecting.
*/
func TestServer_BadCredentials(t *testing.T) {
	h := newHarness(t)

	response := h.do(t, http.MethodPost, "/login", `{"email": "", "password": ""}`)
	assert.Equal(t, http.StatusBadRequest, response.StatusCode)

	response = h.do(t, http.MethodPost, "/login", `{"email": "sari@nitikbatik.id", "password": "salah"}`)
	assert.Equal(t, http.StatusUnauthorized, response.StatusCode)
	assert.Empty(t, response.Header.Get("Location"))

	var envelope struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.NewDecoder(response.Body).Decode(&envelope))
	assert.Equal(t, "INVALID_CREDENTIALS", envelope.Code)
}
