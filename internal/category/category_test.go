// Copyright (c) 2026 NitikBatik. All rights reserved.

package category_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/apiclient"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/category"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/ctxutil"
)

func newStore(t *testing.T, handler http.HandlerFunc) *category.Store {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return category.NewStore(apiclient.New(server.URL, time.Second))
}

/*
TestAuthoritative_Sources verifies which category set wins.
*/
func TestAuthoritative_Sources(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantLive bool
		wantIDs  []string
	}{
		{"plain_array", 200, `{"status": true, "data": [{"id": 10, "name": "Tenun"}]}`, true, []string{"10"}},
		{"paged", 200, `{"status": true, "data": {"items": [{"id": 11, "name": "Lurik"}], "pagination": {"page": 1}}}`, true, []string{"11"}},
		{"empty", 200, `{"status": true, "data": []}`, false, []string{"1", "2", "3", "4", "5", "6"}},
		{"null", 200, `{"status": true, "data": null}`, false, []string{"1", "2", "3", "4", "5", "6"}},
		{"backend_down", 503, ``, false, []string{"1", "2", "3", "4", "5", "6"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newStore(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			items, live := store.Authoritative(context.Background())

			assert.Equal(t, tt.wantLive, live)
			assert.Len(t, items, len(tt.wantIDs))
			assert.Equal(t, tt.wantIDs, store.Allowed(context.Background()))
		})
	}
}

/*
TestAuthoritative_LoadedOnce verifies a loaded set is reused without refetching.
*/
func TestAuthoritative_LoadedOnce(t *testing.T) {
	var calls atomic.Int32
	store := newStore(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = io.WriteString(w, `{"status": true, "data": [{"id": 1, "name": "Batik Tulis"}]}`)
	})

	store.Authoritative(context.Background())
	store.Authoritative(context.Background())

	assert.Equal(t, int32(1), calls.Load())
	assert.Len(t, store.Snapshot().Items, 1)
}

/*
TestAuthoritative_FailureOncePerPageLoad verifies an unreachable category endpoint
is asked once per page load, and again on the next one.
*/
func TestAuthoritative_FailureOncePerPageLoad(t *testing.T) {
	var calls atomic.Int32
	store := newStore(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	first := ctxutil.WithRequestID(context.Background(), "r1")
	for range 3 {
		items, live := store.Authoritative(first)
		assert.False(t, live)
		assert.Equal(t, category.Fallback, items)
	}
	assert.Equal(t, int32(1), calls.Load())

	store.Authoritative(ctxutil.WithRequestID(context.Background(), "r2"))
	assert.Equal(t, int32(2), calls.Load())
}
