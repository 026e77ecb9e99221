// Copyright (c) 2026 NitikBatik. All rights reserved.

package article_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/apiclient"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/article"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/apperr"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/pkg/pagination"
)

func newStore(t *testing.T, handler http.HandlerFunc) *article.Store {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return article.NewStore(apiclient.New(server.URL, time.Second))
}

/*
TestArticle_FieldNormalization verifies both timestamp spellings and image field names decode.
*/
func TestArticle_FieldNormalization(t *testing.T) {
	var items []article.Article
	raw := `[
		{"id": 1, "title": "A", "created_At": "2025-01-02T03:04:05Z", "image_url": "/a.jpg"},
		{"id": "2", "title": "B", "createdAt": "2025-02-03 04:05:06", "imageUrl": "/b.jpg"}
	]`
	require.NoError(t, json.Unmarshal([]byte(raw), &items))

	assert.Equal(t, 2025, items[0].CreatedAt.Year())
	assert.Equal(t, time.February, items[1].CreatedAt.Month())
	assert.Equal(t, "/a.jpg", items[0].ImageURL)
	assert.Equal(t, "/b.jpg", items[1].ImageURL)
	assert.Equal(t, "2", items[1].ID.String())
}

/*
TestArticle_SanitizeAndExcerpt verifies script removal and excerpt derivation.
*/
func TestArticle_SanitizeAndExcerpt(t *testing.T) {
	var a article.Article
	raw := `{"title": "Sejarah Batik", "description": "<p>Batik &amp; budaya <b>Jawa</b></p><script>alert(1)</script>"}`
	require.NoError(t, json.Unmarshal([]byte(raw), &a))

	assert.NotContains(t, a.Description, "<script>")
	assert.Contains(t, a.Description, "<b>Jawa</b>")
	assert.Equal(t, "Batik & budaya Jawa", a.Excerpt)

	long := "<p>" + strings.Repeat("kain ", 100) + "</p>"
	excerpt := article.Excerpt(long)
	assert.True(t, strings.HasSuffix(excerpt, "…"))
	assert.LessOrEqual(t, len([]rune(excerpt)), article.ExcerptLength+1)
}

/*
TestStore_CreateDerivesSlug verifies the slug sent upstream is derived from the title.
*/
func TestStore_CreateDerivesSlug(t *testing.T) {
	var gotSlug, gotDescription string
	store := newStore(t, func(w http.ResponseWriter, r *http.Request) {
		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			return
		}
		gotSlug = r.FormValue("slug")
		gotDescription = r.FormValue("description")
		_, _ = io.WriteString(w, `{"status": true, "data": {"id": 9, "title": "Batik Tulis Jawa!", "slug": "batik-tulis-jawa"}}`)
	})

	created, err := store.Create(context.Background(), article.Input{
		Title:       "Batik Tulis Jawa!",
		Description: `<p onclick="x()">Isi</p>`,
	})

	require.NoError(t, err)
	assert.Equal(t, "batik-tulis-jawa", gotSlug)
	assert.Equal(t, "<p>Isi</p>", gotDescription)
	assert.Equal(t, "9", created.ID.String())
}

/*
TestStore_CreateValidationStaysLocal verifies required fields are checked before any request.
*/
func TestStore_CreateValidationStaysLocal(t *testing.T) {
	var calls atomic.Int32
	store := newStore(t, func(w http.ResponseWriter, r *http.Request) { calls.Add(1) })

	_, err := store.Create(context.Background(), article.Input{Title: "Judul", Description: "<p> </p>"})

	assert.True(t, apperr.HasCode(err, apperr.CodeValidation))
	assert.Zero(t, calls.Load())
	assert.NotEmpty(t, store.Snapshot().Error)
}

/*
TestStore_FetchListFailureKeepsItems verifies stale-but-available list state.
*/
func TestStore_FetchListFailureKeepsItems(t *testing.T) {
	var fail atomic.Bool
	store := newStore(t, func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		assert.Equal(t, "kawung", r.URL.Query().Get("search"))
		_, _ = io.WriteString(w, `{"status": true, "data": {"items": [{"title": "A"}, {"title": "B"}], "pagination": {"page": 1, "limit": 12, "totalItems": 2, "totalPages": 1}}}`)
	})

	params := pagination.Params{Page: 1, Limit: 12, Search: "kawung"}
	require.NoError(t, store.FetchList(context.Background(), params))

	fail.Store(true)
	assert.Error(t, store.FetchList(context.Background(), params))

	snapshot := store.Snapshot()
	assert.Len(t, snapshot.Items, 2)
	assert.Equal(t, "Terjadi kesalahan pada server", snapshot.Error)

	store.ClearError()
	assert.Empty(t, store.Snapshot().Error)
}

/*
TestStore_FetchOneNotFound verifies a missing article clears the current item.
*/
func TestStore_FetchOneNotFound(t *testing.T) {
	store := newStore(t, func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/ada") {
			_, _ = io.WriteString(w, `{"status": true, "data": {"title": "Ada", "slug": "ada"}}`)
			return
		}
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"status": false, "message": "Artikel tidak ditemukan"}`)
	})

	require.NoError(t, store.FetchOne(context.Background(), "ada"))
	require.NotNil(t, store.Snapshot().Current)

	err := store.FetchOne(context.Background(), "hilang")
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
	assert.Nil(t, store.Snapshot().Current)
	assert.Equal(t, "Artikel tidak ditemukan", store.Snapshot().Error)
}
