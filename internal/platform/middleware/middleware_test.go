// Copyright (c) 2026 NitikBatik. All rights reserved.

package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/apiclient"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/constants"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/ctxutil"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/middleware"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/sec"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/session"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/session/sessiontest"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/workspace"
)

// capture records the session seen downstream.
func capture(seen **session.Session) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*seen = ctxutil.GetSession(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func clearedCookie(recorder *httptest.ResponseRecorder, name string) bool {
	for _, cookie := range recorder.Result().Cookies() {
		if cookie.Name == name && cookie.MaxAge < 0 {
			return true
		}
	}
	return false
}

/*
TestSession covers valid, expired, revoked and garbage cookies.
*/
func TestSession(t *testing.T) {
	codec := session.NewCodec("", time.Hour, false)
	revocations := session.NewMemoryRevocations()

	valid := sessiontest.New(t, sec.RolePenjual, time.Hour)
	revoked := sessiontest.New(t, sec.RoleAdmin, time.Hour)
	require.NoError(t, revocations.Revoke(context.Background(), revoked.Token, revoked.ExpiresAt))

	expiredUser := &session.User{ID: "2", Role: sec.RolePembeli}
	expired := &session.Session{User: expiredUser, Token: sessiontest.Token(t, sec.RolePembeli, time.Now().Add(-time.Minute))}

	tests := []struct {
		name    string
		cookie  *http.Cookie
		want    bool
		cleared bool
	}{
		{"no_cookie", nil, false, false},
		{"valid", sessiontest.Cookie(t, codec, valid), true, false},
		{"expired", sessiontest.Cookie(t, codec, expired), false, true},
		{"revoked", sessiontest.Cookie(t, codec, revoked), false, true},
		{"garbage", &http.Cookie{Name: codec.Name(), Value: "%7Bnope"}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen *session.Session
			handler := middleware.Session(codec, revocations)(capture(&seen))

			request := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != nil {
				request.AddCookie(tt.cookie)
			}
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			assert.Equal(t, http.StatusOK, recorder.Code)
			assert.Equal(t, tt.want, seen != nil)
			assert.Equal(t, tt.cleared, clearedCookie(recorder, codec.Name()))
		})
	}
}

/*
TestWorkspace verifies a visitor cookie is minted once and the auth store is hydrated.
*/
func TestWorkspace(t *testing.T) {
	registry := workspace.NewRegistry(apiclient.New("http://backend.invalid", time.Second),
		session.NewMemoryRevocations(), time.Hour)
	seller := sessiontest.New(t, sec.RolePenjual, time.Hour)

	var got *workspace.Workspace
	handler := middleware.Workspace(registry, false)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = workspace.From(r.Context())
	}))

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request = request.WithContext(ctxutil.WithSession(request.Context(), seller))
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	require.NotNil(t, got)
	assert.Equal(t, sec.RolePenjual, got.Auth.Role())

	cookies := recorder.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, constants.VisitorCookieName, cookies[0].Name)
	assert.Equal(t, got.ID, cookies[0].Value)

	// Returning visitor, now logged out.
	request = httptest.NewRequest(http.MethodGet, "/", nil)
	request.AddCookie(cookies[0])
	recorder = httptest.NewRecorder()
	first := got
	handler.ServeHTTP(recorder, request)

	assert.Same(t, first, got)
	assert.False(t, got.Auth.IsAuthenticated())
	assert.Empty(t, recorder.Result().Cookies())
}

/*
TestRequestID verifies client ids are kept and missing ones generated.
*/
func TestRequestID(t *testing.T) {
	var seen string
	handler := middleware.RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = ctxutil.GetRequestID(r.Context())
	}))

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set(constants.HeaderXRequestID, "req-1")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	assert.Equal(t, "req-1", seen)
	assert.Equal(t, "req-1", recorder.Header().Get(constants.HeaderXRequestID))

	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.NotEqual(t, "req-1", seen)
}

/*
TestPanicRecovery verifies a panicking handler yields a 500 envelope.
*/
func TestPanicRecovery(t *testing.T) {
	handler := middleware.PanicRecovery()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "INTERNAL_ERROR")
}

type devConfig bool

func (d devConfig) IsDevelopment() bool { return bool(d) }

/*
TestCORS verifies production only echoes known origins.
*/
func TestCORS(t *testing.T) {
	handler := middleware.CORS(devConfig(false), "https://admin.example.com")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	tests := []struct {
		origin string
		want   string
	}{
		{"https://admin.example.com", "https://admin.example.com"},
		{"https://www.nitikbatik.id", "https://www.nitikbatik.id"},
		{"https://evil.example.com", ""},
	}

	for _, tt := range tests {
		request := httptest.NewRequest(http.MethodOptions, "/", nil)
		request.Header.Set(constants.HeaderOrigin, tt.origin)
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
		assert.Equal(t, tt.want, recorder.Header().Get("Access-Control-Allow-Origin"), tt.origin)
	}
}
