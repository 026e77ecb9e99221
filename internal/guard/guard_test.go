// Copyright (c) 2026 NitikBatik. All rights reserved.

package guard_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/guard"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/sec"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/session"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/session/sessiontest"
)

/*
TestDecide covers the redirect table for every role and path family.
*/
func TestDecide(t *testing.T) {
	now := time.Now()
	admin := sessiontest.New(t, sec.RoleAdmin, time.Hour)
	seller := sessiontest.New(t, sec.RolePenjual, time.Hour)
	buyer := sessiontest.New(t, sec.RolePembeli, time.Hour)
	expired := sessiontest.New(t, sec.RoleAdmin, time.Hour)
	expired.ExpiresAt = now.Add(-time.Second)

	tests := []struct {
		name     string
		path     string
		session  *session.Session
		allowed  bool
		redirect string
	}{
		{"anonymous_admin", "/admin/dashboard", nil, false, "/login"},
		{"anonymous_admin_nested", "/admin/dashboard/users", nil, false, "/login"},
		{"expired_admin", "/admin/dashboard", expired, false, "/login"},
		{"seller_on_admin", "/admin/dashboard", seller, false, "/penjual/dashboard"},
		{"buyer_on_admin", "/admin/dashboard/articles", buyer, false, "/"},
		{"admin_on_admin", "/admin/dashboard/articles", admin, true, ""},
		{"admin_on_seller", "/penjual/dashboard", admin, false, "/admin/dashboard"},
		{"seller_on_seller", "/penjual/dashboard/products", seller, true, ""},
		{"anonymous_seller", "/penjual/dashboard/products", nil, false, "/login"},
		{"segment_boundary", "/admin/dashboards", nil, true, ""},
		{"public_page", "/products", nil, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := guard.Decide(tt.path, tt.session, now)
			assert.Equal(t, tt.allowed, decision.Allowed())
			assert.Equal(t, tt.redirect, decision.Redirect)
		})
	}
}

/*
TestMiddleware verifies refused requests are redirected and allowed ones pass.
*/
func TestMiddleware(t *testing.T) {
	seller := sessiontest.New(t, sec.RolePenjual, time.Hour)
	var current *session.Session

	handler := guard.Middleware(guard.Dashboards, func(*http.Request) *session.Session { return current })(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusTeapot) }),
	)

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/penjual/dashboard", nil))
	assert.Equal(t, http.StatusFound, recorder.Code)
	assert.Equal(t, "/login", recorder.Header().Get("Location"))

	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/admin/dashboard/articles", nil))
	assert.Equal(t, http.StatusSeeOther, recorder.Code)

	current = seller
	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/penjual/dashboard/products", nil))
	assert.Equal(t, http.StatusTeapot, recorder.Code)
}
