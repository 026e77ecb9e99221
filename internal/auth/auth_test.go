// Copyright (c) 2026 NitikBatik. All rights reserved.

package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/apiclient"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/auth"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/apperr"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/sec"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/session"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/session/sessiontest"
)

func newStore(t *testing.T, handler http.HandlerFunc) (*auth.Store, *session.MemoryRevocations) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	revocations := session.NewMemoryRevocations()
	return auth.NewStore(apiclient.New(server.URL, time.Second), revocations), revocations
}

func loginHandler(t *testing.T, token string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var creds auth.Credentials
		_ = json.NewDecoder(r.Body).Decode(&creds)
		if creds.Password != "rahasia123" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]any{"status": false, "message": "Password salah"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": true,
			"data": map[string]any{
				"user":  map[string]any{"id": 7, "name": "Sari", "email": "sari@nitikbatik.id", "role": "penjual"},
				"token": token,
			},
		})
	}
}

/*
TestLogin_Success verifies a login establishes a valid session.
*/
func TestLogin_Success(t *testing.T) {
	token := sessiontest.Token(t, sec.RolePenjual, time.Now().Add(time.Hour))
	store, _ := newStore(t, loginHandler(t, token))

	s, err := store.Login(context.Background(), auth.Credentials{Email: " sari@nitikbatik.id ", Password: "rahasia123"})

	require.NoError(t, err)
	assert.Equal(t, token, s.Token)
	assert.True(t, store.IsAuthenticated())
	assert.Equal(t, sec.RolePenjual, store.Role())
	assert.Equal(t, "7", store.Snapshot().User.ID.String())
}

/*
TestLogin_BadCredentials verifies a rejected login is not a session expiry.
*/
func TestLogin_BadCredentials(t *testing.T) {
	store, _ := newStore(t, loginHandler(t, "unused"))

	_, err := store.Login(context.Background(), auth.Credentials{Email: "sari@nitikbatik.id", Password: "salah"})

	assert.True(t, apperr.HasCode(err, apperr.CodeBadCredentials))
	assert.False(t, apperr.HasCode(err, apperr.CodeUnauthorized))
	assert.Equal(t, "Password salah", store.Snapshot().Error)
	assert.False(t, store.IsAuthenticated())
}

/*
TestLogin_TokenWithoutExpiry verifies a token lacking an exp claim is refused.
*/
func TestLogin_TokenWithoutExpiry(t *testing.T) {
	store, _ := newStore(t, loginHandler(t, "not-a-jwt"))

	_, err := store.Login(context.Background(), auth.Credentials{Email: "a@b.id", Password: "rahasia123"})

	assert.Error(t, err)
	assert.False(t, store.IsAuthenticated())
}

/*
TestRegister_Validation verifies registration rules are checked locally.
*/
func TestRegister_Validation(t *testing.T) {
	store, _ := newStore(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("validation failure must not reach the backend")
	})

	_, err := store.Register(context.Background(), auth.Registration{
		Name: "Sari", Email: "sari", Password: "pendek", Role: sec.RoleAdmin,
	})

	appError := apperr.As(err)
	require.NotNil(t, appError)
	fields := make([]string, 0, len(appError.Details))
	for _, d := range appError.Details {
		fields = append(fields, d.Field)
	}
	assert.ElementsMatch(t, []string{"password", "role", "email"}, fields)
}

/*
TestHydrate_ExpiredSessionIsAnonymous verifies an expired session never authenticates.
*/
func TestHydrate_ExpiredSessionIsAnonymous(t *testing.T) {
	store, _ := newStore(t, http.NotFound)

	store.Hydrate(sessiontest.New(t, sec.RoleAdmin, -time.Second))
	assert.False(t, store.IsAuthenticated())
	assert.Nil(t, store.Snapshot().User)

	store.Hydrate(sessiontest.New(t, sec.RoleAdmin, time.Hour))
	assert.True(t, store.IsAuthenticated())

	store.Hydrate(nil)
	assert.False(t, store.IsAuthenticated())
}

/*
TestLogout_RevokesToken verifies logout and forced logout revoke the token.
*/
func TestLogout_RevokesToken(t *testing.T) {
	store, revocations := newStore(t, http.NotFound)
	ctx := context.Background()

	s := sessiontest.New(t, sec.RolePembeli, time.Hour)
	store.Hydrate(s)
	store.Logout(ctx)

	revoked, err := revocations.IsRevoked(ctx, s.Token)
	require.NoError(t, err)
	assert.True(t, revoked)
	assert.False(t, store.IsAuthenticated())

	forced := sessiontest.New(t, sec.RoleAdmin, time.Hour)
	store.Hydrate(forced)
	store.ForceLogout(ctx, forced.Token)

	revoked, _ = revocations.IsRevoked(ctx, forced.Token)
	assert.True(t, revoked)
	assert.False(t, store.IsAuthenticated())
	assert.NotEmpty(t, store.Snapshot().Error)
}
