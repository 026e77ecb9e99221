// Copyright (c) 2026 NitikBatik. All rights reserved.

package sec_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/sec"
)

func signed(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-secret"))
	require.NoError(t, err)
	return token
}

/*
TestExpiry reads the exp claim without knowing the signing key.
*/
func TestExpiry(t *testing.T) {
	exp := time.Now().Add(2 * time.Hour).Truncate(time.Second)
	token := signed(t, jwt.MapClaims{"id": 7, "role": "penjual", "exp": exp.Unix()})

	got, err := sec.Expiry(token)
	require.NoError(t, err)
	assert.True(t, exp.Equal(got))

	claims, err := sec.ReadClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "penjual", claims.Role)
}

/*
TestExpiry_Failures covers malformed tokens and missing claims.
*/
func TestExpiry_Failures(t *testing.T) {
	_, err := sec.Expiry("not-a-token")
	assert.Error(t, err)

	_, err = sec.Expiry(signed(t, jwt.MapClaims{"role": "admin"}))
	assert.ErrorIs(t, err, sec.ErrNoExpiry)
}

/*
TestUserRole_Home verifies each role's landing page.
*/
func TestUserRole_Home(t *testing.T) {
	assert.Equal(t, "/admin/dashboard", sec.RoleAdmin.Home())
	assert.Equal(t, "/penjual/dashboard", sec.RolePenjual.Home())
	assert.Equal(t, "/", sec.RolePembeli.Home())
	assert.Equal(t, "/", sec.UserRole("unknown").Home())
}

/*
TestHashToken is stable and hides the raw value.
*/
func TestHashToken(t *testing.T) {
	assert.Equal(t, sec.HashToken("abc"), sec.HashToken("abc"))
	assert.NotEqual(t, sec.HashToken("abc"), sec.HashToken("abd"))
	assert.Len(t, sec.HashToken("abc"), 64)
}
