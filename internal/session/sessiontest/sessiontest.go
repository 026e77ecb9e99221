// Copyright (c) 2026 NitikBatik. All rights reserved.

// Package sessiontest mints backend-style tokens and session cookies for tests.
package sessiontest

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/sec"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/session"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/pkg/convert"
)

// Token returns an HS256 token expiring at exp, signed with a key this server never sees.
func Token(t testing.TB, role sec.UserRole, exp time.Time) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   1,
		"role": string(role),
		"exp":  exp.Unix(),
	}).SignedString([]byte("backend-only-secret"))
	if err != nil {
		t.Fatalf("sessiontest: sign token: %v", err)
	}

	return token
}

// New returns a session for the given role that stays valid for ttl.
func New(t testing.TB, role sec.UserRole, ttl time.Duration) *session.Session {
	t.Helper()

	user := &session.User{ID: convert.ID("1"), Name: "Sari", Email: "sari@nitikbatik.id", Role: role}
	s, err := session.New(user, Token(t, role, time.Now().Add(ttl)))
	if err != nil {
		t.Fatalf("sessiontest: new session: %v", err)
	}

	return s
}

// Cookie encodes a session as the request cookie a browser would send.
func Cookie(t testing.TB, codec *session.Codec, s *session.Session) *http.Cookie {
	t.Helper()

	value, err := codec.Encode(s)
	if err != nil {
		t.Fatalf("sessiontest: encode: %v", err)
	}

	return &http.Cookie{Name: codec.Name(), Value: value}
}
