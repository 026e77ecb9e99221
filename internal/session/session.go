// Copyright (c) 2026 NitikBatik. All rights reserved.

/*
Package session models the persisted authentication state of a visitor.

A session is the {user, token} pair returned by the backend on login or
registration. It is persisted in a cookie shared with the browser, JSON-encoded
as {"state": {"user": ..., "token": ...}}.

# Validity

A session is valid only while now < expiry, where expiry is the "exp" claim of
the token. A token whose claims cannot be decoded has no expiry and is therefore
never valid. Decoding failures are not errors for the visitor: they are treated
as being logged out.
*/
package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/sec"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/pkg/convert"
)

// ErrInvalid is returned when a session cannot be established from a login response.
var ErrInvalid = errors.New("session: invalid credentials payload")

// # Domain Entities

// User is the authenticated identity embedded in a session.
type User struct {
	ID    convert.ID   `json:"id"`
	Name  string       `json:"name"`
	Email string       `json:"email"`
	Role  sec.UserRole `json:"role"`
}

// Session is the persisted {user, token} pair.
type Session struct {
	User  *User  `json:"user"`
	Token string `json:"token"`

	// ExpiresAt is derived from the token's exp claim, never persisted on its own.
	ExpiresAt time.Time `json:"-"`
}

// New builds a session from a login or registration response.
//
// The token must carry an expiry claim; a token without one could never be
// valid, so it is rejected here rather than at the next page load.
func New(user *User, token string) (*Session, error) {
	token = strings.TrimSpace(token)
	if user == nil || token == "" {
		return nil, ErrInvalid
	}

	expiresAt, err := sec.Expiry(token)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	return &Session{User: user, Token: token, ExpiresAt: expiresAt}, nil
}

// Valid reports whether the session authenticates its holder at instant now.
//
// A nil session, a missing user or token, or an expiry at or before now are all invalid.
func (s *Session) Valid(now time.Time) bool {
	if s == nil || s.User == nil || s.Token == "" || s.ExpiresAt.IsZero() {
		return false
	}
	return now.Before(s.ExpiresAt)
}

// Role returns the session's role, or "" for a nil session.
func (s *Session) Role() sec.UserRole {
	if s == nil || s.User == nil {
		return ""
	}
	return s.User.Role
}
