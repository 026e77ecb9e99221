// Copyright (c) 2026 NitikBatik. All rights reserved.

/*
Package auth holds the authentication state of one visitor.

The [Store] mirrors the persisted session: it is hydrated from the session cookie
on every request and replaced on login or registration. Logging out, or being
logged out by the backend, revokes the token so the cookie stops authenticating
even before it expires.
*/
package auth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/apiclient"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/apperr"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/constants"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/ctxutil"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/sec"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/validate"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/session"
)

// # Inputs

// Credentials is a login form.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is a sign-up form. Role is "penjual" or "pembeli".
type Registration struct {
	Name     string       `json:"name"`
	Email    string       `json:"email"`
	Password string       `json:"password"`
	Role     sec.UserRole `json:"role"`
}

// Snapshot is the view of the authentication state.
type Snapshot struct {
	User            *session.User `json:"user"`
	IsAuthenticated bool          `json:"isAuthenticated"`
	Loading         bool          `json:"loading"`
	Error           string        `json:"error,omitempty"`
}

// Store is the authentication state of one visitor.
type Store struct {
	client      *apiclient.Client
	revocations session.Revocations
	now         func() time.Time

	mu      sync.RWMutex
	current *session.Session
	loading bool
	err     string
}

// NewStore creates a logged-out store.
func NewStore(client *apiclient.Client, revocations session.Revocations) *Store {
	return &Store{client: client, revocations: revocations, now: time.Now}
}

// # Reads

// Session returns the current session if it is still valid, else nil.
func (store *Store) Session() *session.Session {
	store.mu.RLock()
	defer store.mu.RUnlock()

	if !store.current.Valid(store.now()) {
		return nil
	}
	return store.current
}

// IsAuthenticated reports whether a valid session is held.
func (store *Store) IsAuthenticated() bool { return store.Session() != nil }

// Role returns the role of the valid session, or "".
func (store *Store) Role() sec.UserRole { return store.Session().Role() }

// Snapshot returns the view of the state.
func (store *Store) Snapshot() Snapshot {
	s := store.Session()

	store.mu.RLock()
	defer store.mu.RUnlock()

	snapshot := Snapshot{Loading: store.loading, Error: store.err, IsAuthenticated: s != nil}
	if s != nil {
		snapshot.User = s.User
	}
	return snapshot
}

// ClearError dismisses the error banner.
func (store *Store) ClearError() {
	store.mu.Lock()
	store.err = ""
	store.mu.Unlock()
}

// # Lifecycle

// Hydrate replaces the state with the session read from the cookie.
// A nil session logs the store out.
func (store *Store) Hydrate(s *session.Session) {
	store.mu.Lock()
	store.current = s
	store.mu.Unlock()
}

// loginResponse is the data of /login and /register.
type loginResponse struct {
	User  *session.User `json:"user"`
	Token string        `json:"token"`
}

/*
Login authenticates against the backend.

Description: The backend answers with {user, token}. A rejected login is reported
as invalid credentials rather than as an expired session, so it never triggers a
forced logout.

Returns:
  - *session.Session: the new session, also held by the store
  - error: VALIDATION_ERROR, INVALID_CREDENTIALS or upstream errors
*/
func (store *Store) Login(context context.Context, credentials Credentials) (*session.Session, error) {
	credentials.Email = strings.TrimSpace(credentials.Email)

	v := &validate.Validator{}
	v.Required("email", credentials.Email).
		Required("password", credentials.Password)
	if err := v.Err(); err != nil {
		store.fail(err)
		return nil, err
	}

	return store.authenticate(context, "/login", credentials)
}

// Register creates an account and logs it in.
func (store *Store) Register(context context.Context, registration Registration) (*session.Session, error) {
	registration.Email = strings.TrimSpace(registration.Email)
	if registration.Role == "" {
		registration.Role = sec.RolePembeli
	}

	v := &validate.Validator{}
	v.Required("name", registration.Name).
		Required("email", registration.Email).
		Required("password", registration.Password).
		MinLen("password", registration.Password, 8).
		OneOf("role", string(registration.Role), string(sec.RolePenjual), string(sec.RolePembeli))
	if registration.Email != "" {
		v.Email("email", registration.Email)
	}
	if err := v.Err(); err != nil {
		store.fail(err)
		return nil, err
	}

	return store.authenticate(context, "/register", registration)
}

func (store *Store) authenticate(context context.Context, path string, body any) (*session.Session, error) {
	store.mu.Lock()
	store.loading = true
	store.err = ""
	store.mu.Unlock()

	var response loginResponse
	err := store.client.Do(context, http.MethodPost, path, body, &response)
	if apperr.HasCode(err, apperr.CodeUnauthorized) {
		err = apperr.BadCredentials(apperr.Message(err))
	}

	var s *session.Session
	if err == nil {
		s, err = session.New(response.User, response.Token)
		if err != nil {
			err = apperr.BadResponse(err)
		}
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	store.loading = false
	if err != nil {
		store.err = apperr.Message(err)
		return nil, err
	}

	store.current = s
	return s, nil
}

// Logout forgets the session and revokes its token.
//
// The token is revoked even if it was not valid anymore; revocation failures are
// logged, never returned, since the visitor is logged out locally either way.
func (store *Store) Logout(context context.Context) {
	store.mu.Lock()
	s := store.current
	store.current = nil
	store.err = ""
	store.mu.Unlock()

	if s == nil || s.Token == "" {
		return
	}

	if err := store.revocations.Revoke(context, s.Token, s.ExpiresAt); err != nil {
		ctxutil.GetLogger(context).ErrorContext(context, "session_revoke_failed",
			slog.String("error", err.Error()),
		)
	}
}

// ForceLogout handles a token the backend rejected with 401.
//
// token is the rejected token; it is revoked even when the store already moved
// on to another session, but only the matching session is dropped.
func (store *Store) ForceLogout(context context.Context, token string) {
	if token == "" {
		return
	}

	store.mu.Lock()
	var expiry time.Time
	if store.current != nil && store.current.Token == token {
		expiry = store.current.ExpiresAt
		store.current = nil
	}
	store.err = "Sesi Anda telah berakhir, silakan login kembali"
	store.mu.Unlock()

	if expiry.IsZero() {
		if exp, err := sec.Expiry(token); err == nil {
			expiry = exp
		} else {
			expiry = store.now().Add(constants.SessionFallbackTTL)
		}
	}

	logger := ctxutil.GetLogger(context)
	logger.InfoContext(context, "session_forced_logout")

	if err := store.revocations.Revoke(context, token, expiry); err != nil {
		logger.ErrorContext(context, "session_revoke_failed", slog.String("error", err.Error()))
	}
}

func (store *Store) fail(err error) {
	store.mu.Lock()
	store.err = apperr.Message(err)
	store.mu.Unlock()
}
