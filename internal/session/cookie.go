// Copyright (c) 2026 NitikBatik. All rights reserved.

package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/constants"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/sec"
)

// ErrExpired is returned when writing a session whose token has already expired.
var ErrExpired = errors.New("session: token already expired")

// persisted is the on-cookie layout shared with the browser.
type persisted struct {
	State struct {
		User  *User  `json:"user"`
		Token string `json:"token"`
	} `json:"state"`
	Version int `json:"version"`
}

// Codec reads and writes the session cookie.
type Codec struct {
	name   string
	maxTTL time.Duration
	secure bool
	now    func() time.Time
}

// NewCodec creates a cookie codec.
//
// # Parameters
//   - name: cookie name (the persisted auth store name).
//   - maxTTL: upper bound of the cookie lifetime.
//   - secure: whether the cookie is restricted to HTTPS.
func NewCodec(name string, maxTTL time.Duration, secure bool) *Codec {
	if name == "" {
		name = constants.SessionCookieName
	}
	if maxTTL <= 0 {
		maxTTL = constants.SessionFallbackTTL
	}
	return &Codec{name: name, maxTTL: maxTTL, secure: secure, now: time.Now}
}

// Name returns the cookie name.
func (codec *Codec) Name() string { return codec.name }

/*
Decode parses a raw cookie value.

Description: The value is URL-unescaped, then JSON-decoded. The expiry is read
from the token's claims. Any structural failure returns an error; callers in the
request path treat that as "not authenticated".

Parameters:
  - raw: string (cookie value as sent by the browser)

Returns:
  - *Session: decoded session (possibly expired)
  - error: decode failures
*/
func (codec *Codec) Decode(raw string) (*Session, error) {
	unescaped, err := url.QueryUnescape(raw)
	if err != nil {
		return nil, fmt.Errorf("session: cookie is not url-encoded: %w", err)
	}

	var payload persisted
	if err := json.Unmarshal([]byte(unescaped), &payload); err != nil {
		return nil, fmt.Errorf("session: cookie is not valid json: %w", err)
	}

	return New(payload.State.User, payload.State.Token)
}

// Encode renders a session as a cookie value.
func (codec *Codec) Encode(s *Session) (string, error) {
	var payload persisted
	payload.State.User = s.User
	payload.State.Token = s.Token

	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("session: encode failed: %w", err)
	}

	return url.QueryEscape(string(data)), nil
}

// Read returns the session carried by the request, or nil.
//
// Absent and undecodable cookies are indistinguishable to the caller.
func (codec *Codec) Read(request *http.Request) *Session {
	cookie, err := request.Cookie(codec.name)
	if err != nil || cookie.Value == "" {
		return nil
	}

	s, err := codec.Decode(cookie.Value)
	if err != nil {
		return nil
	}

	return s
}

/*
Write persists a session on the response.

Description: The cookie lifetime is derived from the token's own expiry so the
cookie can never outlive the credential it carries. It is additionally capped by
the codec's maximum TTL.

Parameters:
  - writer: http.ResponseWriter
  - s: *Session

Returns:
  - error: ErrExpired if the token is no longer valid, encode failures
*/
func (codec *Codec) Write(writer http.ResponseWriter, s *Session) error {
	ttl := s.ExpiresAt.Sub(codec.now())
	if ttl <= 0 {
		return ErrExpired
	}
	if ttl > codec.maxTTL {
		ttl = codec.maxTTL
	}

	value, err := codec.Encode(s)
	if err != nil {
		return err
	}

	http.SetCookie(writer, &http.Cookie{
		Name:     codec.name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		Expires:  codec.now().Add(ttl),
		Secure:   codec.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

// Clear deletes the session cookie.
func (codec *Codec) Clear(writer http.ResponseWriter) {
	http.SetCookie(writer, &http.Cookie{
		Name:     codec.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Secure:   codec.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// TokenKey is the storage key of a token, shared by revocation backends.
func TokenKey(token string) string {
	return constants.RedisPrefixRevokedToken + sec.HashToken(token)
}
