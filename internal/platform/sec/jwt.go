// Copyright (c) 2026 NitikBatik. All rights reserved.

// Package sec reads the security-relevant parts of backend-issued credentials.
//
// # Trust Boundary
//
// Tokens are issued and signed by the NitikBatik backend, which is the only party
// holding the key. This server decodes them without verifying the signature: it
// recognizes a malformed token, never a forged one. Every protected backend call
// carries the token, so the backend remains the enforcement point.
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoExpiry is returned when a token carries no usable "exp" claim.
var ErrNoExpiry = errors.New("sec: token has no expiry claim")

// TokenClaims is the subset of the backend token payload the storefront reads.
type TokenClaims struct {
	jwt.RegisteredClaims

	UserID any    `json:"id,omitempty"`
	Role   string `json:"role,omitempty"`
}

// ReadClaims decodes a token's payload without verifying its signature.
func ReadClaims(token string) (*TokenClaims, error) {
	claims := &TokenClaims{}

	_, _, err := jwt.NewParser().ParseUnverified(token, claims)
	if err != nil {
		return nil, fmt.Errorf("sec: malformed token: %w", err)
	}

	return claims, nil
}

// Expiry returns the instant after which the token is no longer valid.
func Expiry(token string) (time.Time, error) {
	claims, err := ReadClaims(token)
	if err != nil {
		return time.Time{}, err
	}

	if claims.ExpiresAt == nil {
		return time.Time{}, ErrNoExpiry
	}

	return claims.ExpiresAt.Time, nil
}
