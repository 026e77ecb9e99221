// Copyright (c) 2026 NitikBatik. All rights reserved.

/*
Package uuid generates the identifiers minted by this server itself.

Backend entities carry their own ids; the server only needs ids for visitor
workspaces and request correlation. Version 7 values are used so that log lines
and visitor cookies sort by creation time.
*/
package uuid

import "github.com/google/uuid"

// New returns a UUIDv7 string, falling back to a random v4 if the clock source fails.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Valid reports whether s parses as a UUID.
func Valid(s string) bool {
	return uuid.Validate(s) == nil
}
