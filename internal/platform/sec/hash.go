// Copyright (c) 2026 NitikBatik. All rights reserved.

package sec

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashToken returns the hex SHA-256 digest of a token.
//
// Raw tokens are never used as storage keys.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
