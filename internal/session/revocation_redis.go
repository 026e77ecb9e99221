// Copyright (c) 2026 NitikBatik. All rights reserved.

package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRevocations implements [Revocations] using Redis keys with a TTL.
//
// Keys expire together with the token they describe, so the list never grows
// beyond the set of live tokens.
type RedisRevocations struct {
	client *redis.Client
}

// NewRedisRevocations creates a Redis-backed revocation list.
func NewRedisRevocations(client *redis.Client) *RedisRevocations {
	return &RedisRevocations{client: client}
}

/*
Revoke stores the hashed token until its expiry.

Parameters:
  - context: context.Context
  - token: string
  - until: time.Time

Returns:
  - error: Execution errors
*/
func (repository *RedisRevocations) Revoke(context context.Context, token string, until time.Time) error {
	ttl := time.Until(until)

	// Already expired tokens need no entry.
	if ttl <= 0 {
		return nil
	}

	if err := repository.client.Set(context, TokenKey(token), "revoked", ttl).Err(); err != nil {
		return fmt.Errorf("redis_revocation_set_failed: %w", err)
	}

	return nil
}

/*
IsRevoked checks for the hashed token key.

Parameters:
  - context: context.Context
  - token: string

Returns:
  - bool: true if the key exists
  - error: connectivity errors
*/
func (repository *RedisRevocations) IsRevoked(context context.Context, token string) (bool, error) {
	count, err := repository.client.Exists(context, TokenKey(token)).Result()
	if err != nil {
		return false, fmt.Errorf("redis_revocation_exists_failed: %w", err)
	}

	return count == 1, nil
}
