// Copyright (c) 2026 JVED. All rights reserved.
// Author: jved@contact.fr

package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jved/forum/internal/platform/constants"
)

// RedisStore implements [Store] using Redis.
//
// Identities are stored as JSON under a prefixed key so they share the
// keyspace taxonomy with the volatile auth tokens.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a new Redis-backed session [Store].
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

/*
Get returns the identity stored under the session ID.

Description: Returns [ErrNoSession] when the key is absent or expired, so an
anonymous visitor is never confused with a connectivity failure.

Parameters:
  - ctx: context.Context
  - sessionID: string

Returns:
  - *Identity: Stored claims
  - error: ErrNoSession or connectivity errors
*/
func (store *RedisStore) Get(ctx context.Context, sessionID string) (*Identity, error) {
	key := constants.RedisPrefixSession + sessionID

	payload, err := store.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("redis_session_get_failed: %w", err)
	}

	identity := &Identity{}
	if err := json.Unmarshal(payload, identity); err != nil {
		return nil, fmt.Errorf("redis_session_decode_failed: %w", err)
	}

	return identity, nil
}

/*
Put replaces the identity stored under the session ID.

Parameters:
  - ctx: context.Context
  - sessionID: string
  - identity: *Identity
  - ttl: time.Duration

Returns:
  - error: Encoding or storage failures
*/
func (store *RedisStore) Put(ctx context.Context, sessionID string, identity *Identity, ttl time.Duration) error {
	key := constants.RedisPrefixSession + sessionID

	payload, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("redis_session_encode_failed: %w", err)
	}

	if err := store.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis_session_set_failed: %w", err)
	}

	return nil
}

/*
Delete removes the identity stored under the session ID.

Parameters:
  - ctx: context.Context
  - sessionID: string

Returns:
  - error: Deletion failures
*/
func (store *RedisStore) Delete(ctx context.Context, sessionID string) error {
	key := constants.RedisPrefixSession + sessionID

	if err := store.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis_session_delete_failed: %w", err)
	}

	return nil
}
