// Copyright (c) 2026 JVED. All rights reserved.
// Author: jved@contact.fr

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jved/forum/internal/platform/apperr"
	"github.com/jved/forum/internal/platform/constants"
)

// RedisTokenRepository implements [TokenRepository] using Redis.
//
// One instance per token purpose — the key prefix carries the purpose, so a
// reset token can never redeem a verification flow or vice versa.
type RedisTokenRepository struct {
	client    *redis.Client
	keyPrefix string
}

// NewResetTokenRepository creates the Redis-backed store for password reset tokens.
func NewResetTokenRepository(client *redis.Client) *RedisTokenRepository {
	return &RedisTokenRepository{client: client, keyPrefix: constants.RedisPrefixResetToken}
}

// NewVerificationTokenRepository creates the Redis-backed store for email verification tokens.
func NewVerificationTokenRepository(client *redis.Client) *RedisTokenRepository {
	return &RedisTokenRepository{client: client, keyPrefix: constants.RedisPrefixVerifyToken}
}

/*
Set stores a token with its associated userID and TTL.

Parameters:
  - ctx: context.Context
  - token: string
  - userID: string
  - ttl: time.Duration

Returns:
  - error: Storage failures
*/
func (repository *RedisTokenRepository) Set(ctx context.Context, token string, userID string, ttl time.Duration) error {
	key := repository.keyPrefix + token

	if err := repository.client.Set(ctx, key, userID, ttl).Err(); err != nil {
		return fmt.Errorf("redis_token_set_failed: %w", err)
	}

	return nil
}

/*
Get retrieves the userID for a given token.

Description: Returns apperr.NotFound if the token is absent or expired — a
normal redemption failure, distinct from a connectivity error.

Parameters:
  - ctx: context.Context
  - token: string

Returns:
  - string: UserID
  - error: apperr.NotFound or connectivity errors
*/
func (repository *RedisTokenRepository) Get(ctx context.Context, token string) (string, error) {
	key := repository.keyPrefix + token

	userID, err := repository.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", apperr.NotFound("Token")
		}
		return "", fmt.Errorf("redis_token_get_failed: %w", err)
	}

	return userID, nil
}

/*
Delete removes the token from Redis after successful use.

Parameters:
  - ctx: context.Context
  - token: string

Returns:
  - error: Deletion failures
*/
func (repository *RedisTokenRepository) Delete(ctx context.Context, token string) error {
	key := repository.keyPrefix + token

	if err := repository.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis_token_delete_failed: %w", err)
	}

	return nil
}
