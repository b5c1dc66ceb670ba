// Copyright (c) 2026 JVED. All rights reserved.
// Author: jved@contact.fr

package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jved/forum/internal/platform/sec"
	"github.com/jved/forum/internal/users/session"
)

func newTestStore(t *testing.T) (*session.RedisStore, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return session.NewRedisStore(client), server
}

/*
TestRedisStore_RoundTrip verifies an identity survives a store/load cycle
with all five claims intact.
*/
func TestRedisStore_RoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	identity := &session.Identity{
		ID:       "user-1",
		Pseudo:   "jean",
		Email:    "jean@jved.fr",
		Role:     sec.RoleModerator,
		Template: "dark",
	}

	require.NoError(t, store.Put(ctx, "sess-abc", identity, time.Hour))

	loaded, err := store.Get(ctx, "sess-abc")
	require.NoError(t, err)
	assert.Equal(t, identity, loaded)
}

/*
TestRedisStore_MissingSession verifies an unknown ID maps to ErrNoSession.
*/
func TestRedisStore_MissingSession(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Get(context.Background(), "never-stored")
	assert.ErrorIs(t, err, session.ErrNoSession)
}

/*
TestRedisStore_Expiry verifies the TTL is honored: once elapsed, the session
reads as anonymous.
*/
func TestRedisStore_Expiry(t *testing.T) {
	store, server := newTestStore(t)
	ctx := context.Background()

	identity := &session.Identity{ID: "user-1", Pseudo: "jean", Role: sec.RoleOrdinary}
	require.NoError(t, store.Put(ctx, "sess-ttl", identity, time.Minute))

	_, err := store.Get(ctx, "sess-ttl")
	require.NoError(t, err)

	server.FastForward(2 * time.Minute)

	_, err = store.Get(ctx, "sess-ttl")
	assert.ErrorIs(t, err, session.ErrNoSession)
}

/*
TestRedisStore_Delete verifies logout removes the stored identity.
*/
func TestRedisStore_Delete(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	identity := &session.Identity{ID: "user-1", Pseudo: "jean", Role: sec.RoleOrdinary}
	require.NoError(t, store.Put(ctx, "sess-del", identity, time.Hour))
	require.NoError(t, store.Delete(ctx, "sess-del"))

	_, err := store.Get(ctx, "sess-del")
	assert.ErrorIs(t, err, session.ErrNoSession)

	// Deleting an absent session is not an error.
	assert.NoError(t, store.Delete(ctx, "sess-del"))
}

/*
TestRedisStore_PutOverwritesWholesale verifies a second Put fully replaces
the previous identity, leaving no stale claims behind.
*/
func TestRedisStore_PutOverwritesWholesale(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	first := &session.Identity{ID: "user-1", Pseudo: "jean", Email: "jean@jved.fr", Role: sec.RoleOrdinary, Template: "default"}
	second := &session.Identity{ID: "user-2", Pseudo: "zoe", Email: "zoe@jved.fr", Role: sec.RoleSuperAdmin, Template: "dark"}

	require.NoError(t, store.Put(ctx, "sess-x", first, time.Hour))
	require.NoError(t, store.Put(ctx, "sess-x", second, time.Hour))

	loaded, err := store.Get(ctx, "sess-x")
	require.NoError(t, err)
	assert.Equal(t, second, loaded)
}
