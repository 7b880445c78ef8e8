package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisStore(client), mr
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()

	t.Run("SaveGetRoundtrip", func(t *testing.T) {
		store, _ := newTestStore(t)

		rec := Record{
			UserID:    "u1",
			ExpiresAt: time.Now().Add(time.Hour).UTC().Truncate(time.Second),
		}
		require.NoError(t, store.Save(ctx, "tok", rec))

		got, ok, err := store.Get(ctx, "tok")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "u1", got.UserID)
		assert.True(t, got.ExpiresAt.Equal(rec.ExpiresAt))
	})

	t.Run("MissingToken", func(t *testing.T) {
		store, _ := newTestStore(t)

		_, ok, err := store.Get(ctx, "nope")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("AlreadyExpiredRejected", func(t *testing.T) {
		store, _ := newTestStore(t)

		err := store.Save(ctx, "tok", Record{
			UserID:    "u1",
			ExpiresAt: time.Now().Add(-time.Minute),
		})
		assert.Error(t, err)
	})

	t.Run("ExpiresWithTTL", func(t *testing.T) {
		store, mr := newTestStore(t)

		require.NoError(t, store.Save(ctx, "tok", Record{
			UserID:    "u1",
			ExpiresAt: time.Now().Add(time.Minute),
		}))

		mr.FastForward(2 * time.Minute)

		_, ok, err := store.Get(ctx, "tok")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Delete", func(t *testing.T) {
		store, _ := newTestStore(t)

		require.NoError(t, store.Save(ctx, "tok", Record{
			UserID:    "u1",
			ExpiresAt: time.Now().Add(time.Hour),
		}))
		require.NoError(t, store.Delete(ctx, "tok"))

		_, ok, err := store.Get(ctx, "tok")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestNewToken(t *testing.T) {
	a, err := NewToken()
	require.NoError(t, err)
	b, err := NewToken()
	require.NoError(t, err)

	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
}
