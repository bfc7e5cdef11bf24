//go:build integration

package cache_test

import (
	"context"
	"os"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/glosslab/localeroute/pkg/cache"
	"github.com/glosslab/localeroute/pkg/messages"
	"github.com/glosslab/localeroute/pkg/redis"
)

const testRedisURL = "redis://localhost:6379/0"

func newTestRedisClient(t *testing.T) goredis.UniversalClient {
	t.Helper()

	url := os.Getenv("REDIS_URL")
	if url == "" {
		url = testRedisURL
	}

	ctx := context.Background()
	client, err := redis.Open(ctx, url)
	require.NoError(t, err, "failed to connect to Redis")

	t.Cleanup(func() {
		_ = client.FlushDB(ctx).Err()
		_ = client.Close()
	})

	return client
}

func TestRedisCache(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		t.Parallel()
		c := cache.NewRedis[string](newTestRedisClient(t), nil, cache.WithPrefix("t-miss"))

		_, err := c.Get(ctx, "absent")
		require.ErrorIs(t, err, cache.ErrNotFound)
	})

	t.Run("set then get round-trips a bundle", func(t *testing.T) {
		t.Parallel()
		c := cache.NewRedis[*messages.Bundle](newTestRedisClient(t), nil, cache.WithPrefix("t-bundles"))

		bundle := messages.NewBundle("de", map[string]any{
			"Blog": map[string]any{"title": "Neuigkeiten"},
		})
		require.NoError(t, c.Set(ctx, "de", bundle, time.Minute))

		got, err := c.Get(ctx, "de")
		require.NoError(t, err)
		require.Equal(t, "de", got.Locale)
		require.Equal(t, "Neuigkeiten", got.Translate("Blog", "title"))
	})

	t.Run("ttl expires entries", func(t *testing.T) {
		t.Parallel()
		c := cache.NewRedis[int](newTestRedisClient(t), nil, cache.WithPrefix("t-ttl"))

		require.NoError(t, c.Set(ctx, "n", 42, 100*time.Millisecond))
		time.Sleep(200 * time.Millisecond)

		_, err := c.Get(ctx, "n")
		require.ErrorIs(t, err, cache.ErrNotFound)
	})

	t.Run("clear removes only the prefix", func(t *testing.T) {
		t.Parallel()
		client := newTestRedisClient(t)
		mine := cache.NewRedis[string](client, nil, cache.WithPrefix("t-clear-a"))
		other := cache.NewRedis[string](client, nil, cache.WithPrefix("t-clear-b"))

		require.NoError(t, mine.Set(ctx, "k", "v", time.Minute))
		require.NoError(t, other.Set(ctx, "k", "v", time.Minute))
		require.NoError(t, mine.Clear(ctx))

		_, err := mine.Get(ctx, "k")
		require.ErrorIs(t, err, cache.ErrNotFound)

		kept, err := other.Get(ctx, "k")
		require.NoError(t, err)
		require.Equal(t, "v", kept)
	})
}
