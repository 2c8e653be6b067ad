package cache_test

import (
	"context"
	"testing"

	"cinetix/infras/otel/mocks"
	"cinetix/shared/cache"

	"github.com/alicebob/miniredis/v2"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) cache.RedisCache {
	t.Helper()

	server := miniredis.RunT(t)

	client := goRedis.NewClient(&goRedis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return cache.NewRedisCache(client, mocks.NewOtel())
}

func TestRedisCache_SaveAndGet(t *testing.T) {
	redisCache := newTestCache(t)
	ctx := context.Background()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	saved := payload{Name: "inception", Count: 3}
	require.NoError(t, redisCache.Save(ctx, "movie:get:abc", saved, 60))

	var loaded payload
	require.NoError(t, redisCache.Get(ctx, "movie:get:abc", &loaded))
	assert.Equal(t, saved, loaded)
}

func TestRedisCache_GetString(t *testing.T) {
	redisCache := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, redisCache.Save(ctx, "plain", "value", 60))

	var loaded string
	require.NoError(t, redisCache.Get(ctx, "plain", &loaded))
	assert.Equal(t, "value", loaded)
}

func TestRedisCache_GetMissingKey(t *testing.T) {
	redisCache := newTestCache(t)

	var loaded string
	err := redisCache.Get(context.Background(), "does-not-exist", &loaded)
	assert.Error(t, err)
}

func TestRedisCache_Delete(t *testing.T) {
	redisCache := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, redisCache.Save(ctx, "key", "value", 60))
	require.NoError(t, redisCache.Delete(ctx, "key"))

	var loaded string
	assert.Error(t, redisCache.Get(ctx, "key", &loaded))
}

func TestRedisCache_Clear(t *testing.T) {
	redisCache := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, redisCache.Save(ctx, "booking:gets:1", "a", 60))
	require.NoError(t, redisCache.Save(ctx, "booking:gets:2", "b", 60))
	require.NoError(t, redisCache.Save(ctx, "movie:get:1", "c", 60))

	require.NoError(t, redisCache.Clear(ctx, "booking:gets:*"))

	var loaded string
	assert.Error(t, redisCache.Get(ctx, "booking:gets:1", &loaded))
	assert.Error(t, redisCache.Get(ctx, "booking:gets:2", &loaded))
	assert.NoError(t, redisCache.Get(ctx, "movie:get:1", &loaded))
}
