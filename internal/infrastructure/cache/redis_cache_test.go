package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/evcharge-admin-api/internal/infrastructure/cache"
)

type item struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
}

func setupCache(t *testing.T) (*miniredis.Miniredis, *cache.RedisCache) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, cache.NewRedisCache(client)
}

func TestRedisCache_SetGet(t *testing.T) {
	_, c := setupCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "facilities", []item{{ID: 1, Code: "WIFI"}}, time.Minute))

	var got []item
	ok, err := c.Get(ctx, "facilities", &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []item{{ID: 1, Code: "WIFI"}}, got)
}

func TestRedisCache_Miss(t *testing.T) {
	_, c := setupCache(t)

	var got []item
	ok, err := c.Get(context.Background(), "nada", &got)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisCache_Expira(t *testing.T) {
	mr, c := setupCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", item{ID: 1}, time.Minute))
	mr.FastForward(2 * time.Minute)

	var got item
	ok, err := c.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNop_SiempreMiss(t *testing.T) {
	var c cache.Nop
	require.NoError(t, c.Set(context.Background(), "k", 1, 0))
	ok, err := c.Get(context.Background(), "k", new(int))
	require.NoError(t, err)
	assert.False(t, ok)
}
