package database

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedisClient(t *testing.T) (*miniredis.Miniredis, *RedisClient) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := &RedisClient{
		Client: redis.NewClient(&redis.Options{Addr: mr.Addr()}),
	}
	return mr, client
}

func TestRedisClient_SetGet(t *testing.T) {
	mr, client := setupRedisClient(t)
	defer mr.Close()

	ctx := context.Background()

	err := client.Set(ctx, "key", "value", 30*time.Second)
	assert.NoError(t, err)

	val, err := client.Get(ctx, "key")
	assert.NoError(t, err)
	assert.Equal(t, "value", val)

	ttl := mr.TTL("key")
	assert.True(t, ttl > 0)
}

func TestRedisClient_Delete(t *testing.T) {
	mr, client := setupRedisClient(t)
	defer mr.Close()

	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "key", "value", 0))

	removed, err := client.Delete(ctx, "key")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	// Deleting again reports the key is gone
	removed, err = client.Delete(ctx, "key")
	assert.NoError(t, err)
	assert.Equal(t, int64(0), removed)
}

func TestRedisClient_IncrExpire(t *testing.T) {
	mr, client := setupRedisClient(t)
	defer mr.Close()

	ctx := context.Background()

	n, err := client.Incr(ctx, "counter")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = client.Incr(ctx, "counter")
	assert.NoError(t, err)
	assert.Equal(t, int64(2), n)

	err = client.Expire(ctx, "counter", time.Minute)
	assert.NoError(t, err)
	assert.True(t, mr.TTL("counter") > 0)
}
