package dedup_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/dedup"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRedis(t *testing.T) *redis.Client {
	t.Helper()
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR is not set")
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	require.NoError(t, rdb.Ping(context.Background()).Err())
	t.Cleanup(func() { rdb.Close() })
	return rdb
}

func TestRedisDeduper(t *testing.T) {
	rdb := testRedis(t)
	ctx := context.Background()
	d := dedup.NewRedisDeduper(rdb, "payments", time.Minute)
	id := "evt_" + uuid.NewString()

	seen, err := d.Seen(ctx, id)
	require.NoError(t, err)
	assert.False(t, seen)

	require.NoError(t, d.Remember(ctx, id))

	seen, err = d.Seen(ctx, id)
	require.NoError(t, err)
	assert.True(t, seen)

	ttl, err := rdb.TTL(ctx, "dedup:payments:"+id).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}
