package cart_test

import (
	"context"
	"os"
	"testing"

	"github.com/SergeyBogomolovv/checkout-service/internal/cart"
	"github.com/SergeyBogomolovv/checkout-service/internal/entities"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T) *redis.Client {
	t.Helper()
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR is not set")
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { rdb.Close() })
	return rdb
}

func TestCartStore_Lines(t *testing.T) {
	rdb := newClient(t)
	ctx := context.Background()
	user := uuid.NewString()
	store := cart.NewCartStore(rdb)

	lines, err := store.Lines(ctx, user)
	require.NoError(t, err)
	assert.Empty(t, lines)

	require.NoError(t, rdb.HSet(ctx, "cart:"+user,
		"tee", `{"quantity":1,"unit_price":1500}`,
		"mug", `{"quantity":2,"unit_price":500}`,
	).Err())

	lines, err = store.Lines(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, []entities.CartLine{
		{ItemID: "mug", Quantity: 2, UnitPrice: 500},
		{ItemID: "tee", Quantity: 1, UnitPrice: 1500},
	}, lines)

	require.NoError(t, rdb.HSet(ctx, "cart:"+user, "broken", "2").Err())
	_, err = store.Lines(ctx, user)
	assert.Error(t, err)
}

func TestCartStore_Clear(t *testing.T) {
	rdb := newClient(t)
	ctx := context.Background()
	user := uuid.NewString()

	require.NoError(t, rdb.HSet(ctx, "cart:"+user, "sku-1", `{"quantity":2,"unit_price":100}`).Err())
	require.NoError(t, cart.NewCartStore(rdb).Clear(ctx, user))

	n, err := rdb.Exists(ctx, "cart:"+user).Result()
	require.NoError(t, err)
	assert.Zero(t, n)

	assert.NoError(t, cart.NewCartStore(rdb).Clear(ctx, user), "clearing an empty cart is fine")
}
