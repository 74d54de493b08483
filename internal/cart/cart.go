package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"

	"github.com/redis/go-redis/v9"
)

// cartStore reads and clears carts the storefront keeps in a hash under cart:<user id>,
// one field per item id holding the line as JSON.
type cartStore struct {
	rdb *redis.Client
}

type line struct {
	Quantity  int   `json:"quantity"`
	UnitPrice int64 `json:"unit_price"`
}

func NewCartStore(rdb *redis.Client) *cartStore {
	return &cartStore{rdb: rdb}
}

func key(userID string) string {
	return "cart:" + userID
}

// Lines returns the stored cart ordered by item id; a missing cart is empty.
func (c *cartStore) Lines(ctx context.Context, userID string) ([]entities.CartLine, error) {
	fields, err := c.rdb.HGetAll(ctx, key(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}

	lines := make([]entities.CartLine, 0, len(fields))
	for itemID, raw := range fields {
		var l line
		if err := json.Unmarshal([]byte(raw), &l); err != nil {
			return nil, fmt.Errorf("failed to decode cart line %s: %w", itemID, err)
		}
		lines = append(lines, entities.CartLine{ItemID: itemID, Quantity: l.Quantity, UnitPrice: l.UnitPrice})
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].ItemID < lines[j].ItemID })
	return lines, nil
}

func (c *cartStore) Clear(ctx context.Context, userID string) error {
	if err := c.rdb.Del(ctx, key(userID)).Err(); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
