package dedup

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyFormat = "dedup:%s:%s"

// redisDeduper remembers processed event ids for a limited time. It is a fast path
// only; the durable record lives next to the data it protects.
type redisDeduper struct {
	rdb   *redis.Client
	scope string
	ttl   time.Duration
}

func NewRedisDeduper(rdb *redis.Client, scope string, ttl time.Duration) *redisDeduper {
	return &redisDeduper{rdb: rdb, scope: scope, ttl: ttl}
}

func (d *redisDeduper) Seen(ctx context.Context, eventID string) (bool, error) {
	n, err := d.rdb.Exists(ctx, d.key(eventID)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check dedup key: %w", err)
	}
	return n > 0, nil
}

func (d *redisDeduper) Remember(ctx context.Context, eventID string) error {
	if err := d.rdb.Set(ctx, d.key(eventID), "1", d.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set dedup key: %w", err)
	}
	return nil
}

func (d *redisDeduper) key(eventID string) string {
	return fmt.Sprintf(keyFormat, d.scope, eventID)
}
