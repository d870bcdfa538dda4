package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	// OrderCacheTTL is the time-to-live for cached order projections.
	OrderCacheTTL = 24 * time.Hour

	orderCacheKeyPrefix = "order"
)

// OrderCache stores serialized order detail projections keyed by order number.
// The payload is an opaque JSON blob owned by the order service; keeping it
// opaque here means the cache never lags behind the domain model's shape.
// Key format: "order:{orderNumber}"
type OrderCache struct {
	client *RedisClient
}

// NewOrderCache creates a new OrderCache backed by the given RedisClient.
func NewOrderCache(r *RedisClient) *OrderCache {
	return &OrderCache{client: r}
}

// Get retrieves a cached projection by order number.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *OrderCache) Get(ctx context.Context, orderNumber string) ([]byte, error) {
	payload, err := c.client.Client().Get(ctx, c.key(orderNumber)).Bytes()
	if err != nil {
		return nil, err
	}
	return payload, nil
}

// Set writes a projection payload with a 24-hour TTL.
func (c *OrderCache) Set(ctx context.Context, orderNumber string, payload []byte) error {
	if err := c.client.Client().Set(ctx, c.key(orderNumber), payload, OrderCacheTTL).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached projection. Deleting an absent key is a no-op.
func (c *OrderCache) Delete(ctx context.Context, orderNumber string) error {
	if err := c.client.Client().Del(ctx, c.key(orderNumber)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// key builds the Redis key: "order:{orderNumber}"
func (c *OrderCache) key(orderNumber string) string {
	return fmt.Sprintf("%s:%s", orderCacheKeyPrefix, orderNumber)
}
