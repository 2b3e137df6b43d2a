package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisDishCache stores per-city dish lists with a TTL so repeated plan
// requests for the same city skip the web-search + extraction round trip.
type RedisDishCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisDishCache(addr string, ttl time.Duration) *RedisDishCache {
	return &RedisDishCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    ttl,
	}
}

func dishKey(city string) string {
	return "dishes:" + strings.ToLower(strings.TrimSpace(city))
}

// Fetch the cached dish list for a city.
func (c *RedisDishCache) Get(ctx context.Context, city string) (string, bool, error) {
	if c.client == nil {
		return "", false, errors.New("dish cache: client is nil")
	}

	dishes, err := c.client.Get(ctx, dishKey(city)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get dish cache city=%q: %w", city, err)
	}

	return dishes, true, nil
}

// Store a city -> dish list mapping with the configured TTL.
func (c *RedisDishCache) Put(ctx context.Context, city, dishes string) error {
	if c.client == nil {
		return errors.New("dish cache: client is nil")
	}

	if err := c.client.Set(ctx, dishKey(city), dishes, c.ttl).Err(); err != nil {
		return fmt.Errorf("insert dish cache city=%q: %w", city, err)
	}

	return nil
}

func (c *RedisDishCache) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}
