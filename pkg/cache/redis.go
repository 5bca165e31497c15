package cache

import (
	"context"
	"fmt"
	"time"

	"theater-booking/pkg/utils"

	"github.com/redis/go-redis/v9"
)

// Client is a thin wrapper around go-redis used for short-lived read
// caches (event availability). Callers treat a nil *Client as "no cache".
type Client struct {
	rdb *redis.Client
	ttl time.Duration
}

// InitRedis connects to Redis and verifies the connection. Returns an
// error instead of a client when Redis is unreachable; the service runs
// fine without the cache.
func InitRedis(config utils.RedisConfig) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &Client{
		rdb: rdb,
		ttl: time.Duration(config.CacheTTLSeconds) * time.Second,
	}, nil
}

// Get returns the cached value for key, or "" on a miss.
func (c *Client) Get(ctx context.Context, key string) (string, error) {
	val, err := c.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("cache get %s: %w", key, err)
	}
	return val, nil
}

// Set stores a value under key with the configured TTL.
func (c *Client) Set(ctx context.Context, key, value string) error {
	if c.ttl <= 0 {
		return nil
	}
	if err := c.rdb.Set(ctx, key, value, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

// Delete drops keys, used to invalidate projections after writes.
func (c *Client) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

func (c *Client) Close() error {
	return c.rdb.Close()
}
