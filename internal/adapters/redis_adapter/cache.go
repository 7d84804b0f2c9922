// internal/adapters/redis_adapter/cache.go
package redis_a

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ammerola/cdi-tracker/internal/core/ports"
)

// Cache stores JSON documents in Redis. Report summaries and resolved card
// metadata live here.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

var _ ports.CacheRepository = (*Cache)(nil)

// NewCache creates a new cache instance
func NewCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
		logger: logger.With(slog.String("component", "cache")),
	}
}

// Set stores a value with the default TTL
func (c *Cache) Set(ctx context.Context, key string, value interface{}) error {
	return c.SetWithTTL(ctx, key, value, c.ttl)
}

// SetWithTTL stores a value with a custom TTL
func (c *Cache) SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return &CacheError{Op: "marshal", Key: key, Err: err}
	}

	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		c.logger.ErrorContext(ctx, "failed to set cache",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return &CacheError{Op: "set", Key: key, Err: err}
	}

	c.logger.DebugContext(ctx, "cache set",
		slog.String("key", key),
		slog.Duration("ttl", ttl))
	return nil
}

// Get decodes the cached value into dest. A missing key yields ports.ErrCacheMiss.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			c.logger.DebugContext(ctx, "cache miss", slog.String("key", key))
			return ports.ErrCacheMiss
		}
		c.logger.ErrorContext(ctx, "failed to get cache",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return &CacheError{Op: "get", Key: key, Err: err}
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return &CacheError{Op: "unmarshal", Key: key, Err: err}
	}

	c.logger.DebugContext(ctx, "cache hit", slog.String("key", key))
	return nil
}

// Delete removes keys
func (c *Cache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return &CacheError{Op: "del", Key: fmt.Sprint(keys), Err: err}
	}

	c.logger.DebugContext(ctx, "cache deleted", slog.Any("keys", keys))
	return nil
}

// DeletePattern removes every key matching a glob, e.g. "reports:*"
func (c *Cache) DeletePattern(ctx context.Context, pattern string) error {
	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
	var keys []string

	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		c.logger.ErrorContext(ctx, "failed to scan keys",
			slog.String("pattern", pattern),
			slog.String("error", err.Error()))
		return &CacheError{Op: "scan", Key: pattern, Err: err}
	}

	return c.Delete(ctx, keys...)
}

// Exists reports whether all keys exist
func (c *Cache) Exists(ctx context.Context, keys ...string) (bool, error) {
	n, err := c.client.Exists(ctx, keys...).Result()
	if err != nil {
		return false, &CacheError{Op: "exists", Key: fmt.Sprint(keys), Err: err}
	}
	return n == int64(len(keys)), nil
}

// GetOrSet loads key into dest. On a miss it calls fetch, stores the
// result and copies it into dest. A failed cache write only logs.
func (c *Cache) GetOrSet(ctx context.Context, key string, dest interface{},
	fetch func() (interface{}, error), ttl time.Duration) error {

	err := c.Get(ctx, key, dest)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ports.ErrCacheMiss) {
		// Redis down: serve from the source instead
		c.logger.WarnContext(ctx, "cache unavailable, fetching directly",
			slog.String("key", key),
			slog.String("error", err.Error()))
	}

	value, err := fetch()
	if err != nil {
		return err
	}

	if err := c.SetWithTTL(ctx, key, value, ttl); err != nil {
		c.logger.WarnContext(ctx, "failed to cache value after fetch",
			slog.String("key", key),
			slog.String("error", err.Error()))
	}

	data, err := json.Marshal(value)
	if err != nil {
		return &CacheError{Op: "marshal", Key: key, Err: err}
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return &CacheError{Op: "unmarshal", Key: key, Err: err}
	}
	return nil
}

// SetNX sets a key only if it doesn't exist
func (c *Cache) SetNX(ctx context.Context, key string, value interface{}, ttl time.Duration) (bool, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return false, &CacheError{Op: "marshal", Key: key, Err: err}
	}

	ok, err := c.client.SetNX(ctx, key, data, ttl).Result()
	if err != nil {
		return false, &CacheError{Op: "setnx", Key: key, Err: err}
	}
	return ok, nil
}

// TTL returns the remaining time to live for a key
func (c *Cache) TTL(ctx context.Context, key string) (time.Duration, error) {
	ttl, err := c.client.TTL(ctx, key).Result()
	if err != nil {
		return 0, &CacheError{Op: "ttl", Key: key, Err: err}
	}
	return ttl, nil
}

// Ping checks if Redis is accessible
func (c *Cache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return &CacheError{Op: "ping", Err: err}
	}
	return nil
}

// CacheError represents cache-specific errors
type CacheError struct {
	Op  string
	Key string
	Err error
}

func (e *CacheError) Error() string {
	return fmt.Sprintf("cache %s operation failed for key %s: %v", e.Op, e.Key, e.Err)
}

func (e *CacheError) Unwrap() error { return e.Err }
