// ABOUTME: Redis driver for distributed locks, TTL counters, and the show-metadata cache
// ABOUTME: Lock release is ownership-checked so an expired holder cannot free a successor's lock

package driver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when a cache key is absent.
var ErrCacheMiss = errors.New("cache miss")

// releaseScript deletes the lock only when the stored owner token matches.
const releaseScript = `if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
else
	return 0
end`

// RedisDriver wraps the go-redis client with the small KV surface the
// service needs: locks, counters with TTL, and a JSON cache.
type RedisDriver struct {
	client *redis.Client
}

// NewRedisDriverWithURL creates a Redis driver from a redis:// URL.
func NewRedisDriverWithURL(url string) (*RedisDriver, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	return &RedisDriver{client: redis.NewClient(opts)}, nil
}

// NewRedisDriver wraps an existing client. Used by tests with miniredis.
func NewRedisDriver(client *redis.Client) *RedisDriver {
	return &RedisDriver{client: client}
}

// Close closes the underlying connection.
func (d *RedisDriver) Close() error {
	return d.client.Close()
}

// Ping verifies connectivity.
func (d *RedisDriver) Ping(ctx context.Context) error {
	return d.client.Ping(ctx).Err()
}

// AcquireLock attempts SET NX PX on key with the given owner token.
// Returns false without error when the lock is already held.
func (d *RedisDriver) AcquireLock(ctx context.Context, key, owner string, ttl time.Duration) (bool, error) {
	ok, err := d.client.SetNX(ctx, key, owner, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire lock %s: %w", key, err)
	}
	return ok, nil
}

// ReleaseLock frees the lock only if owner still holds it.
func (d *RedisDriver) ReleaseLock(ctx context.Context, key, owner string) error {
	if err := d.client.Eval(ctx, releaseScript, []string{key}, owner).Err(); err != nil {
		return fmt.Errorf("failed to release lock %s: %w", key, err)
	}
	return nil
}

// IncrCounter increments key and applies ttl on first increment.
// Returns the counter value after the increment.
func (d *RedisDriver) IncrCounter(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	pipe := d.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to increment counter %s: %w", key, err)
	}
	return incr.Val(), nil
}

// DeleteKey removes a key. Missing keys are not an error.
func (d *RedisDriver) DeleteKey(ctx context.Context, key string) error {
	if err := d.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

// SetJSON stores a JSON-encoded value with a TTL.
func (d *RedisDriver) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode cache value for %s: %w", key, err)
	}
	if err := d.client.Set(ctx, key, encoded, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set cache key %s: %w", key, err)
	}
	return nil
}

// GetJSON loads a JSON-encoded value. Returns ErrCacheMiss when absent.
func (d *RedisDriver) GetJSON(ctx context.Context, key string, out any) error {
	raw, err := d.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrCacheMiss
	}
	if err != nil {
		return fmt.Errorf("failed to get cache key %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode cache value for %s: %w", key, err)
	}
	return nil
}

// SetNXWithTTL plants a marker key. Returns false when the key already exists.
// Used for per-subscription and per-user manual sync throttles.
func (d *RedisDriver) SetNXWithTTL(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := d.client.SetNX(ctx, key, "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to set throttle key %s: %w", key, err)
	}
	return ok, nil
}
