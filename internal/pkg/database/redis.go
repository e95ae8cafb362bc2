package database

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/adnangitonga/diagnoxis/internal/pkg/models"
)

// compareAndDeleteScript deletes a key only when its value matches the
// supplied argument, atomically. Returns -1 when the key is absent, 1 when
// the value matched and was deleted, 0 on mismatch.
var compareAndDeleteScript = redis.NewScript(`
local v = redis.call('GET', KEYS[1])
if v == false then
	return -1
end
if v == ARGV[1] then
	redis.call('DEL', KEYS[1])
	return 1
end
return 0
`)

// RedisClient represents a Redis client
type RedisClient struct {
	Client *redis.Client
}

// NewRedisClient creates a new Redis client
func NewRedisClient(config models.RedisConfig) (*RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Host, config.Port),
		Password: config.Password,
		DB:       config.DB,
		PoolSize: config.PoolSize,
	})

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := client.Ping(ctx).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisClient{Client: client}, nil
}

// Set stores a key-value pair with an optional expiration
func (r *RedisClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return r.Client.Set(ctx, key, value, expiration).Err()
}

// Get retrieves a value by key
func (r *RedisClient) Get(ctx context.Context, key string) (string, error) {
	return r.Client.Get(ctx, key).Result()
}

// Delete removes a key
func (r *RedisClient) Delete(ctx context.Context, key string) error {
	return r.Client.Del(ctx, key).Err()
}

// CompareAndDelete atomically deletes key when its current value equals
// value. It reports whether the key existed and whether the value matched
// (in which case the key is gone). Two concurrent callers with the correct
// value can therefore succeed at most once.
func (r *RedisClient) CompareAndDelete(ctx context.Context, key, value string) (found bool, matched bool, err error) {
	res, err := compareAndDeleteScript.Run(ctx, r.Client, []string{key}, value).Int()
	if err != nil {
		return false, false, err
	}
	switch res {
	case 1:
		return true, true, nil
	case 0:
		return true, false, nil
	default:
		return false, false, nil
	}
}

// IncrWithWindow increments a counter key, starting its expiry window on
// first increment, and returns the new count.
func (r *RedisClient) IncrWithWindow(ctx context.Context, key string, window time.Duration) (int64, error) {
	count, err := r.Client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		if err := r.Client.Expire(ctx, key, window).Err(); err != nil {
			return count, err
		}
	}
	return count, nil
}

// Close closes the Redis client
func (r *RedisClient) Close() error {
	return r.Client.Close()
}
