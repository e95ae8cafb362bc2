package database

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *RedisClient) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return mr, &RedisClient{Client: client}
}

func TestSetGetDelete(t *testing.T) {
	mr, rc := setupMiniredis(t)
	ctx := context.Background()

	err := rc.Set(ctx, "user:a@x.com", "123456", 10*time.Minute)
	require.NoError(t, err)

	val, err := rc.Get(ctx, "user:a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "123456", val)

	ttl := mr.TTL("user:a@x.com")
	assert.True(t, ttl > 0)

	err = rc.Delete(ctx, "user:a@x.com")
	require.NoError(t, err)

	_, err = rc.Get(ctx, "user:a@x.com")
	assert.ErrorIs(t, err, redis.Nil)
}

func TestCompareAndDelete_Match(t *testing.T) {
	mr, rc := setupMiniredis(t)
	ctx := context.Background()

	mr.Set("user:a@x.com", "123456")

	found, matched, err := rc.CompareAndDelete(ctx, "user:a@x.com", "123456")
	require.NoError(t, err)
	assert.True(t, found)
	assert.True(t, matched)

	// Key is consumed by the matching call
	assert.False(t, mr.Exists("user:a@x.com"))
}

func TestCompareAndDelete_Mismatch(t *testing.T) {
	mr, rc := setupMiniredis(t)
	ctx := context.Background()

	mr.Set("user:a@x.com", "123456")

	found, matched, err := rc.CompareAndDelete(ctx, "user:a@x.com", "654321")
	require.NoError(t, err)
	assert.True(t, found)
	assert.False(t, matched)

	// A wrong guess must not consume the stored code
	assert.True(t, mr.Exists("user:a@x.com"))
}

func TestCompareAndDelete_Absent(t *testing.T) {
	_, rc := setupMiniredis(t)
	ctx := context.Background()

	found, matched, err := rc.CompareAndDelete(ctx, "user:missing@x.com", "123456")
	require.NoError(t, err)
	assert.False(t, found)
	assert.False(t, matched)
}

func TestCompareAndDelete_SecondCallFails(t *testing.T) {
	mr, rc := setupMiniredis(t)
	ctx := context.Background()

	mr.Set("user:a@x.com", "123456")

	_, matched, err := rc.CompareAndDelete(ctx, "user:a@x.com", "123456")
	require.NoError(t, err)
	require.True(t, matched)

	found, matched, err := rc.CompareAndDelete(ctx, "user:a@x.com", "123456")
	require.NoError(t, err)
	assert.False(t, found)
	assert.False(t, matched)
}

func TestIncrWithWindow(t *testing.T) {
	mr, rc := setupMiniredis(t)
	ctx := context.Background()

	count, err := rc.IncrWithWindow(ctx, "user:attempts:a@x.com", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// The window starts with the first increment only
	ttl := mr.TTL("user:attempts:a@x.com")
	assert.True(t, ttl > 0)

	count, err = rc.IncrWithWindow(ctx, "user:attempts:a@x.com", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
