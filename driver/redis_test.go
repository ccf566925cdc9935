package driver

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) *RedisDriver {
	t.Helper()
	mr := miniredis.RunT(t)
	return NewRedisDriver(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
}

func TestAcquireAndReleaseLock(t *testing.T) {
	d := newTestRedis(t)
	ctx := context.Background()

	ok, err := d.AcquireLock(ctx, "cron:poll-subscriptions:lock", "owner-a", 900*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = d.AcquireLock(ctx, "cron:poll-subscriptions:lock", "owner-b", 900*time.Second)
	require.NoError(t, err)
	assert.False(t, ok, "second acquisition must fail while held")

	// a non-owner release is a no-op
	require.NoError(t, d.ReleaseLock(ctx, "cron:poll-subscriptions:lock", "owner-b"))
	ok, err = d.AcquireLock(ctx, "cron:poll-subscriptions:lock", "owner-b", 900*time.Second)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, d.ReleaseLock(ctx, "cron:poll-subscriptions:lock", "owner-a"))
	ok, err = d.AcquireLock(ctx, "cron:poll-subscriptions:lock", "owner-b", 900*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIncrCounter(t *testing.T) {
	d := newTestRedis(t)
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		got, err := d.IncrCounter(ctx, "poll:failures:sub1", 24*time.Hour)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	require.NoError(t, d.DeleteKey(ctx, "poll:failures:sub1"))
	got, err := d.IncrCounter(ctx, "poll:failures:sub1", 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got, "counter restarts after clear")
}

func TestJSONCacheRoundTrip(t *testing.T) {
	d := newTestRedis(t)
	ctx := context.Background()

	type showMeta struct {
		Name          string `json:"name"`
		TotalEpisodes int    `json:"total_episodes"`
	}

	require.NoError(t, d.SetJSON(ctx, "show:meta:s1", showMeta{Name: "Daily", TotalEpisodes: 12}, time.Minute))

	var out showMeta
	require.NoError(t, d.GetJSON(ctx, "show:meta:s1", &out))
	assert.Equal(t, 12, out.TotalEpisodes)

	require.NoError(t, d.DeleteKey(ctx, "show:meta:s1"))
	err := d.GetJSON(ctx, "show:meta:s1", &out)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestSetNXWithTTLThrottle(t *testing.T) {
	d := newTestRedis(t)
	ctx := context.Background()

	ok, err := d.SetNXWithTTL(ctx, "manual-sync:sub1", 5*time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = d.SetNXWithTTL(ctx, "manual-sync:sub1", 5*time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "second manual sync within the window is throttled")
}
