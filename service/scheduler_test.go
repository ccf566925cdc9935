// ABOUTME: Tests for the cron scheduler: lock serialization, grouping, outcome reporting

package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"inbox-hub/driver"
	"inbox-hub/mocks"
	"inbox-hub/models"
)

type schedulerFixture struct {
	scheduler *Scheduler
	subs      *mocks.MockSubscriptionRepository
	tokens    *MockTokenProvider
	limiter   *MockProviderRateLimiter
	health    *MockPollOutcomeHandler
	fetcher   *MockRSSFetcher
	ingestor  *MockItemIngestor
	kv        *MockKV
	now       int64
}

func newSchedulerFixture(t *testing.T) *schedulerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	subs := mocks.NewMockSubscriptionRepository(ctrl)
	tokens := NewMockTokenProvider(ctrl)
	limiter := NewMockProviderRateLimiter(ctrl)
	health := NewMockPollOutcomeHandler(ctrl)
	fetcher := NewMockRSSFetcher(ctrl)
	ingestor := NewMockItemIngestor(ctrl)
	kv := NewMockKV(ctrl)

	now := millis("2024-01-20T12:00:00Z")
	rssPoller := NewRSSPoller(fetcher, ingestor, subs, nil)
	rssPoller.now = func() int64 { return now }

	scheduler := NewScheduler(subs, tokens, limiter, health,
		nil, nil, rssPoller, nil, kv, 15*time.Minute, nil)
	scheduler.now = func() int64 { return now }

	return &schedulerFixture{
		scheduler: scheduler,
		subs:      subs,
		tokens:    tokens,
		limiter:   limiter,
		health:    health,
		fetcher:   fetcher,
		ingestor:  ingestor,
		kv:        kv,
		now:       now,
	}
}

func TestRunOnceSkipsWhenLockHeld(t *testing.T) {
	f := newSchedulerFixture(t)

	f.kv.EXPECT().
		AcquireLock(gomock.Any(), cronLockKey, gomock.Any(), 15*time.Minute).
		Return(false, nil)

	result := f.scheduler.RunOnce(context.Background())
	assert.True(t, result.Skipped)
	assert.Equal(t, "lock_held", result.SkipReason)
}

func TestRunOnceSkipsOnLockError(t *testing.T) {
	f := newSchedulerFixture(t)

	f.kv.EXPECT().
		AcquireLock(gomock.Any(), cronLockKey, gomock.Any(), 15*time.Minute).
		Return(false, driver.ErrTemporaryFailure)

	result := f.scheduler.RunOnce(context.Background())
	assert.True(t, result.Skipped)
	assert.Equal(t, "lock_error", result.SkipReason)
}

func TestRunOncePollsDueAndReportsOutcomes(t *testing.T) {
	f := newSchedulerFixture(t)
	watermark := millis("2024-01-10T00:00:00Z")

	sub := rssSub(&watermark)
	f.kv.EXPECT().
		AcquireLock(gomock.Any(), cronLockKey, gomock.Any(), 15*time.Minute).
		Return(true, nil)
	f.kv.EXPECT().ReleaseLock(gomock.Any(), cronLockKey, gomock.Any()).Return(nil)

	f.subs.EXPECT().FindDue(gomock.Any(), f.now).Return([]*models.Subscription{sub}, nil)
	f.limiter.EXPECT().Allow(models.ProviderRSS, "user-1").Return(true)

	f.fetcher.EXPECT().FetchFeed(gomock.Any(), sub.ProviderChannelID, rssPollFetchLimit).
		Return(&driver.RSSFeedInfo{
			Title: "Example Blog",
			Entries: []driver.RSSEntry{
				{GUID: "new", Title: "new", Link: "https://example.com/new", PublishedAt: timePtr("2024-01-15T00:00:00Z")},
			},
		}, nil)
	f.ingestor.EXPECT().IngestItem(gomock.Any(), gomock.Any()).
		Return(IngestResult{Created: true}, nil)
	f.subs.EXPECT().MarkPolled(gomock.Any(), sub.ID, f.now).Return(nil)
	f.subs.EXPECT().UpdateWatermark(gomock.Any(), sub.ID, gomock.Any(), nil, f.now).Return(nil)

	f.health.EXPECT().HandlePollSuccess(gomock.Any(), sub).Return(nil)

	result := f.scheduler.RunOnce(context.Background())
	assert.False(t, result.Skipped)
	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 1, result.NewItems)
}

func TestRunOnceRateLimitedGroupIsDeferred(t *testing.T) {
	f := newSchedulerFixture(t)
	watermark := millis("2024-01-10T00:00:00Z")
	sub := rssSub(&watermark)

	f.kv.EXPECT().
		AcquireLock(gomock.Any(), cronLockKey, gomock.Any(), 15*time.Minute).
		Return(true, nil)
	f.kv.EXPECT().ReleaseLock(gomock.Any(), cronLockKey, gomock.Any()).Return(nil)
	f.subs.EXPECT().FindDue(gomock.Any(), f.now).Return([]*models.Subscription{sub}, nil)
	// limiter rejection defers the group: no fetch, no outcome reporting
	f.limiter.EXPECT().Allow(models.ProviderRSS, "user-1").Return(false)

	result := f.scheduler.RunOnce(context.Background())
	assert.Zero(t, result.Processed)
	assert.Empty(t, result.Errors)
}

func TestRunOnceTokenFailureRoutesThroughHealthMonitor(t *testing.T) {
	f := newSchedulerFixture(t)
	lastPolled := millis("2024-01-10T00:00:00Z")

	subA := ytSub(&lastPolled)
	subB := ytSub(&lastPolled)
	subB.ID = "01SUB-B"

	f.kv.EXPECT().
		AcquireLock(gomock.Any(), cronLockKey, gomock.Any(), 15*time.Minute).
		Return(true, nil)
	f.kv.EXPECT().ReleaseLock(gomock.Any(), cronLockKey, gomock.Any()).Return(nil)
	f.subs.EXPECT().FindDue(gomock.Any(), f.now).Return([]*models.Subscription{subA, subB}, nil)
	f.limiter.EXPECT().Allow(models.ProviderYouTube, "user-1").Return(true)

	f.tokens.EXPECT().
		GetValidToken(gomock.Any(), "user-1", models.ProviderYouTube).
		Return("", driver.ErrRefreshTokenInvalid)

	f.health.EXPECT().HandlePollError(gomock.Any(), subA, gomock.Any()).Return(nil)
	f.health.EXPECT().HandlePollError(gomock.Any(), subB, gomock.Any()).Return(nil)

	result := f.scheduler.RunOnce(context.Background())
	require.Len(t, result.Errors, 2)
}

func TestRunOnceSkipsSuccessReportingForDisconnectedSubs(t *testing.T) {
	f := newSchedulerFixture(t)
	watermark := millis("2024-01-10T00:00:00Z")
	sub := rssSub(&watermark)

	f.kv.EXPECT().
		AcquireLock(gomock.Any(), cronLockKey, gomock.Any(), 15*time.Minute).
		Return(true, nil)
	f.kv.EXPECT().ReleaseLock(gomock.Any(), cronLockKey, gomock.Any()).Return(nil)
	f.subs.EXPECT().FindDue(gomock.Any(), f.now).Return([]*models.Subscription{sub}, nil)
	f.limiter.EXPECT().Allow(models.ProviderRSS, "user-1").Return(true)

	f.fetcher.EXPECT().FetchFeed(gomock.Any(), sub.ProviderChannelID, rssPollFetchLimit).
		DoAndReturn(func(context.Context, string, int) (*driver.RSSFeedInfo, error) {
			// simulate a disconnect that happened mid-run
			sub.Status = models.SubscriptionDisconnected
			return &driver.RSSFeedInfo{Title: "Example Blog"}, nil
		})
	f.subs.EXPECT().MarkPolled(gomock.Any(), sub.ID, f.now).Return(nil)
	// no HandlePollSuccess: the sub is no longer active

	result := f.scheduler.RunOnce(context.Background())
	assert.Equal(t, 1, result.Processed)
}

// The distributed lock itself is exercised against a real Redis protocol
// implementation: two schedulers racing on one key serialize.
func TestSchedulerLockSerializesAcrossInstances(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	kv := driver.NewRedisDriver(client)
	ctx := context.Background()

	acquired, err := kv.AcquireLock(ctx, cronLockKey, "owner-a", 15*time.Minute)
	require.NoError(t, err)
	assert.True(t, acquired)

	acquired, err = kv.AcquireLock(ctx, cronLockKey, "owner-b", 15*time.Minute)
	require.NoError(t, err)
	assert.False(t, acquired, "second instance must lose the race")

	// the loser cannot release the winner's lock
	require.NoError(t, kv.ReleaseLock(ctx, cronLockKey, "owner-b"))
	acquired, err = kv.AcquireLock(ctx, cronLockKey, "owner-c", 15*time.Minute)
	require.NoError(t, err)
	assert.False(t, acquired)

	require.NoError(t, kv.ReleaseLock(ctx, cronLockKey, "owner-a"))
	acquired, err = kv.AcquireLock(ctx, cronLockKey, "owner-c", 15*time.Minute)
	require.NoError(t, err)
	assert.True(t, acquired)
}
