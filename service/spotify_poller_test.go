// ABOUTME: Tests for the Spotify poller: delta detection, missing-show disconnect, unplayable filter

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"inbox-hub/driver"
	"inbox-hub/mocks"
	"inbox-hub/models"
)

func spSub(totalItems *int, lastPublishedAt *int64) *models.Subscription {
	lastPolled := millis("2024-01-01T00:00:00Z")
	return &models.Subscription{
		ID:                  "01SPSUB",
		UserID:              "user-1",
		Provider:            models.ProviderSpotify,
		ProviderChannelID:   "show-1",
		TotalItems:          totalItems,
		LastPublishedAt:     lastPublishedAt,
		LastPolledAt:        &lastPolled,
		PollIntervalSeconds: IntervalActive,
		Status:              models.SubscriptionActive,
	}
}

func newSpotifyPollerForTest(t *testing.T, nowMillis int64) (*SpotifyPoller, *MockSpotifyAPI, *MockItemIngestor, *mocks.MockSubscriptionRepository, *MockKV) {
	t.Helper()
	ctrl := gomock.NewController(t)
	client := NewMockSpotifyAPI(ctrl)
	ingestor := NewMockItemIngestor(ctrl)
	subs := mocks.NewMockSubscriptionRepository(ctrl)
	kv := NewMockKV(ctrl)
	p := NewSpotifyPoller(client, ingestor, subs, kv, 5, nil)
	p.now = func() int64 { return nowMillis }
	return p, client, ingestor, subs, kv
}

func expectShowCacheMiss(kv *MockKV, showID string) {
	kv.EXPECT().GetJSON(gomock.Any(), fmt.Sprintf(showCacheKeyFmt, showID), gomock.Any()).
		Return(driver.ErrCacheMiss)
}

func TestSpotifyDeltaDetectionSkipsEpisodeFetch(t *testing.T) {
	now := millis("2024-01-20T12:00:00Z")
	p, client, _, subs, kv := newSpotifyPollerForTest(t, now)
	sub := spSub(intPtr(42), nil)

	expectShowCacheMiss(kv, "show-1")
	client.EXPECT().GetShows(gomock.Any(), "token", []string{"show-1"}).
		Return(map[string]driver.SpotifyShow{
			"show-1": {ID: "show-1", Name: "Show", TotalEpisodes: 42},
		}, nil)
	// totalEpisodes matches the stored count; no episode fetch happens
	subs.EXPECT().MarkPolled(gomock.Any(), "01SPSUB", now).Return(nil)

	result := p.PollBatch(context.Background(), []*models.Subscription{sub}, "token")
	assert.Equal(t, 1, result.Processed)
	assert.Zero(t, result.NewItems)
	assert.Empty(t, result.Errors)
}

func TestSpotifyMissingShowDisconnects(t *testing.T) {
	now := millis("2024-01-20T12:00:00Z")
	p, client, _, subs, kv := newSpotifyPollerForTest(t, now)
	sub := spSub(intPtr(10), nil)

	expectShowCacheMiss(kv, "show-1")
	client.EXPECT().GetShows(gomock.Any(), "token", []string{"show-1"}).
		Return(map[string]driver.SpotifyShow{}, nil)

	reason := showMissingReason
	subs.EXPECT().UpdateStatus(gomock.Any(), "01SPSUB", models.SubscriptionDisconnected, &reason, now).Return(nil)
	kv.EXPECT().DeleteKey(gomock.Any(), fmt.Sprintf(showCacheKeyFmt, "show-1")).Return(nil)

	result := p.PollBatch(context.Background(), []*models.Subscription{sub}, "token")
	assert.Equal(t, 1, result.Disconnected)
	assert.Equal(t, models.SubscriptionDisconnected, sub.Status)
	require.NotNil(t, sub.DisconnectedReason)
	assert.Equal(t, showMissingReason, *sub.DisconnectedReason)
}

func TestSpotifyUnplayableEpisodesFiltered(t *testing.T) {
	now := millis("2024-01-20T12:00:00Z")
	watermark := millis("2024-01-01T00:00:00Z")
	p, client, ingestor, subs, kv := newSpotifyPollerForTest(t, now)
	sub := spSub(intPtr(10), &watermark)

	show := driver.SpotifyShow{ID: "show-1", Name: "Show", TotalEpisodes: 12}
	expectShowCacheMiss(kv, "show-1")
	client.EXPECT().GetShows(gomock.Any(), "token", []string{"show-1"}).
		Return(map[string]driver.SpotifyShow{"show-1": show}, nil)

	client.EXPECT().GetShowEpisodes(gomock.Any(), "token", "show-1", spotifyEpisodeFetchLimit).
		Return([]driver.SpotifyEpisode{
			{ID: "ep-blocked", Name: "blocked", ReleaseDate: "2024-01-15", IsPlayable: false, DurationMs: 60000},
			{ID: "ep-ok", Name: "ok", ReleaseDate: "2024-01-14", IsPlayable: true, DurationMs: 60000},
		}, nil)

	ingestor.EXPECT().IngestItem(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input IngestInput) (IngestResult, error) {
			assert.Equal(t, "ep-ok", input.ProviderItemID)
			assert.Equal(t, models.ContentTypePodcast, input.ContentType)
			return IngestResult{Created: true}, nil
		})

	subs.EXPECT().MarkPolled(gomock.Any(), "01SPSUB", now).Return(nil)
	subs.EXPECT().UpdateWatermark(gomock.Any(), "01SPSUB", int64Ptr(millis("2024-01-14T00:00:00Z")), intPtr(12), now).Return(nil)
	kv.EXPECT().SetJSON(gomock.Any(), fmt.Sprintf(showCacheKeyFmt, "show-1"), gomock.Any(), showCacheTTL).Return(nil)

	result := p.PollBatch(context.Background(), []*models.Subscription{sub}, "token")
	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 1, result.NewItems)
	require.NotNil(t, sub.TotalItems)
	assert.Equal(t, 12, *sub.TotalItems)
}

func TestSpotifyWatermarkSelectionDayPrecision(t *testing.T) {
	// Release dates are day-precision; episodes released exactly at the
	// watermark are not re-selected.
	now := millis("2024-01-20T12:00:00Z")
	watermark := millis("2024-01-10T00:00:00Z")
	p, client, ingestor, subs, kv := newSpotifyPollerForTest(t, now)
	sub := spSub(intPtr(5), &watermark)

	show := driver.SpotifyShow{ID: "show-1", Name: "Show", TotalEpisodes: 7}
	client.EXPECT().GetShowEpisodes(gomock.Any(), "token", "show-1", spotifyEpisodeFetchLimit).
		Return([]driver.SpotifyEpisode{
			{ID: "ep-at-watermark", ReleaseDate: "2024-01-10", IsPlayable: true},
			{ID: "ep-newer", ReleaseDate: "2024-01-12", IsPlayable: true},
		}, nil)

	ingestor.EXPECT().IngestItem(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input IngestInput) (IngestResult, error) {
			assert.Equal(t, "ep-newer", input.ProviderItemID)
			return IngestResult{Created: true}, nil
		})

	subs.EXPECT().MarkPolled(gomock.Any(), "01SPSUB", now).Return(nil)
	subs.EXPECT().UpdateWatermark(gomock.Any(), "01SPSUB", int64Ptr(millis("2024-01-12T00:00:00Z")), intPtr(7), now).Return(nil)
	kv.EXPECT().SetJSON(gomock.Any(), gomock.Any(), gomock.Any(), showCacheTTL).Return(nil)

	newItems, err := p.pollEpisodes(context.Background(), sub, "token", &show)
	require.NoError(t, err)
	assert.Equal(t, 1, newItems)
}

func TestSpotifyBatchCountsItemsFromPartialFailures(t *testing.T) {
	// One episode lands before the next ingest fails: the batch reports
	// the item alongside the error instead of discarding it.
	now := millis("2024-01-20T12:00:00Z")
	watermark := millis("2024-01-10T00:00:00Z")
	p, client, ingestor, subs, kv := newSpotifyPollerForTest(t, now)
	sub := spSub(intPtr(10), &watermark)

	show := driver.SpotifyShow{ID: "show-1", Name: "Show", TotalEpisodes: 12}
	expectShowCacheMiss(kv, "show-1")
	client.EXPECT().GetShows(gomock.Any(), "token", []string{"show-1"}).
		Return(map[string]driver.SpotifyShow{"show-1": show}, nil)
	client.EXPECT().GetShowEpisodes(gomock.Any(), "token", "show-1", spotifyEpisodeFetchLimit).
		Return([]driver.SpotifyEpisode{
			{ID: "ep-newest", ReleaseDate: "2024-01-18", IsPlayable: true},
			{ID: "ep-older", ReleaseDate: "2024-01-15", IsPlayable: true},
		}, nil)

	ingestor.EXPECT().IngestItem(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input IngestInput) (IngestResult, error) {
			if input.ProviderItemID == "ep-newest" {
				return IngestResult{Created: true}, nil
			}
			return IngestResult{}, errors.New("insert failed")
		}).Times(2)

	subs.EXPECT().MarkPolled(gomock.Any(), "01SPSUB", now).Return(nil)
	subs.EXPECT().UpdateWatermark(gomock.Any(), "01SPSUB", int64Ptr(millis("2024-01-18T00:00:00Z")), intPtr(12), now).Return(nil)
	kv.EXPECT().SetJSON(gomock.Any(), fmt.Sprintf(showCacheKeyFmt, "show-1"), gomock.Any(), showCacheTTL).Return(nil)

	result := p.PollBatch(context.Background(), []*models.Subscription{sub}, "token")
	assert.Equal(t, 0, result.Processed)
	assert.Equal(t, 1, result.NewItems)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "01SPSUB", result.Errors[0].SubscriptionID)
}

func TestSpotifyTotalItemsUntouchedWhenIngestionFails(t *testing.T) {
	now := millis("2024-01-20T12:00:00Z")
	watermark := millis("2024-01-10T00:00:00Z")
	p, client, ingestor, subs, _ := newSpotifyPollerForTest(t, now)
	sub := spSub(intPtr(5), &watermark)

	show := driver.SpotifyShow{ID: "show-1", Name: "Show", TotalEpisodes: 7}
	client.EXPECT().GetShowEpisodes(gomock.Any(), "token", "show-1", spotifyEpisodeFetchLimit).
		Return([]driver.SpotifyEpisode{
			{ID: "ep-new", ReleaseDate: "2024-01-12", IsPlayable: true},
		}, nil)
	ingestor.EXPECT().IngestItem(gomock.Any(), gomock.Any()).
		Return(IngestResult{}, errors.New("insert failed"))
	subs.EXPECT().MarkPolled(gomock.Any(), "01SPSUB", now).Return(nil)

	_, err := p.pollEpisodes(context.Background(), sub, "token", &show)
	require.Error(t, err)
	// neither the watermark nor totalItems moved, so the delta fires again next poll
	assert.Equal(t, watermark, *sub.LastPublishedAt)
	assert.Equal(t, 5, *sub.TotalItems)
}

func TestSpotifyShowLookupServedFromCache(t *testing.T) {
	now := millis("2024-01-20T12:00:00Z")
	p, _, _, _, kv := newSpotifyPollerForTest(t, now)

	kv.EXPECT().GetJSON(gomock.Any(), fmt.Sprintf(showCacheKeyFmt, "show-1"), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, out any) error {
			*out.(*driver.SpotifyShow) = driver.SpotifyShow{ID: "show-1", Name: "Cached", TotalEpisodes: 3}
			return nil
		})

	shows, err := p.lookupShows(context.Background(), "token", []string{"show-1"})
	require.NoError(t, err)
	assert.Equal(t, "Cached", shows["show-1"].Name)
}
