// ABOUTME: Tests for the subscription surface: add/remove lifecycle, throttles, caps, discover

package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"inbox-hub/driver"
	"inbox-hub/mocks"
	"inbox-hub/models"
	"inbox-hub/repository"
)

type subscriptionFixture struct {
	svc         *SubscriptionService
	subs        *mocks.MockSubscriptionRepository
	items       *mocks.MockItemRepository
	creators    *mocks.MockCreatorRepository
	connections *mocks.MockConnectionRepository
	tokens      *MockTokenProvider
	youtube     *MockYouTubeAPI
	spotify     *MockSpotifyAPI
	rss         *MockRSSFetcher
	ingestor    *MockItemIngestor
	kv          *MockKV
	now         int64
}

func newSubscriptionFixture(t *testing.T) *subscriptionFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	subs := mocks.NewMockSubscriptionRepository(ctrl)
	items := mocks.NewMockItemRepository(ctrl)
	creators := mocks.NewMockCreatorRepository(ctrl)
	connections := mocks.NewMockConnectionRepository(ctrl)
	tokens := NewMockTokenProvider(ctrl)
	youtube := NewMockYouTubeAPI(ctrl)
	spotify := NewMockSpotifyAPI(ctrl)
	rss := NewMockRSSFetcher(ctrl)
	ingestor := NewMockItemIngestor(ctrl)
	kv := NewMockKV(ctrl)

	now := millis("2024-01-20T12:00:00Z")
	ytPoller := NewYouTubePoller(youtube, ingestor, subs, nil)
	ytPoller.now = func() int64 { return now }
	spPoller := NewSpotifyPoller(spotify, ingestor, subs, kv, 5, nil)
	spPoller.now = func() int64 { return now }
	rssPoller := NewRSSPoller(rss, ingestor, subs, nil)
	rssPoller.now = func() int64 { return now }
	initial := NewInitialFetchService(youtube, spotify, rss, tokens, ingestor, subs,
		ytPoller, spPoller, rssPoller, nil)
	initial.now = func() int64 { return now }

	svc := NewSubscriptionService(subs, items, creators, connections, tokens,
		youtube, spotify, initial, ytPoller, spPoller, rssPoller, kv, nil)
	svc.now = func() int64 { return now }

	return &subscriptionFixture{
		svc:         svc,
		subs:        subs,
		items:       items,
		creators:    creators,
		connections: connections,
		tokens:      tokens,
		youtube:     youtube,
		spotify:     spotify,
		rss:         rss,
		ingestor:    ingestor,
		kv:          kv,
		now:         now,
	}
}

func TestAddValidation(t *testing.T) {
	tests := map[string]struct {
		input AddInput
	}{
		"unknown_provider":   {input: AddInput{Provider: "MYSPACE", ProviderChannelID: "x"}},
		"missing_channel_id": {input: AddInput{Provider: models.ProviderYouTube}},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			f := newSubscriptionFixture(t)
			_, err := f.svc.Add(context.Background(), "user-1", tc.input)
			require.ErrorIs(t, err, ErrBadRequest)
		})
	}
}

func TestAddRequiresActiveConnection(t *testing.T) {
	f := newSubscriptionFixture(t)

	f.connections.EXPECT().
		FindByUserProvider(gomock.Any(), "user-1", models.ProviderYouTube).
		Return(nil, repository.ErrNotFound)

	_, err := f.svc.Add(context.Background(), "user-1", AddInput{
		Provider:          models.ProviderYouTube,
		ProviderChannelID: "UCabc",
	})
	require.ErrorIs(t, err, ErrNoActiveConnection)
}

func TestAddRSSRunsWelcomeFetch(t *testing.T) {
	// RSS needs no connection; the welcome fetch runs and its failure
	// never rolls the subscription back.
	f := newSubscriptionFixture(t)

	f.subs.EXPECT().Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sub *models.Subscription) (*models.Subscription, error) {
			assert.Equal(t, models.SubscriptionActive, sub.Status)
			assert.Equal(t, defaultPollIntervalSeconds, sub.PollIntervalSeconds)
			out := *sub
			out.ID = "01NEW"
			return &out, nil
		})
	f.rss.EXPECT().FetchFeed(gomock.Any(), "https://example.com/feed.xml", rssPollFetchLimit).
		Return(nil, driver.ErrTemporaryFailure)
	f.subs.EXPECT().MarkPolled(gomock.Any(), "01NEW", f.now).Return(nil)

	sub, err := f.svc.Add(context.Background(), "user-1", AddInput{
		Provider:          models.ProviderRSS,
		ProviderChannelID: "https://example.com/feed.xml",
	})
	require.NoError(t, err)
	assert.Equal(t, "01NEW", sub.ID)
}

func TestAddSeedsCreatorFromPayload(t *testing.T) {
	// The payload name/image create the creator row up front, the new
	// subscription links to it, and the response echoes both fields.
	f := newSubscriptionFixture(t)
	image := "https://example.com/logo.png"
	syntheticID := models.SyntheticCreatorID(models.ProviderRSS, "Morning Digest")

	var creatorID string
	f.creators.EXPECT().
		FindByProviderID(gomock.Any(), models.ProviderRSS, syntheticID).
		Return(nil, repository.ErrNotFound)
	f.creators.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *models.Creator) error {
			assert.Equal(t, syntheticID, c.ProviderCreatorID)
			assert.Equal(t, "Morning Digest", c.Name)
			require.NotNil(t, c.ImageURL)
			assert.Equal(t, image, *c.ImageURL)
			creatorID = c.ID
			return nil
		})
	f.subs.EXPECT().Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sub *models.Subscription) (*models.Subscription, error) {
			require.NotNil(t, sub.CreatorID)
			assert.Equal(t, creatorID, *sub.CreatorID)
			out := *sub
			out.ID = "01NEW"
			return &out, nil
		})
	f.rss.EXPECT().FetchFeed(gomock.Any(), "https://example.com/feed.xml", rssPollFetchLimit).
		Return(nil, driver.ErrTemporaryFailure)
	f.subs.EXPECT().MarkPolled(gomock.Any(), "01NEW", f.now).Return(nil)

	view, err := f.svc.Add(context.Background(), "user-1", AddInput{
		Provider:          models.ProviderRSS,
		ProviderChannelID: "https://example.com/feed.xml",
		Name:              "Morning Digest",
		ImageURL:          &image,
	})
	require.NoError(t, err)
	assert.Equal(t, "Morning Digest", view.Name)
	require.NotNil(t, view.ImageURL)
	assert.Equal(t, image, *view.ImageURL)
}

func TestRemovePurgesInboxThenTrackingRows(t *testing.T) {
	f := newSubscriptionFixture(t)
	watermark := millis("2024-01-10T00:00:00Z")
	sub := rssSub(&watermark)

	f.subs.EXPECT().FindByID(gomock.Any(), "01RSSSUB").Return(sub, nil)
	gomock.InOrder(
		f.subs.EXPECT().UpdateStatus(gomock.Any(), "01RSSSUB", models.SubscriptionUnsubscribed, nil, f.now).Return(nil),
		// the inbox purge selects via the tracking rows, so it must run first
		f.items.EXPECT().DeleteInboxUserItems(gomock.Any(), "user-1", "01RSSSUB").Return(int64(4), nil),
		f.items.EXPECT().DeleteSubscriptionItems(gomock.Any(), "01RSSSUB").Return(nil),
	)

	require.NoError(t, f.svc.Remove(context.Background(), "user-1", "01RSSSUB"))
}

func TestRemoveForeignSubscriptionIsNotFound(t *testing.T) {
	f := newSubscriptionFixture(t)
	watermark := millis("2024-01-10T00:00:00Z")
	sub := rssSub(&watermark)
	sub.UserID = "someone-else"

	f.subs.EXPECT().FindByID(gomock.Any(), "01RSSSUB").Return(sub, nil)

	err := f.svc.Remove(context.Background(), "user-1", "01RSSSUB")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPauseAndResumePreconditions(t *testing.T) {
	t.Run("pause_requires_active", func(t *testing.T) {
		f := newSubscriptionFixture(t)
		watermark := millis("2024-01-10T00:00:00Z")
		sub := rssSub(&watermark)
		sub.Status = models.SubscriptionPaused

		f.subs.EXPECT().FindByID(gomock.Any(), "01RSSSUB").Return(sub, nil)
		require.ErrorIs(t, f.svc.Pause(context.Background(), "user-1", "01RSSSUB"), ErrBadRequest)
	})

	t.Run("pause_active_succeeds", func(t *testing.T) {
		f := newSubscriptionFixture(t)
		watermark := millis("2024-01-10T00:00:00Z")
		sub := rssSub(&watermark)

		f.subs.EXPECT().FindByID(gomock.Any(), "01RSSSUB").Return(sub, nil)
		f.subs.EXPECT().UpdateStatus(gomock.Any(), "01RSSSUB", models.SubscriptionPaused, nil, f.now).Return(nil)
		require.NoError(t, f.svc.Pause(context.Background(), "user-1", "01RSSSUB"))
	})

	t.Run("resume_rechecks_connection", func(t *testing.T) {
		f := newSubscriptionFixture(t)
		lastPolled := millis("2024-01-10T00:00:00Z")
		sub := ytSub(&lastPolled)
		sub.Status = models.SubscriptionPaused

		f.subs.EXPECT().FindByID(gomock.Any(), "01SUB").Return(sub, nil)
		f.connections.EXPECT().
			FindByUserProvider(gomock.Any(), "user-1", models.ProviderYouTube).
			Return(&models.ProviderConnection{ID: "conn-1", Status: models.ConnectionExpired}, nil)

		require.ErrorIs(t, f.svc.Resume(context.Background(), "user-1", "01SUB"), ErrNoActiveConnection)
	})
}

func TestSyncNowThrottled(t *testing.T) {
	f := newSubscriptionFixture(t)
	watermark := millis("2024-01-10T00:00:00Z")
	sub := rssSub(&watermark)

	f.subs.EXPECT().FindByID(gomock.Any(), "01RSSSUB").Return(sub, nil)
	f.kv.EXPECT().
		SetNXWithTTL(gomock.Any(), fmt.Sprintf(manualSyncKeyFmt, "01RSSSUB"), manualSyncTTL).
		Return(false, nil)

	_, err := f.svc.SyncNow(context.Background(), "user-1", "01RSSSUB")
	require.ErrorIs(t, err, ErrThrottled)
}

func TestSyncNowPollsSubscription(t *testing.T) {
	f := newSubscriptionFixture(t)
	watermark := millis("2024-01-10T00:00:00Z")
	sub := rssSub(&watermark)

	f.subs.EXPECT().FindByID(gomock.Any(), "01RSSSUB").Return(sub, nil)
	f.kv.EXPECT().SetNXWithTTL(gomock.Any(), gomock.Any(), manualSyncTTL).Return(true, nil)
	f.rss.EXPECT().FetchFeed(gomock.Any(), sub.ProviderChannelID, rssPollFetchLimit).
		Return(&driver.RSSFeedInfo{
			Title: "Example Blog",
			Entries: []driver.RSSEntry{
				{GUID: "new", Link: "https://example.com/new", PublishedAt: timePtr("2024-01-15T00:00:00Z")},
			},
		}, nil)
	f.ingestor.EXPECT().IngestItem(gomock.Any(), gomock.Any()).Return(IngestResult{Created: true}, nil)
	f.subs.EXPECT().MarkPolled(gomock.Any(), "01RSSSUB", f.now).Return(nil)
	f.subs.EXPECT().UpdateWatermark(gomock.Any(), "01RSSSUB", gomock.Any(), nil, f.now).Return(nil)

	newItems, err := f.svc.SyncNow(context.Background(), "user-1", "01RSSSUB")
	require.NoError(t, err)
	assert.Equal(t, 1, newItems)
}

func TestSyncAllThrottled(t *testing.T) {
	f := newSubscriptionFixture(t)

	f.kv.EXPECT().
		SetNXWithTTL(gomock.Any(), fmt.Sprintf(syncAllKeyFmt, "user-1"), syncAllTTL).
		Return(false, nil)

	_, err := f.svc.SyncAll(context.Background(), "user-1")
	require.ErrorIs(t, err, ErrThrottled)
}

func TestSyncAllCapsPerProvider(t *testing.T) {
	f := newSubscriptionFixture(t)
	watermark := millis("2024-01-10T00:00:00Z")

	var rssSubs []*models.Subscription
	for i := 0; i < syncAllSpotifyCap+3; i++ {
		s := rssSub(&watermark)
		s.ID = fmt.Sprintf("01RSS%03d", i)
		s.ProviderChannelID = fmt.Sprintf("https://example.com/feed-%d.xml", i)
		rssSubs = append(rssSubs, s)
	}

	f.kv.EXPECT().SetNXWithTTL(gomock.Any(), gomock.Any(), syncAllTTL).Return(true, nil)
	f.subs.EXPECT().ListActiveByUserProvider(gomock.Any(), "user-1", models.ProviderYouTube).Return(nil, nil)
	f.subs.EXPECT().ListActiveByUserProvider(gomock.Any(), "user-1", models.ProviderSpotify).Return(nil, nil)
	f.subs.EXPECT().ListActiveByUserProvider(gomock.Any(), "user-1", models.ProviderRSS).Return(rssSubs, nil)

	// only the capped prefix gets polled
	f.rss.EXPECT().FetchFeed(gomock.Any(), gomock.Any(), rssPollFetchLimit).
		Return(&driver.RSSFeedInfo{Title: "Feed"}, nil).
		Times(syncAllSpotifyCap)
	f.subs.EXPECT().MarkPolled(gomock.Any(), gomock.Any(), f.now).Return(nil).Times(syncAllSpotifyCap)

	result, err := f.svc.SyncAll(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, syncAllSpotifyCap, result.Synced)
	assert.True(t, result.HasMoreToSync)
	assert.Equal(t, 3, result.Remaining)
}

func TestSyncAllNeverPolledSortFirst(t *testing.T) {
	f := newSubscriptionFixture(t)
	older := millis("2024-01-05T00:00:00Z")
	newer := millis("2024-01-15T00:00:00Z")

	polledNewer := rssSub(nil)
	polledNewer.ID = "01POLLED-NEW"
	polledNewer.LastPolledAt = &newer
	polledOlder := rssSub(nil)
	polledOlder.ID = "01POLLED-OLD"
	polledOlder.LastPolledAt = &older
	fresh := rssSub(nil)
	fresh.ID = "01FRESH"

	f.kv.EXPECT().SetNXWithTTL(gomock.Any(), gomock.Any(), syncAllTTL).Return(true, nil)
	f.subs.EXPECT().ListActiveByUserProvider(gomock.Any(), "user-1", models.ProviderYouTube).Return(nil, nil)
	f.subs.EXPECT().ListActiveByUserProvider(gomock.Any(), "user-1", models.ProviderSpotify).Return(nil, nil)
	f.subs.EXPECT().ListActiveByUserProvider(gomock.Any(), "user-1", models.ProviderRSS).
		Return([]*models.Subscription{polledNewer, fresh, polledOlder}, nil)

	var polledOrder []string
	f.rss.EXPECT().FetchFeed(gomock.Any(), gomock.Any(), rssPollFetchLimit).
		Return(&driver.RSSFeedInfo{Title: "Feed"}, nil).
		Times(3)
	f.subs.EXPECT().MarkPolled(gomock.Any(), gomock.Any(), f.now).
		DoAndReturn(func(_ context.Context, id string, _ int64) error {
			polledOrder = append(polledOrder, id)
			return nil
		}).Times(3)

	_, err := f.svc.SyncAll(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"01FRESH", "01POLLED-OLD", "01POLLED-NEW"}, polledOrder)
}

func TestListJoinsCreatorsAndPaginates(t *testing.T) {
	f := newSubscriptionFixture(t)
	creatorID := "01CREATOR"

	page := make([]*models.Subscription, 0, 3)
	for i := 0; i < 3; i++ {
		watermark := millis("2024-01-10T00:00:00Z")
		s := rssSub(&watermark)
		s.ID = fmt.Sprintf("01LIST%d", i)
		s.CreatorID = &creatorID
		page = append(page, s)
	}

	f.subs.EXPECT().ListByUser(gomock.Any(), "user-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, filter repository.SubscriptionListFilter) ([]*models.Subscription, error) {
			// one extra row probes for another page
			assert.Equal(t, 3, filter.Limit)
			return page, nil
		})
	f.creators.EXPECT().FindByIDs(gomock.Any(), gomock.Any()).
		Return(map[string]*models.Creator{
			creatorID: {ID: creatorID, Name: "Example Blog"},
		}, nil)

	result, err := f.svc.List(context.Background(), "user-1", repository.SubscriptionListFilter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, result.Items, 2)
	assert.True(t, result.HasMore)
	assert.Equal(t, "01LIST1", result.NextCursor)
	assert.Equal(t, "Example Blog", result.Items[0].Name)
}

func TestDiscoverAvailableConnectionRequired(t *testing.T) {
	tests := map[string]struct {
		tokenErr error
	}{
		"no_connection_row": {tokenErr: repository.ErrNotFound},
		"expired_refresh":   {tokenErr: driver.ErrRefreshTokenInvalid},
		"revoked_access":    {tokenErr: driver.ErrAccessRevoked},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			f := newSubscriptionFixture(t)
			f.tokens.EXPECT().
				GetValidToken(gomock.Any(), "user-1", models.ProviderSpotify).
				Return("", fmt.Errorf("wrapped: %w", tc.tokenErr))

			result, err := f.svc.DiscoverAvailable(context.Background(), "user-1", models.ProviderSpotify)
			require.NoError(t, err)
			assert.True(t, result.ConnectionRequired)
			assert.Empty(t, result.Items)
		})
	}
}

func TestDiscoverAvailableFlagsSubscribed(t *testing.T) {
	f := newSubscriptionFixture(t)

	f.tokens.EXPECT().
		GetValidToken(gomock.Any(), "user-1", models.ProviderSpotify).
		Return("token", nil)
	f.subs.EXPECT().
		ListNonUnsubscribedChannelIDs(gomock.Any(), "user-1", models.ProviderSpotify).
		Return(map[string]bool{"show-known": true}, nil)
	f.spotify.EXPECT().ListSavedShows(gomock.Any(), "token").
		Return([]driver.SpotifyShow{
			{ID: "show-known", Name: "Known"},
			{ID: "show-new", Name: "New"},
		}, nil)

	result, err := f.svc.DiscoverAvailable(context.Background(), "user-1", models.ProviderSpotify)
	require.NoError(t, err)
	require.Len(t, result.Items, 2)
	assert.True(t, result.Items[0].IsSubscribed)
	assert.False(t, result.Items[1].IsSubscribed)
}

func TestDiscoverRSSNeedsNoConnection(t *testing.T) {
	f := newSubscriptionFixture(t)

	result, err := f.svc.DiscoverAvailable(context.Background(), "user-1", models.ProviderRSS)
	require.NoError(t, err)
	assert.False(t, result.ConnectionRequired)
	assert.Empty(t, result.Items)
}
