// ABOUTME: Initial fetch: ingest exactly one latest eligible item on subscribe ("welcome" seed)
// ABOUTME: Failures are logged and swallowed; the subscription stays ACTIVE either way

package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"inbox-hub/driver"
	"inbox-hub/ids"
	"inbox-hub/models"
	"inbox-hub/repository"
)

// InitialFetchService seeds a fresh subscription with one welcome item
// so the next poll's delta detection has a baseline.
type InitialFetchService struct {
	youtube       YouTubeAPI
	spotify       SpotifyAPI
	rss           RSSFetcher
	tokens        TokenProvider
	ingestor      ItemIngestor
	subs          repository.SubscriptionRepository
	youtubePoller *YouTubePoller
	spotifyPoller *SpotifyPoller
	rssPoller     *RSSPoller
	logger        *slog.Logger
	now           func() int64
}

// NewInitialFetchService creates the welcome-item seeder. The pollers
// are borrowed for their ingest-input builders.
func NewInitialFetchService(
	youtube YouTubeAPI,
	spotify SpotifyAPI,
	rss RSSFetcher,
	tokens TokenProvider,
	ingestor ItemIngestor,
	subs repository.SubscriptionRepository,
	youtubePoller *YouTubePoller,
	spotifyPoller *SpotifyPoller,
	rssPoller *RSSPoller,
	logger *slog.Logger,
) *InitialFetchService {
	if logger == nil {
		logger = slog.Default()
	}
	return &InitialFetchService{
		youtube:       youtube,
		spotify:       spotify,
		rss:           rss,
		tokens:        tokens,
		ingestor:      ingestor,
		subs:          subs,
		youtubePoller: youtubePoller,
		spotifyPoller: spotifyPoller,
		rssPoller:     rssPoller,
		logger:        logger,
		now:           ids.NowMillis,
	}
}

// Run seeds the subscription. Errors never propagate; the add operation
// that triggered the fetch has already committed.
func (s *InitialFetchService) Run(ctx context.Context, sub *models.Subscription) {
	var err error
	switch sub.Provider {
	case models.ProviderYouTube:
		err = s.fetchYouTube(ctx, sub)
	case models.ProviderSpotify:
		err = s.fetchSpotify(ctx, sub)
	case models.ProviderRSS:
		err = s.fetchRSS(ctx, sub)
	default:
		err = fmt.Errorf("no initial fetch for provider %s", sub.Provider)
	}

	s.markPolled(ctx, sub)
	if err != nil {
		s.logger.WarnContext(ctx, "initial fetch failed",
			"subscription_id", sub.ID,
			"provider", sub.Provider,
			"error", err)
	}
}

func (s *InitialFetchService) fetchYouTube(ctx context.Context, sub *models.Subscription) error {
	token, err := s.tokens.GetValidToken(ctx, sub.UserID, models.ProviderYouTube)
	if err != nil {
		return err
	}

	playlistID, err := s.youtube.UploadsPlaylistID(sub.ProviderChannelID)
	if err != nil {
		return err
	}
	videos, err := s.youtube.ListPlaylistItems(ctx, token, playlistID, youtubePollFetchLimit)
	if err != nil {
		return err
	}

	now := s.now()
	type dated struct {
		video       driver.YouTubeVideo
		publishedAt int64
	}
	eligible := make([]dated, 0, len(videos))
	for _, v := range videos {
		if v.PrivacyStatus != "public" {
			continue
		}
		publishedAt, err := models.ParsePublishedAt(v.PublishedAt)
		if err != nil || publishedAt > now {
			continue
		}
		eligible = append(eligible, dated{video: v, publishedAt: publishedAt})
	}
	if len(eligible) == 0 {
		return nil
	}

	vids := make([]string, 0, len(eligible))
	for _, d := range eligible {
		vids = append(vids, d.video.VideoID)
	}
	details, err := s.youtube.GetVideoDetails(ctx, token, vids)
	if err != nil {
		return err
	}
	sort.Slice(eligible, func(i, j int) bool {
		return eligible[i].publishedAt > eligible[j].publishedAt
	})

	// first non-Short; all-Shorts channels get no welcome item
	for _, d := range eligible {
		if detail, ok := details[d.video.VideoID]; ok {
			d.video.DurationSeconds = detail.DurationSeconds
			if detail.Description != "" {
				d.video.Description = detail.Description
			}
		}
		if d.video.DurationSeconds != nil && *d.video.DurationSeconds <= shortsMaxSeconds {
			continue
		}
		result, err := s.ingestor.IngestItem(ctx, s.youtubePoller.ingestInput(sub, d.video, d.publishedAt))
		if err != nil {
			return err
		}
		if result.Created {
			s.seedWatermark(ctx, sub, d.publishedAt, nil)
		}
		return nil
	}
	return nil
}

func (s *InitialFetchService) fetchSpotify(ctx context.Context, sub *models.Subscription) error {
	token, err := s.tokens.GetValidToken(ctx, sub.UserID, models.ProviderSpotify)
	if err != nil {
		return err
	}

	shows, err := s.spotify.GetShows(ctx, token, []string{sub.ProviderChannelID})
	if err != nil {
		return err
	}
	show, found := shows[sub.ProviderChannelID]
	if !found {
		return fmt.Errorf("show %s not found", sub.ProviderChannelID)
	}

	episodes, err := s.spotify.GetShowEpisodes(ctx, token, sub.ProviderChannelID, 1)
	if err != nil {
		return err
	}
	if len(episodes) == 0 {
		return nil
	}
	episode := episodes[0]
	if !episode.IsPlayable {
		return nil
	}

	now := s.now()
	releaseAt := models.ParseReleaseDate(episode.ReleaseDate, now)
	if releaseAt > now {
		return nil
	}

	result, err := s.ingestor.IngestItem(ctx, s.spotifyPoller.ingestInput(sub, &show, episode, releaseAt))
	if err != nil {
		return err
	}
	if result.Created {
		s.seedWatermark(ctx, sub, releaseAt, &show.TotalEpisodes)
	}
	return nil
}

func (s *InitialFetchService) fetchRSS(ctx context.Context, sub *models.Subscription) error {
	feed, err := s.rss.FetchFeed(ctx, sub.ProviderChannelID, rssPollFetchLimit)
	if err != nil {
		return err
	}

	now := s.now()
	var newest *driver.RSSEntry
	var newestAt int64
	for i, entry := range feed.Entries {
		if entry.PublishedAt == nil {
			continue
		}
		at := entry.PublishedAt.UnixMilli()
		if at > now {
			continue
		}
		if newest == nil || at > newestAt {
			newest = &feed.Entries[i]
			newestAt = at
		}
	}
	if newest == nil {
		return nil
	}

	result, err := s.ingestor.IngestItem(ctx, s.rssPoller.ingestInput(sub, feed, *newest, newestAt))
	if err != nil {
		return err
	}
	if result.Created {
		s.seedWatermark(ctx, sub, newestAt, nil)
	}
	return nil
}

func (s *InitialFetchService) seedWatermark(ctx context.Context, sub *models.Subscription, publishedAt int64, totalItems *int) {
	if err := s.subs.UpdateWatermark(ctx, sub.ID, &publishedAt, totalItems, s.now()); err != nil {
		s.logger.WarnContext(ctx, "failed to seed watermark",
			"subscription_id", sub.ID, "error", err)
		return
	}
	sub.LastPublishedAt = &publishedAt
	if totalItems != nil {
		sub.TotalItems = totalItems
	}
}

func (s *InitialFetchService) markPolled(ctx context.Context, sub *models.Subscription) {
	now := s.now()
	if err := s.subs.MarkPolled(ctx, sub.ID, now); err != nil {
		s.logger.WarnContext(ctx, "failed to mark subscription polled",
			"subscription_id", sub.ID, "error", err)
		return
	}
	sub.LastPolledAt = &now
}
