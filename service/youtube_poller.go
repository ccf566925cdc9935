// ABOUTME: YouTube channel poller: uploads playlist fetch, shorts filter, new-delta selection
// ABOUTME: Batch mode fetches playlists in waves of 6 and merges one aggregated details batch

package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"inbox-hub/driver"
	"inbox-hub/ids"
	"inbox-hub/metrics"
	"inbox-hub/models"
	"inbox-hub/repository"
)

const (
	youtubePollFetchLimit = 10
	shortsMaxSeconds      = 180
	youtubePlaylistWaves  = 6
)

// YouTubePoller polls video channel subscriptions.
type YouTubePoller struct {
	client   YouTubeAPI
	ingestor ItemIngestor
	subs     repository.SubscriptionRepository
	logger   *slog.Logger
	now      func() int64
}

// NewYouTubePoller creates a YouTube poller.
func NewYouTubePoller(client YouTubeAPI, ingestor ItemIngestor, subs repository.SubscriptionRepository, logger *slog.Logger) *YouTubePoller {
	if logger == nil {
		logger = slog.Default()
	}
	return &YouTubePoller{
		client:   client,
		ingestor: ingestor,
		subs:     subs,
		logger:   logger,
		now:      ids.NowMillis,
	}
}

// PollSingle polls one subscription: playlist fetch, details merge,
// filter, ingest, watermark.
func (p *YouTubePoller) PollSingle(ctx context.Context, sub *models.Subscription, accessToken string) (int, error) {
	metrics.PollsTotal.WithLabelValues(string(models.ProviderYouTube)).Inc()

	videos, err := p.fetchPlaylist(ctx, sub, accessToken)
	if err != nil {
		p.markPolled(ctx, sub)
		metrics.PollErrorsTotal.WithLabelValues(string(models.ProviderYouTube)).Inc()
		return 0, err
	}

	vids := videoIDs(videos)
	if len(vids) > 0 {
		details, err := p.client.GetVideoDetails(ctx, accessToken, vids)
		if err != nil {
			// Details are enrichment; unknown durations fail safe.
			p.logger.WarnContext(ctx, "video details batch failed",
				"subscription_id", sub.ID, "error", err)
		} else {
			mergeVideoDetails(videos, details)
		}
	}

	return p.processSubscription(ctx, sub, videos)
}

// PollBatch polls a user's channel subscriptions together: playlist
// fetches run in waves of 6, then one aggregated details batch covers
// every video id. A failed playlist fetch isolates to its subscription.
func (p *YouTubePoller) PollBatch(ctx context.Context, subs []*models.Subscription, accessToken string) BatchResult {
	type fetched struct {
		sub    *models.Subscription
		videos []driver.YouTubeVideo
	}

	var (
		mu      sync.Mutex
		fetches []fetched
		result  BatchResult
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(youtubePlaylistWaves)
	for _, sub := range subs {
		g.Go(func() error {
			metrics.PollsTotal.WithLabelValues(string(models.ProviderYouTube)).Inc()
			videos, err := p.fetchPlaylist(gctx, sub, accessToken)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				p.markPolled(ctx, sub)
				metrics.PollErrorsTotal.WithLabelValues(string(models.ProviderYouTube)).Inc()
				result.Errors = append(result.Errors, SubscriptionError{SubscriptionID: sub.ID, Err: err})
				return nil
			}
			fetches = append(fetches, fetched{sub: sub, videos: videos})
			return nil
		})
	}
	_ = g.Wait()

	var allIDs []string
	for _, f := range fetches {
		allIDs = append(allIDs, videoIDs(f.videos)...)
	}
	if len(allIDs) > 0 {
		details, err := p.client.GetVideoDetails(ctx, accessToken, allIDs)
		if err != nil {
			p.logger.WarnContext(ctx, "aggregated video details batch failed", "error", err)
		} else {
			for _, f := range fetches {
				mergeVideoDetails(f.videos, details)
			}
		}
	}

	for _, f := range fetches {
		// a mid-batch failure still ingested the earlier videos
		newItems, err := p.processSubscription(ctx, f.sub, f.videos)
		result.NewItems += newItems
		if err != nil {
			result.Errors = append(result.Errors, SubscriptionError{SubscriptionID: f.sub.ID, Err: err})
			continue
		}
		result.Processed++
	}
	return result
}

func (p *YouTubePoller) fetchPlaylist(ctx context.Context, sub *models.Subscription, accessToken string) ([]driver.YouTubeVideo, error) {
	playlistID, err := p.client.UploadsPlaylistID(sub.ProviderChannelID)
	if err != nil {
		return nil, fmt.Errorf("failed to derive uploads playlist for %s: %w", sub.ProviderChannelID, err)
	}
	videos, err := p.client.ListPlaylistItems(ctx, accessToken, playlistID, youtubePollFetchLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list playlist items for %s: %w", sub.ProviderChannelID, err)
	}
	return videos, nil
}

// processSubscription filters, selects, ingests, and updates bookkeeping
// for one subscription's fetched videos.
func (p *YouTubePoller) processSubscription(ctx context.Context, sub *models.Subscription, videos []driver.YouTubeVideo) (int, error) {
	type dated struct {
		video       driver.YouTubeVideo
		publishedAt int64
	}

	eligible := make([]dated, 0, len(videos))
	for _, v := range videos {
		if v.DurationSeconds != nil && *v.DurationSeconds <= shortsMaxSeconds {
			metrics.IngestSkipsTotal.WithLabelValues(string(models.ProviderYouTube), "short").Inc()
			continue
		}
		publishedAt, err := models.ParsePublishedAt(v.PublishedAt)
		if err != nil {
			metrics.IngestSkipsTotal.WithLabelValues(string(models.ProviderYouTube), "invalid_date").Inc()
			continue
		}
		eligible = append(eligible, dated{video: v, publishedAt: publishedAt})
	}

	sort.Slice(eligible, func(i, j int) bool {
		return eligible[i].publishedAt > eligible[j].publishedAt
	})

	var selected []dated
	if sub.NeverPolled() {
		if len(eligible) > 0 {
			selected = eligible[:1]
		}
	} else {
		for _, d := range eligible {
			if d.publishedAt > *sub.LastPolledAt {
				selected = append(selected, d)
			}
		}
	}

	created := 0
	var newestIngestedAt int64
	var firstErr error
	for _, d := range selected {
		result, err := p.ingestor.IngestItem(ctx, p.ingestInput(sub, d.video, d.publishedAt))
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if result.Created {
			created++
			if d.publishedAt > newestIngestedAt {
				newestIngestedAt = d.publishedAt
			}
		}
	}

	p.markPolled(ctx, sub)
	if created > 0 {
		if err := p.subs.UpdateWatermark(ctx, sub.ID, &newestIngestedAt, nil, p.now()); err != nil {
			return created, fmt.Errorf("failed to update watermark: %w", err)
		}
		sub.LastPublishedAt = &newestIngestedAt
	}
	return created, firstErr
}

func (p *YouTubePoller) ingestInput(sub *models.Subscription, v driver.YouTubeVideo, publishedAt int64) IngestInput {
	var thumbnail *string
	if v.ThumbnailURL != "" {
		thumbnail = &v.ThumbnailURL
	}
	var summary *string
	if v.Description != "" {
		summary = &v.Description
	}
	return IngestInput{
		UserID:          sub.UserID,
		SubscriptionID:  &sub.ID,
		Provider:        models.ProviderYouTube,
		ProviderItemID:  v.VideoID,
		ContentType:     models.ContentTypeFor(sub.Provider),
		CanonicalURL:    "https://www.youtube.com/watch?v=" + v.VideoID,
		Title:           v.Title,
		ThumbnailURL:    thumbnail,
		DurationSeconds: v.DurationSeconds,
		PublishedAt:     &publishedAt,
		Summary:         summary,
		Creator: &CreatorInput{
			ProviderCreatorID: v.ChannelID,
			Name:              v.ChannelTitle,
		},
	}
}

func (p *YouTubePoller) markPolled(ctx context.Context, sub *models.Subscription) {
	now := p.now()
	if err := p.subs.MarkPolled(ctx, sub.ID, now); err != nil {
		p.logger.ErrorContext(ctx, "failed to mark subscription polled",
			"subscription_id", sub.ID, "error", err)
		return
	}
	sub.LastPolledAt = &now
}

func videoIDs(videos []driver.YouTubeVideo) []string {
	out := make([]string, 0, len(videos))
	for _, v := range videos {
		out = append(out, v.VideoID)
	}
	return out
}

func mergeVideoDetails(videos []driver.YouTubeVideo, details map[string]driver.YouTubeVideoDetail) {
	for i := range videos {
		d, ok := details[videos[i].VideoID]
		if !ok {
			continue
		}
		videos[i].DurationSeconds = d.DurationSeconds
		if d.Description != "" {
			videos[i].Description = d.Description
		}
	}
}
