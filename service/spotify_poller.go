// ABOUTME: Spotify show poller: cached show-batch lookup, totalEpisodes delta detection, episode ingest
// ABOUTME: The watermark only advances from episodes that actually created a user item

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"inbox-hub/driver"
	"inbox-hub/ids"
	"inbox-hub/metrics"
	"inbox-hub/models"
	"inbox-hub/repository"
)

const (
	spotifyEpisodeFetchLimit = 10
	showCacheKeyFmt          = "spotify:show:%s"
	showCacheTTL             = 10 * time.Minute
	showMissingReason        = "Show no longer available"
)

// SpotifyPoller polls podcast show subscriptions.
type SpotifyPoller struct {
	client      SpotifyAPI
	ingestor    ItemIngestor
	subs        repository.SubscriptionRepository
	kv          KV
	concurrency int64
	logger      *slog.Logger
	now         func() int64
}

// NewSpotifyPoller creates a Spotify poller. concurrency bounds parallel
// episode fetches.
func NewSpotifyPoller(client SpotifyAPI, ingestor ItemIngestor, subs repository.SubscriptionRepository, kv KV, concurrency int, logger *slog.Logger) *SpotifyPoller {
	if concurrency < 1 {
		concurrency = 5
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SpotifyPoller{
		client:      client,
		ingestor:    ingestor,
		subs:        subs,
		kv:          kv,
		concurrency: int64(concurrency),
		logger:      logger,
		now:         ids.NowMillis,
	}
}

// PollBatch polls a user's show subscriptions: one cached show-metadata
// batch, delta detection on totalEpisodes, bounded-parallel episode
// fetches for the subscriptions with a delta.
func (p *SpotifyPoller) PollBatch(ctx context.Context, subs []*models.Subscription, accessToken string) BatchResult {
	var result BatchResult

	showIDs := make([]string, 0, len(subs))
	for _, sub := range subs {
		showIDs = append(showIDs, sub.ProviderChannelID)
	}

	shows, err := p.lookupShows(ctx, accessToken, showIDs)
	if err != nil {
		for _, sub := range subs {
			metrics.PollsTotal.WithLabelValues(string(models.ProviderSpotify)).Inc()
			metrics.PollErrorsTotal.WithLabelValues(string(models.ProviderSpotify)).Inc()
			p.markPolled(ctx, sub)
			result.Errors = append(result.Errors, SubscriptionError{SubscriptionID: sub.ID, Err: err})
		}
		return result
	}

	var due []*models.Subscription
	for _, sub := range subs {
		metrics.PollsTotal.WithLabelValues(string(models.ProviderSpotify)).Inc()

		show, found := shows[sub.ProviderChannelID]
		if !found {
			p.disconnectMissingShow(ctx, sub)
			result.Disconnected++
			continue
		}

		if sub.TotalItems != nil && *sub.TotalItems == show.TotalEpisodes {
			p.markPolled(ctx, sub)
			result.Processed++
			continue
		}
		due = append(due, sub)
	}

	sem := semaphore.NewWeighted(p.concurrency)
	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	for _, sub := range due {
		if err := sem.Acquire(ctx, 1); err != nil {
			mu.Lock()
			result.Errors = append(result.Errors, SubscriptionError{SubscriptionID: sub.ID, Err: err})
			mu.Unlock()
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			show := shows[sub.ProviderChannelID]
			newItems, err := p.pollEpisodes(ctx, sub, accessToken, &show)
			mu.Lock()
			defer mu.Unlock()
			// a mid-poll failure still ingested the earlier episodes
			result.NewItems += newItems
			if err != nil {
				metrics.PollErrorsTotal.WithLabelValues(string(models.ProviderSpotify)).Inc()
				result.Errors = append(result.Errors, SubscriptionError{SubscriptionID: sub.ID, Err: err})
				return
			}
			result.Processed++
		}()
	}
	wg.Wait()
	return result
}

// PollSingle polls one subscription without the batch delta shortcut.
func (p *SpotifyPoller) PollSingle(ctx context.Context, sub *models.Subscription, accessToken string) (int, error) {
	metrics.PollsTotal.WithLabelValues(string(models.ProviderSpotify)).Inc()

	shows, err := p.lookupShows(ctx, accessToken, []string{sub.ProviderChannelID})
	if err != nil {
		p.markPolled(ctx, sub)
		metrics.PollErrorsTotal.WithLabelValues(string(models.ProviderSpotify)).Inc()
		return 0, err
	}
	show, found := shows[sub.ProviderChannelID]
	if !found {
		p.disconnectMissingShow(ctx, sub)
		return 0, nil
	}
	return p.pollEpisodes(ctx, sub, accessToken, &show)
}

// lookupShows serves show metadata through the KV cache, batching the
// misses into provider calls.
func (p *SpotifyPoller) lookupShows(ctx context.Context, accessToken string, showIDs []string) (map[string]driver.SpotifyShow, error) {
	out := make(map[string]driver.SpotifyShow, len(showIDs))
	var misses []string
	for _, id := range showIDs {
		var cached driver.SpotifyShow
		if err := p.kv.GetJSON(ctx, fmt.Sprintf(showCacheKeyFmt, id), &cached); err == nil {
			out[id] = cached
			continue
		} else if !errors.Is(err, driver.ErrCacheMiss) {
			p.logger.WarnContext(ctx, "show cache read failed", "show_id", id, "error", err)
		}
		misses = append(misses, id)
	}
	if len(misses) == 0 {
		return out, nil
	}

	fetched, err := p.client.GetShows(ctx, accessToken, misses)
	if err != nil {
		return nil, fmt.Errorf("failed to batch-fetch shows: %w", err)
	}
	for id, show := range fetched {
		out[id] = show
	}
	return out, nil
}

// pollEpisodes fetches recent episodes, applies the unplayable filter
// and date left-anchoring, selects the new delta against the watermark,
// ingests, and applies the watermark update rule.
func (p *SpotifyPoller) pollEpisodes(ctx context.Context, sub *models.Subscription, accessToken string, show *driver.SpotifyShow) (int, error) {
	episodes, err := p.client.GetShowEpisodes(ctx, accessToken, sub.ProviderChannelID, spotifyEpisodeFetchLimit)
	if err != nil {
		p.markPolled(ctx, sub)
		return 0, fmt.Errorf("failed to fetch episodes for %s: %w", sub.ProviderChannelID, err)
	}

	type dated struct {
		episode   driver.SpotifyEpisode
		releaseAt int64
	}

	now := p.now()
	eligible := make([]dated, 0, len(episodes))
	for _, ep := range episodes {
		if !ep.IsPlayable {
			metrics.IngestSkipsTotal.WithLabelValues(string(models.ProviderSpotify), "unavailable").Inc()
			continue
		}
		eligible = append(eligible, dated{
			episode:   ep,
			releaseAt: models.ParseReleaseDate(ep.ReleaseDate, now),
		})
	}

	sort.Slice(eligible, func(i, j int) bool {
		return eligible[i].releaseAt > eligible[j].releaseAt
	})

	// Release dates are day-precision, so the delta compares against the
	// watermark rather than lastPolledAt.
	var selected []dated
	if sub.LastPublishedAt == nil {
		if len(eligible) > 0 {
			selected = eligible[:1]
		}
	} else {
		for _, d := range eligible {
			if d.releaseAt > *sub.LastPublishedAt {
				selected = append(selected, d)
			}
		}
	}

	created := 0
	var newestIngestedAt int64
	var firstErr error
	for _, d := range selected {
		result, err := p.ingestor.IngestItem(ctx, p.ingestInput(sub, show, d.episode, d.releaseAt))
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if result.Created {
			created++
			if d.releaseAt > newestIngestedAt {
				newestIngestedAt = d.releaseAt
			}
		}
	}

	p.markPolled(ctx, sub)
	if created > 0 {
		if err := p.subs.UpdateWatermark(ctx, sub.ID, &newestIngestedAt, &show.TotalEpisodes, p.now()); err != nil {
			return created, fmt.Errorf("failed to update watermark: %w", err)
		}
		sub.LastPublishedAt = &newestIngestedAt
		sub.TotalItems = &show.TotalEpisodes
		p.refreshShowCache(ctx, show)
	}
	return created, firstErr
}

func (p *SpotifyPoller) ingestInput(sub *models.Subscription, show *driver.SpotifyShow, ep driver.SpotifyEpisode, releaseAt int64) IngestInput {
	canonicalURL := ep.ExternalURL
	if canonicalURL == "" {
		canonicalURL = "https://open.spotify.com/episode/" + ep.ID
	}
	var thumbnail *string
	if ep.ImageURL != "" {
		thumbnail = &ep.ImageURL
	} else if show.ImageURL != "" {
		thumbnail = &show.ImageURL
	}
	var summary *string
	if ep.Description != "" {
		summary = &ep.Description
	}
	durationSeconds := ep.DurationMs / 1000

	var showDescription *string
	if show.Description != "" {
		showDescription = &show.Description
	}
	var showImage *string
	if show.ImageURL != "" {
		showImage = &show.ImageURL
	}
	var showURL *string
	if show.ExternalURL != "" {
		showURL = &show.ExternalURL
	}

	return IngestInput{
		UserID:          sub.UserID,
		SubscriptionID:  &sub.ID,
		Provider:        models.ProviderSpotify,
		ProviderItemID:  ep.ID,
		ContentType:     models.ContentTypeFor(sub.Provider),
		CanonicalURL:    canonicalURL,
		Title:           ep.Name,
		ThumbnailURL:    thumbnail,
		DurationSeconds: &durationSeconds,
		PublishedAt:     &releaseAt,
		Summary:         summary,
		Creator: &CreatorInput{
			ProviderCreatorID: show.ID,
			Name:              show.Name,
			ImageURL:          showImage,
			ExternalURL:       showURL,
			Description:       showDescription,
		},
	}
}

func (p *SpotifyPoller) disconnectMissingShow(ctx context.Context, sub *models.Subscription) {
	reason := showMissingReason
	if err := p.subs.UpdateStatus(ctx, sub.ID, models.SubscriptionDisconnected, &reason, p.now()); err != nil {
		p.logger.ErrorContext(ctx, "failed to disconnect subscription for missing show",
			"subscription_id", sub.ID, "error", err)
		return
	}
	sub.Status = models.SubscriptionDisconnected
	sub.DisconnectedReason = &reason
	if err := p.kv.DeleteKey(ctx, fmt.Sprintf(showCacheKeyFmt, sub.ProviderChannelID)); err != nil {
		p.logger.WarnContext(ctx, "failed to invalidate show cache",
			"show_id", sub.ProviderChannelID, "error", err)
	}
	p.logger.InfoContext(ctx, "subscription disconnected, show missing",
		"subscription_id", sub.ID, "show_id", sub.ProviderChannelID)
}

func (p *SpotifyPoller) refreshShowCache(ctx context.Context, show *driver.SpotifyShow) {
	key := fmt.Sprintf(showCacheKeyFmt, show.ID)
	if err := p.kv.SetJSON(ctx, key, show, showCacheTTL); err != nil {
		p.logger.WarnContext(ctx, "failed to refresh show cache", "show_id", show.ID, "error", err)
	}
}

func (p *SpotifyPoller) markPolled(ctx context.Context, sub *models.Subscription) {
	now := p.now()
	if err := p.subs.MarkPolled(ctx, sub.ID, now); err != nil {
		p.logger.ErrorContext(ctx, "failed to mark subscription polled",
			"subscription_id", sub.ID, "error", err)
		return
	}
	sub.LastPolledAt = &now
}
