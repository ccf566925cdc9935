// ABOUTME: RSS feed poller: no OAuth, entries selected against the ingested watermark
// ABOUTME: Entries without a publish date are dropped; creators get synthetic ids from the feed title

package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"inbox-hub/driver"
	"inbox-hub/ids"
	"inbox-hub/metrics"
	"inbox-hub/models"
	"inbox-hub/repository"
)

const rssPollFetchLimit = 10

// RSSPoller polls RSS feed subscriptions. providerChannelId is the feed URL.
type RSSPoller struct {
	fetcher  RSSFetcher
	ingestor ItemIngestor
	subs     repository.SubscriptionRepository
	logger   *slog.Logger
	now      func() int64
}

// NewRSSPoller creates an RSS poller.
func NewRSSPoller(fetcher RSSFetcher, ingestor ItemIngestor, subs repository.SubscriptionRepository, logger *slog.Logger) *RSSPoller {
	if logger == nil {
		logger = slog.Default()
	}
	return &RSSPoller{
		fetcher:  fetcher,
		ingestor: ingestor,
		subs:     subs,
		logger:   logger,
		now:      ids.NowMillis,
	}
}

// PollSingle polls one feed subscription.
func (p *RSSPoller) PollSingle(ctx context.Context, sub *models.Subscription) (int, error) {
	metrics.PollsTotal.WithLabelValues(string(models.ProviderRSS)).Inc()

	feed, err := p.fetcher.FetchFeed(ctx, sub.ProviderChannelID, rssPollFetchLimit)
	if err != nil {
		p.markPolled(ctx, sub)
		metrics.PollErrorsTotal.WithLabelValues(string(models.ProviderRSS)).Inc()
		return 0, fmt.Errorf("failed to fetch feed %s: %w", sub.ProviderChannelID, err)
	}

	type dated struct {
		entry       driver.RSSEntry
		publishedAt int64
	}
	eligible := make([]dated, 0, len(feed.Entries))
	for _, entry := range feed.Entries {
		if entry.PublishedAt == nil {
			metrics.IngestSkipsTotal.WithLabelValues(string(models.ProviderRSS), "invalid_date").Inc()
			continue
		}
		eligible = append(eligible, dated{entry: entry, publishedAt: entry.PublishedAt.UnixMilli()})
	}

	sort.Slice(eligible, func(i, j int) bool {
		return eligible[i].publishedAt > eligible[j].publishedAt
	})

	var selected []dated
	if sub.LastPublishedAt == nil {
		if len(eligible) > 0 {
			selected = eligible[:1]
		}
	} else {
		for _, d := range eligible {
			if d.publishedAt > *sub.LastPublishedAt {
				selected = append(selected, d)
			}
		}
	}

	created := 0
	var newestIngestedAt int64
	var firstErr error
	for _, d := range selected {
		result, err := p.ingestor.IngestItem(ctx, p.ingestInput(sub, feed, d.entry, d.publishedAt))
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

// PollBatch iterates feeds sequentially; RSS hosts get no fan-out.
func (p *RSSPoller) PollBatch(ctx context.Context, subs []*models.Subscription) BatchResult {
	var result BatchResult
	for _, sub := range subs {
		// a mid-feed failure still ingested the earlier entries
		newItems, err := p.PollSingle(ctx, sub)
		result.NewItems += newItems
		if err != nil {
			result.Errors = append(result.Errors, SubscriptionError{SubscriptionID: sub.ID, Err: err})
			continue
		}
		result.Processed++
	}
	return result
}

func (p *RSSPoller) ingestInput(sub *models.Subscription, feed *driver.RSSFeedInfo, entry driver.RSSEntry, publishedAt int64) IngestInput {
	var thumbnail *string
	if entry.ImageURL != "" {
		thumbnail = &entry.ImageURL
	} else if feed.ImageURL != "" {
		thumbnail = &feed.ImageURL
	}
	var summary *string
	if entry.Description != "" {
		summary = &entry.Description
	}
	var feedLink *string
	if feed.Link != "" {
		feedLink = &feed.Link
	}
	var feedDescription *string
	if feed.Description != "" {
		feedDescription = &feed.Description
	}

	return IngestInput{
		UserID:         sub.UserID,
		SubscriptionID: &sub.ID,
		Provider:       models.ProviderRSS,
		ProviderItemID: entry.GUID,
		ContentType:    models.ContentTypeFor(sub.Provider),
		CanonicalURL:   entry.Link,
		Title:          entry.Title,
		ThumbnailURL:   thumbnail,
		PublishedAt:    &publishedAt,
		Summary:        summary,
		Creator: &CreatorInput{
			// no native creator id; a synthetic one is derived from the name
			Name:        feed.Title,
			ExternalURL: feedLink,
			Description: feedDescription,
		},
	}
}

func (p *RSSPoller) markPolled(ctx context.Context, sub *models.Subscription) {
	now := p.now()
	if err := p.subs.MarkPolled(ctx, sub.ID, now); err != nil {
		p.logger.ErrorContext(ctx, "failed to mark subscription polled",
			"subscription_id", sub.ID, "error", err)
		return
	}
	sub.LastPolledAt = &now
}
