// ABOUTME: RSS/Atom feed client built on gofeed
// ABOUTME: RSS feeds need no OAuth connection; entries normalize into the same poller DTO shape

package driver

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
)

// RSSEntry is the normalized feed-entry DTO.
type RSSEntry struct {
	GUID        string
	Title       string
	Link        string
	Description string
	ImageURL    string
	PublishedAt *time.Time
}

// RSSFeedInfo is the normalized feed-level metadata.
type RSSFeedInfo struct {
	Title       string
	Link        string
	Description string
	ImageURL    string
	Entries     []RSSEntry
}

// RSSClient fetches and parses public feeds.
type RSSClient struct {
	parser *gofeed.Parser
	logger *slog.Logger
}

// NewRSSClient creates an RSS client with a bounded HTTP client.
func NewRSSClient(logger *slog.Logger) *RSSClient {
	if logger == nil {
		logger = slog.Default()
	}
	parser := gofeed.NewParser()
	parser.Client = &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			TLSHandshakeTimeout:   10 * time.Second,
			ResponseHeaderTimeout: 20 * time.Second,
			IdleConnTimeout:       90 * time.Second,
			MaxIdleConns:          10,
			MaxIdleConnsPerHost:   2,
		},
	}
	parser.UserAgent = "inbox-hub/1.0"
	return &RSSClient{parser: parser, logger: logger}
}

// FetchFeed downloads and parses the feed at feedURL, returning up to
// maxEntries most recent entries in feed order.
func (c *RSSClient) FetchFeed(ctx context.Context, feedURL string, maxEntries int) (*RSSFeedInfo, error) {
	feed, err := c.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		c.logger.Warn("failed to parse feed", "url", feedURL, "error", err)
		return nil, fmt.Errorf("%w: failed to fetch feed %s: %v", ErrTemporaryFailure, feedURL, err)
	}

	info := &RSSFeedInfo{
		Title:       feed.Title,
		Link:        feed.Link,
		Description: feed.Description,
	}
	if feed.Image != nil {
		info.ImageURL = feed.Image.URL
	}

	for i, item := range feed.Items {
		if i >= maxEntries {
			break
		}
		entry := RSSEntry{
			GUID:        item.GUID,
			Title:       item.Title,
			Link:        item.Link,
			Description: item.Description,
			PublishedAt: item.PublishedParsed,
		}
		if entry.GUID == "" {
			entry.GUID = item.Link
		}
		if item.Image != nil {
			entry.ImageURL = item.Image.URL
		}
		info.Entries = append(info.Entries, entry)
	}
	return info, nil
}
