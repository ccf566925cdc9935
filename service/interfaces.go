//go:generate mockgen -source=interfaces.go -destination=mock_interfaces.go -package=service -self_package=inbox-hub/service

// ABOUTME: Service-layer interfaces over the driver clients and Redis
// ABOUTME: Pollers and the scheduler depend on these so tests can substitute gomock doubles

package service

import (
	"context"
	"time"

	"inbox-hub/driver"
	"inbox-hub/models"
)

// KV is the Redis surface the services use. *driver.RedisDriver satisfies it.
type KV interface {
	AcquireLock(ctx context.Context, key, owner string, ttl time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, key, owner string) error
	IncrCounter(ctx context.Context, key string, ttl time.Duration) (int64, error)
	DeleteKey(ctx context.Context, key string) error
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	GetJSON(ctx context.Context, key string, out any) error
	SetNXWithTTL(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

// TokenRefresher exchanges a refresh token for fresh credentials.
// Both provider API clients satisfy it.
type TokenRefresher interface {
	RefreshToken(ctx context.Context, refreshToken string) (*driver.TokenResponse, error)
}

// TokenProvider hands out live access tokens. *TokenService satisfies it.
type TokenProvider interface {
	GetValidToken(ctx context.Context, userID string, provider models.Provider) (string, error)
}

// YouTubeAPI is the slice of the YouTube Data API the pollers use.
type YouTubeAPI interface {
	UploadsPlaylistID(channelID string) (string, error)
	ListPlaylistItems(ctx context.Context, accessToken, playlistID string, maxResults int) ([]driver.YouTubeVideo, error)
	GetVideoDetails(ctx context.Context, accessToken string, videoIDs []string) (map[string]driver.YouTubeVideoDetail, error)
	ListMySubscriptions(ctx context.Context, accessToken string) ([]driver.YouTubeChannel, error)
	SearchChannels(ctx context.Context, accessToken, query string, limit int) ([]driver.YouTubeChannel, error)
}

// SpotifyAPI is the slice of the Spotify Web API the pollers use.
type SpotifyAPI interface {
	GetShows(ctx context.Context, accessToken string, showIDs []string) (map[string]driver.SpotifyShow, error)
	GetShowEpisodes(ctx context.Context, accessToken, showID string, limit int) ([]driver.SpotifyEpisode, error)
	ListSavedShows(ctx context.Context, accessToken string) ([]driver.SpotifyShow, error)
	SearchShows(ctx context.Context, accessToken, query string, limit int) ([]driver.SpotifyShow, error)
}

// RSSFetcher fetches and parses a feed. *driver.RSSClient satisfies it.
type RSSFetcher interface {
	FetchFeed(ctx context.Context, feedURL string, maxEntries int) (*driver.RSSFeedInfo, error)
}

// ItemIngestor runs the per-item ingestion pipeline. *IngestService satisfies it.
type ItemIngestor interface {
	IngestItem(ctx context.Context, input IngestInput) (IngestResult, error)
}

// PollOutcomeHandler reacts to poll results. *HealthMonitor satisfies it.
type PollOutcomeHandler interface {
	HandlePollError(ctx context.Context, sub *models.Subscription, pollErr error) error
	HandlePollSuccess(ctx context.Context, sub *models.Subscription) error
}

// ProviderRateLimiter gates outbound API calls per (provider, user).
type ProviderRateLimiter interface {
	Allow(provider models.Provider, userID string) bool
}
