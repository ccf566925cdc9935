// ABOUTME: Thin typed facade over the YouTube Data API v3
// ABOUTME: Returns normalized DTOs and classifies HTTP status into the sentinel taxonomy

package driver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const videoDetailsChunkSize = 50

// YouTubeClient calls the YouTube Data API on behalf of one access token.
type YouTubeClient struct {
	clientID     string
	clientSecret string
	apiBaseURL   string
	tokenURL     string
	httpClient   *http.Client
	logger       *slog.Logger
}

// NewYouTubeClient creates a client against the production endpoints.
func NewYouTubeClient(clientID, clientSecret string, logger *slog.Logger) *YouTubeClient {
	return newYouTubeClient(clientID, clientSecret,
		"https://www.googleapis.com/youtube/v3",
		"https://oauth2.googleapis.com/token", logger)
}

// NewYouTubeClientWithBaseURL creates a client against a mock server. For testing.
func NewYouTubeClientWithBaseURL(clientID, clientSecret, baseURL string, logger *slog.Logger) *YouTubeClient {
	return newYouTubeClient(clientID, clientSecret, baseURL, baseURL+"/token", logger)
}

func newYouTubeClient(clientID, clientSecret, apiBaseURL, tokenURL string, logger *slog.Logger) *YouTubeClient {
	if logger == nil {
		logger = slog.Default()
	}
	return &YouTubeClient{
		clientID:     clientID,
		clientSecret: clientSecret,
		apiBaseURL:   apiBaseURL,
		tokenURL:     tokenURL,
		logger:       logger,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				TLSHandshakeTimeout:   10 * time.Second,
				ResponseHeaderTimeout: 20 * time.Second,
				IdleConnTimeout:       90 * time.Second,
				MaxIdleConns:          10,
				MaxIdleConnsPerHost:   6,
			},
		},
	}
}

// UploadsPlaylistID derives a channel's uploads playlist id from its
// channel id without an API call: the UC prefix becomes UU.
func (c *YouTubeClient) UploadsPlaylistID(channelID string) (string, error) {
	if channelID == "" {
		return "", fmt.Errorf("channel id is empty")
	}
	if strings.HasPrefix(channelID, "UC") {
		return "UU" + channelID[2:], nil
	}
	return channelID, nil
}

// RefreshToken exchanges a refresh token for a new access token.
func (c *YouTubeClient) RefreshToken(ctx context.Context, refreshToken string) (*TokenResponse, error) {
	data := url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {refreshToken},
		"client_id":     {c.clientID},
		"client_secret": {c.clientSecret},
	}
	return postTokenForm(ctx, c.httpClient, c.tokenURL, data, nil, c.logger)
}

// ListPlaylistItems fetches up to maxResults most recent items of a playlist.
// Durations are not available at this endpoint; callers batch-fetch details.
func (c *YouTubeClient) ListPlaylistItems(ctx context.Context, accessToken, playlistID string, maxResults int) ([]YouTubeVideo, error) {
	q := url.Values{
		"part":       {"snippet,status,contentDetails"},
		"playlistId": {playlistID},
		"maxResults": {strconv.Itoa(maxResults)},
	}

	var resp playlistItemsResponse
	if err := c.getJSON(ctx, accessToken, "/playlistItems", q, &resp); err != nil {
		return nil, err
	}

	videos := make([]YouTubeVideo, 0, len(resp.Items))
	for _, item := range resp.Items {
		v := YouTubeVideo{
			VideoID:       item.ContentDetails.VideoID,
			Title:         item.Snippet.Title,
			Description:   item.Snippet.Description,
			ChannelID:     item.Snippet.ChannelID,
			ChannelTitle:  item.Snippet.ChannelTitle,
			PublishedAt:   item.ContentDetails.VideoPublishedAt,
			PrivacyStatus: item.Status.PrivacyStatus,
			ThumbnailURL:  item.Snippet.Thumbnails.best(),
		}
		if v.PublishedAt == "" {
			v.PublishedAt = item.Snippet.PublishedAt
		}
		videos = append(videos, v)
	}
	return videos, nil
}

// GetVideoDetails batch-fetches duration and full description for the given
// video ids, chunked at 50 ids per request.
func (c *YouTubeClient) GetVideoDetails(ctx context.Context, accessToken string, videoIDs []string) (map[string]YouTubeVideoDetail, error) {
	details := make(map[string]YouTubeVideoDetail, len(videoIDs))

	for start := 0; start < len(videoIDs); start += videoDetailsChunkSize {
		end := start + videoDetailsChunkSize
		if end > len(videoIDs) {
			end = len(videoIDs)
		}

		q := url.Values{
			"part": {"snippet,contentDetails"},
			"id":   {strings.Join(videoIDs[start:end], ",")},
		}

		var resp videosResponse
		if err := c.getJSON(ctx, accessToken, "/videos", q, &resp); err != nil {
			return nil, err
		}

		for _, item := range resp.Items {
			detail := YouTubeVideoDetail{
				VideoID:     item.ID,
				Description: item.Snippet.Description,
			}
			if secs, ok := parseISODuration(item.ContentDetails.Duration); ok {
				detail.DurationSeconds = &secs
			}
			details[item.ID] = detail
		}
	}
	return details, nil
}

// ListMySubscriptions lists the channels the connected account subscribes to.
func (c *YouTubeClient) ListMySubscriptions(ctx context.Context, accessToken string) ([]YouTubeChannel, error) {
	channels := []YouTubeChannel{}
	pageToken := ""
	for {
		q := url.Values{
			"part":       {"snippet"},
			"mine":       {"true"},
			"maxResults": {"50"},
		}
		if pageToken != "" {
			q.Set("pageToken", pageToken)
		}

		var resp subscriptionsResponse
		if err := c.getJSON(ctx, accessToken, "/subscriptions", q, &resp); err != nil {
			return nil, err
		}
		for _, item := range resp.Items {
			channels = append(channels, YouTubeChannel{
				ChannelID:    item.Snippet.ResourceID.ChannelID,
				Title:        item.Snippet.Title,
				Description:  item.Snippet.Description,
				ThumbnailURL: item.Snippet.Thumbnails.best(),
			})
		}
		if resp.NextPageToken == "" {
			break
		}
		pageToken = resp.NextPageToken
	}
	return channels, nil
}

// SearchChannels searches channels by free-text query.
func (c *YouTubeClient) SearchChannels(ctx context.Context, accessToken, query string, limit int) ([]YouTubeChannel, error) {
	q := url.Values{
		"part":       {"snippet"},
		"type":       {"channel"},
		"q":          {query},
		"maxResults": {strconv.Itoa(limit)},
	}
	var resp searchResponse
	if err := c.getJSON(ctx, accessToken, "/search", q, &resp); err != nil {
		return nil, err
	}

	channels := make([]YouTubeChannel, 0, len(resp.Items))
	for _, item := range resp.Items {
		channels = append(channels, YouTubeChannel{
			ChannelID:    item.ID.ChannelID,
			Title:        item.Snippet.Title,
			Description:  item.Snippet.Description,
			ThumbnailURL: item.Snippet.Thumbnails.best(),
		})
	}
	return channels, nil
}

func (c *YouTubeClient) getJSON(ctx context.Context, accessToken, path string, q url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiBaseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create youtube request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: youtube request failed: %v", ErrTemporaryFailure, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read youtube response: %v", ErrTemporaryFailure, err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("youtube API error",
			"path", path,
			"status_code", resp.StatusCode)
		return classifyStatus(resp.StatusCode, truncateBody(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode youtube response: %w", err)
	}
	return nil
}

// parseISODuration converts an ISO-8601 duration like PT1H2M3S to seconds.
func parseISODuration(raw string) (int, bool) {
	if !strings.HasPrefix(raw, "PT") && !strings.HasPrefix(raw, "P") {
		return 0, false
	}

	total := 0
	num := ""
	inTime := false
	for _, r := range raw[1:] {
		switch {
		case r == 'T':
			inTime = true
		case r >= '0' && r <= '9':
			num += string(r)
		default:
			if num == "" {
				return 0, false
			}
			n, err := strconv.Atoi(num)
			if err != nil {
				return 0, false
			}
			num = ""
			switch r {
			case 'D':
				total += n * 86400
			case 'H':
				total += n * 3600
			case 'M':
				if inTime {
					total += n * 60
				} else {
					// months are not expected in video durations
					return 0, false
				}
			case 'S':
				total += n
			default:
				return 0, false
			}
		}
	}
	if num != "" {
		return 0, false
	}
	return total, true
}

func truncateBody(body []byte) string {
	const max = 512
	if len(body) > max {
		return string(body[:max])
	}
	return string(body)
}
