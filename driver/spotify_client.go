// ABOUTME: Thin typed facade over the Spotify Web API for podcast shows
// ABOUTME: Show lookups are batched at 50 ids; episode release dates stay raw for the poller to normalize

package driver

import (
	"context"
	"encoding/base64"
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

const showBatchChunkSize = 50

// SpotifyClient calls the Spotify Web API on behalf of one access token.
type SpotifyClient struct {
	clientID     string
	clientSecret string
	apiBaseURL   string
	tokenURL     string
	httpClient   *http.Client
	logger       *slog.Logger
}

// NewSpotifyClient creates a client against the production endpoints.
func NewSpotifyClient(clientID, clientSecret string, logger *slog.Logger) *SpotifyClient {
	return newSpotifyClient(clientID, clientSecret,
		"https://api.spotify.com/v1",
		"https://accounts.spotify.com/api/token", logger)
}

// NewSpotifyClientWithBaseURL creates a client against a mock server. For testing.
func NewSpotifyClientWithBaseURL(clientID, clientSecret, baseURL string, logger *slog.Logger) *SpotifyClient {
	return newSpotifyClient(clientID, clientSecret, baseURL, baseURL+"/api/token", logger)
}

func newSpotifyClient(clientID, clientSecret, apiBaseURL, tokenURL string, logger *slog.Logger) *SpotifyClient {
	if logger == nil {
		logger = slog.Default()
	}
	return &SpotifyClient{
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

// RefreshToken exchanges a refresh token for a new access token.
// Spotify authenticates the client via a Basic header.
func (c *SpotifyClient) RefreshToken(ctx context.Context, refreshToken string) (*TokenResponse, error) {
	data := url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {refreshToken},
	}
	basic := base64.StdEncoding.EncodeToString([]byte(c.clientID + ":" + c.clientSecret))
	headers := map[string]string{"Authorization": "Basic " + basic}
	return postTokenForm(ctx, c.httpClient, c.tokenURL, data, headers, c.logger)
}

// GetShows batch-fetches show metadata, chunked at 50 ids per request.
// Shows absent from the response are simply missing from the returned map;
// the poller treats that as a deleted show.
func (c *SpotifyClient) GetShows(ctx context.Context, accessToken string, showIDs []string) (map[string]SpotifyShow, error) {
	shows := make(map[string]SpotifyShow, len(showIDs))

	for start := 0; start < len(showIDs); start += showBatchChunkSize {
		end := start + showBatchChunkSize
		if end > len(showIDs) {
			end = len(showIDs)
		}

		q := url.Values{"ids": {strings.Join(showIDs[start:end], ",")}}
		var resp showsResponse
		if err := c.getJSON(ctx, accessToken, "/shows", q, &resp); err != nil {
			return nil, err
		}

		// null entries mark ids Spotify no longer serves
		for _, s := range resp.Shows {
			if s == nil || s.ID == "" {
				continue
			}
			shows[s.ID] = s.normalize()
		}
	}
	return shows, nil
}

// GetShowEpisodes fetches up to limit most recent episodes of one show.
func (c *SpotifyClient) GetShowEpisodes(ctx context.Context, accessToken, showID string, limit int) ([]SpotifyEpisode, error) {
	q := url.Values{"limit": {strconv.Itoa(limit)}}
	var resp episodesResponse
	if err := c.getJSON(ctx, accessToken, "/shows/"+showID+"/episodes", q, &resp); err != nil {
		return nil, err
	}

	episodes := make([]SpotifyEpisode, 0, len(resp.Items))
	for _, e := range resp.Items {
		if e == nil {
			continue
		}
		episodes = append(episodes, e.normalize())
	}
	return episodes, nil
}

// ListSavedShows lists the shows saved in the connected account's library.
func (c *SpotifyClient) ListSavedShows(ctx context.Context, accessToken string) ([]SpotifyShow, error) {
	shows := []SpotifyShow{}
	offset := 0
	for {
		q := url.Values{
			"limit":  {"50"},
			"offset": {strconv.Itoa(offset)},
		}
		var resp savedShowsResponse
		if err := c.getJSON(ctx, accessToken, "/me/shows", q, &resp); err != nil {
			return nil, err
		}
		for _, item := range resp.Items {
			if item.Show == nil {
				continue
			}
			shows = append(shows, item.Show.normalize())
		}
		if resp.Next == "" || len(resp.Items) == 0 {
			break
		}
		offset += len(resp.Items)
	}
	return shows, nil
}

// SearchShows searches podcast shows by free-text query.
func (c *SpotifyClient) SearchShows(ctx context.Context, accessToken, query string, limit int) ([]SpotifyShow, error) {
	q := url.Values{
		"q":     {query},
		"type":  {"show"},
		"limit": {strconv.Itoa(limit)},
	}
	var resp searchShowsResponse
	if err := c.getJSON(ctx, accessToken, "/search", q, &resp); err != nil {
		return nil, err
	}

	shows := make([]SpotifyShow, 0, len(resp.Shows.Items))
	for _, s := range resp.Shows.Items {
		if s == nil {
			continue
		}
		shows = append(shows, s.normalize())
	}
	return shows, nil
}

func (c *SpotifyClient) getJSON(ctx context.Context, accessToken, path string, q url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiBaseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create spotify request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: spotify request failed: %v", ErrTemporaryFailure, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read spotify response: %v", ErrTemporaryFailure, err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("spotify API error",
			"path", path,
			"status_code", resp.StatusCode)
		return classifyStatus(resp.StatusCode, truncateBody(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode spotify response: %w", err)
	}
	return nil
}
