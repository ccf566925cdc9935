package driver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadsPlaylistID(t *testing.T) {
	client := NewYouTubeClient("id", "secret", nil)

	playlist, err := client.UploadsPlaylistID("UCabc123")
	require.NoError(t, err)
	assert.Equal(t, "UUabc123", playlist)

	playlist, err = client.UploadsPlaylistID("PLxyz")
	require.NoError(t, err)
	assert.Equal(t, "PLxyz", playlist, "non-channel ids pass through")

	_, err = client.UploadsPlaylistID("")
	assert.Error(t, err)
}

func TestParseISODuration(t *testing.T) {
	tests := map[string]struct {
		raw      string
		expected int
		ok       bool
	}{
		"minutes_seconds":  {"PT3M20S", 200, true},
		"hours":            {"PT1H2M3S", 3723, true},
		"seconds_only":     {"PT45S", 45, true},
		"exactly_180":      {"PT3M", 180, true},
		"days":             {"P1DT1S", 86401, true},
		"empty":            {"", 0, false},
		"garbage":          {"3 minutes", 0, false},
		"trailing_number":  {"PT3", 0, false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			secs, ok := parseISODuration(tc.raw)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.expected, secs)
			}
		})
	}
}

func TestListPlaylistItems(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/playlistItems", r.URL.Path)
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		require.Equal(t, "UUchan", r.URL.Query().Get("playlistId"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"items": []map[string]any{
				{
					"snippet": map[string]any{
						"title":        "First Video",
						"description":  "truncated…",
						"channelId":    "UCchan",
						"channelTitle": "Chan",
						"publishedAt":  "2024-01-15T00:00:00Z",
					},
					"status":         map[string]any{"privacyStatus": "public"},
					"contentDetails": map[string]any{"videoId": "v1", "videoPublishedAt": "2024-01-15T10:00:00Z"},
				},
			},
		})
	}))
	defer server.Close()

	client := NewYouTubeClientWithBaseURL("id", "secret", server.URL, nil)
	videos, err := client.ListPlaylistItems(context.Background(), "tok", "UUchan", 10)
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, "v1", videos[0].VideoID)
	assert.Equal(t, "2024-01-15T10:00:00Z", videos[0].PublishedAt)
	assert.Equal(t, "public", videos[0].PrivacyStatus)
	assert.Nil(t, videos[0].DurationSeconds)
}

func TestYouTubeErrorClassification(t *testing.T) {
	tests := map[string]struct {
		status   int
		expected error
	}{
		"unauthorized": {http.StatusUnauthorized, ErrTokenExpired},
		"forbidden":    {http.StatusForbidden, ErrAccessRevoked},
		"not_found":    {http.StatusNotFound, ErrNotFound},
		"rate_limited": {http.StatusTooManyRequests, ErrRateLimited},
		"server_error": {http.StatusInternalServerError, ErrTemporaryFailure},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			}))
			defer server.Close()

			client := NewYouTubeClientWithBaseURL("id", "secret", server.URL, nil)
			_, err := client.ListPlaylistItems(context.Background(), "tok", "UUchan", 10)
			assert.True(t, errors.Is(err, tc.expected), "got %v", err)
		})
	}
}

func TestRefreshTokenInvalidGrant(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/token", r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"error":             "invalid_grant",
			"error_description": "Token has been expired or revoked.",
		})
	}))
	defer server.Close()

	client := NewYouTubeClientWithBaseURL("id", "secret", server.URL, nil)
	_, err := client.RefreshToken(context.Background(), "stale")
	assert.True(t, errors.Is(err, ErrRefreshTokenInvalid))
}
