// ABOUTME: Wire types for YouTube Data API responses and the normalized DTOs handed to pollers

package driver

// YouTubeVideo is the normalized playlist-item DTO.
// DurationSeconds is nil until merged from a details batch; unknown
// durations are treated as fail-safe (not filtered as shorts).
type YouTubeVideo struct {
	VideoID       string
	Title         string
	Description   string
	ChannelID     string
	ChannelTitle  string
	PublishedAt   string // ISO-8601, parsed by the poller
	PrivacyStatus string
	ThumbnailURL  string
	DurationSeconds *int
}

// YouTubeVideoDetail carries the fields only videos.list returns.
type YouTubeVideoDetail struct {
	VideoID         string
	Description     string
	DurationSeconds *int
}

// YouTubeChannel is the normalized channel DTO for discover surfaces.
type YouTubeChannel struct {
	ChannelID    string
	Title        string
	Description  string
	ThumbnailURL string
}

type thumbnails struct {
	Default struct {
		URL string `json:"url"`
	} `json:"default"`
	Medium struct {
		URL string `json:"url"`
	} `json:"medium"`
	High struct {
		URL string `json:"url"`
	} `json:"high"`
}

func (t thumbnails) best() string {
	if t.High.URL != "" {
		return t.High.URL
	}
	if t.Medium.URL != "" {
		return t.Medium.URL
	}
	return t.Default.URL
}

type playlistItemsResponse struct {
	Items []struct {
		Snippet struct {
			Title        string     `json:"title"`
			Description  string     `json:"description"`
			ChannelID    string     `json:"channelId"`
			ChannelTitle string     `json:"channelTitle"`
			PublishedAt  string     `json:"publishedAt"`
			Thumbnails   thumbnails `json:"thumbnails"`
		} `json:"snippet"`
		Status struct {
			PrivacyStatus string `json:"privacyStatus"`
		} `json:"status"`
		ContentDetails struct {
			VideoID          string `json:"videoId"`
			VideoPublishedAt string `json:"videoPublishedAt"`
		} `json:"contentDetails"`
	} `json:"items"`
}

type videosResponse struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Description string `json:"description"`
		} `json:"snippet"`
		ContentDetails struct {
			Duration string `json:"duration"`
		} `json:"contentDetails"`
	} `json:"items"`
}

type subscriptionsResponse struct {
	NextPageToken string `json:"nextPageToken"`
	Items         []struct {
		Snippet struct {
			Title       string     `json:"title"`
			Description string     `json:"description"`
			Thumbnails  thumbnails `json:"thumbnails"`
			ResourceID  struct {
				ChannelID string `json:"channelId"`
			} `json:"resourceId"`
		} `json:"snippet"`
	} `json:"items"`
}

type searchResponse struct {
	Items []struct {
		ID struct {
			ChannelID string `json:"channelId"`
		} `json:"id"`
		Snippet struct {
			Title       string     `json:"title"`
			Description string     `json:"description"`
			Thumbnails  thumbnails `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
}
