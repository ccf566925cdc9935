// ABOUTME: Wire types for Spotify Web API responses and the normalized show/episode DTOs

package driver

// SpotifyShow is the normalized show DTO.
type SpotifyShow struct {
	ID            string
	Name          string
	Publisher     string
	Description   string
	TotalEpisodes int
	ImageURL      string
	ExternalURL   string
}

// SpotifyEpisode is the normalized episode DTO. ReleaseDate stays raw
// (YYYY, YYYY-MM, or YYYY-MM-DD); the poller left-anchors it.
type SpotifyEpisode struct {
	ID          string
	Name        string
	Description string
	ReleaseDate string
	DurationMs  int
	IsPlayable  bool
	ImageURL    string
	ExternalURL string
}

type spotifyImage struct {
	URL string `json:"url"`
}

func firstImage(images []spotifyImage) string {
	if len(images) == 0 {
		return ""
	}
	return images[0].URL
}

type wireShow struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Publisher     string         `json:"publisher"`
	Description   string         `json:"description"`
	TotalEpisodes int            `json:"total_episodes"`
	Images        []spotifyImage `json:"images"`
	ExternalURLs  struct {
		Spotify string `json:"spotify"`
	} `json:"external_urls"`
}

func (w *wireShow) normalize() SpotifyShow {
	return SpotifyShow{
		ID:            w.ID,
		Name:          w.Name,
		Publisher:     w.Publisher,
		Description:   w.Description,
		TotalEpisodes: w.TotalEpisodes,
		ImageURL:      firstImage(w.Images),
		ExternalURL:   w.ExternalURLs.Spotify,
	}
}

type wireEpisode struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	ReleaseDate string         `json:"release_date"`
	DurationMs  int            `json:"duration_ms"`
	IsPlayable  *bool          `json:"is_playable"`
	Images      []spotifyImage `json:"images"`
	ExternalURLs struct {
		Spotify string `json:"spotify"`
	} `json:"external_urls"`
}

func (w *wireEpisode) normalize() SpotifyEpisode {
	// is_playable is omitted in some markets; absent means playable
	playable := true
	if w.IsPlayable != nil {
		playable = *w.IsPlayable
	}
	return SpotifyEpisode{
		ID:          w.ID,
		Name:        w.Name,
		Description: w.Description,
		ReleaseDate: w.ReleaseDate,
		DurationMs:  w.DurationMs,
		IsPlayable:  playable,
		ImageURL:    firstImage(w.Images),
		ExternalURL: w.ExternalURLs.Spotify,
	}
}

type showsResponse struct {
	Shows []*wireShow `json:"shows"`
}

type episodesResponse struct {
	Items []*wireEpisode `json:"items"`
	Next  string         `json:"next"`
}

type savedShowsResponse struct {
	Items []struct {
		Show *wireShow `json:"show"`
	} `json:"items"`
	Next string `json:"next"`
}

type searchShowsResponse struct {
	Shows struct {
		Items []*wireShow `json:"items"`
	} `json:"shows"`
}
