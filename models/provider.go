// ABOUTME: Provider and content-type enumerations shared across the service
// ABOUTME: Providers identify the upstream platform a subscription or item came from

package models

// Provider identifies the upstream content platform.
type Provider string

const (
	ProviderYouTube Provider = "YOUTUBE"
	ProviderSpotify Provider = "SPOTIFY"
	ProviderRSS     Provider = "RSS"
	ProviderWeb     Provider = "WEB"
)

// Valid reports whether the provider is one the service knows how to poll.
func (p Provider) Valid() bool {
	switch p {
	case ProviderYouTube, ProviderSpotify, ProviderRSS, ProviderWeb:
		return true
	}
	return false
}

// RequiresConnection reports whether the provider needs an OAuth connection
// before subscriptions can be added or polled. RSS and WEB feeds are public.
func (p Provider) RequiresConnection() bool {
	return p == ProviderYouTube || p == ProviderSpotify
}

func (p Provider) String() string {
	return string(p)
}

// ContentType classifies canonical items.
type ContentType string

const (
	ContentTypeVideo   ContentType = "VIDEO"
	ContentTypePodcast ContentType = "PODCAST"
	ContentTypeArticle ContentType = "ARTICLE"
	ContentTypePost    ContentType = "POST"
)

// ContentTypeFor returns the canonical content type ingested for a provider.
func ContentTypeFor(p Provider) ContentType {
	switch p {
	case ProviderYouTube:
		return ContentTypeVideo
	case ProviderSpotify:
		return ContentTypePodcast
	default:
		return ContentTypeArticle
	}
}
