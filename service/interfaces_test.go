// ABOUTME: Compile-time checks that the concrete drivers satisfy the service interfaces

package service

import (
	"inbox-hub/driver"
)

var (
	_ YouTubeAPI     = (*driver.YouTubeClient)(nil)
	_ SpotifyAPI     = (*driver.SpotifyClient)(nil)
	_ RSSFetcher     = (*driver.RSSClient)(nil)
	_ TokenRefresher = (*driver.YouTubeClient)(nil)
	_ TokenRefresher = (*driver.SpotifyClient)(nil)
	_ KV             = (*driver.RedisDriver)(nil)
)
