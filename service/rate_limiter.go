// ABOUTME: Per-(provider, user) token bucket gating outbound provider API calls
// ABOUTME: A denied group is skipped for the scheduler run and retried on the next tick

package service

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"inbox-hub/models"
)

// ProviderRateLimits maps each provider to its bucket settings.
var defaultRateLimits = map[models.Provider]rate.Limit{
	models.ProviderYouTube: rate.Every(time.Second),
	models.ProviderSpotify: rate.Every(time.Second),
	models.ProviderRSS:     rate.Every(2 * time.Second),
}

// GroupRateLimiter keeps one token bucket per (provider, user) group.
type GroupRateLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	limits   map[models.Provider]rate.Limit
	burst    int
}

// NewGroupRateLimiter creates a limiter with the default per-provider rates.
func NewGroupRateLimiter() *GroupRateLimiter {
	return &GroupRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limits:   defaultRateLimits,
		burst:    3,
	}
}

// Allow reports whether the (provider, user) group may make API calls
// right now. Denials do not queue; the caller skips the group.
func (g *GroupRateLimiter) Allow(provider models.Provider, userID string) bool {
	return g.limiterFor(provider, userID).Allow()
}

func (g *GroupRateLimiter) limiterFor(provider models.Provider, userID string) *rate.Limiter {
	key := string(provider) + ":" + userID

	g.mu.RLock()
	limiter, exists := g.limiters[key]
	g.mu.RUnlock()
	if exists {
		return limiter
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// Double-check pattern
	if limiter, exists := g.limiters[key]; exists {
		return limiter
	}

	limit, ok := g.limits[provider]
	if !ok {
		limit = rate.Every(time.Second)
	}
	limiter = rate.NewLimiter(limit, g.burst)
	g.limiters[key] = limiter
	return limiter
}
