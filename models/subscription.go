// ABOUTME: Subscription and subscription-item tracking entities
// ABOUTME: lastPublishedAt is the watermark of successfully ingested content, never of fetched content

package models

// SubscriptionStatus is the lifecycle state of a subscription.
type SubscriptionStatus string

const (
	SubscriptionActive       SubscriptionStatus = "ACTIVE"
	SubscriptionPaused       SubscriptionStatus = "PAUSED"
	SubscriptionDisconnected SubscriptionStatus = "DISCONNECTED"
	SubscriptionUnsubscribed SubscriptionStatus = "UNSUBSCRIBED"
)

// Subscription ties a user to a provider channel or show.
// All timestamps are integer Unix milliseconds; nullable ones are pointers.
type Subscription struct {
	ID                  string             `json:"id"`
	UserID              string             `json:"user_id"`
	Provider            Provider           `json:"provider"`
	ProviderChannelID   string             `json:"provider_channel_id"`
	CreatorID           *string            `json:"creator_id,omitempty"`
	TotalItems          *int               `json:"total_items,omitempty"`
	LastPublishedAt     *int64             `json:"last_published_at,omitempty"`
	LastPolledAt        *int64             `json:"last_polled_at,omitempty"`
	PollIntervalSeconds int                `json:"poll_interval_seconds"`
	Status              SubscriptionStatus `json:"status"`
	DisconnectedAt      *int64             `json:"disconnected_at,omitempty"`
	DisconnectedReason  *string            `json:"disconnected_reason,omitempty"`
	CreatedAt           int64              `json:"created_at"`
	UpdatedAt           int64              `json:"updated_at"`
}

// NeverPolled reports whether the subscription has not completed a poll yet.
// A zero lastPolledAt is treated the same as null for legacy rows.
func (s *Subscription) NeverPolled() bool {
	return s.LastPolledAt == nil || *s.LastPolledAt == 0
}

// Due reports whether the subscription is due for polling at nowMillis.
func (s *Subscription) Due(nowMillis int64) bool {
	if s.Status != SubscriptionActive {
		return false
	}
	if s.NeverPolled() {
		return true
	}
	return nowMillis-*s.LastPolledAt >= int64(s.PollIntervalSeconds)*1000
}

// SubscriptionItem is a pure tracking row used for delta detection and
// dedup within one subscription. Purged on unsubscribe.
type SubscriptionItem struct {
	ID             string `json:"id"`
	SubscriptionID string `json:"subscription_id"`
	ItemID         string `json:"item_id"`
	ProviderItemID string `json:"provider_item_id"`
	PublishedAt    *int64 `json:"published_at,omitempty"`
	FetchedAt      int64  `json:"fetched_at"`
}

// ProviderItemSeen is the idempotency gate: a present row suppresses
// re-ingestion of the same provider item for the user, even across
// unsubscribe/resubscribe. Never purged.
type ProviderItemSeen struct {
	ID             string   `json:"id"`
	UserID         string   `json:"user_id"`
	Provider       Provider `json:"provider"`
	ProviderItemID string   `json:"provider_item_id"`
	SourceID       *string  `json:"source_id,omitempty"`
	FirstSeenAt    int64    `json:"first_seen_at"`
}
