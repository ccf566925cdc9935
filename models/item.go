// ABOUTME: Canonical content items and per-user item relations
// ABOUTME: Items are shared across users; UserItem carries the per-user inbox state

package models

// Item is canonical provider-sourced content, one row per (provider, providerId).
// Never deleted by user actions.
type Item struct {
	ID           string      `json:"id"`
	ContentType  ContentType `json:"content_type"`
	Provider     Provider    `json:"provider"`
	ProviderID   string      `json:"provider_id"`
	CanonicalURL string      `json:"canonical_url"`
	Title        string      `json:"title"`
	ThumbnailURL *string     `json:"thumbnail_url,omitempty"`
	CreatorID    *string     `json:"creator_id,omitempty"`
	Duration     *int        `json:"duration,omitempty"` // seconds
	PublishedAt  *int64      `json:"published_at,omitempty"`
	Summary      *string     `json:"summary,omitempty"`
	RawMetadata  []byte      `json:"raw_metadata,omitempty"`
	CreatedAt    int64       `json:"created_at"`
	UpdatedAt    int64       `json:"updated_at"`
}

// UserItemState is the user's relation state to a canonical item.
type UserItemState string

const (
	UserItemInbox      UserItemState = "INBOX"
	UserItemBookmarked UserItemState = "BOOKMARKED"
	UserItemArchived   UserItemState = "ARCHIVED"
)

// UserItem is a user's relation to an Item, unique on (userId, itemId).
// New ingestion always inserts with state INBOX.
type UserItem struct {
	ID               string        `json:"id"`
	UserID           string        `json:"user_id"`
	ItemID           string        `json:"item_id"`
	State            UserItemState `json:"state"`
	IngestedAt       int64         `json:"ingested_at"`
	BookmarkedAt     *int64        `json:"bookmarked_at,omitempty"`
	ArchivedAt       *int64        `json:"archived_at,omitempty"`
	LastOpenedAt     *int64        `json:"last_opened_at,omitempty"`
	ProgressPosition *int          `json:"progress_position,omitempty"`
	ProgressDuration *int          `json:"progress_duration,omitempty"`
	IsFinished       bool          `json:"is_finished"`
	FinishedAt       *int64        `json:"finished_at,omitempty"`
	CreatedAt        int64         `json:"created_at"`
	UpdatedAt        int64         `json:"updated_at"`
}
