// ABOUTME: Postgres repository for items, user-items, tracking rows, and the idempotency gate
// ABOUTME: Every either-or semantic is a unique index; there are no long-lived transactions

package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"inbox-hub/models"
)

type itemRepository struct {
	db     Querier
	logger *slog.Logger
}

// NewItemRepository creates an item repository.
func NewItemRepository(db Querier, logger *slog.Logger) ItemRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &itemRepository{db: db, logger: logger}
}

// UpsertItem inserts the canonical item or returns the existing row's id on
// (provider, provider_id) conflict. Existing non-null attribution fields are
// never overwritten; null optional fields are filled.
func (r *itemRepository) UpsertItem(ctx context.Context, item *models.Item) (string, error) {
	query := `INSERT INTO items (
			id, content_type, provider, provider_id, canonical_url, title,
			thumbnail_url, creator_id, duration, published_at, summary,
			raw_metadata, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $13)
		ON CONFLICT (provider, provider_id) DO UPDATE SET
			thumbnail_url = COALESCE(items.thumbnail_url, EXCLUDED.thumbnail_url),
			creator_id   = COALESCE(items.creator_id, EXCLUDED.creator_id),
			duration     = COALESCE(items.duration, EXCLUDED.duration),
			published_at = COALESCE(items.published_at, EXCLUDED.published_at),
			summary      = COALESCE(items.summary, EXCLUDED.summary),
			updated_at   = EXCLUDED.updated_at
		RETURNING id`

	var id string
	err := r.db.QueryRow(ctx, query,
		item.ID, item.ContentType, item.Provider, item.ProviderID,
		item.CanonicalURL, item.Title, item.ThumbnailURL, item.CreatorID,
		item.Duration, millisPtrToTime(item.PublishedAt), item.Summary,
		item.RawMetadata, millisToTime(item.CreatedAt),
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to upsert item %s/%s: %w", item.Provider, item.ProviderID, err)
	}
	return id, nil
}

// InsertUserItem inserts the user's INBOX relation. Returns false when the
// (user_id, item_id) row already exists.
func (r *itemRepository) InsertUserItem(ctx context.Context, userItem *models.UserItem) (bool, error) {
	query := `INSERT INTO user_items (
			id, user_id, item_id, state, ingested_at, is_finished, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		ON CONFLICT (user_id, item_id) DO NOTHING`

	tag, err := r.db.Exec(ctx, query,
		userItem.ID, userItem.UserID, userItem.ItemID, userItem.State,
		millisToTime(userItem.IngestedAt), userItem.IsFinished,
		millisToTime(userItem.CreatedAt))
	if err != nil {
		return false, fmt.Errorf("failed to insert user item: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// InsertSubscriptionItem records the tracking row; conflicts are ignored.
func (r *itemRepository) InsertSubscriptionItem(ctx context.Context, si *models.SubscriptionItem) error {
	query := `INSERT INTO subscription_items (
			id, subscription_id, item_id, provider_item_id, published_at, fetched_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (subscription_id, provider_item_id) DO NOTHING`

	if _, err := r.db.Exec(ctx, query,
		si.ID, si.SubscriptionID, si.ItemID, si.ProviderItemID,
		millisPtrToTime(si.PublishedAt), millisToTime(si.FetchedAt)); err != nil {
		return fmt.Errorf("failed to insert subscription item: %w", err)
	}
	return nil
}

// InsertSeen plants the idempotency gate. Returns false when the
// (user_id, provider, provider_item_id) row already exists, which means the
// item was ingested (or attempted) before and must be skipped.
func (r *itemRepository) InsertSeen(ctx context.Context, seen *models.ProviderItemSeen) (bool, error) {
	query := `INSERT INTO provider_items_seen (
			id, user_id, provider, provider_item_id, source_id, first_seen_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, provider, provider_item_id) DO NOTHING`

	tag, err := r.db.Exec(ctx, query,
		seen.ID, seen.UserID, seen.Provider, seen.ProviderItemID,
		seen.SourceID, millisToTime(seen.FirstSeenAt))
	if err != nil {
		return false, fmt.Errorf("failed to insert seen gate: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *itemRepository) DeleteSubscriptionItems(ctx context.Context, subscriptionID string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM subscription_items WHERE subscription_id = $1`, subscriptionID); err != nil {
		return fmt.Errorf("failed to delete subscription items: %w", err)
	}
	return nil
}

// DeleteInboxUserItems removes only INBOX user-items sourced from the
// subscription. BOOKMARKED and ARCHIVED relations are preserved.
func (r *itemRepository) DeleteInboxUserItems(ctx context.Context, userID, subscriptionID string) (int64, error) {
	query := `DELETE FROM user_items
		WHERE user_id = $1
		  AND state = 'INBOX'
		  AND item_id IN (
			SELECT item_id FROM subscription_items WHERE subscription_id = $2)`
	tag, err := r.db.Exec(ctx, query, userID, subscriptionID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete inbox user items: %w", err)
	}
	return tag.RowsAffected(), nil
}

// RecentPublishTimes returns publish timestamps of up to limit most recent
// tracking rows, newest first. Feeds the adaptive interval controller.
func (r *itemRepository) RecentPublishTimes(ctx context.Context, subscriptionID string, limit int) ([]int64, error) {
	query := `SELECT published_at FROM subscription_items
		WHERE subscription_id = $1 AND published_at IS NOT NULL
		ORDER BY published_at DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, subscriptionID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent publish times: %w", err)
	}
	defer rows.Close()

	times := []int64{}
	for rows.Next() {
		var t time.Time
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("failed to scan publish time: %w", err)
		}
		times = append(times, timeToMillis(t))
	}
	return times, rows.Err()
}
