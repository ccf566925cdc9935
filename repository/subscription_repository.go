// ABOUTME: Postgres repository for subscriptions and their poll bookkeeping
// ABOUTME: The watermark update is split from MarkPolled so failed polls still advance lastPolledAt

package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"inbox-hub/ids"
	"inbox-hub/models"
)

type subscriptionRepository struct {
	db     Querier
	logger *slog.Logger
}

// NewSubscriptionRepository creates a subscription repository.
func NewSubscriptionRepository(db Querier, logger *slog.Logger) SubscriptionRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &subscriptionRepository{db: db, logger: logger}
}

const subscriptionColumns = `id, user_id, provider, provider_channel_id, creator_id,
	total_items, last_published_at, last_polled_at, poll_interval_seconds,
	status, disconnected_at, disconnected_reason, created_at, updated_at`

func scanSubscription(row pgx.Row) (*models.Subscription, error) {
	var (
		sub                models.Subscription
		lastPublished      *time.Time
		lastPolled         *time.Time
		disconnectedAt     *time.Time
		createdAt          time.Time
		updatedAt          time.Time
	)
	err := row.Scan(&sub.ID, &sub.UserID, &sub.Provider, &sub.ProviderChannelID, &sub.CreatorID,
		&sub.TotalItems, &lastPublished, &lastPolled, &sub.PollIntervalSeconds,
		&sub.Status, &disconnectedAt, &sub.DisconnectedReason, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	sub.LastPublishedAt = timePtrToMillis(lastPublished)
	sub.LastPolledAt = timePtrToMillis(lastPolled)
	sub.DisconnectedAt = timePtrToMillis(disconnectedAt)
	sub.CreatedAt = timeToMillis(createdAt)
	sub.UpdatedAt = timeToMillis(updatedAt)
	return &sub, nil
}

func (r *subscriptionRepository) FindByID(ctx context.Context, id string) (*models.Subscription, error) {
	query := `SELECT ` + subscriptionColumns + ` FROM subscriptions WHERE id = $1`
	sub, err := scanSubscription(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find subscription %s: %w", id, err)
	}
	return sub, nil
}

// FindDue returns ACTIVE subscriptions whose poll interval has elapsed,
// never-polled rows first, then oldest last_polled_at.
func (r *subscriptionRepository) FindDue(ctx context.Context, nowMillis int64) ([]*models.Subscription, error) {
	query := `SELECT ` + subscriptionColumns + ` FROM subscriptions
		WHERE status = 'ACTIVE'
		  AND (last_polled_at IS NULL
		       OR $1::timestamptz - last_polled_at >= make_interval(secs => poll_interval_seconds))
		ORDER BY last_polled_at ASC NULLS FIRST`

	rows, err := r.db.Query(ctx, query, millisToTime(nowMillis))
	if err != nil {
		return nil, fmt.Errorf("failed to query due subscriptions: %w", err)
	}
	defer rows.Close()
	return collectSubscriptions(rows)
}

func (r *subscriptionRepository) ListByUser(ctx context.Context, userID string, filter SubscriptionListFilter) ([]*models.Subscription, error) {
	query := `SELECT ` + subscriptionColumns + ` FROM subscriptions WHERE user_id = $1`
	args := []any{userID}

	if filter.Provider != nil {
		args = append(args, *filter.Provider)
		query += fmt.Sprintf(" AND provider = $%d", len(args))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	} else {
		query += " AND status <> 'UNSUBSCRIBED'"
	}
	if filter.Cursor != "" {
		args = append(args, filter.Cursor)
		query += fmt.Sprintf(" AND id > $%d", len(args))
	}

	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY id ASC LIMIT $%d", len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	defer rows.Close()
	return collectSubscriptions(rows)
}

func (r *subscriptionRepository) ListNonUnsubscribedChannelIDs(ctx context.Context, userID string, provider models.Provider) (map[string]bool, error) {
	query := `SELECT provider_channel_id FROM subscriptions
		WHERE user_id = $1 AND provider = $2 AND status <> 'UNSUBSCRIBED'`
	rows, err := r.db.Query(ctx, query, userID, provider)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscribed channel ids: %w", err)
	}
	defer rows.Close()

	out := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan channel id: %w", err)
		}
		out[id] = true
	}
	return out, rows.Err()
}

func (r *subscriptionRepository) ListActiveByUserProvider(ctx context.Context, userID string, provider models.Provider) ([]*models.Subscription, error) {
	query := `SELECT ` + subscriptionColumns + ` FROM subscriptions
		WHERE user_id = $1 AND provider = $2 AND status = 'ACTIVE'
		ORDER BY last_polled_at ASC NULLS FIRST`
	rows, err := r.db.Query(ctx, query, userID, provider)
	if err != nil {
		return nil, fmt.Errorf("failed to list active subscriptions: %w", err)
	}
	defer rows.Close()
	return collectSubscriptions(rows)
}

// Upsert inserts a subscription or reactivates a prior UNSUBSCRIBED row for
// the same (user, provider, channel). The returned row carries the
// persistent id, which is stable across unsubscribe/resubscribe.
func (r *subscriptionRepository) Upsert(ctx context.Context, sub *models.Subscription) (*models.Subscription, error) {
	query := `INSERT INTO subscriptions (
			id, user_id, provider, provider_channel_id, creator_id,
			poll_interval_seconds, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, 'ACTIVE', $7, $7)
		ON CONFLICT (user_id, provider, provider_channel_id) DO UPDATE SET
			status = 'ACTIVE',
			disconnected_at = NULL,
			disconnected_reason = NULL,
			creator_id = COALESCE(subscriptions.creator_id, EXCLUDED.creator_id),
			updated_at = EXCLUDED.updated_at
		RETURNING ` + subscriptionColumns

	now := millisToTime(ids.NowMillis())
	if sub.ID == "" {
		sub.ID = ids.NewULID()
	}
	row := r.db.QueryRow(ctx, query, sub.ID, sub.UserID, sub.Provider, sub.ProviderChannelID,
		sub.CreatorID, sub.PollIntervalSeconds, now)

	saved, err := scanSubscription(row)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert subscription: %w", err)
	}
	return saved, nil
}

func (r *subscriptionRepository) UpdateStatus(ctx context.Context, id string, status models.SubscriptionStatus, reason *string, nowMillis int64) error {
	query := `UPDATE subscriptions SET
			status = $2,
			disconnected_reason = $3,
			disconnected_at = CASE WHEN $2 = 'DISCONNECTED' THEN $4::timestamptz ELSE NULL END,
			updated_at = $4
		WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id, status, reason, millisToTime(nowMillis))
	if err != nil {
		return fmt.Errorf("failed to update subscription status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkPolled advances last_polled_at unconditionally. Called after every
// poll attempt, including failed ones, to prevent tight-loop retries.
func (r *subscriptionRepository) MarkPolled(ctx context.Context, id string, nowMillis int64) error {
	query := `UPDATE subscriptions SET last_polled_at = $2, updated_at = $2 WHERE id = $1`
	if _, err := r.db.Exec(ctx, query, id, millisToTime(nowMillis)); err != nil {
		return fmt.Errorf("failed to mark subscription polled: %w", err)
	}
	return nil
}

// UpdateWatermark sets last_published_at and/or total_items. Nil arguments
// leave the column untouched, which is how the ingested-only watermark rule
// is expressed at the SQL boundary.
func (r *subscriptionRepository) UpdateWatermark(ctx context.Context, id string, lastPublishedAt *int64, totalItems *int, nowMillis int64) error {
	query := `UPDATE subscriptions SET
			last_published_at = COALESCE($2, last_published_at),
			total_items = COALESCE($3, total_items),
			updated_at = $4
		WHERE id = $1`
	if _, err := r.db.Exec(ctx, query, id, millisPtrToTime(lastPublishedAt), totalItems, millisToTime(nowMillis)); err != nil {
		return fmt.Errorf("failed to update subscription watermark: %w", err)
	}
	return nil
}

func (r *subscriptionRepository) UpdatePollInterval(ctx context.Context, id string, seconds int, nowMillis int64) error {
	query := `UPDATE subscriptions SET poll_interval_seconds = $2, updated_at = $3 WHERE id = $1`
	if _, err := r.db.Exec(ctx, query, id, seconds, millisToTime(nowMillis)); err != nil {
		return fmt.Errorf("failed to update poll interval: %w", err)
	}
	return nil
}

// DisconnectAllForUserProvider bulk-disconnects every active subscription of
// a (user, provider) pair. Used when the connection expires or is revoked.
func (r *subscriptionRepository) DisconnectAllForUserProvider(ctx context.Context, userID string, provider models.Provider, reason string, nowMillis int64) (int64, error) {
	query := `UPDATE subscriptions SET
			status = 'DISCONNECTED',
			disconnected_reason = $3,
			disconnected_at = $4,
			updated_at = $4
		WHERE user_id = $1 AND provider = $2 AND status IN ('ACTIVE', 'PAUSED')`
	tag, err := r.db.Exec(ctx, query, userID, provider, reason, millisToTime(nowMillis))
	if err != nil {
		return 0, fmt.Errorf("failed to disconnect subscriptions: %w", err)
	}
	return tag.RowsAffected(), nil
}

func collectSubscriptions(rows pgx.Rows) ([]*models.Subscription, error) {
	subs := []*models.Subscription{}
	for rows.Next() {
		sub, err := scanSubscription(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan subscription: %w", err)
		}
		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate subscriptions: %w", err)
	}
	return subs, nil
}
