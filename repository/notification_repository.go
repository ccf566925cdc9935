// ABOUTME: Postgres repository for user notifications
// ABOUTME: The partial unique index on (user_id, type, provider) WHERE resolved_at IS NULL carries dedup

package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"inbox-hub/models"
)

type notificationRepository struct {
	db     Querier
	logger *slog.Logger
}

// NewNotificationRepository creates a notification repository.
func NewNotificationRepository(db Querier, logger *slog.Logger) NotificationRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &notificationRepository{db: db, logger: logger}
}

// InsertActive inserts a notification unless an unresolved one for the same
// (user, type, provider) already exists. Returns false on dedup.
func (r *notificationRepository) InsertActive(ctx context.Context, n *models.UserNotification) (bool, error) {
	query := `INSERT INTO user_notifications (
			id, user_id, type, provider, title, message, data, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id, type, provider) WHERE resolved_at IS NULL DO NOTHING`

	tag, err := r.db.Exec(ctx, query,
		n.ID, n.UserID, n.Type, n.Provider, n.Title, n.Message, n.Data,
		millisToTime(n.CreatedAt))
	if err != nil {
		return false, fmt.Errorf("failed to insert notification: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ResolveActive resolves all unresolved notifications of the given types for
// a (user, provider). Returns how many rows were resolved.
func (r *notificationRepository) ResolveActive(ctx context.Context, userID string, types []models.NotificationType, provider models.Provider, nowMillis int64) (int64, error) {
	query := `UPDATE user_notifications SET resolved_at = $4
		WHERE user_id = $1 AND provider = $2 AND type = ANY($3) AND resolved_at IS NULL`

	typeStrings := make([]string, len(types))
	for i, t := range types {
		typeStrings[i] = string(t)
	}

	tag, err := r.db.Exec(ctx, query, userID, provider, typeStrings, millisToTime(nowMillis))
	if err != nil {
		return 0, fmt.Errorf("failed to resolve notifications: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID string, unresolvedOnly bool, limit int) ([]*models.UserNotification, error) {
	query := `SELECT id, user_id, type, provider, title, message, data,
			read_at, resolved_at, created_at
		FROM user_notifications
		WHERE user_id = $1`
	if unresolvedOnly {
		query += " AND resolved_at IS NULL"
	}
	query += " ORDER BY created_at DESC LIMIT $2"

	if limit <= 0 || limit > 100 {
		limit = 50
	}

	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	out := []*models.UserNotification{}
	for rows.Next() {
		var (
			n          models.UserNotification
			readAt     *time.Time
			resolvedAt *time.Time
			createdAt  time.Time
		)
		if err := rows.Scan(&n.ID, &n.UserID, &n.Type, &n.Provider, &n.Title,
			&n.Message, &n.Data, &readAt, &resolvedAt, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		n.ReadAt = timePtrToMillis(readAt)
		n.ResolvedAt = timePtrToMillis(resolvedAt)
		n.CreatedAt = timeToMillis(createdAt)
		out = append(out, &n)
	}
	return out, rows.Err()
}

func (r *notificationRepository) MarkRead(ctx context.Context, userID, id string, nowMillis int64) error {
	query := `UPDATE user_notifications SET read_at = COALESCE(read_at, $3)
		WHERE id = $1 AND user_id = $2`
	tag, err := r.db.Exec(ctx, query, id, userID, millisToTime(nowMillis))
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
