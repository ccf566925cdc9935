// ABOUTME: Postgres repository for the dead letter queue
// ABOUTME: Entries record items that failed to transform or ingest after inline handling

package repository

import (
	"context"
	"fmt"
	"log/slog"

	"inbox-hub/models"
)

type dlqRepository struct {
	db     Querier
	logger *slog.Logger
}

// NewDLQRepository creates a dead-letter-queue repository.
func NewDLQRepository(db Querier, logger *slog.Logger) DLQRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &dlqRepository{db: db, logger: logger}
}

func (r *dlqRepository) Insert(ctx context.Context, entry *models.DeadLetterEntry) error {
	query := `INSERT INTO dead_letter_queue (
			id, subscription_id, user_id, provider, provider_id, raw_data,
			error_message, error_type, error_stack, retry_count, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	if _, err := r.db.Exec(ctx, query,
		entry.ID, entry.SubscriptionID, entry.UserID, entry.Provider,
		entry.ProviderID, entry.RawData, entry.ErrorMessage, entry.ErrorType,
		entry.ErrorStack, entry.RetryCount, entry.Status,
		millisToTime(entry.CreatedAt)); err != nil {
		return fmt.Errorf("failed to insert dead letter entry: %w", err)
	}

	r.logger.WarnContext(ctx, "item pushed to dead letter queue",
		"provider", entry.Provider,
		"provider_id", entry.ProviderID,
		"error", entry.ErrorMessage)
	return nil
}
