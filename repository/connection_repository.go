// ABOUTME: Postgres repository for provider OAuth connections
// ABOUTME: Token columns carry ciphertext; plaintext exists only inside the token service

package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"inbox-hub/models"
)

type connectionRepository struct {
	db     Querier
	logger *slog.Logger
}

// NewConnectionRepository creates a connection repository.
func NewConnectionRepository(db Querier, logger *slog.Logger) ConnectionRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &connectionRepository{db: db, logger: logger}
}

func (r *connectionRepository) FindByUserProvider(ctx context.Context, userID string, provider models.Provider) (*models.ProviderConnection, error) {
	query := `SELECT id, user_id, provider, provider_user_id, access_token,
			refresh_token, token_expires_at, scopes, status, connected_at, last_refreshed_at
		FROM provider_connections
		WHERE user_id = $1 AND provider = $2`

	var (
		c             models.ProviderConnection
		expiresAt     time.Time
		connectedAt   time.Time
		lastRefreshed *time.Time
	)
	err := r.db.QueryRow(ctx, query, userID, provider).Scan(
		&c.ID, &c.UserID, &c.Provider, &c.ProviderUserID, &c.AccessToken,
		&c.RefreshToken, &expiresAt, &c.Scopes, &c.Status, &connectedAt, &lastRefreshed)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find connection %s/%s: %w", userID, provider, err)
	}
	c.TokenExpiresAt = timeToMillis(expiresAt)
	c.ConnectedAt = timeToMillis(connectedAt)
	c.LastRefreshedAt = timePtrToMillis(lastRefreshed)
	return &c, nil
}

func (r *connectionRepository) UpdateTokens(ctx context.Context, id, accessCiphertext, refreshCiphertext string, expiresAtMillis, nowMillis int64) error {
	query := `UPDATE provider_connections SET
			access_token = $2,
			refresh_token = $3,
			token_expires_at = $4,
			last_refreshed_at = $5
		WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id, accessCiphertext, refreshCiphertext,
		millisToTime(expiresAtMillis), millisToTime(nowMillis))
	if err != nil {
		return fmt.Errorf("failed to update connection tokens: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *connectionRepository) UpdateStatus(ctx context.Context, id string, status models.ConnectionStatus) error {
	tag, err := r.db.Exec(ctx, `UPDATE provider_connections SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("failed to update connection status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
