// ABOUTME: Postgres repository for creators
// ABOUTME: UpdateFill refreshes the name but only fills optional fields that are currently null

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

type creatorRepository struct {
	db     Querier
	logger *slog.Logger
}

// NewCreatorRepository creates a creator repository.
func NewCreatorRepository(db Querier, logger *slog.Logger) CreatorRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &creatorRepository{db: db, logger: logger}
}

const creatorColumns = `id, provider, provider_creator_id, name, normalized_name,
	image_url, handle, external_url, description, created_at, updated_at`

func (r *creatorRepository) FindByProviderID(ctx context.Context, provider models.Provider, providerCreatorID string) (*models.Creator, error) {
	query := `SELECT ` + creatorColumns + ` FROM creators
		WHERE provider = $1 AND provider_creator_id = $2`

	var (
		c         models.Creator
		createdAt time.Time
		updatedAt time.Time
	)
	err := r.db.QueryRow(ctx, query, provider, providerCreatorID).Scan(
		&c.ID, &c.Provider, &c.ProviderCreatorID, &c.Name, &c.NormalizedName,
		&c.ImageURL, &c.Handle, &c.ExternalURL, &c.Description, &createdAt, &updatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find creator %s/%s: %w", provider, providerCreatorID, err)
	}
	c.CreatedAt = timeToMillis(createdAt)
	c.UpdatedAt = timeToMillis(updatedAt)
	return &c, nil
}

func (r *creatorRepository) FindByIDs(ctx context.Context, ids []string) (map[string]*models.Creator, error) {
	out := make(map[string]*models.Creator, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	query := `SELECT ` + creatorColumns + ` FROM creators WHERE id = ANY($1)`
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load creators: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			c         models.Creator
			createdAt time.Time
			updatedAt time.Time
		)
		if err := rows.Scan(&c.ID, &c.Provider, &c.ProviderCreatorID, &c.Name,
			&c.NormalizedName, &c.ImageURL, &c.Handle, &c.ExternalURL,
			&c.Description, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan creator: %w", err)
		}
		c.CreatedAt = timeToMillis(createdAt)
		c.UpdatedAt = timeToMillis(updatedAt)
		out[c.ID] = &c
	}
	return out, rows.Err()
}

func (r *creatorRepository) Create(ctx context.Context, creator *models.Creator) error {
	query := `INSERT INTO creators (` + creatorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
		ON CONFLICT (provider, provider_creator_id) DO NOTHING`

	if _, err := r.db.Exec(ctx, query,
		creator.ID, creator.Provider, creator.ProviderCreatorID,
		creator.Name, creator.NormalizedName, creator.ImageURL, creator.Handle,
		creator.ExternalURL, creator.Description, millisToTime(creator.CreatedAt)); err != nil {
		return fmt.Errorf("failed to create creator: %w", err)
	}
	return nil
}

// UpdateFill always refreshes name/normalized_name; the optional attribution
// fields are filled only where the stored value is null.
func (r *creatorRepository) UpdateFill(ctx context.Context, creator *models.Creator) error {
	query := `UPDATE creators SET
			name = $2,
			normalized_name = $3,
			image_url    = COALESCE(image_url, $4),
			handle       = COALESCE(handle, $5),
			external_url = COALESCE(external_url, $6),
			description  = COALESCE(description, $7),
			updated_at   = $8
		WHERE id = $1`

	if _, err := r.db.Exec(ctx, query,
		creator.ID, creator.Name, creator.NormalizedName,
		creator.ImageURL, creator.Handle, creator.ExternalURL, creator.Description,
		millisToTime(creator.UpdatedAt)); err != nil {
		return fmt.Errorf("failed to update creator %s: %w", creator.ID, err)
	}
	return nil
}
