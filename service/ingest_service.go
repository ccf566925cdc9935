// ABOUTME: Ingestion core: seen-gate, canonical item upsert, creator find-or-create, user item insert
// ABOUTME: Failures after the seen-gate go to the dead letter queue since the gate suppresses retries

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"inbox-hub/ids"
	"inbox-hub/metrics"
	"inbox-hub/models"
	"inbox-hub/repository"
)

// Skip reasons reported by IngestResult.
const (
	SkipAlreadySeen    = "already_seen"
	SkipUserItemExists = "user_item_exists"
)

// CreatorInput describes the item's author. ProviderCreatorID may be
// empty for providers without native creator ids; a synthetic id is
// derived from the name.
type CreatorInput struct {
	ProviderCreatorID string
	Name              string
	ImageURL          *string
	Handle            *string
	ExternalURL       *string
	Description       *string
}

// IngestInput is one provider item headed for a user's inbox.
type IngestInput struct {
	UserID          string
	SubscriptionID  *string
	Provider        models.Provider
	ProviderItemID  string
	ContentType     models.ContentType
	CanonicalURL    string
	Title           string
	ThumbnailURL    *string
	DurationSeconds *int
	PublishedAt     *int64
	Summary         *string
	RawMetadata     []byte
	Creator         *CreatorInput
}

// IngestResult reports what the pipeline did with one item.
type IngestResult struct {
	Created    bool
	SkipReason string
	ItemID     string
}

// IngestService runs the per-item ingestion pipeline.
type IngestService struct {
	items     repository.ItemRepository
	creators  repository.CreatorRepository
	dlq       repository.DLQRepository
	logger    *slog.Logger
	now       func() int64
}

// NewIngestService creates the ingestion pipeline.
func NewIngestService(
	items repository.ItemRepository,
	creators repository.CreatorRepository,
	dlq repository.DLQRepository,
	logger *slog.Logger,
) *IngestService {
	if logger == nil {
		logger = slog.Default()
	}
	return &IngestService{
		items:    items,
		creators: creators,
		dlq:      dlq,
		logger:   logger,
		now:      ids.NowMillis,
	}
}

// IngestItem runs the pipeline for one item. The seen-gate is planted
// first; everything after a planted gate that fails is recorded in the
// dead letter queue, because the gate will suppress any retry on the
// next poll.
func (s *IngestService) IngestItem(ctx context.Context, input IngestInput) (IngestResult, error) {
	now := s.now()

	planted, err := s.items.InsertSeen(ctx, &models.ProviderItemSeen{
		ID:             ids.NewULID(),
		UserID:         input.UserID,
		Provider:       input.Provider,
		ProviderItemID: input.ProviderItemID,
		SourceID:       input.SubscriptionID,
		FirstSeenAt:    now,
	})
	if err != nil {
		return IngestResult{}, fmt.Errorf("failed to plant seen gate: %w", err)
	}
	if !planted {
		metrics.IngestSkipsTotal.WithLabelValues(string(input.Provider), SkipAlreadySeen).Inc()
		return IngestResult{SkipReason: SkipAlreadySeen}, nil
	}

	result, err := s.ingestAfterGate(ctx, input, now)
	if err != nil {
		s.pushDeadLetter(ctx, input, err)
		return IngestResult{}, err
	}
	return result, nil
}

func (s *IngestService) ingestAfterGate(ctx context.Context, input IngestInput, now int64) (IngestResult, error) {
	var creatorID *string
	if input.Creator != nil && input.Creator.Name != "" {
		id, err := resolveCreator(ctx, s.creators, input.Provider, input.Creator, now)
		if err != nil {
			return IngestResult{}, err
		}
		creatorID = &id
	}

	itemID, err := s.items.UpsertItem(ctx, &models.Item{
		ID:           ids.NewULID(),
		ContentType:  input.ContentType,
		Provider:     input.Provider,
		ProviderID:   input.ProviderItemID,
		CanonicalURL: input.CanonicalURL,
		Title:        input.Title,
		ThumbnailURL: input.ThumbnailURL,
		CreatorID:    creatorID,
		Duration:     input.DurationSeconds,
		PublishedAt:  input.PublishedAt,
		Summary:      input.Summary,
		RawMetadata:  input.RawMetadata,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return IngestResult{}, fmt.Errorf("failed to upsert item: %w", err)
	}

	created, err := s.items.InsertUserItem(ctx, &models.UserItem{
		ID:         ids.NewULID(),
		UserID:     input.UserID,
		ItemID:     itemID,
		State:      models.UserItemInbox,
		IngestedAt: now,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return IngestResult{}, fmt.Errorf("failed to insert user item: %w", err)
	}

	if input.SubscriptionID != nil {
		if err := s.items.InsertSubscriptionItem(ctx, &models.SubscriptionItem{
			ID:             ids.NewULID(),
			SubscriptionID: *input.SubscriptionID,
			ItemID:         itemID,
			ProviderItemID: input.ProviderItemID,
			PublishedAt:    input.PublishedAt,
			FetchedAt:      now,
		}); err != nil {
			return IngestResult{}, fmt.Errorf("failed to insert tracking row: %w", err)
		}
	}

	if !created {
		metrics.IngestSkipsTotal.WithLabelValues(string(input.Provider), SkipUserItemExists).Inc()
		return IngestResult{SkipReason: SkipUserItemExists, ItemID: itemID}, nil
	}

	metrics.ItemsIngestedTotal.WithLabelValues(string(input.Provider)).Inc()
	return IngestResult{Created: true, ItemID: itemID}, nil
}

// resolveCreator resolves the creator row, creating it on first sight.
// Name always follows the latest observation; the remaining attribution
// fields are fill-only. Shared with the subscription add path, which
// seeds the creator from the user payload before the first item lands.
func resolveCreator(ctx context.Context, repo repository.CreatorRepository, provider models.Provider, input *CreatorInput, now int64) (string, error) {
	providerCreatorID := input.ProviderCreatorID
	if providerCreatorID == "" {
		providerCreatorID = models.SyntheticCreatorID(provider, input.Name)
	}

	existing, err := repo.FindByProviderID(ctx, provider, providerCreatorID)
	if err == nil {
		existing.Name = input.Name
		existing.NormalizedName = models.NormalizeCreatorName(input.Name)
		existing.ImageURL = input.ImageURL
		existing.Handle = input.Handle
		existing.ExternalURL = input.ExternalURL
		existing.Description = input.Description
		existing.UpdatedAt = now
		if err := repo.UpdateFill(ctx, existing); err != nil {
			return "", fmt.Errorf("failed to update creator: %w", err)
		}
		return existing.ID, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return "", fmt.Errorf("failed to look up creator: %w", err)
	}

	creator := &models.Creator{
		ID:                ids.NewULID(),
		Provider:          provider,
		ProviderCreatorID: providerCreatorID,
		Name:              input.Name,
		NormalizedName:    models.NormalizeCreatorName(input.Name),
		ImageURL:          input.ImageURL,
		Handle:            input.Handle,
		ExternalURL:       input.ExternalURL,
		Description:       input.Description,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := repo.Create(ctx, creator); err != nil {
		return "", fmt.Errorf("failed to create creator: %w", err)
	}
	return creator.ID, nil
}

func (s *IngestService) pushDeadLetter(ctx context.Context, input IngestInput, cause error) {
	raw := input.RawMetadata
	if raw == nil {
		raw, _ = json.Marshal(map[string]string{
			"provider_item_id": input.ProviderItemID,
			"title":            input.Title,
			"canonical_url":    input.CanonicalURL,
		})
	}

	entry := &models.DeadLetterEntry{
		ID:             ids.NewULID(),
		SubscriptionID: input.SubscriptionID,
		UserID:         input.UserID,
		Provider:       input.Provider,
		ProviderID:     input.ProviderItemID,
		RawData:        raw,
		ErrorMessage:   cause.Error(),
		Status:         models.DLQPending,
		CreatedAt:      s.now(),
	}
	if err := s.dlq.Insert(ctx, entry); err != nil {
		s.logger.ErrorContext(ctx, "failed to record dead letter entry",
			"provider", input.Provider,
			"provider_item_id", input.ProviderItemID,
			"error", err)
		return
	}
	metrics.DeadLetterTotal.WithLabelValues(string(input.Provider)).Inc()
}
