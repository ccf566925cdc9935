//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// ABOUTME: Repository interfaces and the shared database querier abstraction
// ABOUTME: Repositories accept the querier interface so tests can substitute pgxmock

package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"inbox-hub/models"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("record not found")

// Querier is the subset of pgxpool.Pool the repositories use.
// pgxmock satisfies it in tests.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// SubscriptionListFilter narrows ListByUser results.
type SubscriptionListFilter struct {
	Provider *models.Provider
	Status   *models.SubscriptionStatus
	Limit    int
	Cursor   string // last row id of the previous page; ids are time-ordered
}

// SubscriptionRepository persists subscriptions and their poll bookkeeping.
type SubscriptionRepository interface {
	FindByID(ctx context.Context, id string) (*models.Subscription, error)
	FindDue(ctx context.Context, nowMillis int64) ([]*models.Subscription, error)
	ListByUser(ctx context.Context, userID string, filter SubscriptionListFilter) ([]*models.Subscription, error)
	ListNonUnsubscribedChannelIDs(ctx context.Context, userID string, provider models.Provider) (map[string]bool, error)
	ListActiveByUserProvider(ctx context.Context, userID string, provider models.Provider) ([]*models.Subscription, error)
	Upsert(ctx context.Context, sub *models.Subscription) (*models.Subscription, error)
	UpdateStatus(ctx context.Context, id string, status models.SubscriptionStatus, reason *string, nowMillis int64) error
	MarkPolled(ctx context.Context, id string, nowMillis int64) error
	UpdateWatermark(ctx context.Context, id string, lastPublishedAt *int64, totalItems *int, nowMillis int64) error
	UpdatePollInterval(ctx context.Context, id string, seconds int, nowMillis int64) error
	DisconnectAllForUserProvider(ctx context.Context, userID string, provider models.Provider, reason string, nowMillis int64) (int64, error)
}

// ItemRepository persists canonical items, user relations, tracking rows,
// and the idempotency gate.
type ItemRepository interface {
	UpsertItem(ctx context.Context, item *models.Item) (string, error)
	InsertUserItem(ctx context.Context, userItem *models.UserItem) (bool, error)
	InsertSubscriptionItem(ctx context.Context, si *models.SubscriptionItem) error
	InsertSeen(ctx context.Context, seen *models.ProviderItemSeen) (bool, error)
	DeleteSubscriptionItems(ctx context.Context, subscriptionID string) error
	DeleteInboxUserItems(ctx context.Context, userID, subscriptionID string) (int64, error)
	RecentPublishTimes(ctx context.Context, subscriptionID string, limit int) ([]int64, error)
}

// CreatorRepository persists creators with fill-only attribution updates.
type CreatorRepository interface {
	FindByProviderID(ctx context.Context, provider models.Provider, providerCreatorID string) (*models.Creator, error)
	FindByIDs(ctx context.Context, ids []string) (map[string]*models.Creator, error)
	Create(ctx context.Context, creator *models.Creator) error
	UpdateFill(ctx context.Context, creator *models.Creator) error
}

// ConnectionRepository persists provider OAuth connections.
// Token columns hold ciphertext; sealing happens in the token service.
type ConnectionRepository interface {
	FindByUserProvider(ctx context.Context, userID string, provider models.Provider) (*models.ProviderConnection, error)
	UpdateTokens(ctx context.Context, id, accessCiphertext, refreshCiphertext string, expiresAtMillis, nowMillis int64) error
	UpdateStatus(ctx context.Context, id string, status models.ConnectionStatus) error
}

// NotificationRepository persists user notifications with active-dedup.
type NotificationRepository interface {
	InsertActive(ctx context.Context, n *models.UserNotification) (bool, error)
	ResolveActive(ctx context.Context, userID string, types []models.NotificationType, provider models.Provider, nowMillis int64) (int64, error)
	ListByUser(ctx context.Context, userID string, unresolvedOnly bool, limit int) ([]*models.UserNotification, error)
	MarkRead(ctx context.Context, userID, id string, nowMillis int64) error
}

// DLQRepository records ingestion failures for offline recovery.
type DLQRepository interface {
	Insert(ctx context.Context, entry *models.DeadLetterEntry) error
}
