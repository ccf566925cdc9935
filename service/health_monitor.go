// ABOUTME: Health monitor: auth-error state machine for connections plus chronic poll failure tracking
// ABOUTME: Transient errors never change status; permanent refresh failures cascade to subscriptions

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"inbox-hub/driver"
	"inbox-hub/ids"
	"inbox-hub/models"
	"inbox-hub/repository"
)

const (
	pollFailureKeyFmt    = "poll:failures:%s"
	pollFailureTTL       = 24 * time.Hour
	pollFailureThreshold = 3
)

// HealthMonitor reacts to poll and refresh outcomes: it flips connection
// status, cascades subscription disconnects, and emits notifications.
type HealthMonitor struct {
	connections   repository.ConnectionRepository
	subs          repository.SubscriptionRepository
	notifications repository.NotificationRepository
	kv            KV
	logger        *slog.Logger
	now           func() int64
}

// NewHealthMonitor creates a health monitor.
func NewHealthMonitor(
	connections repository.ConnectionRepository,
	subs repository.SubscriptionRepository,
	notifications repository.NotificationRepository,
	kv KV,
	logger *slog.Logger,
) *HealthMonitor {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthMonitor{
		connections:   connections,
		subs:          subs,
		notifications: notifications,
		kv:            kv,
		logger:        logger,
		now:           ids.NowMillis,
	}
}

// HandlePollError classifies pollErr. Permanent auth failures disable
// the connection and all its subscriptions; everything else only bumps
// the per-subscription failure counter.
func (m *HealthMonitor) HandlePollError(ctx context.Context, sub *models.Subscription, pollErr error) error {
	switch {
	case errors.Is(pollErr, driver.ErrRefreshTokenInvalid):
		return m.disableConnection(ctx, sub.UserID, sub.Provider,
			models.ConnectionExpired, models.NotificationConnectionExpired,
			"Connection expired",
			fmt.Sprintf("Your %s connection has expired. Reconnect to keep your subscriptions syncing.", sub.Provider))
	case errors.Is(pollErr, driver.ErrAccessRevoked):
		return m.disableConnection(ctx, sub.UserID, sub.Provider,
			models.ConnectionRevoked, models.NotificationConnectionRevoked,
			"Connection revoked",
			fmt.Sprintf("Access to your %s account was revoked. Reconnect to resume syncing.", sub.Provider))
	default:
		return m.recordPollFailure(ctx, sub)
	}
}

// HandlePollSuccess clears the failure counter and resolves any active
// poll-failure notification for the subscription's (user, provider).
func (m *HealthMonitor) HandlePollSuccess(ctx context.Context, sub *models.Subscription) error {
	key := fmt.Sprintf(pollFailureKeyFmt, sub.ID)
	if err := m.kv.DeleteKey(ctx, key); err != nil {
		m.logger.WarnContext(ctx, "failed to clear poll failure counter",
			"subscription_id", sub.ID, "error", err)
	}
	if _, err := m.notifications.ResolveActive(ctx, sub.UserID,
		[]models.NotificationType{models.NotificationPollFailures},
		sub.Provider, m.now()); err != nil {
		return fmt.Errorf("failed to resolve poll failure notifications: %w", err)
	}
	return nil
}

// HandleReconnect reactivates the connection after the user re-authorizes
// and resolves connection notices.
func (m *HealthMonitor) HandleReconnect(ctx context.Context, userID string, provider models.Provider) error {
	conn, err := m.connections.FindByUserProvider(ctx, userID, provider)
	if err != nil {
		return fmt.Errorf("failed to load connection for reconnect: %w", err)
	}
	if conn.Status != models.ConnectionActive {
		if err := m.connections.UpdateStatus(ctx, conn.ID, models.ConnectionActive); err != nil {
			return fmt.Errorf("failed to reactivate connection: %w", err)
		}
	}
	if _, err := m.notifications.ResolveActive(ctx, userID,
		[]models.NotificationType{
			models.NotificationConnectionExpired,
			models.NotificationConnectionRevoked,
		}, provider, m.now()); err != nil {
		return fmt.Errorf("failed to resolve connection notifications: %w", err)
	}
	m.logger.InfoContext(ctx, "connection reconnected", "user_id", userID, "provider", provider)
	return nil
}

func (m *HealthMonitor) disableConnection(
	ctx context.Context,
	userID string,
	provider models.Provider,
	status models.ConnectionStatus,
	notificationType models.NotificationType,
	title, message string,
) error {
	now := m.now()

	conn, err := m.connections.FindByUserProvider(ctx, userID, provider)
	if err == nil {
		if err := m.connections.UpdateStatus(ctx, conn.ID, status); err != nil {
			return fmt.Errorf("failed to update connection status: %w", err)
		}
	} else if !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("failed to load connection: %w", err)
	}

	reason := title
	disconnected, err := m.subs.DisconnectAllForUserProvider(ctx, userID, provider, reason, now)
	if err != nil {
		return fmt.Errorf("failed to disconnect subscriptions: %w", err)
	}

	created, err := m.notifications.InsertActive(ctx, &models.UserNotification{
		ID:        ids.NewULID(),
		UserID:    userID,
		Type:      notificationType,
		Provider:  &provider,
		Title:     title,
		Message:   message,
		CreatedAt: now,
	})
	if err != nil {
		return fmt.Errorf("failed to emit %s notification: %w", notificationType, err)
	}

	m.logger.WarnContext(ctx, "connection disabled",
		"user_id", userID,
		"provider", provider,
		"status", status,
		"subscriptions_disconnected", disconnected,
		"notification_created", created)
	return nil
}

func (m *HealthMonitor) recordPollFailure(ctx context.Context, sub *models.Subscription) error {
	key := fmt.Sprintf(pollFailureKeyFmt, sub.ID)
	count, err := m.kv.IncrCounter(ctx, key, pollFailureTTL)
	if err != nil {
		return fmt.Errorf("failed to increment poll failure counter: %w", err)
	}
	if count != pollFailureThreshold {
		return nil
	}

	_, err = m.notifications.InsertActive(ctx, &models.UserNotification{
		ID:        ids.NewULID(),
		UserID:    sub.UserID,
		Type:      models.NotificationPollFailures,
		Provider:  &sub.Provider,
		Title:     "Subscription sync failing",
		Message:   fmt.Sprintf("A %s subscription has failed to sync %d times in a row.", sub.Provider, pollFailureThreshold),
		CreatedAt: m.now(),
	})
	if err != nil {
		return fmt.Errorf("failed to emit poll failure notification: %w", err)
	}
	return nil
}
