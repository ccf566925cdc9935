// ABOUTME: Tests for the health monitor: auth-failure cascade, chronic failure threshold, reconnect

package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"inbox-hub/driver"
	"inbox-hub/mocks"
	"inbox-hub/models"
)

type healthFixture struct {
	monitor       *HealthMonitor
	connections   *mocks.MockConnectionRepository
	subs          *mocks.MockSubscriptionRepository
	notifications *mocks.MockNotificationRepository
	kv            *MockKV
	now           int64
}

func newHealthFixture(t *testing.T) *healthFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	connections := mocks.NewMockConnectionRepository(ctrl)
	subs := mocks.NewMockSubscriptionRepository(ctrl)
	notifications := mocks.NewMockNotificationRepository(ctrl)
	kv := NewMockKV(ctrl)

	monitor := NewHealthMonitor(connections, subs, notifications, kv, nil)
	now := millis("2024-01-20T12:00:00Z")
	monitor.now = func() int64 { return now }
	return &healthFixture{
		monitor:       monitor,
		connections:   connections,
		subs:          subs,
		notifications: notifications,
		kv:            kv,
		now:           now,
	}
}

func healthSub() *models.Subscription {
	return &models.Subscription{
		ID:       "01SUB",
		UserID:   "user-1",
		Provider: models.ProviderSpotify,
		Status:   models.SubscriptionActive,
	}
}

func TestHandlePollErrorPermanentFailuresCascade(t *testing.T) {
	tests := map[string]struct {
		pollErr          error
		wantStatus       models.ConnectionStatus
		wantNotification models.NotificationType
	}{
		"invalid_refresh_token_expires_connection": {
			pollErr:          driver.ErrRefreshTokenInvalid,
			wantStatus:       models.ConnectionExpired,
			wantNotification: models.NotificationConnectionExpired,
		},
		"revoked_access_revokes_connection": {
			pollErr:          driver.ErrAccessRevoked,
			wantStatus:       models.ConnectionRevoked,
			wantNotification: models.NotificationConnectionRevoked,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			f := newHealthFixture(t)
			sub := healthSub()

			conn := &models.ProviderConnection{ID: "conn-1", UserID: "user-1", Provider: models.ProviderSpotify, Status: models.ConnectionActive}
			f.connections.EXPECT().
				FindByUserProvider(gomock.Any(), "user-1", models.ProviderSpotify).
				Return(conn, nil)
			f.connections.EXPECT().UpdateStatus(gomock.Any(), "conn-1", tc.wantStatus).Return(nil)
			f.subs.EXPECT().
				DisconnectAllForUserProvider(gomock.Any(), "user-1", models.ProviderSpotify, gomock.Any(), f.now).
				Return(int64(3), nil)
			f.notifications.EXPECT().InsertActive(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, n *models.UserNotification) (bool, error) {
					assert.Equal(t, tc.wantNotification, n.Type)
					require.NotNil(t, n.Provider)
					assert.Equal(t, models.ProviderSpotify, *n.Provider)
					return true, nil
				})

			require.NoError(t, f.monitor.HandlePollError(context.Background(), sub, tc.pollErr))
		})
	}
}

func TestHandlePollErrorTransientCountsTowardThreshold(t *testing.T) {
	tests := map[string]struct {
		count            int64
		wantNotification bool
	}{
		"first_failure_is_silent":          {count: 1, wantNotification: false},
		"third_failure_notifies":           {count: 3, wantNotification: true},
		"fourth_failure_does_not_renotify": {count: 4, wantNotification: false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			f := newHealthFixture(t)
			sub := healthSub()

			f.kv.EXPECT().
				IncrCounter(gomock.Any(), fmt.Sprintf(pollFailureKeyFmt, "01SUB"), pollFailureTTL).
				Return(tc.count, nil)
			if tc.wantNotification {
				f.notifications.EXPECT().InsertActive(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, n *models.UserNotification) (bool, error) {
						assert.Equal(t, models.NotificationPollFailures, n.Type)
						return true, nil
					})
			}

			require.NoError(t, f.monitor.HandlePollError(context.Background(), sub, driver.ErrTemporaryFailure))
		})
	}
}

func TestHandlePollSuccessClearsFailures(t *testing.T) {
	f := newHealthFixture(t)
	sub := healthSub()

	f.kv.EXPECT().DeleteKey(gomock.Any(), fmt.Sprintf(pollFailureKeyFmt, "01SUB")).Return(nil)
	f.notifications.EXPECT().
		ResolveActive(gomock.Any(), "user-1",
			[]models.NotificationType{models.NotificationPollFailures},
			models.ProviderSpotify, f.now).
		Return(int64(1), nil)

	require.NoError(t, f.monitor.HandlePollSuccess(context.Background(), sub))
}

func TestHandleReconnectReactivatesAndResolves(t *testing.T) {
	f := newHealthFixture(t)

	conn := &models.ProviderConnection{ID: "conn-1", UserID: "user-1", Provider: models.ProviderSpotify, Status: models.ConnectionExpired}
	f.connections.EXPECT().
		FindByUserProvider(gomock.Any(), "user-1", models.ProviderSpotify).
		Return(conn, nil)
	f.connections.EXPECT().UpdateStatus(gomock.Any(), "conn-1", models.ConnectionActive).Return(nil)
	f.notifications.EXPECT().
		ResolveActive(gomock.Any(), "user-1",
			[]models.NotificationType{
				models.NotificationConnectionExpired,
				models.NotificationConnectionRevoked,
			},
			models.ProviderSpotify, f.now).
		Return(int64(1), nil)

	require.NoError(t, f.monitor.HandleReconnect(context.Background(), "user-1", models.ProviderSpotify))
}

func TestHandleReconnectAlreadyActiveSkipsStatusWrite(t *testing.T) {
	f := newHealthFixture(t)

	conn := &models.ProviderConnection{ID: "conn-1", UserID: "user-1", Provider: models.ProviderSpotify, Status: models.ConnectionActive}
	f.connections.EXPECT().
		FindByUserProvider(gomock.Any(), "user-1", models.ProviderSpotify).
		Return(conn, nil)
	f.notifications.EXPECT().
		ResolveActive(gomock.Any(), "user-1", gomock.Any(), models.ProviderSpotify, f.now).
		Return(int64(0), nil)

	require.NoError(t, f.monitor.HandleReconnect(context.Background(), "user-1", models.ProviderSpotify))
}
