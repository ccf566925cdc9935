// ABOUTME: Tests for the adaptive interval controller: tier mapping, adjust cadence, churn guard

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"inbox-hub/mocks"
	"inbox-hub/models"
)

func TestTargetInterval(t *testing.T) {
	tests := map[string]struct {
		last7  int
		last30 int
		want   int
	}{
		"daily_publisher_gets_hourly":    {last7: 7, last30: 20, want: IntervalVeryActive},
		"weekly_publisher_gets_active":   {last7: 1, last30: 4, want: IntervalActive},
		"monthly_publisher_gets_twelveh": {last7: 0, last30: 2, want: IntervalModerate},
		"dormant_gets_daily":             {last7: 0, last30: 0, want: IntervalInactive},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, TargetInterval(tc.last7, tc.last30))
		})
	}
}

func TestShouldAdjust(t *testing.T) {
	now := millis("2024-01-20T12:00:00Z")
	interval := int64(IntervalActive) * 1000

	tests := map[string]struct {
		createdAt int64
		want      bool
	}{
		"before_first_boundary":     {createdAt: now - 5*interval, want: false},
		"exactly_24_polls":          {createdAt: now - 24*interval, want: true},
		"between_boundaries":        {createdAt: now - 30*interval, want: false},
		"second_boundary":           {createdAt: now - 48*interval, want: true},
		"just_created":              {createdAt: now, want: false},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			sub := &models.Subscription{
				PollIntervalSeconds: IntervalActive,
				CreatedAt:           tc.createdAt,
			}
			assert.Equal(t, tc.want, ShouldAdjust(sub, now))
		})
	}
}

func TestMaybeAdjustAppliesTierChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	subs := mocks.NewMockSubscriptionRepository(ctrl)
	items := mocks.NewMockItemRepository(ctrl)
	svc := NewIntervalService(subs, items, nil)

	now := millis("2024-01-20T12:00:00Z")
	svc.now = func() int64 { return now }

	sub := &models.Subscription{
		ID:                  "01SUB",
		PollIntervalSeconds: IntervalActive,
		CreatedAt:           now - 24*int64(IntervalActive)*1000,
	}

	// nothing published for months: the cadence drops to daily
	items.EXPECT().RecentPublishTimes(gomock.Any(), "01SUB", intervalScanLimit).
		Return([]int64{now - 90*24*3600*1000}, nil)
	subs.EXPECT().UpdatePollInterval(gomock.Any(), "01SUB", IntervalInactive, now).Return(nil)

	require.NoError(t, svc.MaybeAdjust(context.Background(), sub))
	assert.Equal(t, IntervalInactive, sub.PollIntervalSeconds)
}

func TestMaybeAdjustChurnGuardHoldsSmallChanges(t *testing.T) {
	ctrl := gomock.NewController(t)
	subs := mocks.NewMockSubscriptionRepository(ctrl)
	items := mocks.NewMockItemRepository(ctrl)
	svc := NewIntervalService(subs, items, nil)

	now := millis("2024-01-20T12:00:00Z")
	svc.now = func() int64 { return now }

	// current already matches the target tier: |change| is zero, no write
	sub := &models.Subscription{
		ID:                  "01SUB",
		PollIntervalSeconds: IntervalActive,
		CreatedAt:           now - 24*int64(IntervalActive)*1000,
	}
	items.EXPECT().RecentPublishTimes(gomock.Any(), "01SUB", intervalScanLimit).
		Return([]int64{now - 2*24*3600*1000}, nil)

	require.NoError(t, svc.MaybeAdjust(context.Background(), sub))
	assert.Equal(t, IntervalActive, sub.PollIntervalSeconds)
}

func TestMaybeAdjustOffBoundaryIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	subs := mocks.NewMockSubscriptionRepository(ctrl)
	items := mocks.NewMockItemRepository(ctrl)
	svc := NewIntervalService(subs, items, nil)

	now := millis("2024-01-20T12:00:00Z")
	svc.now = func() int64 { return now }

	sub := &models.Subscription{
		ID:                  "01SUB",
		PollIntervalSeconds: IntervalActive,
		CreatedAt:           now - 3*int64(IntervalActive)*1000,
	}
	require.NoError(t, svc.MaybeAdjust(context.Background(), sub))
}
