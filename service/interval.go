// ABOUTME: Adaptive poll interval controller: recent publish activity picks the cadence tier
// ABOUTME: Adjustments are throttled to every 24 polls and guarded against small churn

package service

import (
	"context"
	"fmt"
	"log/slog"

	"inbox-hub/ids"
	"inbox-hub/models"
	"inbox-hub/repository"
)

// Cadence tiers in seconds.
const (
	IntervalVeryActive = 3600
	IntervalActive     = 14400
	IntervalModerate   = 43200
	IntervalInactive   = 86400
)

const (
	intervalAdjustEvery = 24  // polls between recalculations
	intervalScanLimit   = 100 // recent tracking rows considered
	intervalChurnGuard  = 0.5 // minimum relative change to apply
)

// TargetInterval maps recent publish counts onto a cadence tier.
func TargetInterval(itemsLast7Days, itemsLast30Days int) int {
	switch {
	case itemsLast7Days >= 7:
		return IntervalVeryActive
	case itemsLast7Days >= 1:
		return IntervalActive
	case itemsLast30Days >= 1:
		return IntervalModerate
	default:
		return IntervalInactive
	}
}

// IntervalService recalculates subscription poll intervals from recent
// publish activity.
type IntervalService struct {
	subs   repository.SubscriptionRepository
	items  repository.ItemRepository
	logger *slog.Logger
	now    func() int64
}

// NewIntervalService creates an interval controller.
func NewIntervalService(subs repository.SubscriptionRepository, items repository.ItemRepository, logger *slog.Logger) *IntervalService {
	if logger == nil {
		logger = slog.Default()
	}
	return &IntervalService{subs: subs, items: items, logger: logger, now: ids.NowMillis}
}

// ShouldAdjust reports whether the subscription has crossed another
// 24-poll boundary since creation.
func ShouldAdjust(sub *models.Subscription, nowMillis int64) bool {
	if sub.PollIntervalSeconds <= 0 {
		return false
	}
	elapsed := nowMillis - sub.CreatedAt
	polls := elapsed / (int64(sub.PollIntervalSeconds) * 1000)
	return polls > 0 && polls%intervalAdjustEvery == 0
}

// MaybeAdjust recalculates the interval from up to 100 recent tracking
// rows and applies it only when the change is at least 50%.
func (s *IntervalService) MaybeAdjust(ctx context.Context, sub *models.Subscription) error {
	now := s.now()
	if !ShouldAdjust(sub, now) {
		return nil
	}

	publishTimes, err := s.items.RecentPublishTimes(ctx, sub.ID, intervalScanLimit)
	if err != nil {
		return fmt.Errorf("failed to load recent publish times: %w", err)
	}

	var last7, last30 int
	weekAgo := now - 7*24*3600*1000
	monthAgo := now - 30*24*3600*1000
	for _, ts := range publishTimes {
		if ts >= weekAgo {
			last7++
		}
		if ts >= monthAgo {
			last30++
		}
	}

	target := TargetInterval(last7, last30)
	current := sub.PollIntervalSeconds
	if current > 0 {
		change := float64(target-current) / float64(current)
		if change < 0 {
			change = -change
		}
		if change < intervalChurnGuard {
			return nil
		}
	}

	if err := s.subs.UpdatePollInterval(ctx, sub.ID, target, now); err != nil {
		return fmt.Errorf("failed to update poll interval: %w", err)
	}
	sub.PollIntervalSeconds = target

	s.logger.InfoContext(ctx, "poll interval adjusted",
		"subscription_id", sub.ID,
		"items_last_7d", last7,
		"items_last_30d", last30,
		"interval_seconds", target)
	return nil
}
