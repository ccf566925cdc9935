// ABOUTME: Cron-tick scheduler: singleton lock, due-subscription query, grouped poller dispatch
// ABOUTME: Individual subscription failures never abort the run; the lock is always released

package service

import (
	"context"
	"log/slog"
	"time"

	"inbox-hub/ids"
	"inbox-hub/metrics"
	"inbox-hub/models"
	"inbox-hub/repository"
)

const cronLockKey = "cron:poll-subscriptions:lock"

// SchedulerResult aggregates one cron run.
type SchedulerResult struct {
	Skipped      bool                `json:"skipped,omitempty"`
	SkipReason   string              `json:"skip_reason,omitempty"`
	Processed    int                 `json:"processed"`
	NewItems     int                 `json:"new_items"`
	Disconnected int                 `json:"disconnected"`
	Errors       []SubscriptionError `json:"-"`
}

// Scheduler runs one poll pass over all due subscriptions.
type Scheduler struct {
	subs     repository.SubscriptionRepository
	tokens   TokenProvider
	limiter  ProviderRateLimiter
	health   PollOutcomeHandler
	youtube  *YouTubePoller
	spotify  *SpotifyPoller
	rss      *RSSPoller
	interval *IntervalService
	kv       KV
	lockTTL  time.Duration
	logger   *slog.Logger
	now      func() int64
}

// NewScheduler wires the cron entrypoint.
func NewScheduler(
	subs repository.SubscriptionRepository,
	tokens TokenProvider,
	limiter ProviderRateLimiter,
	health PollOutcomeHandler,
	youtube *YouTubePoller,
	spotify *SpotifyPoller,
	rss *RSSPoller,
	interval *IntervalService,
	kv KV,
	lockTTL time.Duration,
	logger *slog.Logger,
) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		subs:     subs,
		tokens:   tokens,
		limiter:  limiter,
		health:   health,
		youtube:  youtube,
		spotify:  spotify,
		rss:      rss,
		interval: interval,
		kv:       kv,
		lockTTL:  lockTTL,
		logger:   logger,
		now:      ids.NowMillis,
	}
}

// RunOnce is the cron entrypoint. Overlapping invocations across
// replicas serialize on the distributed lock; the loser returns
// skipped without querying.
func (s *Scheduler) RunOnce(ctx context.Context) SchedulerResult {
	owner := ids.NewToken()
	acquired, err := s.kv.AcquireLock(ctx, cronLockKey, owner, s.lockTTL)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to acquire scheduler lock", "error", err)
		metrics.SchedulerRunsTotal.WithLabelValues("lock_error").Inc()
		return SchedulerResult{Skipped: true, SkipReason: "lock_error"}
	}
	if !acquired {
		metrics.SchedulerRunsTotal.WithLabelValues("lock_held").Inc()
		s.logger.InfoContext(ctx, "scheduler run skipped", "reason", "lock_held")
		return SchedulerResult{Skipped: true, SkipReason: "lock_held"}
	}
	defer func() {
		if err := s.kv.ReleaseLock(ctx, cronLockKey, owner); err != nil {
			s.logger.ErrorContext(ctx, "failed to release scheduler lock", "error", err)
		}
	}()

	result := s.run(ctx)

	metrics.SchedulerRunsTotal.WithLabelValues("ok").Inc()
	s.logger.InfoContext(ctx, "scheduler run finished",
		"processed", result.Processed,
		"new_items", result.NewItems,
		"disconnected", result.Disconnected,
		"errors", len(result.Errors))
	return result
}

func (s *Scheduler) run(ctx context.Context) SchedulerResult {
	var result SchedulerResult

	due, err := s.subs.FindDue(ctx, s.now())
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to query due subscriptions", "error", err)
		result.Errors = append(result.Errors, SubscriptionError{Err: err})
		return result
	}
	if len(due) == 0 {
		return result
	}

	for _, group := range groupByUserProvider(due) {
		batch, polled := s.pollGroup(ctx, group)
		if !polled {
			continue // rate limited, deferred to the next tick
		}

		result.Processed += batch.Processed
		result.NewItems += batch.NewItems
		result.Disconnected += batch.Disconnected
		result.Errors = append(result.Errors, batch.Errors...)

		s.reportOutcomes(ctx, group.subs, batch)
	}
	return result
}

type pollGroup struct {
	userID   string
	provider models.Provider
	subs     []*models.Subscription
}

func groupByUserProvider(subs []*models.Subscription) []pollGroup {
	var order []pollGroup
	index := make(map[string]int)
	for _, sub := range subs {
		key := sub.UserID + ":" + string(sub.Provider)
		i, ok := index[key]
		if !ok {
			i = len(order)
			index[key] = i
			order = append(order, pollGroup{userID: sub.UserID, provider: sub.Provider})
		}
		order[i].subs = append(order[i].subs, sub)
	}
	return order
}

// pollGroup runs one (user, provider) batch. The second return is false
// when the group was rate limited and nothing ran.
func (s *Scheduler) pollGroup(ctx context.Context, group pollGroup) (BatchResult, bool) {
	if !s.limiter.Allow(group.provider, group.userID) {
		s.logger.InfoContext(ctx, "group rate limited, skipping",
			"user_id", group.userID, "provider", group.provider)
		return BatchResult{}, false
	}

	switch group.provider {
	case models.ProviderYouTube, models.ProviderSpotify:
		token, err := s.tokens.GetValidToken(ctx, group.userID, group.provider)
		if err != nil {
			// every sub in the group fails the same way; the health
			// monitor classifies the error in reportOutcomes
			var out BatchResult
			for _, sub := range group.subs {
				out.Errors = append(out.Errors, SubscriptionError{SubscriptionID: sub.ID, Err: err})
			}
			return out, true
		}
		if group.provider == models.ProviderYouTube {
			return s.youtube.PollBatch(ctx, group.subs, token), true
		}
		return s.spotify.PollBatch(ctx, group.subs, token), true
	case models.ProviderRSS:
		return s.rss.PollBatch(ctx, group.subs), true
	default:
		s.logger.WarnContext(ctx, "no poller for provider", "provider", group.provider)
		return BatchResult{}, false
	}
}

// reportOutcomes feeds per-subscription results to the health monitor
// and lets the interval controller recalculate cadence.
func (s *Scheduler) reportOutcomes(ctx context.Context, subs []*models.Subscription, batch BatchResult) {
	failed := make(map[string]error, len(batch.Errors))
	for _, e := range batch.Errors {
		if e.SubscriptionID != "" {
			failed[e.SubscriptionID] = e.Err
		}
	}

	for _, sub := range subs {
		if pollErr, ok := failed[sub.ID]; ok {
			if err := s.health.HandlePollError(ctx, sub, pollErr); err != nil {
				s.logger.ErrorContext(ctx, "health monitor failed on poll error",
					"subscription_id", sub.ID, "error", err)
			}
			continue
		}
		if sub.Status != models.SubscriptionActive {
			continue // disconnected during this run
		}
		if err := s.health.HandlePollSuccess(ctx, sub); err != nil {
			s.logger.ErrorContext(ctx, "health monitor failed on poll success",
				"subscription_id", sub.ID, "error", err)
		}
		if s.interval != nil {
			if err := s.interval.MaybeAdjust(ctx, sub); err != nil {
				s.logger.WarnContext(ctx, "interval adjustment failed",
					"subscription_id", sub.ID, "error", err)
			}
		}
	}
}
