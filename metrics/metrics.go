// ABOUTME: Prometheus instrumentation for polling and ingestion
// ABOUTME: Counters are registered with promauto on the default registry, exposed at /metrics

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PollsTotal counts poll attempts per provider.
	PollsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inbox_hub_polls_total",
		Help: "Number of subscription poll attempts",
	}, []string{"provider"})

	// PollErrorsTotal counts failed poll attempts per provider.
	PollErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inbox_hub_poll_errors_total",
		Help: "Number of failed subscription poll attempts",
	}, []string{"provider"})

	// ItemsIngestedTotal counts user items created by ingestion.
	ItemsIngestedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inbox_hub_items_ingested_total",
		Help: "Number of user items created",
	}, []string{"provider"})

	// IngestSkipsTotal counts items skipped during ingestion, by reason.
	IngestSkipsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inbox_hub_ingest_skips_total",
		Help: "Number of items skipped during ingestion",
	}, []string{"provider", "reason"})

	// DeadLetterTotal counts items pushed to the dead letter queue.
	DeadLetterTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inbox_hub_dead_letter_total",
		Help: "Number of items pushed to the dead letter queue",
	}, []string{"provider"})

	// TokenRefreshesTotal counts token refresh attempts by outcome.
	TokenRefreshesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inbox_hub_token_refreshes_total",
		Help: "Number of token refresh attempts",
	}, []string{"provider", "outcome"})

	// SchedulerRunsTotal counts scheduler runs by outcome.
	SchedulerRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inbox_hub_scheduler_runs_total",
		Help: "Number of scheduler runs",
	}, []string{"outcome"})
)
