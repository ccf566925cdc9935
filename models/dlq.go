// ABOUTME: Dead letter queue entries for items that failed transform or ingestion
// ABOUTME: The DLQ is the recovery channel once the idempotency gate has been planted

package models

// DLQStatus is the processing state of a dead-letter entry.
type DLQStatus string

const (
	DLQPending   DLQStatus = "pending"
	DLQRetrying  DLQStatus = "retrying"
	DLQResolved  DLQStatus = "resolved"
	DLQAbandoned DLQStatus = "abandoned"
)

// DeadLetterEntry records an item that failed to ingest after inline retries.
type DeadLetterEntry struct {
	ID             string    `json:"id"`
	SubscriptionID *string   `json:"subscription_id,omitempty"`
	UserID         string    `json:"user_id"`
	Provider       Provider  `json:"provider"`
	ProviderID     string    `json:"provider_id"`
	RawData        []byte    `json:"raw_data"`
	ErrorMessage   string    `json:"error_message"`
	ErrorType      *string   `json:"error_type,omitempty"`
	ErrorStack     *string   `json:"error_stack,omitempty"`
	RetryCount     int       `json:"retry_count"`
	LastRetryAt    *int64    `json:"last_retry_at,omitempty"`
	Status         DLQStatus `json:"status"`
	CreatedAt      int64     `json:"created_at"`
}
