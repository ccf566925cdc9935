// ABOUTME: Result types shared by the provider pollers and the scheduler

package service

// SubscriptionError pairs a failed subscription with its error.
type SubscriptionError struct {
	SubscriptionID string
	Err            error
}

// BatchResult aggregates one poll pass over a group of subscriptions.
type BatchResult struct {
	Processed    int
	NewItems     int
	Disconnected int
	Errors       []SubscriptionError
}

func (r *BatchResult) merge(other BatchResult) {
	r.Processed += other.Processed
	r.NewItems += other.NewItems
	r.Disconnected += other.Disconnected
	r.Errors = append(r.Errors, other.Errors...)
}
