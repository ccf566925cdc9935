// ABOUTME: User-facing notifications for connection and polling health
// ABOUTME: At most one active notification per (user, type, provider), enforced by a partial unique index

package models

// NotificationType enumerates user notification kinds.
type NotificationType string

const (
	NotificationConnectionExpired NotificationType = "connection_expired"
	NotificationConnectionRevoked NotificationType = "connection_revoked"
	NotificationPollFailures      NotificationType = "poll_failures"
	NotificationQuotaWarning      NotificationType = "quota_warning"
)

// UserNotification is an active or resolved notice shown to the user.
type UserNotification struct {
	ID         string           `json:"id"`
	UserID     string           `json:"user_id"`
	Type       NotificationType `json:"type"`
	Provider   *Provider        `json:"provider,omitempty"`
	Title      string           `json:"title"`
	Message    string           `json:"message"`
	Data       []byte           `json:"data,omitempty"`
	ReadAt     *int64           `json:"read_at,omitempty"`
	ResolvedAt *int64           `json:"resolved_at,omitempty"`
	CreatedAt  int64            `json:"created_at"`
}
