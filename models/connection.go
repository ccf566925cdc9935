// ABOUTME: Provider OAuth connection state, unique per (user, provider)
// ABOUTME: Tokens are opaque ciphertext at the persistence boundary

package models

// ConnectionStatus is the lifecycle state of a provider connection.
type ConnectionStatus string

const (
	ConnectionActive  ConnectionStatus = "ACTIVE"
	ConnectionExpired ConnectionStatus = "EXPIRED"
	ConnectionRevoked ConnectionStatus = "REVOKED"
)

// ProviderConnection stores a user's OAuth link to a provider.
// AccessToken and RefreshToken hold ciphertext everywhere outside the
// token service; only the token service sees plaintext.
type ProviderConnection struct {
	ID              string           `json:"id"`
	UserID          string           `json:"user_id"`
	Provider        Provider         `json:"provider"`
	ProviderUserID  *string          `json:"provider_user_id,omitempty"`
	AccessToken     string           `json:"-"`
	RefreshToken    string           `json:"-"`
	TokenExpiresAt  int64            `json:"token_expires_at"`
	Scopes          *string          `json:"scopes,omitempty"`
	Status          ConnectionStatus `json:"status"`
	ConnectedAt     int64            `json:"connected_at"`
	LastRefreshedAt *int64           `json:"last_refreshed_at,omitempty"`
}
