// ABOUTME: Token service: hands out valid access tokens, refreshing behind a single-flight gate
// ABOUTME: Refresh failures are classified; repeated temporary failures back off via Redis markers

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"inbox-hub/driver"
	"inbox-hub/ids"
	"inbox-hub/models"
	"inbox-hub/repository"
)

const (
	refreshBackoffKeyFmt  = "token:refresh:backoff:%s:%s"
	refreshAttemptsKeyFmt = "token:refresh:attempts:%s:%s"
	refreshAttemptsTTL    = 24 * time.Hour
	maxBackoffMinutes     = 240
)

// TokenService owns token plaintext. Everything outside sees either a
// live access token or a classified error.
type TokenService struct {
	connections repository.ConnectionRepository
	refreshers  map[models.Provider]TokenRefresher
	cipher      *TokenCipher
	kv          KV
	buffer      time.Duration
	group       singleflight.Group
	logger      *slog.Logger
	now         func() int64
}

// NewTokenService creates a token service. buffer is how early before
// expiry a token is refreshed.
func NewTokenService(
	connections repository.ConnectionRepository,
	refreshers map[models.Provider]TokenRefresher,
	cipher *TokenCipher,
	kv KV,
	buffer time.Duration,
	logger *slog.Logger,
) *TokenService {
	if logger == nil {
		logger = slog.Default()
	}
	return &TokenService{
		connections: connections,
		refreshers:  refreshers,
		cipher:      cipher,
		kv:          kv,
		buffer:      buffer,
		logger:      logger,
		now:         ids.NowMillis,
	}
}

// GetValidToken returns a decrypted access token for (user, provider),
// refreshing first when the token is inside the expiry buffer. Concurrent
// callers for the same pair share one refresh.
func (s *TokenService) GetValidToken(ctx context.Context, userID string, provider models.Provider) (string, error) {
	conn, err := s.connections.FindByUserProvider(ctx, userID, provider)
	if err != nil {
		return "", fmt.Errorf("failed to load connection for %s/%s: %w", userID, provider, err)
	}

	switch conn.Status {
	case models.ConnectionExpired:
		return "", fmt.Errorf("connection %s is expired: %w", conn.ID, driver.ErrRefreshTokenInvalid)
	case models.ConnectionRevoked:
		return "", fmt.Errorf("connection %s is revoked: %w", conn.ID, driver.ErrAccessRevoked)
	}

	if conn.TokenExpiresAt-s.now() > s.buffer.Milliseconds() {
		return s.cipher.Open(conn.AccessToken)
	}

	key := userID + ":" + string(provider)
	token, err, _ := s.group.Do(key, func() (any, error) {
		return s.refresh(ctx, conn)
	})
	if err != nil {
		return "", err
	}
	return token.(string), nil
}

func (s *TokenService) refresh(ctx context.Context, conn *models.ProviderConnection) (string, error) {
	backoffKey := fmt.Sprintf(refreshBackoffKeyFmt, conn.UserID, conn.Provider)
	var marker int64
	// callers see rate_limited without the provider being hit
	if err := s.kv.GetJSON(ctx, backoffKey, &marker); err == nil {
		return "", fmt.Errorf("token refresh for %s/%s is backing off: %w",
			conn.UserID, conn.Provider, driver.ErrRateLimited)
	} else if !errors.Is(err, driver.ErrCacheMiss) {
		s.logger.WarnContext(ctx, "backoff lookup failed, refreshing anyway",
			"user_id", conn.UserID, "provider", conn.Provider, "error", err)
	}

	refresher, ok := s.refreshers[conn.Provider]
	if !ok {
		return "", fmt.Errorf("no token refresher for provider %s", conn.Provider)
	}

	refreshPlain, err := s.cipher.Open(conn.RefreshToken)
	if err != nil {
		return "", fmt.Errorf("failed to open refresh token for connection %s: %w", conn.ID, err)
	}

	resp, err := refresher.RefreshToken(ctx, refreshPlain)
	if err != nil {
		if errors.Is(err, driver.ErrTemporaryFailure) || errors.Is(err, driver.ErrRateLimited) {
			s.recordRefreshFailure(ctx, conn, backoffKey)
		}
		return "", fmt.Errorf("token refresh failed for %s/%s: %w", conn.UserID, conn.Provider, err)
	}

	accessSealed, err := s.cipher.Seal(resp.AccessToken)
	if err != nil {
		return "", fmt.Errorf("failed to seal access token: %w", err)
	}
	// Providers may omit the refresh token on rotation; keep the old one.
	refreshSealed := conn.RefreshToken
	if resp.RefreshToken != "" {
		if refreshSealed, err = s.cipher.Seal(resp.RefreshToken); err != nil {
			return "", fmt.Errorf("failed to seal refresh token: %w", err)
		}
	}

	now := s.now()
	expiresAt := now + int64(resp.ExpiresIn)*1000
	if err := s.connections.UpdateTokens(ctx, conn.ID, accessSealed, refreshSealed, expiresAt, now); err != nil {
		return "", fmt.Errorf("failed to persist rotated tokens: %w", err)
	}

	attemptsKey := fmt.Sprintf(refreshAttemptsKeyFmt, conn.UserID, conn.Provider)
	if err := s.kv.DeleteKey(ctx, attemptsKey); err != nil {
		s.logger.WarnContext(ctx, "failed to clear refresh attempt counter", "error", err)
	}

	s.logger.InfoContext(ctx, "token refreshed",
		"user_id", conn.UserID,
		"provider", conn.Provider,
		"expires_at", expiresAt)
	return resp.AccessToken, nil
}

// recordRefreshFailure bumps the attempt counter and plants a backoff
// marker for min(2^attempt, 240) minutes.
func (s *TokenService) recordRefreshFailure(ctx context.Context, conn *models.ProviderConnection, backoffKey string) {
	attemptsKey := fmt.Sprintf(refreshAttemptsKeyFmt, conn.UserID, conn.Provider)
	attempt, err := s.kv.IncrCounter(ctx, attemptsKey, refreshAttemptsTTL)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to record refresh attempt", "error", err)
		attempt = 1
	}

	minutes := int64(1) << attempt
	if attempt >= 8 || minutes > maxBackoffMinutes {
		minutes = maxBackoffMinutes
	}
	if err := s.kv.SetJSON(ctx, backoffKey, attempt, time.Duration(minutes)*time.Minute); err != nil {
		s.logger.WarnContext(ctx, "failed to set refresh backoff marker", "error", err)
	}

	s.logger.WarnContext(ctx, "token refresh backing off",
		"user_id", conn.UserID,
		"provider", conn.Provider,
		"attempt", attempt,
		"backoff_minutes", minutes)
}
