// ABOUTME: Sentinel errors classifying provider API failures
// ABOUTME: Callers branch on these with errors.Is to pick the recovery path

package driver

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrTokenExpired signals a 401 on the access token; one refresh-and-retry is allowed.
	ErrTokenExpired = errors.New("access token expired")
	// ErrRefreshTokenInvalid signals invalid_grant on refresh; the connection must be expired.
	ErrRefreshTokenInvalid = errors.New("refresh token is invalid or expired")
	// ErrAccessRevoked signals a 403 with revoke semantics; the connection must be revoked.
	ErrAccessRevoked = errors.New("provider access has been revoked")
	// ErrRateLimited signals an explicit 429 from the provider.
	ErrRateLimited = errors.New("provider API rate limit exceeded")
	// ErrTemporaryFailure covers 5xx and network-level failures.
	ErrTemporaryFailure = errors.New("temporary provider failure")
	// ErrNotFound signals a missing remote resource (deleted channel, show, playlist).
	ErrNotFound = errors.New("provider resource not found")
)

// classifyStatus maps a non-2xx HTTP status to the sentinel taxonomy.
func classifyStatus(statusCode int, body string) error {
	switch statusCode {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrTokenExpired, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrAccessRevoked, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrRateLimited, body)
	default:
		if statusCode >= 500 {
			return fmt.Errorf("%w: status %d: %s", ErrTemporaryFailure, statusCode, body)
		}
		return fmt.Errorf("provider request failed: status %d: %s", statusCode, body)
	}
}
