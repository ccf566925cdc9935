// ABOUTME: Shared OAuth2 token-endpoint plumbing for the provider clients
// ABOUTME: Refresh failures are classified into the sentinel taxonomy before returning

package driver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// TokenResponse is the normalized OAuth2 refresh response.
// RefreshToken is empty unless the provider rotated it.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	Scope        string `json:"scope"`
}

type oauthErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// postTokenForm posts an OAuth2 form to tokenURL and classifies failures.
// extraHeaders lets Spotify send its Basic auth header.
func postTokenForm(ctx context.Context, client *http.Client, tokenURL string, data url.Values, extraHeaders map[string]string, logger *slog.Logger) (*TokenResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for k, v := range extraHeaders {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: token request failed: %v", ErrTemporaryFailure, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read token response: %v", ErrTemporaryFailure, err)
	}

	if resp.StatusCode != http.StatusOK {
		logger.Error("OAuth2 token refresh failed",
			"status_code", resp.StatusCode,
			"response_body", truncateBody(body))

		var oauthErr oauthErrorResponse
		_ = json.Unmarshal(body, &oauthErr)

		switch {
		case oauthErr.Error == "invalid_grant":
			return nil, fmt.Errorf("%w: %s", ErrRefreshTokenInvalid, oauthErr.ErrorDescription)
		case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusBadRequest:
			return nil, fmt.Errorf("%w: %s", ErrRefreshTokenInvalid, truncateBody(body))
		case resp.StatusCode == http.StatusForbidden:
			return nil, fmt.Errorf("%w: %s", ErrAccessRevoked, truncateBody(body))
		case resp.StatusCode == http.StatusTooManyRequests:
			return nil, fmt.Errorf("%w: retry after %s", ErrRateLimited, resp.Header.Get("Retry-After"))
		default:
			return nil, fmt.Errorf("%w: status %d", ErrTemporaryFailure, resp.StatusCode)
		}
	}

	var token TokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return nil, fmt.Errorf("failed to decode token response: %w", err)
	}
	if token.AccessToken == "" {
		return nil, fmt.Errorf("%w: token response missing access_token", ErrTemporaryFailure)
	}
	return &token, nil
}
