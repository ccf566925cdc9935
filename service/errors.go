// ABOUTME: Service-level sentinel errors, mapped to response codes by the handlers

package service

import "errors"

var (
	// ErrNoActiveConnection means the operation needs an ACTIVE provider
	// connection the user does not have.
	ErrNoActiveConnection = errors.New("no active provider connection")

	// ErrThrottled means a manual sync was requested inside its cooldown.
	ErrThrottled = errors.New("sync throttled")

	// ErrBadRequest means the request payload failed validation.
	ErrBadRequest = errors.New("invalid request")
)
