// ABOUTME: Maps service and driver errors onto the public error codes

package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"inbox-hub/driver"
	"inbox-hub/repository"
	"inbox-hub/service"
)

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func handleError(c echo.Context, err error, operation string) error {
	code := "INTERNAL_SERVER_ERROR"
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, repository.ErrNotFound):
		code, status = "NOT_FOUND", http.StatusNotFound
	case errors.Is(err, service.ErrBadRequest):
		code, status = "BAD_REQUEST", http.StatusBadRequest
	case errors.Is(err, service.ErrNoActiveConnection):
		code, status = "PRECONDITION_FAILED", http.StatusPreconditionFailed
	case errors.Is(err, service.ErrThrottled), errors.Is(err, driver.ErrRateLimited):
		code, status = "TOO_MANY_REQUESTS", http.StatusTooManyRequests
	}

	if status == http.StatusInternalServerError {
		slog.ErrorContext(c.Request().Context(), "request failed",
			"operation", operation, "error", err)
	}
	return c.JSON(status, ErrorResponse{Code: code, Message: err.Error()})
}
