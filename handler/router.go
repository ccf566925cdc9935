// ABOUTME: Route registration for the v1 API surface
// ABOUTME: The user id comes from the X-User-ID header set by the auth gateway upstream

package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"inbox-hub/repository"
	"inbox-hub/service"
)

const userIDHeader = "X-User-ID"

// Pinger reports backend reachability for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Dependencies carries everything the routes need.
type Dependencies struct {
	Subscriptions *service.SubscriptionService
	Scheduler     *service.Scheduler
	Health        *service.HealthMonitor
	Notifications repository.NotificationRepository
	DB            Pinger
	Redis         Pinger
	Logger        *slog.Logger
}

// RegisterRoutes mounts the v1 API on the echo instance.
func RegisterRoutes(e *echo.Echo, deps *Dependencies) {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := e.Group("/v1")
	v1.GET("/health", handleHealth(deps))
	v1.POST("/cron/poll", handleCronPoll(deps))

	registerSubscriptionRoutes(v1, deps)
	registerNotificationRoutes(v1, deps)
}

func requireUserID(c echo.Context) (string, bool) {
	userID := c.Request().Header.Get(userIDHeader)
	return userID, userID != ""
}

func missingUser(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    "BAD_REQUEST",
		Message: "missing " + userIDHeader + " header",
	})
}

func handleHealth(deps *Dependencies) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		status := http.StatusOK
		checks := map[string]string{"database": "ok", "redis": "ok"}

		if err := deps.DB.Ping(ctx); err != nil {
			checks["database"] = err.Error()
			status = http.StatusServiceUnavailable
		}
		if err := deps.Redis.Ping(ctx); err != nil {
			checks["redis"] = err.Error()
			status = http.StatusServiceUnavailable
		}
		return c.JSON(status, map[string]any{
			"status": map[bool]string{true: "healthy", false: "degraded"}[status == http.StatusOK],
			"checks": checks,
		})
	}
}

// handleCronPoll is the cron entrypoint; overlapping invocations return
// skipped instead of contending.
func handleCronPoll(deps *Dependencies) echo.HandlerFunc {
	return func(c echo.Context) error {
		result := deps.Scheduler.RunOnce(c.Request().Context())

		errMessages := make([]string, 0, len(result.Errors))
		for _, e := range result.Errors {
			errMessages = append(errMessages, e.Err.Error())
		}
		return c.JSON(http.StatusOK, map[string]any{
			"skipped":      result.Skipped,
			"skip_reason":  result.SkipReason,
			"processed":    result.Processed,
			"new_items":    result.NewItems,
			"disconnected": result.Disconnected,
			"errors":       errMessages,
		})
	}
}
