// ABOUTME: HTTP handlers for notifications and connection reconnect callbacks

package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"inbox-hub/ids"
)

func registerNotificationRoutes(v1 *echo.Group, deps *Dependencies) {
	v1.GET("/notifications", handleListNotifications(deps))
	v1.POST("/notifications/:id/read", handleMarkNotificationRead(deps))
	v1.POST("/connections/:provider/reconnected", handleConnectionReconnected(deps))
}

func handleListNotifications(deps *Dependencies) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := requireUserID(c)
		if !ok {
			return missingUser(c)
		}

		unresolvedOnly := c.QueryParam("unresolved") == "true"
		limit := 50
		if raw := c.QueryParam("limit"); raw != "" {
			if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 100 {
				limit = n
			}
		}

		notifications, err := deps.Notifications.ListByUser(c.Request().Context(), userID, unresolvedOnly, limit)
		if err != nil {
			return handleError(c, err, "list notifications")
		}
		return c.JSON(http.StatusOK, map[string]any{"items": notifications})
	}
}

func handleMarkNotificationRead(deps *Dependencies) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := requireUserID(c)
		if !ok {
			return missingUser(c)
		}
		err := deps.Notifications.MarkRead(c.Request().Context(), userID, c.Param("id"), ids.NowMillis())
		if err != nil {
			return handleError(c, err, "mark notification read")
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// handleConnectionReconnected is called after the OAuth flow completes so
// stale expiry/revocation notifications get resolved.
func handleConnectionReconnected(deps *Dependencies) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := requireUserID(c)
		if !ok {
			return missingUser(c)
		}
		provider, ok := parseProvider(c.Param("provider"))
		if !ok {
			return c.JSON(http.StatusBadRequest, ErrorResponse{
				Code: "BAD_REQUEST", Message: "unknown provider: " + c.Param("provider"),
			})
		}
		if err := deps.Health.HandleReconnect(c.Request().Context(), userID, provider); err != nil {
			return handleError(c, err, "reconnect connection")
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
}
