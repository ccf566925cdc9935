// ABOUTME: HTTP handlers for the subscription surface: list/add/remove/pause/resume/sync/discover

package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"inbox-hub/models"
	"inbox-hub/repository"
	"inbox-hub/service"
)

func registerSubscriptionRoutes(v1 *echo.Group, deps *Dependencies) {
	subs := v1.Group("/subscriptions")
	subs.GET("", handleListSubscriptions(deps))
	subs.POST("", handleAddSubscription(deps))
	subs.DELETE("/:id", handleRemoveSubscription(deps))
	subs.POST("/:id/pause", handlePauseSubscription(deps))
	subs.POST("/:id/resume", handleResumeSubscription(deps))
	subs.POST("/:id/sync", handleSyncNow(deps))
	subs.POST("/sync-all", handleSyncAll(deps))

	discover := v1.Group("/discover")
	discover.GET("/:provider", handleDiscoverAvailable(deps))
	discover.GET("/:provider/search", handleDiscoverSearch(deps))
}

func parseProvider(raw string) (models.Provider, bool) {
	p := models.Provider(strings.ToUpper(raw))
	return p, p.Valid()
}

func handleListSubscriptions(deps *Dependencies) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := requireUserID(c)
		if !ok {
			return missingUser(c)
		}

		filter := repository.SubscriptionListFilter{Cursor: c.QueryParam("cursor")}
		if raw := c.QueryParam("provider"); raw != "" {
			p, ok := parseProvider(raw)
			if !ok {
				return c.JSON(http.StatusBadRequest, ErrorResponse{
					Code: "BAD_REQUEST", Message: "unknown provider: " + raw,
				})
			}
			filter.Provider = &p
		}
		if raw := c.QueryParam("status"); raw != "" {
			status := models.SubscriptionStatus(strings.ToUpper(raw))
			filter.Status = &status
		}
		if raw := c.QueryParam("limit"); raw != "" {
			if n, err := strconv.Atoi(raw); err == nil {
				filter.Limit = n
			}
		}

		result, err := deps.Subscriptions.List(c.Request().Context(), userID, filter)
		if err != nil {
			return handleError(c, err, "list subscriptions")
		}
		return c.JSON(http.StatusOK, result)
	}
}

type addSubscriptionRequest struct {
	Provider          string  `json:"provider"`
	ProviderChannelID string  `json:"provider_channel_id"`
	Name              string  `json:"name"`
	ImageURL          *string `json:"image_url"`
}

func handleAddSubscription(deps *Dependencies) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := requireUserID(c)
		if !ok {
			return missingUser(c)
		}

		var req addSubscriptionRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{
				Code: "BAD_REQUEST", Message: "invalid request body",
			})
		}
		provider, _ := parseProvider(req.Provider)

		sub, err := deps.Subscriptions.Add(c.Request().Context(), userID, service.AddInput{
			Provider:          provider,
			ProviderChannelID: req.ProviderChannelID,
			Name:              req.Name,
			ImageURL:          req.ImageURL,
		})
		if err != nil {
			return handleError(c, err, "add subscription")
		}
		return c.JSON(http.StatusCreated, sub)
	}
}

func handleRemoveSubscription(deps *Dependencies) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := requireUserID(c)
		if !ok {
			return missingUser(c)
		}
		if err := deps.Subscriptions.Remove(c.Request().Context(), userID, c.Param("id")); err != nil {
			return handleError(c, err, "remove subscription")
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func handlePauseSubscription(deps *Dependencies) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := requireUserID(c)
		if !ok {
			return missingUser(c)
		}
		if err := deps.Subscriptions.Pause(c.Request().Context(), userID, c.Param("id")); err != nil {
			return handleError(c, err, "pause subscription")
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "PAUSED"})
	}
}

func handleResumeSubscription(deps *Dependencies) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := requireUserID(c)
		if !ok {
			return missingUser(c)
		}
		if err := deps.Subscriptions.Resume(c.Request().Context(), userID, c.Param("id")); err != nil {
			return handleError(c, err, "resume subscription")
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ACTIVE"})
	}
}

func handleSyncNow(deps *Dependencies) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := requireUserID(c)
		if !ok {
			return missingUser(c)
		}
		newItems, err := deps.Subscriptions.SyncNow(c.Request().Context(), userID, c.Param("id"))
		if err != nil {
			return handleError(c, err, "sync subscription")
		}
		return c.JSON(http.StatusOK, map[string]int{"new_items": newItems})
	}
}

func handleSyncAll(deps *Dependencies) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := requireUserID(c)
		if !ok {
			return missingUser(c)
		}
		result, err := deps.Subscriptions.SyncAll(c.Request().Context(), userID)
		if err != nil {
			return handleError(c, err, "sync all subscriptions")
		}
		return c.JSON(http.StatusOK, result)
	}
}

func handleDiscoverAvailable(deps *Dependencies) echo.HandlerFunc {
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
		result, err := deps.Subscriptions.DiscoverAvailable(c.Request().Context(), userID, provider)
		if err != nil {
			return handleError(c, err, "discover subscriptions")
		}
		return c.JSON(http.StatusOK, result)
	}
}

func handleDiscoverSearch(deps *Dependencies) echo.HandlerFunc {
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
		limit := 0
		if raw := c.QueryParam("limit"); raw != "" {
			limit, _ = strconv.Atoi(raw)
		}
		result, err := deps.Subscriptions.DiscoverSearch(c.Request().Context(), userID, provider, c.QueryParam("q"), limit)
		if err != nil {
			return handleError(c, err, "search subscriptions")
		}
		return c.JSON(http.StatusOK, result)
	}
}
