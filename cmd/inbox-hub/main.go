// ABOUTME: Service entrypoint: config, Postgres and Redis drivers, full service wiring
// ABOUTME: Serves the v1 API plus /metrics and shuts down gracefully on SIGTERM

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"inbox-hub/config"
	"inbox-hub/driver"
	"inbox-hub/handler"
	"inbox-hub/models"
	"inbox-hub/repository"
	"inbox-hub/service"
)

func main() {
	// healthcheck subcommand for the Docker healthcheck in distroless images
	if len(os.Args) > 1 && os.Args[1] == "healthcheck" {
		if err := runHealthcheck(); err != nil {
			fmt.Fprintf(os.Stderr, "healthcheck failed: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	ctx := context.Background()
	logger := initLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.ErrorContext(ctx, "failed to load configuration", "error", err)
		os.Exit(1)
	}
	logger.InfoContext(ctx, "configuration loaded",
		"service", cfg.ServiceName,
		"http_addr", cfg.HTTPAddr,
		"cron_lock_ttl", cfg.Polling.CronLockTTL)

	pool, err := driver.NewPostgresPool(ctx, cfg.Database.DSN())
	if err != nil {
		logger.ErrorContext(ctx, "failed to connect to postgres", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	redisDriver, err := driver.NewRedisDriverWithURL(cfg.Redis.URL)
	if err != nil {
		logger.ErrorContext(ctx, "failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer redisDriver.Close()

	cipher, err := service.NewTokenCipher(cfg.Security.EncryptionKey)
	if err != nil {
		logger.ErrorContext(ctx, "failed to initialize token cipher", "error", err)
		os.Exit(1)
	}

	subRepo := repository.NewSubscriptionRepository(pool, logger)
	itemRepo := repository.NewItemRepository(pool, logger)
	creatorRepo := repository.NewCreatorRepository(pool, logger)
	connRepo := repository.NewConnectionRepository(pool, logger)
	notifRepo := repository.NewNotificationRepository(pool, logger)
	dlqRepo := repository.NewDLQRepository(pool, logger)

	youtubeClient := driver.NewYouTubeClient(cfg.YouTube.ClientID, cfg.YouTube.ClientSecret, logger)
	spotifyClient := driver.NewSpotifyClient(cfg.Spotify.ClientID, cfg.Spotify.ClientSecret, logger)
	rssClient := driver.NewRSSClient(logger)

	tokens := service.NewTokenService(connRepo,
		map[models.Provider]service.TokenRefresher{
			models.ProviderYouTube: youtubeClient,
			models.ProviderSpotify: spotifyClient,
		},
		cipher, redisDriver, cfg.Polling.TokenRefreshBuffer, logger)

	ingest := service.NewIngestService(itemRepo, creatorRepo, dlqRepo, logger)
	ytPoller := service.NewYouTubePoller(youtubeClient, ingest, subRepo, logger)
	spPoller := service.NewSpotifyPoller(spotifyClient, ingest, subRepo, redisDriver,
		cfg.Polling.EpisodeFetchConcurrency, logger)
	rssPoller := service.NewRSSPoller(rssClient, ingest, subRepo, logger)

	initial := service.NewInitialFetchService(youtubeClient, spotifyClient, rssClient,
		tokens, ingest, subRepo, ytPoller, spPoller, rssPoller, logger)
	interval := service.NewIntervalService(subRepo, itemRepo, logger)
	health := service.NewHealthMonitor(connRepo, subRepo, notifRepo, redisDriver, logger)
	scheduler := service.NewScheduler(subRepo, tokens, service.NewGroupRateLimiter(), health,
		ytPoller, spPoller, rssPoller, interval, redisDriver, cfg.Polling.CronLockTTL, logger)
	subscriptions := service.NewSubscriptionService(subRepo, itemRepo, creatorRepo, connRepo,
		tokens, youtubeClient, spotifyClient, initial, ytPoller, spPoller, rssPoller,
		redisDriver, logger)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogError:    true,
		LogMethod:   true,
		LogLatency:  true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			ctx := c.Request().Context()
			if v.Error == nil {
				logger.InfoContext(ctx, "request completed",
					"method", v.Method,
					"uri", v.URI,
					"status", v.Status,
					"latency_ms", v.Latency.Milliseconds())
			} else {
				logger.ErrorContext(ctx, "request failed",
					"method", v.Method,
					"uri", v.URI,
					"status", v.Status,
					"latency_ms", v.Latency.Milliseconds(),
					"error", v.Error.Error())
			}
			return nil
		},
	}))

	handler.RegisterRoutes(e, &handler.Dependencies{
		Subscriptions: subscriptions,
		Scheduler:     scheduler,
		Health:        health,
		Notifications: notifRepo,
		DB:            pool,
		Redis:         redisDriver,
		Logger:        logger,
	})

	go func() {
		logger.InfoContext(ctx, "starting inbox-hub server", "address", cfg.HTTPAddr)
		if err := e.Start(cfg.HTTPAddr); err != nil && err != http.ErrServerClosed {
			logger.ErrorContext(ctx, "server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.InfoContext(ctx, "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.ErrorContext(ctx, "server forced to shutdown", "error", err)
		os.Exit(1)
	}
	logger.InfoContext(ctx, "server exited properly")
}

func runHealthcheck() error {
	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(fmt.Sprintf("http://127.0.0.1%s/v1/health", addr))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health endpoint returned status: %d", resp.StatusCode)
	}
	return nil
}

func initLogger() *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}
