// ABOUTME: This file handles configuration management for inbox-hub
// ABOUTME: Loads environment variables and validates provider OAuth and storage settings

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the inbox-hub service.
type Config struct {
	ServiceName string
	LogLevel    string
	HTTPAddr    string

	Database DatabaseConfig
	Redis    RedisConfig
	YouTube  ProviderOAuthConfig
	Spotify  ProviderOAuthConfig
	Polling  PollingConfig
	Security SecurityConfig
}

// DatabaseConfig holds Postgres connection settings.
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	// URL overrides the discrete fields when set.
	URL string
}

// DSN builds a pgx-compatible connection string.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

// RedisConfig holds KV store settings.
type RedisConfig struct {
	URL string
}

// ProviderOAuthConfig holds one provider's OAuth client settings.
type ProviderOAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
}

// PollingConfig holds scheduler and poller tuning.
type PollingConfig struct {
	// EpisodeFetchConcurrency bounds parallel Spotify episode fetches.
	EpisodeFetchConcurrency int
	// TokenRefreshBuffer is how early before expiry tokens are refreshed.
	TokenRefreshBuffer time.Duration
	// CronLockTTL guards the singleton scheduler run.
	CronLockTTL time.Duration
}

// SecurityConfig holds encryption-at-rest settings.
type SecurityConfig struct {
	// EncryptionKey is the symmetric key for token ciphertext, hex or raw.
	EncryptionKey string
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServiceName: getEnvOrDefault("SERVICE_NAME", "inbox-hub"),
		LogLevel:    getEnvOrDefault("LOG_LEVEL", "info"),
		HTTPAddr:    getEnvOrDefault("HTTP_ADDR", ":8080"),

		Database: DatabaseConfig{
			URL:      os.Getenv("DATABASE_URL"),
			Host:     getEnvOrDefault("DB_HOST", "localhost"),
			Port:     getEnvOrDefault("DB_PORT", "5432"),
			Name:     getEnvOrDefault("DB_NAME", "inbox"),
			User:     getEnvOrDefault("DB_USER", "inbox_hub_user"),
			Password: os.Getenv("DB_PASSWORD"),
			SSLMode:  getEnvOrDefault("DB_SSL_MODE", "disable"),
		},

		Redis: RedisConfig{
			URL: getEnvOrDefault("REDIS_URL", "redis://localhost:6379/0"),
		},

		YouTube: ProviderOAuthConfig{
			ClientID:     os.Getenv("YOUTUBE_CLIENT_ID"),
			ClientSecret: os.Getenv("YOUTUBE_CLIENT_SECRET"),
			RedirectURI:  os.Getenv("OAUTH_REDIRECT_URI"),
		},

		Spotify: ProviderOAuthConfig{
			ClientID:     os.Getenv("SPOTIFY_CLIENT_ID"),
			ClientSecret: os.Getenv("SPOTIFY_CLIENT_SECRET"),
			RedirectURI:  os.Getenv("OAUTH_REDIRECT_URI"),
		},

		Polling: PollingConfig{
			EpisodeFetchConcurrency: getEnvIntOrDefault("SPOTIFY_EPISODE_FETCH_CONCURRENCY", 5),
			TokenRefreshBuffer:      getEnvDurationOrDefault("TOKEN_REFRESH_BUFFER", 60*time.Minute),
			CronLockTTL:             getEnvDurationOrDefault("CRON_LOCK_TTL", 900*time.Second),
		},

		Security: SecurityConfig{
			EncryptionKey: os.Getenv("ENCRYPTION_KEY"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks required settings.
func (c *Config) Validate() error {
	if c.Security.EncryptionKey == "" {
		return fmt.Errorf("ENCRYPTION_KEY is required")
	}
	if c.Polling.EpisodeFetchConcurrency < 1 {
		return fmt.Errorf("SPOTIFY_EPISODE_FETCH_CONCURRENCY must be >= 1")
	}
	if c.Database.URL == "" && c.Database.Password == "" {
		return fmt.Errorf("DATABASE_URL or DB_PASSWORD is required")
	}
	return nil
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvIntOrDefault(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvDurationOrDefault(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return fallback
}
