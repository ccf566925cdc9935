package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("ENCRYPTION_KEY", "0123456789abcdef0123456789abcdef")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/inbox")
	t.Setenv("SPOTIFY_EPISODE_FETCH_CONCURRENCY", "3")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "inbox-hub", cfg.ServiceName)
	assert.Equal(t, 3, cfg.Polling.EpisodeFetchConcurrency)
	assert.Equal(t, 60*time.Minute, cfg.Polling.TokenRefreshBuffer)
	assert.Equal(t, 900*time.Second, cfg.Polling.CronLockTTL)
	assert.Equal(t, "postgres://u:p@localhost:5432/inbox", cfg.Database.DSN())
}

func TestLoadConfigRequiresEncryptionKey(t *testing.T) {
	t.Setenv("ENCRYPTION_KEY", "")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/inbox")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestDatabaseDSNFromParts(t *testing.T) {
	d := DatabaseConfig{
		Host: "db", Port: "5432", Name: "inbox",
		User: "svc", Password: "secret", SSLMode: "require",
	}
	assert.Equal(t, "postgres://svc:secret@db:5432/inbox?sslmode=require", d.DSN())
}

func TestEpisodeConcurrencyDefaultOnGarbage(t *testing.T) {
	t.Setenv("ENCRYPTION_KEY", "k")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/inbox")
	t.Setenv("SPOTIFY_EPISODE_FETCH_CONCURRENCY", "not-a-number")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Polling.EpisodeFetchConcurrency)
}
