package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("API_PORT", "")
	t.Setenv("SEARCH_BBOX_DELTA", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 0.1, cfg.Search.BBoxDelta)
	assert.Equal(t, 100, cfg.Search.Limit)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "https://maps.googleapis.com", cfg.Geocoder.BaseURL)
	assert.Equal(t, "logs/listings.log", cfg.Log.ListingLogPath)
	assert.Equal(t, "listing-event-workers", cfg.Worker.ConsumerGroup)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("API_HOST", "127.0.0.1")
	t.Setenv("API_PORT", "9090")
	t.Setenv("SEARCH_BBOX_DELTA", "0.25")
	t.Setenv("JWT_TTL", "60")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "market")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "listings")
	t.Setenv("DB_SSLMODE", "disable")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.GetServerAddr())
	assert.Equal(t, 0.25, cfg.Search.BBoxDelta)
	assert.Equal(t, time.Minute, cfg.Auth.TokenTTL)
	assert.Equal(t, "pgx5://market:secret@db:5432/listings?sslmode=disable", cfg.GetDatabaseURL())
	assert.Contains(t, cfg.GetDatabaseDSN(), "dbname=listings")
}
