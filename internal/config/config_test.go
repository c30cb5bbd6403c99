package config

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("IF_API_KEY", "")
	t.Setenv("WARMER_AIRPORTS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "Expert", cfg.LiveSessionName)
	assert.Equal(t, 12*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 2*time.Minute, cfg.ProxyCacheTTL)
	assert.Empty(t, cfg.LiveAPIKey)
	assert.Nil(t, cfg.WarmerAirports)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("WARMER_AIRPORTS", "KJFK, EGLL,,KLAX ")
	t.Setenv("WARMER_INTERVAL", "5m")
	t.Setenv("PROXY_RATE_BURST", "10")
	t.Setenv("PG_USER", "ops")
	t.Setenv("PG_PASSWORD", "secret")
	t.Setenv("PG_HOST", "db")
	t.Setenv("PG_PORT", "5433")
	t.Setenv("PG_DB", "va")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.True(t, cfg.RedisEnabled)
	assert.Equal(t, []string{"KJFK", "EGLL", "KLAX"}, cfg.WarmerAirports)
	assert.Equal(t, 5*time.Minute, cfg.WarmerInterval)
	assert.Equal(t, 10, cfg.ProxyRateBurst)
	assert.Equal(t, "postgres://ops:secret@db:5433/va?sslmode=disable", cfg.PostgresDSN())
}

func TestPostgresDSN_EscapesCredentials(t *testing.T) {
	cfg := &Config{
		PGUser:     "ops@hq",
		PGPassword: "p@ss/w:rd?",
		PGHost:     "db",
		PGPort:     "5432",
		PGDatabase: "va",
	}

	dsn := cfg.PostgresDSN()
	assert.Equal(t, "postgres://ops%40hq:p%40ss%2Fw%3Ard%3F@db:5432/va?sslmode=disable", dsn)

	u, err := url.Parse(dsn)
	require.NoError(t, err)
	assert.Equal(t, "ops@hq", u.User.Username())
	pw, _ := u.User.Password()
	assert.Equal(t, "p@ss/w:rd?", pw)
	assert.Equal(t, "db:5432", u.Host)
	assert.Equal(t, "/va", u.Path)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("TOKEN_TTL", "forever")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("TOKEN_TTL", "")
	t.Setenv("DB_DRIVER", "mysql")
	_, err = Load()
	assert.Error(t, err)
}
