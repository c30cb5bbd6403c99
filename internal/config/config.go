package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every environment-driven setting of the portal
type Config struct {
	AppEnv   string
	HTTPPort string

	DBDriver   string // "postgres" (default) or "sqlite"
	PGHost     string
	PGPort     string
	PGUser     string
	PGPassword string
	PGDatabase string
	SQLitePath string

	RedisEnabled  bool
	RedisHost     string
	RedisPort     string
	RedisPassword string

	LiveAPIBaseURL     string
	LiveAPIKey         string
	LiveSessionName    string
	WeatherAPIBaseURL  string
	ProviderTimeout    time.Duration
	ProxyCacheTTL      time.Duration
	WeatherCacheTTL    time.Duration
	ProxyRatePerSecond float64
	ProxyRateBurst     int

	TokenSecret string
	TokenTTL    time.Duration

	WarmerAirports []string
	WarmerInterval time.Duration

	CORSOrigins []string
}

// Load reads an optional .env file and then the process environment
func Load() (*Config, error) {
	// .env is optional; real deployments inject variables directly
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:   getEnv("APP_ENV", "development"),
		HTTPPort: getEnv("HTTP_PORT", "8080"),

		DBDriver:   getEnv("DB_DRIVER", "postgres"),
		PGHost:     getEnv("PG_HOST", "localhost"),
		PGPort:     getEnv("PG_PORT", "5432"),
		PGUser:     os.Getenv("PG_USER"),
		PGPassword: os.Getenv("PG_PASSWORD"),
		PGDatabase: getEnv("PG_DB", "opsportal"),
		SQLitePath: getEnv("SQLITE_PATH", "opsportal.db"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		LiveAPIBaseURL:    getEnv("IF_API_BASE_URL", "https://api.infiniteflight.com/public/v2"),
		LiveAPIKey:        os.Getenv("IF_API_KEY"),
		LiveSessionName:   getEnv("IF_SESSION_NAME", "Expert"),
		WeatherAPIBaseURL: getEnv("WEATHER_API_BASE_URL", "https://aviationweather.gov/api/data"),

		TokenSecret: os.Getenv("TOKEN_SECRET"),

		WarmerAirports: getList("WARMER_AIRPORTS"),
		CORSOrigins:    getList("CORS_ORIGINS"),
	}

	var err error
	if cfg.RedisEnabled, err = getBool("REDIS_ENABLED", false); err != nil {
		return nil, err
	}
	if cfg.ProviderTimeout, err = getDuration("PROVIDER_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.ProxyCacheTTL, err = getDuration("PROXY_CACHE_TTL", 2*time.Minute); err != nil {
		return nil, err
	}
	if cfg.WeatherCacheTTL, err = getDuration("WEATHER_CACHE_TTL", 10*time.Minute); err != nil {
		return nil, err
	}
	if cfg.TokenTTL, err = getDuration("TOKEN_TTL", 12*time.Hour); err != nil {
		return nil, err
	}
	if cfg.WarmerInterval, err = getDuration("WARMER_INTERVAL", 15*time.Minute); err != nil {
		return nil, err
	}
	if cfg.ProxyRatePerSecond, err = getFloat("PROXY_RATE_PER_SECOND", 1); err != nil {
		return nil, err
	}
	if cfg.ProxyRateBurst, err = getInt("PROXY_RATE_BURST", 5); err != nil {
		return nil, err
	}

	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{"https://*", "http://localhost:3000"}
	}

	if cfg.DBDriver != "postgres" && cfg.DBDriver != "sqlite" {
		return nil, fmt.Errorf("DB_DRIVER must be postgres or sqlite, got %q", cfg.DBDriver)
	}

	return cfg, nil
}

// PostgresDSN builds the connection URL used by both sqlx and gorm.
// Credentials are percent-encoded so passwords may contain '@', '/' or ':'.
func (c *Config) PostgresDSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.PGUser, c.PGPassword),
		Host:     net.JoinHostPort(c.PGHost, c.PGPort),
		Path:     "/" + c.PGDatabase,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// RedisAddr returns host:port for the Redis client
func (c *Config) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

// IsProduction reports whether APP_ENV is production
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getBool(key string, fallback bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func getInt(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func getFloat(key string, fallback float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}
