package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"skyward/opsportal/internal/api"
	"skyward/opsportal/internal/auth"
	"skyward/opsportal/internal/common"
	"skyward/opsportal/internal/config"
	"skyward/opsportal/internal/db"
	"skyward/opsportal/internal/logging"
	"skyward/opsportal/internal/metrics"
	"skyward/opsportal/internal/routes"
	"skyward/opsportal/internal/workers"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Initialize structured logging
	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Ops portal starting up",
		"environment", cfg.AppEnv,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to DB with sqlx
	conn, err := db.Connect(ctx, cfg)
	if err != nil {
		logging.Fatal("Failed to connect to database", "driver", cfg.DBDriver, "error", err.Error())
	}
	defer conn.Close()
	logging.Info("Connected to database (sqlx)", "driver", cfg.DBDriver)

	// GORM shares the sqlx pool
	orm, err := db.OpenORM(conn, !cfg.IsProduction())
	if err != nil {
		logging.Fatal("Failed to open GORM", "error", err.Error())
	}
	if err := db.Migrate(ctx, orm); err != nil {
		logging.Fatal("Failed to migrate schema", "error", err.Error())
	}
	logging.Info("Schema migrated (GORM)")

	cache := newCache(ctx, cfg)
	defer cache.Close()

	var signer *auth.TokenSigner
	if cfg.TokenSecret != "" {
		if signer, err = auth.NewTokenSigner([]byte(cfg.TokenSecret), cfg.TokenTTL); err != nil {
			logging.Fatal("Failed to create token signer", "error", err.Error())
		}
	} else {
		logging.Warn("TOKEN_SECRET is not set, bearer tokens are disabled")
	}
	if cfg.LiveAPIKey == "" {
		logging.Warn("IF_API_KEY is not set, proxy endpoints will fail closed")
	}

	metricsReg := metrics.NewMetricsRegistry()
	deps := api.InitDependencies(cfg, conn, orm, cache, metricsReg, signer)
	router := routes.RegisterRoutes(cfg, deps)

	warmer := workers.NewSnapshotWarmer(deps.Services.Weather, cfg.WarmerAirports, metricsReg)
	warmerDone := make(chan struct{})
	go func() {
		defer close(warmerDone)
		warmer.Start(ctx, cfg.WarmerInterval)
	}()

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logging.Info("Server starting",
			"port", cfg.HTTPPort,
			"environment", cfg.AppEnv,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error("HTTP server failed", "error", err.Error())
			stop()
		}
	}()

	<-ctx.Done()
	logging.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error("Graceful shutdown failed", "error", err.Error())
	}
	<-warmerDone
}

// newCache prefers Redis when enabled and reachable, falling back to in-memory
func newCache(ctx context.Context, cfg *config.Config) common.CacheInterface {
	if cfg.RedisEnabled {
		redisCache := common.NewRedisCacheService(common.NewRedisClient(cfg.RedisAddr(), cfg.RedisPassword), "opsportal:")
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		err := redisCache.Ping(pingCtx)
		if err == nil {
			logging.Info("Using Redis cache", "addr", cfg.RedisAddr())
			return redisCache
		}
		logging.Warn("Redis unreachable, using in-memory cache", "addr", cfg.RedisAddr(), "error", err.Error())
		redisCache.Close()
	}
	logging.Info("Using in-memory cache")
	return common.NewCacheService(10*time.Minute, 15*time.Minute)
}
