package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mercadillo/storefront/internal/api"
	"github.com/mercadillo/storefront/internal/core/ports"
	"github.com/mercadillo/storefront/internal/core/token"
	"github.com/mercadillo/storefront/internal/infrastructure/config"
	mongodb "github.com/mercadillo/storefront/internal/infrastructure/db/mongo"
	redisdb "github.com/mercadillo/storefront/internal/infrastructure/db/redis"
	"github.com/mercadillo/storefront/internal/infrastructure/memory"
	"github.com/mercadillo/storefront/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title        Storefront Admin API
// @version      1.0
// @description  Session-authenticated product catalog and support-chat API.
// @BasePath     /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger is not up yet; this is the one place a bare panic is fine.
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("mongo index creation failed")
	}

	var rdb *redis.Client
	var limiter ports.RateLimiter
	if cfg.Redis.Addr != "" {
		rdb, err = redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer rdb.Close()
		limiter = redisdb.NewAttemptLimiter(rdb, cfg.Auth.RateLimitMaxAttempts, cfg.Auth.RateLimitWindow)
	} else {
		log.Warn().Msg("REDIS_ADDR not set, rate limiting runs in process")
		limiter = memory.NewLimiter(cfg.Auth.RateLimitMaxAttempts, cfg.Auth.RateLimitWindow)
	}

	e := api.NewRouter(api.Deps{
		Users:         mongodb.NewUserRepository(db),
		Products:      mongodb.NewProductRepository(db),
		Messages:      mongodb.NewMessageRepository(db),
		Limiter:       limiter,
		Tokens:        token.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
		Logger:        log,
		SecureCookies: cfg.Env == "production",
		Mongo:         db,
		Redis:         rdb,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	log.Info().Msg("server stopped")
}
