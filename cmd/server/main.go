package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"anoa.com/internfundraiser/internal/bootstrap"
	"anoa.com/internfundraiser/internal/config"
	"anoa.com/internfundraiser/internal/server"
	"anoa.com/internfundraiser/pkg/cache"
	"anoa.com/internfundraiser/pkg/database"
	applog "anoa.com/internfundraiser/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := applog.New(cfg.AppEnv, cfg.LogLevel).With(zap.String("service", "intern-fundraiser-api"))
	defer func() { _ = logger.Sync() }()

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db := connectDatabase(ctx, cfg, logger)
	redisClient := connectCache(ctx, cfg, logger)
	if redisClient != nil {
		defer redisClient.Close()
	}

	srv := server.NewServer(cfg, logger, db, redisClient)
	if err := srv.Run(ctx, ":"+cfg.Port); err != nil {
		logger.Fatal("server exited with error", zap.Error(err))
	}
}

// connectDatabase returns nil when DATABASE_URL is unset so the API serves the
// built-in dataset from memory.
func connectDatabase(ctx context.Context, cfg *config.Config, logger *zap.Logger) *gorm.DB {
	if cfg.DatabaseURL == "" {
		logger.Info("DATABASE_URL not set, serving built-in dataset")
		return nil
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to connect database", zap.Error(err))
	}
	if err := bootstrap.Migrate(db); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}
	if err := bootstrap.Seed(ctx, db, logger); err != nil {
		logger.Fatal("failed to seed data", zap.Error(err))
	}
	return db
}

// connectCache is best effort: the API works without redis, only slower.
func connectCache(ctx context.Context, cfg *config.Config, logger *zap.Logger) *redis.Client {
	if cfg.RedisURL == "" {
		return nil
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	client, err := cache.Connect(pingCtx, cfg.RedisURL)
	if err != nil {
		logger.Warn("redis unavailable, continuing without cache", zap.Error(err))
		return nil
	}
	logger.Info("redis connected")
	return client
}
