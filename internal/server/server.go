package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"anoa.com/internfundraiser/internal/bootstrap"
	"anoa.com/internfundraiser/internal/config"
	"anoa.com/internfundraiser/internal/middleware"
	"anoa.com/internfundraiser/pkg/cache"
	"anoa.com/internfundraiser/pkg/ratelimiter"
	"anoa.com/internfundraiser/pkg/response"

	authHttp "anoa.com/internfundraiser/internal/modules/auth/delivery/http"
	authService "anoa.com/internfundraiser/internal/modules/auth/service"

	internHttp "anoa.com/internfundraiser/internal/modules/intern/delivery/http"
	internRepo "anoa.com/internfundraiser/internal/modules/intern/repository"
	internService "anoa.com/internfundraiser/internal/modules/intern/service"

	leaderboardHttp "anoa.com/internfundraiser/internal/modules/leaderboard/delivery/http"
	leaderboardRepo "anoa.com/internfundraiser/internal/modules/leaderboard/repository"
	leaderboardService "anoa.com/internfundraiser/internal/modules/leaderboard/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const apiVersion = "1.0.0"

type Server struct {
	engine *gin.Engine
	log    *zap.Logger
}

// NewServer wires repositories, services and handlers. A nil db serves the built-in
// dataset from memory; a nil redisClient disables response caching.
func NewServer(cfg *config.Config, log *zap.Logger, db *gorm.DB, redisClient *redis.Client) *Server {
	var (
		internRepository      internRepo.InternRepository
		leaderboardRepository leaderboardRepo.LeaderboardRepository
	)
	if db != nil {
		internRepository = internRepo.NewInternRepository(db)
		leaderboardRepository = leaderboardRepo.NewLeaderboardRepository(db)
	} else {
		internRepository = internRepo.NewMemoryRepository(bootstrap.DefaultIntern(), bootstrap.DefaultRewards())
		leaderboardRepository = leaderboardRepo.NewMemoryRepository(bootstrap.DefaultLeaderboard())
	}

	responseCache := cache.New(redisClient, "fundraiser", cfg.CacheTTL)

	internSvc := internService.NewInternService(internRepository, responseCache, log.Named("intern"))
	internHandler := internHttp.NewInternHandler(internSvc)

	leaderboardSvc := leaderboardService.NewLeaderboardService(leaderboardRepository, responseCache, log.Named("leaderboard"))
	leaderboardHandler := leaderboardHttp.NewLeaderboardHandler(leaderboardSvc, cfg.LeaderboardPushInterval, cfg.Origins())

	loginLimiter := ratelimiter.New(redisClient, "login", cfg.LoginRateLimit)
	authSvc := authService.NewAuthService(cfg.JWTSecret, cfg.JWTTTL, loginLimiter)
	authHandler := authHttp.NewAuthHandler(authSvc)
	authMiddleware := middleware.NewAuthMiddleware(authSvc)

	router := gin.New()

	setupCORS(router, cfg.Origins())

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log, "/healthz", "/metrics"))
	router.Use(middleware.Recovery(cfg.IsDevelopment()))
	router.Use(middleware.Metrics())

	router.GET("/", welcome)
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("/intern", internHandler.GetIntern)
		api.GET("/intern/progress", internHandler.GetProgress)

		api.GET("/leaderboard", leaderboardHandler.GetLeaderboard)
		api.GET("/leaderboard/summary", leaderboardHandler.GetSummary)
		api.GET("/leaderboard/ws", leaderboardHandler.StreamLeaderboard)

		auth := api.Group("/auth")
		auth.POST("/login", authHandler.Login)
		auth.GET("/session", authMiddleware.RequireAuth(), authHandler.Session)
	}

	router.NoRoute(func(c *gin.Context) {
		response.Abort(c, http.StatusNotFound, "Route not found")
	})

	return &Server{
		engine: router,
		log:    log,
	}
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to Intern Fundraiser API",
		"version": apiVersion,
		"endpoints": gin.H{
			"intern":      "/api/intern",
			"leaderboard": "/api/leaderboard",
		},
	})
}

func setupCORS(router *gin.Engine, origins []string) {
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
