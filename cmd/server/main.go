package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"nodex-club.backend/internal/config"
	"nodex-club.backend/internal/infrastructure/pocketbase"
	"nodex-club.backend/internal/infrastructure/repositories"
	"nodex-club.backend/internal/interfaces/http/handlers"
	"nodex-club.backend/internal/interfaces/http/middleware"
	"nodex-club.backend/internal/usecases"
	"nodex-club.backend/pkg/jwt"
	"nodex-club.backend/pkg/logger"
	"nodex-club.backend/pkg/redis"
)

var (
	loadDotenv   = godotenv.Load
	loadCfg      = config.Load
	initLog      = logger.Init
	initRedis    = redis.Init
	newAuthCache = redis.NewAuthCache
	runServer    = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis. The auth cache degrades to direct record-store
	// lookups when Redis is down, so a failure here is not fatal.
	var authCache *redis.AuthCache
	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
		logger.Warn(context.Background(), "Redis unavailable, auth caching disabled", zap.Error(err))
	} else {
		cache, err := newAuthCache(cfg.Security.AuthCacheEncryptionKey, cfg.Security.AuthCacheTTL)
		if err != nil {
			return fmt.Errorf("failed to initialize auth cache: %w", err)
		}
		authCache = cache
		logger.Info(context.Background(), "Redis initialized")
	}

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Record store client
	store := pocketbase.NewClient(cfg.Store.URL, pocketbase.WithAdminToken(cfg.Store.AdminToken))

	// Member-session token service
	tokenService := jwt.NewTokenService(cfg.JWT.Secret, cfg.JWT.Expiry)

	// Initialize repositories
	memberRepo := repositories.NewMemberRepository(store)
	legacyRepo := repositories.NewLegacyMemberRepository(store)
	teamRepo := repositories.NewTeamRepository(store)
	appRepo := repositories.NewApplicationRepository(store)
	markRepo := repositories.NewMarkRepository(store)
	authKeyRepo := repositories.NewAuthKeyRepository(store)
	memberKeyRepo := repositories.NewMemberKeyRepository(store)
	blockedIPRepo := repositories.NewBlockedIPRepository(store)

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(authKeyRepo, authCache)
	membershipUsecase := usecases.NewMembershipUsecase(memberRepo, legacyRepo, teamRepo)
	teamUsecase := usecases.NewTeamUsecase(teamRepo, memberRepo)
	analyticsUsecase := usecases.NewAnalyticsUsecase(memberRepo, legacyRepo, teamRepo)
	applicationUsecase := usecases.NewApplicationUsecase(appRepo, markRepo)
	joinUsecase := usecases.NewJoinUsecase(appRepo, blockedIPRepo)
	memberAuthUsecase := usecases.NewMemberAuthUsecase(memberRepo, memberKeyRepo, teamRepo, tokenService)

	// Initialize handlers
	secure := cfg.Security.SecureCookies
	authHandler := handlers.NewAuthHandler(authUsecase, secure)
	teamHandler := handlers.NewTeamHandler(teamRepo, teamUsecase, membershipUsecase)
	clubMemberHandler := handlers.NewClubMemberHandler(memberRepo, membershipUsecase)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsUsecase)
	applicationHandler := handlers.NewApplicationHandler(applicationUsecase)
	joinHandler := handlers.NewJoinHandler(joinUsecase)
	memberAuthHandler := handlers.NewMemberAuthHandler(memberAuthUsecase, secure)
	memberDashboardHandler := handlers.NewMemberDashboardHandler(memberRepo, memberAuthUsecase)
	publicHandler := handlers.NewPublicHandler(legacyRepo)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIRoutes(r, routeDeps{
		authHandler:            authHandler,
		teamHandler:            teamHandler,
		clubMemberHandler:      clubMemberHandler,
		analyticsHandler:       analyticsHandler,
		applicationHandler:     applicationHandler,
		joinHandler:            joinHandler,
		memberAuthHandler:      memberAuthHandler,
		memberDashboardHandler: memberDashboardHandler,
		publicHandler:          publicHandler,
		authMiddleware:         middleware.AuthMiddleware(authUsecase),
		memberSessionMW:        middleware.MemberSessionMiddleware(memberAuthUsecase),
	})

	// Start server
	log.Printf("🚀 NodeX Club Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/healthz", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
