package main

// @title Listing Service API
// @version 1.0.0
// @description Сервис объявлений: регистрация пользователей, объявления с геокодированным адресом,
// @description поиск рядом с точкой, по меткам и ключевым словам.

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	_ "github.com/listing-service/docs"
	"github.com/listing-service/internal/config"
	httpDelivery "github.com/listing-service/internal/delivery/http"
	"github.com/listing-service/internal/delivery/http/handler"
	"github.com/listing-service/internal/infrastructure/google"
	"github.com/listing-service/internal/pkg/logger"
	"github.com/listing-service/internal/pkg/metrics"
	"github.com/listing-service/internal/pkg/password"
	"github.com/listing-service/internal/pkg/token"
	"github.com/listing-service/internal/repository/cache"
	"github.com/listing-service/internal/repository/postgres"
	redisRepo "github.com/listing-service/internal/repository/redis"
	"github.com/listing-service/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Listing Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	if cfg.Auth.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize Repositories
	userRepo := postgres.NewUserRepository(db)
	addressRepo := postgres.NewAddressRepository(db)
	listingRepo := postgres.NewListingRepository(db)
	tagRepo := postgres.NewTagRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), cfg.Worker.StreamReadTimeout, log)

	m := metrics.New()
	geocoder := google.NewGeocoderClient(&cfg.Geocoder, m, log)

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	clock := clockwork.NewRealClock()
	hasher := password.NewBcryptHasher(cfg.Auth.BcryptCost)
	tokens := token.NewManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL, clock)

	searchUC := usecase.NewSearchUseCase(
		listingRepo,
		addressRepo,
		tagRepo,
		userRepo,
		cacheRepo,
		m,
		usecase.SearchOptions{
			BBoxDelta:  cfg.Search.BBoxDelta,
			Limit:      cfg.Search.Limit,
			ListingTTL: cfg.Cache.ListingCacheTTL,
			NearbyTTL:  cfg.Cache.NearbyCacheTTL,
		},
		log,
	)

	listingUC := usecase.NewListingUseCase(
		listingRepo,
		addressRepo,
		tagRepo,
		cacheRepo,
		streamRepo,
		geocoder,
		searchUC,
		clock,
		log,
	)

	authUC := usecase.NewAuthUseCase(userRepo, hasher, tokens, log)
	userUC := usecase.NewUserUseCase(userRepo, hasher, log)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Handlers
	healthHandler := handler.NewHealthHandler(map[string]handler.HealthChecker{
		"postgres": db,
		"redis":    redisClient,
	}, log)
	authHandler := handler.NewAuthHandler(authUC, log)
	listingHandler := handler.NewListingHandler(searchUC, listingUC, log)
	userHandler := handler.NewUserHandler(userUC, log)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		m,
		authUC,
		healthHandler,
		authHandler,
		listingHandler,
		userHandler,
	)

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if err := db.Close(); err != nil {
		log.Error("Failed to close PostgreSQL", zap.Error(err))
	}

	if err := redisClient.Close(); err != nil {
		log.Error("Failed to close Redis", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
