package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/listing-service/internal/config"
	"github.com/listing-service/internal/pkg/logger"
	"github.com/listing-service/internal/repository/cache"
	redisRepo "github.com/listing-service/internal/repository/redis"
	"github.com/listing-service/internal/worker"
	"github.com/listing-service/internal/worker/listing"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if !cfg.Worker.Enabled {
		fmt.Println("Listing event worker is disabled. Set WORKER_ENABLED=true to enable.")
		return
	}

	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("Listing event worker failed", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	activityLog, err := logger.NewFile("info", cfg.Log.ListingLogPath)
	if err != nil {
		return fmt.Errorf("open listing activity log: %w", err)
	}
	defer activityLog.Sync()

	log.Info("Starting listing event worker",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.Int("max_retries", cfg.Worker.MaxRetries),
		zap.String("activity_log", cfg.Log.ListingLogPath),
	)

	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	eventWorker := listing.NewListingEventWorker(
		redisRepo.NewStreamRepository(redisClient.Client(), cfg.Worker.StreamReadTimeout, log),
		cache.NewCacheRepository(redisClient),
		activityLog,
		cfg.Worker.ConsumerGroup,
		cfg.Worker.MaxRetries,
		log,
	)

	manager := worker.NewWorkerManager(log)
	manager.Register(eventWorker)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := manager.Start(ctx); err != nil {
		return fmt.Errorf("start workers: %w", err)
	}

	<-ctx.Done()
	log.Info("Received shutdown signal")

	if err := manager.Stop(); err != nil {
		return fmt.Errorf("stop workers: %w", err)
	}

	log.Info("Listing event worker stopped")
	return nil
}
