package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/listing-service/internal/config"
	"github.com/redis/go-redis/v9"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
)

const pingTimeout = 3 * time.Second

// Redis - общий клиент для кэша объявлений и потока событий
type Redis struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedis подключается к Redis, повторяя ping пока сервер не поднимется
func NewRedis(cfg *config.RedisConfig, logger *zap.Logger) (*Redis, error) {
	opts := &redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	}
	if cfg.PoolSize > 0 {
		opts.PoolSize = cfg.PoolSize
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	backoff := retry.WithMaxRetries(cfg.ConnectRetries, retry.NewExponential(250*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		pingCtx, pingCancel := context.WithTimeout(ctx, pingTimeout)
		defer pingCancel()

		if err := client.Ping(pingCtx).Err(); err != nil {
			logger.Warn("Redis not ready, retrying", zap.String("addr", opts.Addr), zap.Error(err))
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", opts.Addr, err)
	}

	logger.Info("Redis connected",
		zap.String("addr", opts.Addr),
		zap.Int("db", cfg.DB),
		zap.Int("pool_size", client.Options().PoolSize),
	)

	return &Redis{client: client, logger: logger}, nil
}

// NewRedisFromClient оборачивает готовый клиент (тесты на miniredis)
func NewRedisFromClient(client *redis.Client, logger *zap.Logger) *Redis {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Redis{client: client, logger: logger}
}

func (r *Redis) Client() *redis.Client {
	return r.client
}

// Health используется эндпоинтом /health
func (r *Redis) Health(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Close() error {
	stats := r.client.PoolStats()
	r.logger.Info("Closing Redis connection",
		zap.Uint32("total_conns", stats.TotalConns),
		zap.Uint32("idle_conns", stats.IdleConns),
	)
	return r.client.Close()
}
