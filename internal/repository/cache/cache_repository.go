package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/listing-service/internal/domain/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(r *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: r.Client(),
		logger: r.logger.Named("cache"),
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		r.logger.Debug("miss", zap.String("key", key))
		return nil, nil
	case err != nil:
		return nil, r.fail("get", key, err)
	}

	r.logger.Debug("hit", zap.String("key", key), zap.Int("bytes", len(val)))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return r.fail("set", key, err)
	}

	r.logger.Debug("stored", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	removed, err := r.client.Del(ctx, key).Result()
	if err != nil {
		return r.fail("delete", key, err)
	}

	r.logger.Debug("evicted", zap.String("key", key), zap.Bool("present", removed > 0))
	return nil
}

func (r *cacheRepository) Incr(ctx context.Context, key string) (int64, error) {
	val, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, r.fail("incr", key, err)
	}
	return val, nil
}

func (r *cacheRepository) GetCounter(ctx context.Context, key string) (int64, error) {
	val, err := r.client.Get(ctx, key).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, r.fail("counter", key, err)
	}
	return val, nil
}

func (r *cacheRepository) fail(op, key string, err error) error {
	r.logger.Error("cache operation failed",
		zap.String("op", op),
		zap.String("key", key),
		zap.Error(err),
	)
	return fmt.Errorf("cache %s %s: %w", op, key, err)
}
