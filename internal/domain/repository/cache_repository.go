package repository

import (
	"context"
	"time"
)

// CacheRepository - кэш карточек объявлений и выдачи nearby.
// Промах не считается ошибкой: Get возвращает nil, GetCounter возвращает 0.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error

	// Incr и GetCounter обслуживают счетчик поколений nearby-кэша
	Incr(ctx context.Context, key string) (int64, error)
	GetCounter(ctx context.Context, key string) (int64, error)
}
