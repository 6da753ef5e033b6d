package postgres

import (
	"context"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/listing-service/internal/config"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
)

const driverName = "pgx"

// DB - пул соединений с базой объявлений
type DB struct {
	*sqlx.DB
	logger *zap.Logger
}

// New открывает пул и ждет готовности базы (в docker compose она стартует дольше сервиса)
func New(cfg *config.DatabaseConfig, logger *zap.Logger) (*DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	conn, err := connectWithRetry(ctx, dsn(cfg), cfg.ConnectRetries, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database %q: %w", cfg.DBName, err)
	}

	conn.SetMaxOpenConns(cfg.MaxConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	conn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	conn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	logger.Info("PostgreSQL connected",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.DBName),
		zap.Int("max_conns", cfg.MaxConns),
	)

	return &DB{DB: conn, logger: logger}, nil
}

func dsn(cfg *config.DatabaseConfig) string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)
}

func connectWithRetry(ctx context.Context, dsn string, retries uint64, logger *zap.Logger) (*sqlx.DB, error) {
	var conn *sqlx.DB
	backoff := retry.WithMaxRetries(retries, retry.NewExponential(500*time.Millisecond))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		c, err := sqlx.ConnectContext(ctx, driverName, dsn)
		if err != nil {
			logger.Warn("PostgreSQL not ready, retrying", zap.Error(err))
			return retry.RetryableError(err)
		}
		conn = c
		return nil
	})
	return conn, err
}

// NewDBForTest оборачивает готовое соединение (testcontainers)
func NewDBForTest(conn *sqlx.DB, logger *zap.Logger) *DB {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DB{DB: conn, logger: logger}
}

// Health используется эндпоинтом /health
func (db *DB) Health(ctx context.Context) error {
	return db.PingContext(ctx)
}

func (db *DB) Close() error {
	stats := db.Stats()
	db.logger.Info("Closing PostgreSQL connection",
		zap.Int("open_conns", stats.OpenConnections),
		zap.Int("in_use", stats.InUse),
	)
	return db.DB.Close()
}
