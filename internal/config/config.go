package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Log      LogConfig
	Auth     AuthConfig
	Geocoder GeocoderConfig
	Search   SearchConfig
	Worker   WorkerConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	Env          string
	AllowOrigins string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	ConnectRetries  uint64
}

type RedisConfig struct {
	Host           string
	Port           int
	Password       string
	DB             int
	PoolSize       int
	ConnectRetries uint64
}

type CacheConfig struct {
	ListingCacheTTL time.Duration
	NearbyCacheTTL  time.Duration
}

type LogConfig struct {
	Level          string
	ListingLogPath string
}

// AuthConfig - параметры выпуска токенов и хеширования паролей
type AuthConfig struct {
	JWTSecret  string
	JWTIssuer  string
	TokenTTL   time.Duration
	BcryptCost int
}

// GeocoderConfig - параметры клиента Google Geocoding API
type GeocoderConfig struct {
	APIKey            string
	BaseURL           string
	RequestTimeout    time.Duration
	RequestsPerSecond float64
	FailureThreshold  uint32
	OpenStateTimeout  time.Duration
}

// SearchConfig - параметры поиска объявлений
type SearchConfig struct {
	BBoxDelta float64
	Limit     int
}

type WorkerConfig struct {
	Enabled           bool
	ConsumerGroup     string
	StreamReadTimeout time.Duration
	MaxRetries        int
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// .env опционален, переменные окружения тоже подходят
		var pathErr *fs.PathError
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &pathErr) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:         viper.GetString("API_HOST"),
			Port:         viper.GetInt("API_PORT"),
			Env:          viper.GetString("API_ENV"),
			AllowOrigins: viper.GetString("CORS_ALLOW_ORIGINS"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
			ConnectRetries:  viper.GetUint64("DB_CONNECT_RETRIES"),
		},
		Redis: RedisConfig{
			Host:           viper.GetString("REDIS_HOST"),
			Port:           viper.GetInt("REDIS_PORT"),
			Password:       viper.GetString("REDIS_PASSWORD"),
			DB:             viper.GetInt("REDIS_DB"),
			PoolSize:       viper.GetInt("REDIS_POOL_SIZE"),
			ConnectRetries: viper.GetUint64("REDIS_CONNECT_RETRIES"),
		},
		Cache: CacheConfig{
			ListingCacheTTL: time.Duration(viper.GetInt("LISTING_CACHE_TTL")) * time.Second,
			NearbyCacheTTL:  time.Duration(viper.GetInt("NEARBY_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level:          viper.GetString("LOG_LEVEL"),
			ListingLogPath: viper.GetString("LISTING_LOG_PATH"),
		},
		Auth: AuthConfig{
			JWTSecret:  viper.GetString("JWT_SECRET"),
			JWTIssuer:  viper.GetString("JWT_ISSUER"),
			TokenTTL:   time.Duration(viper.GetInt("JWT_TTL")) * time.Second,
			BcryptCost: viper.GetInt("BCRYPT_COST"),
		},
		Geocoder: GeocoderConfig{
			APIKey:            viper.GetString("GOOGLE_KEY"),
			BaseURL:           viper.GetString("GEOCODER_BASE_URL"),
			RequestTimeout:    time.Duration(viper.GetInt("GEOCODER_TIMEOUT")) * time.Second,
			RequestsPerSecond: viper.GetFloat64("GEOCODER_RPS"),
			FailureThreshold:  viper.GetUint32("GEOCODER_FAILURE_THRESHOLD"),
			OpenStateTimeout:  time.Duration(viper.GetInt("GEOCODER_OPEN_TIMEOUT")) * time.Second,
		},
		Search: SearchConfig{
			BBoxDelta: viper.GetFloat64("SEARCH_BBOX_DELTA"),
			Limit:     viper.GetInt("SEARCH_LIMIT"),
		},
		Worker: WorkerConfig{
			Enabled:           viper.GetBool("WORKER_ENABLED"),
			ConsumerGroup:     viper.GetString("WORKER_CONSUMER_GROUP"),
			StreamReadTimeout: time.Duration(viper.GetInt("WORKER_STREAM_READ_TIMEOUT")) * time.Millisecond,
			MaxRetries:        viper.GetInt("WORKER_MAX_RETRIES"),
		},
	}

	cfg.applyDefaults()

	return cfg, nil
}

// applyDefaults - значения по умолчанию для незаданных параметров
func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Database.ConnectRetries == 0 {
		c.Database.ConnectRetries = 5
	}
	if c.Redis.ConnectRetries == 0 {
		c.Redis.ConnectRetries = 5
	}
	if c.Cache.ListingCacheTTL == 0 {
		c.Cache.ListingCacheTTL = 10 * time.Minute
	}
	if c.Cache.NearbyCacheTTL == 0 {
		c.Cache.NearbyCacheTTL = time.Minute
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.ListingLogPath == "" {
		c.Log.ListingLogPath = "logs/listings.log"
	}
	if c.Auth.JWTIssuer == "" {
		c.Auth.JWTIssuer = "listing-service"
	}
	if c.Auth.TokenTTL == 0 {
		c.Auth.TokenTTL = 24 * time.Hour
	}
	if c.Auth.BcryptCost == 0 {
		c.Auth.BcryptCost = 10
	}
	if c.Geocoder.BaseURL == "" {
		c.Geocoder.BaseURL = "https://maps.googleapis.com"
	}
	if c.Geocoder.RequestTimeout == 0 {
		c.Geocoder.RequestTimeout = 10 * time.Second
	}
	if c.Geocoder.RequestsPerSecond == 0 {
		c.Geocoder.RequestsPerSecond = 10
	}
	if c.Geocoder.FailureThreshold == 0 {
		c.Geocoder.FailureThreshold = 5
	}
	if c.Geocoder.OpenStateTimeout == 0 {
		c.Geocoder.OpenStateTimeout = 30 * time.Second
	}
	if c.Search.BBoxDelta == 0 {
		c.Search.BBoxDelta = 0.1
	}
	if c.Search.Limit == 0 {
		c.Search.Limit = 100
	}
	if c.Worker.ConsumerGroup == "" {
		c.Worker.ConsumerGroup = "listing-event-workers"
	}
	if c.Worker.StreamReadTimeout == 0 {
		c.Worker.StreamReadTimeout = 5000 * time.Millisecond
	}
	if c.Worker.MaxRetries == 0 {
		c.Worker.MaxRetries = 3
	}
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

// GetDatabaseURL - URL подключения для golang-migrate (pgx5://)
func (c *Config) GetDatabaseURL() string {
	return fmt.Sprintf(
		"pgx5://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
