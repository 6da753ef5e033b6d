package google

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/listing-service/internal/config"
	"github.com/listing-service/internal/domain"
	"github.com/listing-service/internal/domain/repository"
	"github.com/listing-service/internal/pkg/errors"
	"github.com/listing-service/internal/pkg/metrics"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Исходы запроса для метрик
const (
	outcomeOK          = "ok"
	outcomeZeroResults = "zero_results"
	outcomeError       = "error"
	outcomeOpen        = "open"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// NewGeocoderClient создает клиент Google Geocoding API
func NewGeocoderClient(cfg *config.GeocoderConfig, m *metrics.Metrics, logger *zap.Logger) repository.GeocoderRepository {
	c := &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1),
		metrics: m,
		logger:  logger,
	}

	threshold := cfg.FailureThreshold
	c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "google-geocoder",
		Timeout: cfg.OpenStateTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		// Ненайденный адрес - нормальный ответ, а не сбой геокодера
		IsSuccessful: func(err error) bool {
			return err == nil || stderrors.Is(err, errors.ErrAddressNotFound)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})

	return c
}

// Geocode возвращает первый результат геокодирования адреса
func (c *client) Geocode(ctx context.Context, address string) (*domain.GeocodeResult, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("geocoder rate limit wait: %w", err)
	}

	res, err := c.breaker.Execute(func() (interface{}, error) {
		return c.doGeocode(ctx, address)
	})
	if err != nil {
		switch {
		case stderrors.Is(err, errors.ErrAddressNotFound):
			c.metrics.ObserveGeocode(outcomeZeroResults)
		case stderrors.Is(err, gobreaker.ErrOpenState), stderrors.Is(err, gobreaker.ErrTooManyRequests):
			c.metrics.ObserveGeocode(outcomeOpen)
			c.logger.Warn("Geocoder circuit open, request rejected")
		default:
			c.metrics.ObserveGeocode(outcomeError)
		}
		return nil, err
	}

	c.metrics.ObserveGeocode(outcomeOK)
	return res.(*domain.GeocodeResult), nil
}

func (c *client) doGeocode(ctx context.Context, address string) (*domain.GeocodeResult, error) {
	params := url.Values{}
	params.Set("address", address)
	params.Set("key", c.apiKey)
	reqURL := fmt.Sprintf("%s/maps/api/geocode/json?%s", c.baseURL, params.Encode())

	c.logger.Debug("Calling Google Geocoding API", zap.String("address", address))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Geocoding API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("geocoding API error: status %d", resp.StatusCode)
	}

	var geoResp geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&geoResp); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if geoResp.Status == statusZeroResults || (geoResp.Status == statusOK && len(geoResp.Results) == 0) {
		c.logger.Info("Address not found", zap.String("address", address))
		return nil, errors.ErrAddressNotFound
	}

	if geoResp.Status != statusOK {
		c.logger.Error("Geocoding API returned non-OK status",
			zap.String("status", geoResp.Status),
			zap.String("error_message", geoResp.ErrorMessage))
		return nil, fmt.Errorf("geocoding API returned status: %s", geoResp.Status)
	}

	first := geoResp.Results[0]
	return &domain.GeocodeResult{
		PlaceID:          first.PlaceID,
		FormattedAddress: first.FormattedAddress,
		Location: domain.Point{
			Lat: first.Geometry.Location.Lat,
			Lon: first.Geometry.Location.Lng,
		},
		Components: ParseAddressComponents(first.AddressComponents),
	}, nil
}
