package repository

import (
	"context"

	"github.com/listing-service/internal/domain"
)

// GeocoderRepository определяет методы внешнего геокодера
type GeocoderRepository interface {
	// Geocode возвращает первый результат для адреса.
	// Если адрес не найден - errors.ErrAddressNotFound
	Geocode(ctx context.Context, address string) (*domain.GeocodeResult, error)
}
