package repository

import (
	"context"

	"github.com/listing-service/internal/domain"
)

// AddressRepository определяет методы для работы с адресами
type AddressRepository interface {
	// FindByPlaceID возвращает адрес по place_id или nil, если его нет
	FindByPlaceID(ctx context.Context, placeID string) (*domain.Address, error)

	// GetByPlaceIDs возвращает адреса по списку place_id
	GetByPlaceIDs(ctx context.Context, placeIDs []string) (map[string]*domain.Address, error)

	// FindInBoundingBox возвращает адреса внутри квадрата (границы включительно)
	FindInBoundingBox(ctx context.Context, box domain.BoundingBox) ([]*domain.Address, error)

	// Create сохраняет адрес; повторный place_id игнорируется
	Create(ctx context.Context, address *domain.Address) error
}
