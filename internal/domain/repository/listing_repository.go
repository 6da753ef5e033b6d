package repository

import (
	"context"

	"github.com/listing-service/internal/domain"
)

// ListingRepository определяет методы для работы с объявлениями
type ListingRepository interface {
	// Create сохраняет объявление и заполняет ID и временные метки
	Create(ctx context.Context, listing *domain.Listing) error

	// GetByID возвращает объявление по ID
	GetByID(ctx context.Context, id int64) (*domain.Listing, error)

	// GetByPlaceIDs возвращает объявления по списку place_id, упорядоченные по ID
	GetByPlaceIDs(ctx context.Context, placeIDs []string) ([]*domain.Listing, error)

	// Search возвращает объявления, у которых есть хотя бы одна из меток и/или
	// заголовок или описание содержит хотя бы одно ключевое слово, с адресом внутри Box.
	// Результат упорядочен по ID и обрезан до Limit
	Search(ctx context.Context, filter domain.ListingFilter) ([]*domain.Listing, error)

	// Update применяет частичное обновление объявления
	Update(ctx context.Context, id int64, patch domain.ListingPatch) (*domain.Listing, error)

	// Delete удаляет объявление вместе с метками
	Delete(ctx context.Context, id int64) error
}

// TagRepository определяет методы для работы с метками объявлений
type TagRepository interface {
	// GetByListingID возвращает метки объявления в порядке добавления
	GetByListingID(ctx context.Context, listingID int64) ([]string, error)

	// GetByListingIDs возвращает метки для нескольких объявлений одним запросом
	GetByListingIDs(ctx context.Context, listingIDs []int64) (map[int64][]string, error)

	// ReplaceForListing заменяет набор меток объявления
	ReplaceForListing(ctx context.Context, listingID int64, tags []string) error
}
