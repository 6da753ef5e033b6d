package repository

import (
	"context"

	"github.com/listing-service/internal/domain"
)

// UserRepository определяет методы для работы с пользователями
type UserRepository interface {
	// Create сохраняет пользователя и заполняет ID и временные метки
	Create(ctx context.Context, user *domain.User) error

	// GetByID возвращает пользователя по ID
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByIDs возвращает пользователей по списку ID одним запросом
	GetByIDs(ctx context.Context, ids []int64) (map[int64]*domain.User, error)

	// GetByEmail возвращает пользователя по email (без учета регистра)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Update применяет частичное обновление профиля
	Update(ctx context.Context, id int64, patch domain.UserPatch) error
}
