package handler

import (
	"context"

	"github.com/listing-service/internal/pkg/token"
	"github.com/listing-service/internal/usecase/dto"
)

// ListingSearcher - чтение объявлений (usecase.SearchUseCase)
type ListingSearcher interface {
	Nearby(ctx context.Context, lat, lon float64) ([]dto.NearbyListing, error)
	GetOne(ctx context.Context, id int64) (*dto.ListingDetail, error)
	Search(ctx context.Context, q dto.SearchQuery) ([]dto.ListingDetail, error)
}

// ListingManager - изменение объявлений (usecase.ListingUseCase)
type ListingManager interface {
	Create(ctx context.Context, userID int64, req dto.CreateListingRequest) (*dto.CreatedListingResponse, error)
	Update(ctx context.Context, userID, id int64, req dto.UpdateListingRequest) (*dto.ListingDetail, error)
	Delete(ctx context.Context, userID, id int64) error
}

// AuthService - регистрация и вход (usecase.AuthUseCase)
type AuthService interface {
	Signup(ctx context.Context, req dto.SignupRequest) (*token.Issued, error)
	Login(ctx context.Context, req dto.LoginRequest) (*token.Issued, error)
}

// UserService - профиль пользователя (usecase.UserUseCase)
type UserService interface {
	EditUser(ctx context.Context, userID int64, req dto.EditUserRequest) error
	GetMe(ctx context.Context, userID int64) (*dto.UserProfile, error)
}

// HealthChecker - зависимость, доступность которой проверяет /health
type HealthChecker interface {
	Health(ctx context.Context) error
}
