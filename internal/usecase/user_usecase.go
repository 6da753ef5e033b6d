package usecase

import (
	"context"
	"strings"

	"github.com/listing-service/internal/domain"
	"github.com/listing-service/internal/domain/repository"
	"github.com/listing-service/internal/pkg/errors"
	"github.com/listing-service/internal/pkg/password"
	"github.com/listing-service/internal/pkg/sanitize"
	"github.com/listing-service/internal/pkg/validator"
	"github.com/listing-service/internal/usecase/dto"
	"go.uber.org/zap"
)

type UserUseCase struct {
	userRepo repository.UserRepository
	hasher   password.Hasher
	logger   *zap.Logger
}

func NewUserUseCase(userRepo repository.UserRepository, hasher password.Hasher, logger *zap.Logger) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

// EditUser обновляет только непустые поля профиля
func (uc *UserUseCase) EditUser(ctx context.Context, userID int64, req dto.EditUserRequest) error {
	if err := validator.Validate(req); err != nil {
		return err
	}

	patch := domain.UserPatch{
		Username: nonEmpty(sanitize.TextPtr(req.Username)),
		PhoneNum: nonEmpty(sanitize.TextPtr(req.Phone)),
	}
	if req.Email != nil {
		patch.Email = nonEmpty(ptr(strings.TrimSpace(*req.Email)))
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := uc.hasher.Hash(*req.Password)
		if err != nil {
			uc.logger.Error("Failed to hash password", zap.Error(err))
			return errors.ErrInternalServer
		}
		patch.PasswordHash = &hash
	}

	if patch.IsEmpty() {
		// Нечего менять, но неизвестный пользователь - все равно ошибка
		_, err := uc.userRepo.GetByID(ctx, userID)
		return err
	}

	if err := uc.userRepo.Update(ctx, userID, patch); err != nil {
		return err
	}

	uc.logger.Info("User updated", zap.Int64("user_id", userID))
	return nil
}

// GetMe возвращает профиль пользователя
func (uc *UserUseCase) GetMe(ctx context.Context, userID int64) (*dto.UserProfile, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.UserProfile{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		Phone:    user.PhoneNum,
	}, nil
}

func ptr[T any](v T) *T {
	return &v
}
