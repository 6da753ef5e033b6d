package usecase

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/listing-service/internal/domain"
	"github.com/listing-service/internal/domain/repository"
	"github.com/listing-service/internal/pkg/errors"
	"github.com/listing-service/internal/pkg/password"
	"github.com/listing-service/internal/pkg/sanitize"
	"github.com/listing-service/internal/pkg/token"
	"github.com/listing-service/internal/pkg/validator"
	"github.com/listing-service/internal/usecase/dto"
	"go.uber.org/zap"
)

type AuthUseCase struct {
	userRepo repository.UserRepository
	hasher   password.Hasher
	tokens   *token.Manager
	logger   *zap.Logger
}

func NewAuthUseCase(
	userRepo repository.UserRepository,
	hasher password.Hasher,
	tokens *token.Manager,
	logger *zap.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

// Signup регистрирует пользователя и сразу выдает токен
func (uc *AuthUseCase) Signup(ctx context.Context, req dto.SignupRequest) (*token.Issued, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	hash, err := uc.hasher.Hash(req.Password)
	if err != nil {
		uc.logger.Error("Failed to hash password", zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	user := &domain.User{
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: hash,
		Username:     nonEmpty(sanitize.TextPtr(req.Username)),
		PhoneNum:     nonEmpty(sanitize.TextPtr(req.Phone)),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	uc.logger.Info("User signed up", zap.Int64("user_id", user.ID))
	return uc.issue(user)
}

// Login проверяет пароль и выдает токен
func (uc *AuthUseCase) Login(ctx context.Context, req dto.LoginRequest) (*token.Issued, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if stderrors.Is(err, errors.ErrUserNotFound) {
			return nil, errors.ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := uc.hasher.Verify(req.Password, user.PasswordHash)
	if err != nil {
		uc.logger.Error("Failed to verify password", zap.Int64("user_id", user.ID), zap.Error(err))
		return nil, errors.ErrInvalidCredentials
	}
	if !ok {
		return nil, errors.ErrInvalidCredentials
	}

	return uc.issue(user)
}

// Authenticate разбирает токен доступа
func (uc *AuthUseCase) Authenticate(tokenString string) (*token.Claims, error) {
	claims, err := uc.tokens.Parse(tokenString)
	if err != nil {
		uc.logger.Debug("Token rejected", zap.Error(err))
		return nil, errors.ErrInvalidToken
	}
	return claims, nil
}

func (uc *AuthUseCase) issue(user *domain.User) (*token.Issued, error) {
	issued, err := uc.tokens.Issue(user.ID, user.Email)
	if err != nil {
		uc.logger.Error("Failed to issue token", zap.Int64("user_id", user.ID), zap.Error(err))
		return nil, errors.ErrInternalServer
	}
	return issued, nil
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
