package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/listing-service/internal/domain"
	apperrors "github.com/listing-service/internal/pkg/errors"
	"github.com/listing-service/internal/pkg/password"
	"github.com/listing-service/internal/usecase"
	"github.com/listing-service/internal/usecase/dto"
)

func newUserUseCase() (*usecase.UserUseCase, *MockUserRepository, password.Hasher) {
	users := &MockUserRepository{}
	hasher := password.NewBcryptHasher(bcrypt.MinCost)
	return usecase.NewUserUseCase(users, hasher, zap.NewNop()), users, hasher
}

func TestUserUseCase_EditUser(t *testing.T) {
	ctx := context.Background()

	t.Run("only provided fields are patched", func(t *testing.T) {
		uc, users, _ := newUserUseCase()
		users.On("Update", mock.Anything, int64(5), domain.UserPatch{
			Username: ptrString("ann"),
			Email:    ptrString("ann@example.org"),
		}).Return(nil)

		err := uc.EditUser(ctx, 5, dto.EditUserRequest{
			Username: ptrString(" ann "),
			Email:    ptrString("ann@example.org"),
			Phone:    ptrString(""),
		})

		require.NoError(t, err)
		users.AssertExpectations(t)
	})

	t.Run("password is hashed", func(t *testing.T) {
		uc, users, hasher := newUserUseCase()
		var patch domain.UserPatch
		users.On("Update", mock.Anything, int64(5), mock.AnythingOfType("domain.UserPatch")).Run(func(args mock.Arguments) {
			patch = args.Get(2).(domain.UserPatch)
		}).Return(nil)

		err := uc.EditUser(ctx, 5, dto.EditUserRequest{Password: ptrString("new-password")})

		require.NoError(t, err)
		require.NotNil(t, patch.PasswordHash)
		ok, err := hasher.Verify("new-password", *patch.PasswordHash)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Nil(t, patch.Email)
	})

	t.Run("empty request checks the user exists", func(t *testing.T) {
		uc, users, _ := newUserUseCase()
		users.On("GetByID", mock.Anything, int64(5)).Return(nil, apperrors.ErrUserNotFound)

		err := uc.EditUser(ctx, 5, dto.EditUserRequest{})

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
		users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("email already taken", func(t *testing.T) {
		uc, users, _ := newUserUseCase()
		users.On("Update", mock.Anything, int64(5), mock.Anything).Return(apperrors.ErrEmailTaken)

		err := uc.EditUser(ctx, 5, dto.EditUserRequest{Email: ptrString("bob@example.org")})

		assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
	})

	t.Run("short password rejected", func(t *testing.T) {
		uc, _, _ := newUserUseCase()

		err := uc.EditUser(ctx, 5, dto.EditUserRequest{Password: ptrString("short")})

		assert.ErrorIs(t, err, apperrors.ErrInvalidRequest)
	})
}

func TestUserUseCase_GetMe(t *testing.T) {
	ctx := context.Background()

	t.Run("profile", func(t *testing.T) {
		uc, users, _ := newUserUseCase()
		users.On("GetByID", mock.Anything, int64(5)).Return(&domain.User{
			ID:           5,
			Email:        "ann@example.org",
			Username:     ptrString("ann"),
			PasswordHash: "hash",
		}, nil)

		profile, err := uc.GetMe(ctx, 5)

		require.NoError(t, err)
		assert.Equal(t, int64(5), profile.UserID)
		assert.Equal(t, "ann@example.org", profile.Email)
		assert.Equal(t, "ann", *profile.Username)
		assert.Nil(t, profile.Phone)
	})

	t.Run("unknown user", func(t *testing.T) {
		uc, users, _ := newUserUseCase()
		users.On("GetByID", mock.Anything, int64(9)).Return(nil, apperrors.ErrUserNotFound)

		_, err := uc.GetMe(ctx, 9)

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}
