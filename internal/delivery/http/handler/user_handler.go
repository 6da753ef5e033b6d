package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/listing-service/internal/delivery/http/middleware"
	"github.com/listing-service/internal/pkg/errors"
	"github.com/listing-service/internal/pkg/utils"
	"github.com/listing-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// UserHandler - профиль текущего пользователя
type UserHandler struct {
	userUC UserService
	logger *zap.Logger
}

func NewUserHandler(userUC UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		userUC: userUC,
		logger: logger,
	}
}

// GetMe godoc
// @Summary Профиль
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=dto.UserProfile}
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/users/me [get]
func (h *UserHandler) GetMe(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.SendError(c, errors.ErrMissingToken)
	}

	profile, err := h.userUC.GetMe(c.Context(), userID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, profile, nil)
}

// EditMe godoc
// @Summary Изменение профиля
// @Description Меняет только переданные непустые поля
// @Tags Users
// @Accept json
// @Security BearerAuth
// @Param request body dto.EditUserRequest true "Поля профиля"
// @Success 204
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/users/me [patch]
func (h *UserHandler) EditMe(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.SendError(c, errors.ErrMissingToken)
	}

	var req dto.EditUserRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := h.userUC.EditUser(c.Context(), userID, req); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendNoContent(c)
}
