package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/listing-service/internal/pkg/errors"
	"github.com/listing-service/internal/pkg/utils"
	"github.com/listing-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// AuthHandler - регистрация и вход
type AuthHandler struct {
	authUC AuthService
	logger *zap.Logger
}

func NewAuthHandler(authUC AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
		logger: logger,
	}
}

// Signup godoc
// @Summary Регистрация
// @Description Создает пользователя и возвращает токен доступа
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.SignupRequest true "Данные пользователя"
// @Success 201 {object} utils.SuccessResponse{data=token.Issued}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	issued, err := h.authUC.Signup(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, issued)
}

// Login godoc
// @Summary Вход
// @Description Проверяет email и пароль, возвращает токен доступа
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Email и пароль"
// @Success 200 {object} utils.SuccessResponse{data=token.Issued}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	issued, err := h.authUC.Login(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, issued, nil)
}
