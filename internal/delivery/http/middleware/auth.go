package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/listing-service/internal/pkg/errors"
	"github.com/listing-service/internal/pkg/token"
	"github.com/listing-service/internal/pkg/utils"
)

const claimsKey = "claims"

// Authenticator проверяет токен доступа
type Authenticator interface {
	Authenticate(tokenString string) (*token.Claims, error)
}

// Auth - проверка заголовка Authorization: "<схема> <токен>".
// Разобранные claims сохраняются в c.Locals
func Auth(auth Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return utils.SendError(c, errors.ErrMissingToken)
		}

		parts := strings.Split(header, " ")
		switch {
		case len(parts) > 2:
			return utils.SendError(c, errors.ErrMalformedToken)
		case len(parts) < 2 || parts[1] == "":
			return utils.SendError(c, errors.ErrMissingToken)
		}

		claims, err := auth.Authenticate(parts[1])
		if err != nil {
			return utils.SendError(c, errors.ErrInvalidToken)
		}

		c.Locals(claimsKey, claims)
		return c.Next()
	}
}

// Claims возвращает claims, сохраненные Auth
func Claims(c *fiber.Ctx) (*token.Claims, bool) {
	claims, ok := c.Locals(claimsKey).(*token.Claims)
	return claims, ok && claims != nil
}

// UserID - идентификатор пользователя из токена
func UserID(c *fiber.Ctx) (int64, bool) {
	claims, ok := Claims(c)
	if !ok {
		return 0, false
	}
	return claims.UserID, true
}
