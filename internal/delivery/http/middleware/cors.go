package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

const defaultAllowOrigins = "http://localhost:3000,http://localhost:5173"

// CORS - middleware для настройки Cross-Origin Resource Sharing.
// При "*" среди источников credentials отключаются
func CORS(allowOrigins string) fiber.Handler {
	return cors.New(corsConfig(allowOrigins))
}

func corsConfig(allowOrigins string) cors.Config {
	allowOrigins = strings.TrimSpace(allowOrigins)
	if allowOrigins == "" {
		allowOrigins = defaultAllowOrigins
	}

	wildcard := false
	for _, origin := range strings.Split(allowOrigins, ",") {
		if strings.TrimSpace(origin) == "*" {
			wildcard = true
		}
	}
	if wildcard {
		allowOrigins = "*"
	}

	return cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Content-Type,Accept,Authorization",
		AllowCredentials: !wildcard,
	}
}
