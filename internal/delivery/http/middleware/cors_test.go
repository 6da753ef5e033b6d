package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCORSConfig(t *testing.T) {
	tests := []struct {
		name        string
		origins     string
		wantOrigins string
		wantCreds   bool
	}{
		{"default origins", "", defaultAllowOrigins, true},
		{"explicit origins", "https://market.example.com", "https://market.example.com", true},
		{"wildcard", "*", "*", false},
		{"wildcard in a list", "https://market.example.com, *", "*", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := corsConfig(tt.origins)

			assert.Equal(t, tt.wantOrigins, cfg.AllowOrigins)
			assert.Equal(t, tt.wantCreds, cfg.AllowCredentials)
		})
	}
}

func TestCORS_WildcardDoesNotPanic(t *testing.T) {
	var handler fiber.Handler
	require.NotPanics(t, func() { handler = CORS("*") })

	app := fiber.New()
	app.Use(handler)
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })

	req := httptest.NewRequest(fiber.MethodGet, "/ping", nil)
	req.Header.Set(fiber.HeaderOrigin, "https://anywhere.example.com")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "*", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
	assert.Empty(t, resp.Header.Get(fiber.HeaderAccessControlAllowCredentials))
}
