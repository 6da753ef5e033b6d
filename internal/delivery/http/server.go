package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/listing-service/internal/config"
	"github.com/listing-service/internal/delivery/http/handler"
	"github.com/listing-service/internal/delivery/http/middleware"
	"github.com/listing-service/internal/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app     *fiber.App
	config  *config.Config
	logger  *zap.Logger
	metrics *metrics.Metrics
	auth    middleware.Authenticator

	// Handlers
	healthHandler  *handler.HealthHandler
	authHandler    *handler.AuthHandler
	listingHandler *handler.ListingHandler
	userHandler    *handler.UserHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	m *metrics.Metrics,
	auth middleware.Authenticator,
	healthHandler *handler.HealthHandler,
	authHandler *handler.AuthHandler,
	listingHandler *handler.ListingHandler,
	userHandler *handler.UserHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Listing Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:            app,
		config:         cfg,
		logger:         logger,
		metrics:        m,
		auth:           auth,
		healthHandler:  healthHandler,
		authHandler:    authHandler,
		listingHandler: listingHandler,
		userHandler:    userHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.AllowOrigins))
	if s.metrics != nil {
		s.app.Use(middleware.Metrics(s.metrics))
	}
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	if s.metrics != nil {
		s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(s.metrics.Registry, promhttp.HandlerOpts{})))
	}

	api := s.app.Group("/api/v1")
	requireAuth := middleware.Auth(s.auth)

	api.Get("/health", s.healthHandler.Health)

	// Auth routes
	api.Post("/signup", s.authHandler.Signup)
	api.Post("/login", s.authHandler.Login)

	// Listing routes: статические пути раньше /:id
	listings := api.Group("/listings")
	listings.Get("/nearby", s.listingHandler.Nearby)
	listings.Get("/search", s.listingHandler.Search)
	listings.Get("/", s.listingHandler.GetOne)
	listings.Get("/:id", s.listingHandler.GetByID)
	listings.Post("/", requireAuth, s.listingHandler.Create)
	listings.Patch("/:id", requireAuth, s.listingHandler.Update)
	listings.Delete("/:id", requireAuth, s.listingHandler.Delete)

	// User routes
	users := api.Group("/users", requireAuth)
	users.Get("/me", s.userHandler.GetMe)
	users.Patch("/me", s.userHandler.EditMe)
}

// App - экземпляр Fiber (для app.Test в тестах)
func (s *Server) App() *fiber.App {
	return s.app
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		errCode := "INTERNAL_SERVER_ERROR"

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			switch code {
			case fiber.StatusNotFound:
				errCode = "NOT_FOUND"
			case fiber.StatusMethodNotAllowed:
				errCode = "METHOD_NOT_ALLOWED"
			}
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    errCode,
				"message": err.Error(),
			},
		})
	}
}
