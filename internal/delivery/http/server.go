package http

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/smartcity-dashboard/internal/config"
	"github.com/smartcity-dashboard/internal/delivery/http/handler"
	"github.com/smartcity-dashboard/internal/delivery/http/middleware"
	"github.com/smartcity-dashboard/internal/pkg/errors"
	"github.com/smartcity-dashboard/internal/pkg/utils"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	healthHandler    *handler.HealthHandler
	probeHandler     *handler.ProbeHandler
	geocodeHandler   *handler.GeocodeHandler
	dataHandler      *handler.DataHandler
	analyticsHandler *handler.AnalyticsHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	healthHandler *handler.HealthHandler,
	probeHandler *handler.ProbeHandler,
	geocodeHandler *handler.GeocodeHandler,
	dataHandler *handler.DataHandler,
	analyticsHandler *handler.AnalyticsHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Smart City Dashboard",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:              app,
		config:           cfg,
		logger:           logger,
		healthHandler:    healthHandler,
		probeHandler:     probeHandler,
		geocodeHandler:   geocodeHandler,
		dataHandler:      dataHandler,
		analyticsHandler: analyticsHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.RequestID())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.CORS(s.config.CORS.AllowOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	s.app.Get("/", s.healthHandler.Root)

	api := s.app.Group("/api")
	api.Get("/health", s.healthHandler.Health)

	// Probe
	api.Get("/probe/analyze", s.probeHandler.Analyze)

	// Geo
	api.Get("/geocode/search", s.geocodeHandler.Search)
	api.Get("/geocode/places", s.geocodeHandler.Places)

	// Datasets
	data := api.Group("/data")
	data.Get("/air-quality", s.dataHandler.AirQuality)
	data.Get("/water-quality", s.dataHandler.WaterQuality)
	data.Get("/traffic", s.dataHandler.Traffic)
	data.Get("/aqi-india", s.dataHandler.IndiaAQI)
	data.Get("/chennai/reservoirs", s.dataHandler.Reservoirs)

	// Analytics
	api.Get("/analytics/summary", s.analyticsHandler.Summary)
}

// App - доступ к fiber.App (используется в тестах)
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

// customErrorHandler - ошибки fiber в формате AppError
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var appErr *errors.AppError
		if stderrors.As(err, &appErr) {
			return utils.SendError(c, appErr)
		}

		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if stderrors.As(err, &fe) {
			code = fe.Code
		}

		if code >= fiber.StatusInternalServerError {
			logger.Error("HTTP Error",
				zap.String("path", c.Path()),
				zap.Int("status", code),
				zap.Error(err),
			)
		}

		errorCode := "INTERNAL_SERVER_ERROR"
		switch code {
		case fiber.StatusNotFound:
			errorCode = "NOT_FOUND"
		case fiber.StatusMethodNotAllowed:
			errorCode = "METHOD_NOT_ALLOWED"
		}

		return c.Status(code).JSON(utils.ErrorResponse{
			Error: errors.New(errorCode, err.Error(), code),
		})
	}
}
