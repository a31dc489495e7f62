// Package api provides the HTTP server for the maritime records service.
// It uses the Echo framework to serve the REST endpoints, the server-rendered
// web UI, Swagger documentation and Prometheus metrics.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	_ "evalgo.org/maritime/docs" // Register swagger spec
	"evalgo.org/maritime/internal/config"
	"evalgo.org/maritime/internal/logging"
	"evalgo.org/maritime/internal/storage"
	"evalgo.org/maritime/internal/validation"
	"evalgo.org/maritime/internal/version"
	"evalgo.org/maritime/internal/web"
)

// Server represents the maritime HTTP server.
type Server struct {
	echo      *echo.Echo
	storage   *storage.Storage
	config    *config.Config
	log       *logging.Logger
	validator *validation.Validator
	metrics   *Metrics
	now       func() time.Time
}

// New creates a new API server instance.
func New(cfg *config.Config, store *storage.Storage, log *logging.Logger) *Server {
	if log == nil {
		log = logging.NewNop()
	}

	e := echo.New()

	e.HideBanner = true
	e.HidePort = true
	e.Debug = cfg.Server.Debug
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	server := &Server{
		echo:      e,
		storage:   store,
		config:    cfg,
		log:       log,
		validator: validation.New(),
		now:       time.Now,
	}
	if cfg.Metrics.Enabled {
		server.metrics = NewMetrics(store)
	}

	server.setupMiddleware()
	server.setupRoutes()

	return server
}

// setupMiddleware configures Echo middleware.
func (s *Server) setupMiddleware() {
	s.echo.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	s.echo.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			kv := []interface{}{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency.String(),
				"request_id", v.RequestID,
				"remote_ip", v.RemoteIP,
			}
			if v.Error != nil {
				kv = append(kv, "error", v.Error.Error())
			}
			s.log.Info("request", kv...)
			return nil
		},
	}))

	s.echo.Use(middleware.Recover())

	if s.metrics != nil {
		s.echo.Use(s.metrics.Middleware)
	}

	s.echo.Use(SecurityHeaders)

	if len(s.config.Security.AllowedOrigins) > 0 {
		s.echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins:  s.config.Security.AllowedOrigins,
			AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
			AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
			ExposeHeaders: []string{echo.HeaderLocation},
		}))
	}

	if s.config.Security.RateLimit > 0 {
		s.echo.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(
			rate.Limit(s.config.Security.RateLimit),
		)))
	}
}

// setupRoutes configures API and web routes.
func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.healthCheck)

	s.echo.GET("/docs/*", echoSwagger.WrapHandler)

	if s.metrics != nil {
		s.echo.GET(s.config.Metrics.Path, s.metrics.Handler())
	}

	api := s.echo.Group("/api")
	api.Use(ValidateContentType)
	api.Use(ValidateAcceptHeader)

	ships := api.Group("/ships")
	ships.GET("", s.listShips)
	ships.GET("/:id", s.getShip, ValidateIDFormat)
	ships.POST("", s.createShip)
	ships.PUT("/:id", s.updateShip, ValidateIDFormat)
	ships.DELETE("/:id", s.deleteShip, ValidateIDFormat)

	ports := api.Group("/ports")
	ports.GET("", s.listPorts)
	ports.GET("/:id", s.getPort, ValidateIDFormat)
	ports.GET("/:id/voyages", s.listPortVoyages, ValidateIDFormat)
	ports.POST("", s.createPort)
	ports.PUT("/:id", s.updatePort, ValidateIDFormat)
	ports.DELETE("/:id", s.deletePort, ValidateIDFormat)

	voyages := api.Group("/voyages")
	voyages.GET("", s.listVoyages)
	voyages.GET("/:id", s.getVoyage, ValidateIDFormat)
	voyages.POST("", s.createVoyage)
	voyages.PUT("/:id", s.updateVoyage, ValidateIDFormat)
	voyages.DELETE("/:id", s.deleteVoyage, ValidateIDFormat)

	api.GET("/countryvisits/lastyear", s.getCountriesVisited)
	api.GET("/dashboard", s.getDashboard)
	api.GET("/stats", s.getStatistics)
	api.POST("/validate/:type", s.validateRecord)
	api.RouteNotFound("/*", func(c echo.Context) error {
		return echo.ErrNotFound
	})

	web.NewHandler(s.storage, s.validator, s.log, s.now).Register(s.echo)
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)

	s.log.Info("starting maritime server",
		"address", addr,
		"driver", s.config.Database.Driver,
		"debug", s.config.Server.Debug,
		"version", version.Version,
	)

	s.echo.Server.ReadTimeout = s.config.Server.ReadTimeout
	s.echo.Server.WriteTimeout = s.config.Server.WriteTimeout

	if s.config.Server.TLSEnabled {
		return s.echo.StartTLS(addr, s.config.Server.TLSCert, s.config.Server.TLSKey)
	}

	return s.echo.Start(addr)
}

// Shutdown gracefully shuts down the server and closes the store.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("shutting down maritime server")

	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}

	if err := s.storage.Close(); err != nil {
		return fmt.Errorf("error closing storage: %w", err)
	}

	s.log.Info("server shutdown complete")
	return nil
}

// healthCheck handles GET /health
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse "Service healthy"
// @Failure 503 {object} HealthResponse "Database unreachable"
// @Router /health [get]
func (s *Server) healthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	if err := s.storage.Ping(ctx); err != nil {
		return c.JSON(http.StatusServiceUnavailable, HealthResponse{
			Status:  "unhealthy",
			Service: "maritime",
			Version: version.Version,
			Error:   "database connection failed",
			Details: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, HealthResponse{
		Status:   "healthy",
		Service:  "maritime",
		Version:  version.Version,
		Database: s.storage.Driver(),
	})
}

// ServeHTTP allows Server to implement http.Handler for testing
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}
