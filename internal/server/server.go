package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzhttp"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/calcunits/internal/config"
	handlers "github.com/GriffinCanCode/calcunits/internal/http"
	"github.com/GriffinCanCode/calcunits/internal/logging"
	"github.com/GriffinCanCode/calcunits/internal/middleware"
	"github.com/GriffinCanCode/calcunits/internal/monitoring"
	mathprovider "github.com/GriffinCanCode/calcunits/internal/providers/math"
	"github.com/GriffinCanCode/calcunits/internal/service"
	"github.com/GriffinCanCode/calcunits/internal/types"
	"github.com/GriffinCanCode/calcunits/internal/utils"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	cfg        *config.Config
	logger     *logging.Logger
	router     *gin.Engine
	handler    http.Handler
	registry   *service.Registry
	metrics    *monitoring.Metrics
	httpServer *http.Server
}

// NewServer creates a new server instance. A nil logger discards output.
func NewServer(cfg *config.Config, logger *logging.Logger) (*Server, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	if cfg.Logging.Development {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	registry := service.NewRegistry()
	if err := registerProviders(registry, logger); err != nil {
		return nil, err
	}

	var metrics *monitoring.Metrics
	if cfg.Metrics.Enabled {
		metrics = monitoring.NewMetrics()
	}

	s := &Server{
		cfg:      cfg,
		logger:   logger,
		registry: registry,
		metrics:  metrics,
	}
	router, err := s.setupRouter()
	if err != nil {
		return nil, err
	}
	s.router = router

	s.handler = s.router
	if cfg.Compression.Enabled {
		s.handler = gzhttp.GzipHandler(s.router)
	}

	s.httpServer = &http.Server{
		Addr:              cfg.Addr(),
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s, nil
}

func (s *Server) setupRouter() (*gin.Engine, error) {
	corsHandler, err := middleware.CORS(middleware.CORSFromOrigins(s.cfg.CORS.AllowOrigins))
	if err != nil {
		return nil, err
	}

	router := gin.New()

	// Middleware order: recovery, request ID, logging, metrics, CORS, rate limit, body limit
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		s.logger.Error("panic recovered",
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.Any("panic", recovered))
		msg := "internal server error"
		c.AbortWithStatusJSON(http.StatusInternalServerError, types.Result{Success: false, Error: &msg})
	}))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(s.logger.Component("http")))
	if s.metrics != nil {
		router.Use(monitoring.Middleware(s.metrics))
	}
	router.Use(corsHandler)
	if s.cfg.RateLimit.Enabled {
		rl := middleware.RateLimitConfig{
			RequestsPerSecond: s.cfg.RateLimit.RequestsPerSecond,
			Burst:             s.cfg.RateLimit.Burst,
			IdleTTL:           middleware.DefaultRateLimitConfig().IdleTTL,
		}
		if s.cfg.RateLimit.Global {
			router.Use(middleware.GlobalRateLimit(rl))
		} else {
			router.Use(middleware.RateLimit(rl))
		}
	}
	router.Use(middleware.BodyLimit(utils.MaxJSONSize))

	h := handlers.NewHandlers(s.registry, s.metrics, s.logger.Component("handlers"))

	router.GET("/", h.Root)
	router.GET("/health", h.Health)

	// Service management
	router.GET("/services", h.ListServices)
	router.POST("/services/discover", h.DiscoverServices)
	router.POST("/services/execute", h.ExecuteService)

	// Conversion shortcuts
	router.GET("/convert", h.Convert)
	router.GET("/units", h.Units)

	if s.metrics != nil {
		router.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}

	return router, nil
}

// Handler returns the root handler, compressed when enabled
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Registry exposes the service registry
func (s *Server) Registry() *service.Registry {
	return s.registry
}

// Run starts the server and blocks until it stops. A clean Shutdown
// returns nil.
func (s *Server) Run() error {
	s.logger.Info("starting server", zap.String("addr", s.httpServer.Addr))
	err := s.httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Serve runs the server on an existing listener
func (s *Server) Serve(ln net.Listener) error {
	s.logger.Info("starting server", zap.String("addr", ln.Addr().String()))
	err := s.httpServer.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown stops accepting connections and waits for in-flight requests
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down server")
	return s.httpServer.Shutdown(ctx)
}

func registerProviders(registry *service.Registry, logger *logging.Logger) error {
	if err := registry.Register(mathprovider.NewProvider()); err != nil {
		return err
	}

	stats := registry.Stats()
	logger.Info("registered services",
		zap.Any("total_services", stats["total_services"]),
		zap.Any("total_tools", stats["total_tools"]))
	return nil
}
