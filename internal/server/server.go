package server

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/quotientlabs/contfrac/internal/config"
	httpapi "github.com/quotientlabs/contfrac/internal/http"
	"github.com/quotientlabs/contfrac/internal/logging"
	"github.com/quotientlabs/contfrac/internal/middleware"
	"github.com/quotientlabs/contfrac/internal/monitoring"
	contfracProvider "github.com/quotientlabs/contfrac/internal/providers/contfrac"
	"github.com/quotientlabs/contfrac/internal/service"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router   *gin.Engine
	registry *service.Registry
	logger   *logging.Logger
	config   *config.Config
	metrics  *monitoring.Metrics
}

// New creates a new server instance
func New(cfg *config.Config) (*Server, error) {
	var logger *logging.Logger
	if cfg.Logging.Development {
		logger = logging.NewDevelopment()
	} else {
		logger = logging.NewDefault()
	}

	logger.Info("Initializing contfrac server",
		zap.String("port", cfg.Server.Port),
		zap.Int("max_terms", cfg.Limits.MaxTerms),
		zap.Int("max_grade", cfg.Limits.MaxGrade),
	)

	metrics := monitoring.NewMetrics()

	registry := service.NewRegistry()
	provider := contfracProvider.NewProvider(contfracProvider.Limits{
		MaxTerms: cfg.Limits.MaxTerms,
		MaxGrade: cfg.Limits.MaxGrade,
	})
	if err := registry.Register(provider); err != nil {
		return nil, err
	}
	logger.Info("Registered provider", zap.String("service", provider.Definition().ID))

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	handlers := httpapi.NewHandlers(registry, logger, metrics)

	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)
	router.GET("/services", handlers.ListServices)
	router.POST("/services/execute", handlers.ExecuteService)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	logger.Info("Server initialized successfully")

	return &Server{
		router:   router,
		registry: registry,
		logger:   logger,
		config:   cfg,
		metrics:  metrics,
	}, nil
}

// Run starts the HTTP server
func (s *Server) Run() error {
	addr := s.config.Server.Host + ":" + s.config.Server.Port
	s.logger.Info("Starting HTTP server", zap.String("addr", addr))
	return s.router.Run(addr)
}

// Close gracefully shuts down the server
func (s *Server) Close() error {
	s.logger.Info("Shutting down server...")
	s.logger.Sync()
	return nil
}
