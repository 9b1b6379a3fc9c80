// Package httpapi is the HTTP serving surface: a gin server exposing the
// classification, URL analysis, model info, health and metrics endpoints.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	ListenAddress string
	ReadTimeout   time.Duration
	WriteTimeout  time.Duration
	IdleTimeout   time.Duration
	Debug         bool
	AllowOrigins  []string
}

// Server wraps the gin engine and the underlying http.Server
type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
}

// NewServer builds the router and configures the HTTP server
func NewServer(handler *Handler, cfg ServerConfig, logger *zap.Logger) *Server {
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowOrigins) == 1 && cfg.AllowOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AllowOrigins
	}
	corsConfig.AllowCredentials = !corsConfig.AllowAllOrigins
	router.Use(cors.New(corsConfig))

	SetupRoutes(router, handler)

	return &Server{
		httpServer: &http.Server{
			Addr:         cfg.ListenAddress,
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
		logger: logger,
	}
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, handler *Handler) {
	router.GET("/health", handler.HealthCheck)
	router.POST("/classify", handler.Classify)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.POST("/classify", handler.Classify)
		v1.GET("/model/info", handler.ModelInfo)
		v1.POST("/urls/analyze", handler.AnalyzeURL)
	}
}

// Start begins serving in a background goroutine
func (s *Server) Start() error {
	go func() {
		s.logger.Info("HTTP server listening", zap.String("address", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("HTTP server failed", zap.Error(err))
		}
	}()
	return nil
}

// Stop gracefully shuts the server down
func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
