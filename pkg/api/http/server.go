package http

import (
	"context"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/nsm-dev/webdemo/internal/application/message"
	"github.com/nsm-dev/webdemo/pkg/ports"
)

// Server represents the HTTP API server
type Server struct {
	router    *gin.Engine
	server    *http.Server
	processor *message.Processor
	store     ports.MessageStore
	logger    *zap.Logger

	projectName string
	domain      string
	version     string
	nsmEnabled  bool
	staticDir   string
}

// Config holds HTTP server configuration
type Config struct {
	Addr        string
	ProjectName string
	Domain      string
	Version     string
	NSMEnabled  bool
	StaticDir   string
	Processor   *message.Processor
	Store       ports.MessageStore
	Metrics     ports.MetricsCollector
	Logger      *zap.Logger
}

// NewServer creates a new HTTP server
func NewServer(cfg *Config) *Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.SetHTMLTemplate(template.Must(template.New("home").Parse(homePage)))

	s := &Server{
		router:      router,
		processor:   cfg.Processor,
		store:       cfg.Store,
		logger:      cfg.Logger,
		projectName: cfg.ProjectName,
		domain:      cfg.Domain,
		version:     cfg.Version,
		nsmEnabled:  cfg.NSMEnabled,
		staticDir:   cfg.StaticDir,
	}

	router.Use(gin.CustomRecovery(s.handlePanic))
	router.Use(requestIDMiddleware())
	router.Use(requestLogger(cfg.Logger))
	router.Use(secureHeaders())
	router.Use(corsMiddleware())
	if cfg.Metrics != nil {
		router.Use(metricsMiddleware(cfg.Metrics))
	}

	s.setupRoutes()

	s.server = &http.Server{
		Addr:    cfg.Addr,
		Handler: router,
	}

	return s
}

// setupRoutes configures API routes
func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleHome)

	// Metrics
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := s.router.Group("/api")
	{
		api.GET("/info", s.handleInfo)
		api.GET("/health", s.handleHealth)
		api.POST("/message", s.handleProcessMessage)
		api.GET("/messages", s.handleRecentMessages)
	}

	if s.staticDir != "" {
		s.router.Static("/static", s.staticDir)
	}

	s.router.NoRoute(s.handleNotFound)
}

// SetupWebSocket adds the WebSocket message stream to the server
func (s *Server) SetupWebSocket(handler interface{}) {
	if wsHandler, ok := handler.(interface {
		HandleMessageStream(*gin.Context)
	}); ok {
		s.router.GET("/api/messages/ws", wsHandler.HandleMessageStream)
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	s.logger.Info("HTTP server shut down complete")
	return nil
}

// requestLogger is a middleware for request logging
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		duration := time.Since(start)

		logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", duration),
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.String("client_ip", c.ClientIP()))
	}
}
