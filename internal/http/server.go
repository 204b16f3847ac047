// Package http provides the HTTP API server, its middleware and the metrics server.
package http

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	cipherDomain "github.com/allisson/ciphers/internal/cipher/domain"
	cipherHTTP "github.com/allisson/ciphers/internal/cipher/http"
	"github.com/allisson/ciphers/internal/config"
	"github.com/allisson/ciphers/internal/metrics"
)

// multipartOverhead leaves room for form fields, JSON framing and key material.
const multipartOverhead = 64 * 1024

// transformBodyLimit bounds a transform request body. It fits the largest payload
// any cipher accepts for decryption plus a pad of maxPayload bytes, both
// base64-encoded as in JSON requests.
func transformBodyLimit(maxPayload int) int64 {
	payload := cipherDomain.MaxCiphertextSize(cipherDomain.Playfair, cipherDomain.Binary, cipherDomain.KeyMaterial{}, maxPayload)
	encoded := base64.StdEncoding.EncodedLen(payload) + base64.StdEncoding.EncodedLen(maxPayload)
	return int64(encoded) + multipartOverhead
}

// Server represents the HTTP API server.
type Server struct {
	server       *http.Server
	router       *gin.Engine
	logger       *slog.Logger
	shuttingDown atomic.Bool
}

// NewServer creates a new HTTP server. Call SetupRouter before Start.
func NewServer(
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	return &Server{
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// SetupRouter builds the gin engine: health probes, the cipher catalogue and the
// transform endpoints. ctx bounds background work started by middleware, such as
// the rate limiter janitor. metricsProvider may be nil when metrics are disabled.
func (s *Server) SetupRouter(
	ctx context.Context,
	cfg *config.Config,
	cipherHandler *cipherHTTP.CipherHandler,
	metricsProvider *metrics.Provider,
) {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")
	ciphers := v1.Group("/ciphers")
	ciphers.GET("", cipherHandler.ListHandler)

	transforms := ciphers.Group("/:cipher/:direction")
	transforms.Use(BodyLimitMiddleware(transformBodyLimit(cfg.MaxPayloadBytes)))
	if cfg.RateLimitEnabled {
		transforms.Use(RateLimitMiddleware(ctx, cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger))
	}
	transforms.POST("", cipherHandler.TransformHandler)
	transforms.POST("/file", cipherHandler.FileHandler)

	s.router = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start serves requests until Shutdown is called.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return fmt.Errorf("router is not configured")
	}
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown marks the server as not ready and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	s.shuttingDown.Store(true)
	return s.server.Shutdown(ctx)
}

// healthHandler reports process liveness.
// GET /health
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server accepts new work.
// GET /ready
func (s *Server) readinessHandler(c *gin.Context) {
	if s.shuttingDown.Load() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"server": "shutting_down"},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": gin.H{"server": "ok"},
	})
}
