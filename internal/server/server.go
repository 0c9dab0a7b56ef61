// Package server provides HTTP server setup and configuration.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/sebasr/greeting-service/internal/config"
	"github.com/sebasr/greeting-service/internal/handlers"
	"github.com/sebasr/greeting-service/internal/middleware"
	"github.com/sebasr/greeting-service/internal/repository"
)

// HealthPath is the health check route
const HealthPath = "/health"

// RequestIDMiddleware adds a unique request ID to each request
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Check if request ID already exists in header
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			// Generate new UUID for request ID
			requestID = uuid.New().String()
		}

		// Set request ID in context and response header
		c.Set(middleware.RequestIDKey, requestID)
		c.Header("X-Request-ID", requestID)

		c.Next()
	}
}

// Dependencies holds all dependencies needed to create a server
type Dependencies struct {
	Config       *config.Config
	Logger       zerolog.Logger
	GreetingRepo repository.GreetingRepository

	// Registry receives the request metrics. A fresh registry is used when nil.
	Registry *prometheus.Registry
}

// New creates a new Gin router with all routes configured
func New(deps *Dependencies) *gin.Engine {
	cfg := deps.Config

	// Set Gin to release mode to disable ANSI colors in logs
	gin.SetMode(gin.ReleaseMode)

	// Use gin.New() instead of gin.Default() to have explicit control over middleware
	router := gin.New()

	// Encoded slashes in /hello/:name stay inside the segment
	router.UseRawPath = true

	// Rate limiting keys on ClientIP, so forwarding headers count only from trusted proxies
	if err := router.SetTrustedProxies(cfg.Server.TrustedProxies); err != nil {
		deps.Logger.Error().Err(err).Msg("invalid trusted proxies, trusting none")
		_ = router.SetTrustedProxies(nil)
	}

	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Encoding", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(RequestIDMiddleware())
	router.Use(middleware.NewRequestLogger(deps.Logger, HealthPath, cfg.Metrics.Path))

	if cfg.Metrics.Enabled {
		registry := deps.Registry
		if registry == nil {
			registry = prometheus.NewRegistry()
		}
		metrics := middleware.NewMetrics(registry)
		router.Use(metrics.Middleware())
		router.GET(cfg.Metrics.Path, gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	}

	router.GET(HealthPath, handlers.NewHealthHandler(cfg.Server.Version))

	// Greeting routes are rate limited and compressed; health and metrics are not
	greetings := router.Group("")
	greetings.Use(middleware.NewRateLimitMiddleware(cfg.RateLimit.Requests, cfg.RateLimit.Period))
	greetings.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithDecompressFn(gzip.DefaultDecompressHandle)))
	greetings.Use(middleware.NewBodyLimitMiddleware(cfg.Server.MaxBodyBytes))
	Register(greetings, handlers.NewHelloHandler(deps.GreetingRepo))

	return router
}

// Register adds every route published by provider to group
func Register(group gin.IRoutes, provider handlers.RouteProvider) {
	for _, route := range provider.Routes() {
		group.Handle(route.Method, route.Path, route.Handler)
	}
}

// Run serves handler on addr until ctx is cancelled, then shuts down gracefully
// within shutdownTimeout.
func Run(ctx context.Context, logger zerolog.Logger, handler http.Handler, cfg config.ServerConfig) error {
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return <-errCh
}
