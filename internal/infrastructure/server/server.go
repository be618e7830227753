package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/rpncalc/internal/api/middleware"
	"github.com/GriffinCanCode/rpncalc/internal/infrastructure/config"
	"github.com/GriffinCanCode/rpncalc/internal/infrastructure/monitoring"
)

const shutdownTimeout = 5 * time.Second

// MetricsServer exposes /metrics and /healthz next to the interactive shell
type MetricsServer struct {
	router   *gin.Engine
	http     *http.Server
	listener net.Listener
	metrics  *monitoring.Metrics
	logger   *zap.Logger
}

// NewMetricsServer builds the router. Nothing listens until Start.
func NewMetricsServer(cfg config.MetricsConfig, metrics *monitoring.Metrics, logger *zap.Logger, development bool) *MetricsServer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if !development {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(monitoring.Middleware(metrics))
	if len(cfg.CORSOrigins) > 0 {
		router.Use(middleware.CORS(middleware.ReadOnlyCORSConfig(cfg.CORSOrigins)))
	}
	limit := middleware.RateLimitConfig{RequestsPerSecond: cfg.RateLimit, Burst: cfg.Burst}
	if limit.Enabled() {
		logger.Debug("Rate limiting enabled",
			zap.Int("rps", limit.RequestsPerSecond),
			zap.Int("burst", limit.Burst))
		router.Use(middleware.RateLimit(limit))
	}

	s := &MetricsServer{
		router:  router,
		metrics: metrics,
		logger:  logger,
		http: &http.Server{
			Addr:              cfg.Addr,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}

	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	router.GET("/healthz", s.health)

	return s
}

// Handler returns the router, mainly for tests
func (s *MetricsServer) Handler() http.Handler {
	return s.router
}

// Addr returns the bound address once Start has succeeded
func (s *MetricsServer) Addr() string {
	if s.listener == nil {
		return s.http.Addr
	}
	return s.listener.Addr().String()
}

// Start binds the listener and serves in a background goroutine. Bind
// errors are returned immediately.
func (s *MetricsServer) Start() error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.http.Addr, err)
	}
	s.listener = ln

	s.logger.Info("Starting metrics server", zap.String("addr", ln.Addr().String()))
	go func() {
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Metrics server stopped", zap.Error(err))
		}
	}()
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones
func (s *MetricsServer) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	s.logger.Info("Shutting down metrics server...")
	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down metrics server: %w", err)
	}
	return nil
}

func (s *MetricsServer) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"metrics": s.metrics.Snapshot(),
	})
}
