// Package server assembles the gin engine for the character API and runs it
package server

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
	v1 "github.com/KirkDiggler/rpg-charsheet/internal/handlers/api/v1"
	"github.com/KirkDiggler/rpg-charsheet/internal/metrics"
	"github.com/KirkDiggler/rpg-charsheet/internal/services/character"
)

// Config holds the dependencies and settings of the HTTP server
type Config struct {
	CharacterService character.Service
	// Port to listen on (optional, defaults to 8080)
	Port int
	// CORSOrigins allowed to call the API; empty allows any origin
	CORSOrigins []string
	// ShutdownTimeout bounds graceful shutdown (optional, defaults to 10 seconds)
	ShutdownTimeout time.Duration
	// Registry for metrics (optional, defaults to a fresh registry)
	Registry *prometheus.Registry
	// Logger (optional, defaults to a no-op logger)
	Logger *zap.Logger
}

// Validate ensures required dependencies are present and sets defaults
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.CharacterService == nil {
		vb.RequiredField("CharacterService")
	}
	errors.ValidateRange("Port", c.Port, 0, 65535, vb)
	if err := vb.Build(); err != nil {
		return err
	}

	if c.Port == 0 {
		c.Port = 8080
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = 10 * time.Second
	}
	if c.Registry == nil {
		c.Registry = prometheus.NewRegistry()
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return nil
}

// Server serves the character API, /health and /metrics
type Server struct {
	engine          *gin.Engine
	port            int
	shutdownTimeout time.Duration
	logger          *zap.SugaredLogger
}

// New builds the gin engine with middleware and routes
func New(cfg *Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	logger := cfg.Logger.Named("http")
	sugar := logger.Sugar()

	handler, err := v1.NewHandler(&v1.HandlerConfig{
		CharacterService: cfg.CharacterService,
		Logger:           logger,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create character handler")
	}

	httpMetrics := metrics.NewHTTP(cfg.Registry)

	engine := gin.New()
	engine.Use(
		recovery(sugar),
		requestLogger(sugar),
		metricsMiddleware(httpMetrics),
		corsMiddleware(cfg.CORSOrigins),
	)

	engine.GET("/health", health)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(cfg.Registry, promhttp.HandlerOpts{})))
	handler.RegisterRoutes(engine)

	return &Server{
		engine:          engine,
		port:            cfg.Port,
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          sugar,
	}, nil
}

// Handler returns the engine as an http.Handler
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run listens until ctx is canceled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Infow("http server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Infow("shutting down http server")
	case err := <-errChan:
		return errors.WrapWithCode(err, errors.CodeUnavailable, "http server failed")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "server forced to shutdown")
	}

	s.logger.Infow("http server stopped")
	return nil
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
