package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/information-sharing-networks/cicd-demo/internal/config"
	"github.com/information-sharing-networks/cicd-demo/internal/health"
	"github.com/information-sharing-networks/cicd-demo/internal/logger"
	"github.com/information-sharing-networks/cicd-demo/internal/server/handlers"
	"github.com/information-sharing-networks/cicd-demo/internal/server/middleware"
	"github.com/information-sharing-networks/cicd-demo/internal/version"
)

type Server struct {
	config *config.ServerEnvironment
	logger *slog.Logger
	router *chi.Mux
	now    func() time.Time
}

// NewServer builds the router from cfg. No socket is bound until Start is called,
// so tests can drive the server in-process through Handler.
func NewServer(
	cfg *config.ServerEnvironment,
	logger *slog.Logger,
) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("server config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server config: %w", err)
	}

	server := &Server{
		config: cfg,
		logger: logger,
		router: chi.NewRouter(),
		now:    time.Now,
	}

	server.setupMiddleware()
	server.registerRoutes()

	return server, nil
}

// Handler returns the http.Handler serving all routes.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupMiddleware() {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(logger.RequestLogging(s.logger))
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.SecurityHeaders(s.config.IsProduction()))
	s.router.Use(middleware.CORS(s.config.AllowedOrigins))
	s.router.Use(middleware.RateLimit(s.config.RateLimitRPS, s.config.RateLimitBurst))
	s.router.Use(middleware.Timeout(s.config.RequestTimeout))
	s.router.Use(middleware.JSONBody(s.config.MaxRequestBodySize))
	s.router.Use(middleware.Static(s.config.PublicDir))

	// HEAD falls back to the GET route when no HEAD route is registered
	s.router.Use(chimiddleware.GetHead)
}

func (s *Server) registerRoutes() {
	v := version.Get()

	s.router.Get("/", handlers.HandleInfo(v.Version, s.config.Environment, func() time.Time { return s.now() }))
	s.router.Get("/version", handlers.HandleVersion(v))
	s.router.Get(handlers.DocsPath, handlers.Handle(handlers.HandleAPIDocs))

	s.router.Mount(handlers.HealthPath, health.NewRouter(s.readinessChecks()...))

	s.router.NotFound(handlers.HandleNotFound)
	s.router.MethodNotAllowed(handlers.HandleNotFound)
}

// readinessChecks only checks the public directory when it exists at startup:
// serving static files is optional, losing the directory afterwards is not.
func (s *Server) readinessChecks() []health.Check {
	var checks []health.Check
	if info, err := os.Stat(s.config.PublicDir); err == nil && info.IsDir() {
		checks = append(checks, health.DirCheck("public_dir", s.config.PublicDir))
	}
	return checks
}

// Start binds HOST:PORT and serves requests until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	serverAddr := net.JoinHostPort(s.config.Host, strconv.Itoa(s.config.Port))

	listener, err := net.Listen("tcp", serverAddr)
	if err != nil {
		return fmt.Errorf("server failed to start: %w", err)
	}

	return s.Serve(ctx, listener)
}

// Serve serves requests on listener until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	httpServer := &http.Server{
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(s.logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)

	go func() {
		port := s.config.Port
		if addr, ok := listener.Addr().(*net.TCPAddr); ok {
			port = addr.Port
		}
		s.logger.Info(fmt.Sprintf("✅ Server is running on port %d", port),
			slog.String("environment", s.config.Environment),
			slog.String("address", listener.Addr().String()))
		s.logger.Info(fmt.Sprintf("🔗 http://localhost:%d", port))

		err := httpServer.Serve(listener)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed: %w", err)
		}
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		s.logger.Info("shutdown signal received")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), s.config.ServerShutdownTimeout)
	defer shutdownCancel()

	s.logger.Info("shutting down HTTP server")

	err := httpServer.Shutdown(shutdownCtx)
	if err != nil {
		s.logger.Warn("HTTP server shutdown error",
			slog.String("error", err.Error()))
		return fmt.Errorf("HTTP server shutdown failed: %w", err)
	}

	s.logger.Info("HTTP server shutdown complete")
	return nil
}
