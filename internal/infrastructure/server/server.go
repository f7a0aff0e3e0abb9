package server

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/atelier/internal/adapter/rest"
	"github.com/eslsoft/atelier/internal/infrastructure/config"
)

// Server wraps the HTTP server around the assembled router.
type Server struct {
	config     *config.Config
	httpServer *http.Server
	logger     *logrus.Logger
}

// NewServer assembles the router and binds it to the configured address.
func NewServer(
	cfg *config.Config,
	logger *logrus.Logger,
	content *rest.ContentHandler,
	assignments *rest.AssignmentHandler,
	users *rest.UserHandler,
) *Server {
	if os.Getenv(gin.EnvGinMode) == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := rest.NewRouter(rest.RouterConfig{
		Content:          content,
		Assignments:      assignments,
		Users:            users,
		CORSAllowOrigins: cfg.CORS.AllowOrigins,
		Middleware:       []gin.HandlerFunc{RequestLogger(logger)},
	})

	return &Server{
		config: cfg,
		logger: logger,
		httpServer: &http.Server{
			Addr:    cfg.Addr(),
			Handler: engine,
		},
	}
}

// Start serves HTTP until shutdown.
func (s *Server) Start() error {
	s.logger.Infof("HTTP server starting on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to serve HTTP: %w", err)
	}
	return nil
}

// Shutdown gracefully drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server...")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Errorf("Failed to shutdown HTTP server: %v", err)
		return err
	}
	s.logger.Info("Server shutdown complete")
	return nil
}
