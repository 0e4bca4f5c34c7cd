package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/notewise/notewise/engine/executor"
	"github.com/notewise/notewise/engine/infra/server/router"
	"github.com/notewise/notewise/engine/infra/server/routes"
	"github.com/notewise/notewise/pkg/config"
	"github.com/notewise/notewise/pkg/logger"
)

// Server wraps the gin engine and the http.Server lifecycle.
type Server struct {
	cfg        *config.Config
	httpServer *http.Server
}

// NewRouter builds the gin engine with all middleware and routes
// registered. Exposed separately so tests can drive it with httptest.
func NewRouter(cfg *config.Config, exec *executor.Executor, log logger.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(
		RequestIDMiddleware(),
		LoggerMiddleware(log),
		RecoveryMiddleware(),
		CORSMiddleware(cfg.Server.CORS),
	)
	engine.GET(routes.Root(), createInfoHandler(cfg))
	engine.GET(routes.Health(), createHealthHandler(cfg))
	engine.POST(routes.Assist(), createAssistHandler(cfg, exec))
	engine.NoRoute(func(c *gin.Context) {
		router.RespondError(c, http.StatusNotFound, "route not found", "")
	})
	return engine
}

// New creates a Server ready to run.
func New(cfg *config.Config, exec *executor.Executor, log logger.Logger) *Server {
	engine := NewRouter(cfg, exec, log)
	return &Server{
		cfg: cfg,
		httpServer: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
			Handler:      engine,
			ReadTimeout:  cfg.Server.Timeout,
			WriteTimeout: cfg.Server.Timeout,
		},
	}
}

// Run serves until the context is canceled, then shuts down gracefully
// within the configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)
	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}
	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}
