package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"MoodFM/catalog"
	"MoodFM/config"
	"MoodFM/core/recommend"
	"MoodFM/logger"
)

// Server bundles the HTTP server with the catalog it serves.
type Server struct {
	cfg        *config.Config
	catalog    *catalog.Catalog
	handler    http.Handler
	httpServer *http.Server
}

// New builds a Server over cat. A nil shuffler uses the default random one.
func New(cfg *config.Config, cat *catalog.Catalog, shuffler recommend.Shuffler) *Server {
	var metrics *Metrics
	if cfg.MetricsEnabled {
		metrics = NewMetrics()
	}

	apiHandler := NewAPIHandler(cat, recommend.NewRecommender(cat, shuffler), metrics)
	handler := NewRouter(apiHandler, metrics)

	return &Server{
		cfg:     cfg,
		catalog: cat,
		handler: handler,
		httpServer: &http.Server{
			Addr:         cfg.Addr(),
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
	}
}

// Handler exposes the fully wrapped router.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run listens on the configured address and serves until ctx is done,
// then shuts down gracefully within cfg.ShutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}

	logger.Info("Mood-Based Music Recommender API running",
		logger.String("addr", ln.Addr().String()),
		logger.String("catalog", s.catalog.String()),
		logger.Bool("metrics", s.cfg.MetricsEnabled))

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	logger.Info("Server stopped")
	return nil
}

// Start loads the catalog named by cfg and serves until SIGINT or SIGTERM.
func Start(cfg *config.Config) error {
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return New(cfg, cat, nil).Run(ctx)
}
