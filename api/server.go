package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/krau/assetlist/lister"
)

// NewHandler returns the API routes wrapped with request logging.
func NewHandler(logger *log.Logger, l *lister.Lister) http.Handler {
	mux := http.NewServeMux()
	registerRoutes(mux, l)
	return loggingMiddleware(logger)(mux)
}

// Serve runs the API server on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string, l *lister.Lister) error {
	logger := log.FromContext(ctx).WithPrefix("api")

	server := &http.Server{
		Addr:         addr,
		Handler:      NewHandler(logger, l),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		logger.Infof("Starting API server on %s, serving %s", addr, l.Dir())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Failed to shutdown API server: %v", err)
		return err
	}
	logger.Info("API server stopped")
	return nil
}

func registerRoutes(mux *http.ServeMux, l *lister.Lister) {
	mux.HandleFunc("GET /health", handleHealth)
	mux.HandleFunc("GET /api/v1/assets", handleListAssets(l))
}
