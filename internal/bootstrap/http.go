package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const httpShutdownTimeout = 10 * time.Second

// startHTTPServer starts the HTTP server in a goroutine and returns it.
// Listen errors are reported on errCh.
func (c *ServiceContainer) startHTTPServer(errCh chan<- error) *http.Server {
	server := &http.Server{
		Addr:         c.Config.HTTP.Addr,
		Handler:      c.Router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		c.Logger.Info("http server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	c.httpServer = server
	return server
}

// shutdownHTTPServer gracefully shuts down the HTTP server, letting in-flight
// requests drain.
func (c *ServiceContainer) shutdownHTTPServer(logger *slog.Logger) {
	if c.httpServer == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), httpShutdownTimeout)
	defer cancel()

	if err := c.httpServer.Shutdown(ctx); err != nil {
		logger.Error("http server shutdown", "error", err)
		return
	}
	logger.Info("http server stopped")
}
