// Package server runs the HTTP listener with graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// ErrMissingAddress is returned when the server address is not provided.
var ErrMissingAddress = errors.New("server address is required")

// Server wraps http.Server with context-driven graceful shutdown.
type Server struct {
	cfg Config
}

// NewFromConfig creates a Server from configuration.
func NewFromConfig(cfg Config) (*Server, error) {
	if cfg.Addr == "" {
		return nil, ErrMissingAddress
	}
	return &Server{cfg: cfg}, nil
}

// Run returns a function suitable for errgroup.Go that serves the handler
// until the context is cancelled, then shuts down within the configured
// timeout.
func (s *Server) Run(ctx context.Context, h http.Handler) func() error {
	return func() error {
		srv := &http.Server{
			Addr:           s.cfg.Addr,
			Handler:        h,
			ReadTimeout:    s.cfg.ReadTimeout,
			WriteTimeout:   s.cfg.WriteTimeout,
			IdleTimeout:    s.cfg.IdleTimeout,
			MaxHeaderBytes: s.cfg.MaxHeaderBytes,
		}

		errCh := make(chan error, 1)
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			if err != nil {
				return fmt.Errorf("serve %s: %w", s.cfg.Addr, err)
			}
			return nil
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}
