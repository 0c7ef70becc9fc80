package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"welcome-app/utils"

	"go.uber.org/zap"
)

// Server owns the HTTP listener lifecycle: bind, serve, and graceful shutdown.
type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
	logger          *zap.Logger
}

// NewServer builds a server for handler on the configured port.
// A nil logger falls back to utils.Logger.
func NewServer(config *utils.Config, handler http.Handler, logger *zap.Logger) *Server {
	if logger == nil {
		logger = utils.Logger
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              config.Addr(),
			Handler:           handler,
			ReadHeaderTimeout: time.Second * time.Duration(config.ReadHeaderTimeout),
		},
		shutdownTimeout: time.Second * time.Duration(config.ShutdownTimeout),
		logger:          logger,
	}
}

// Addr returns the address the server binds to.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Listen binds the TCP listener. There is no retry: a busy port, missing
// permission or an invalid port all come back as an error.
func (s *Server) Listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return nil, fmt.Errorf("bind %s: %w", s.httpServer.Addr, err)
	}
	return ln, nil
}

// Run binds the listener and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := s.Listen()
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then drains in-flight
// requests for up to the shutdown timeout. It returns nil after a clean shutdown.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	port := 0
	if addr, ok := ln.Addr().(*net.TCPAddr); ok {
		port = addr.Port
	}
	s.logger.Info("server is running", zap.Int("port", port))

	shutdownErr := make(chan error, 1)
	stopped := make(chan struct{})
	defer close(stopped)

	go func() {
		select {
		case <-ctx.Done():
		case <-stopped:
			// Serve failed on its own, nothing to shut down
			shutdownErr <- nil
			return
		}

		s.logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		shutdownErr <- s.httpServer.Shutdown(shutdownCtx)
	}()

	if err := s.httpServer.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}

	if err := <-shutdownErr; err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	s.logger.Info("server stopped")
	return nil
}
