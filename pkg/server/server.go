// Package server runs the HTTP listener until it is told to stop.
package server

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"time"
)

const (
	defaultReadHeaderTimeout = 10 * time.Second
	defaultShutdownTimeout   = 10 * time.Second
)

type Server struct {
	http            *http.Server
	ShutdownTimeout time.Duration
	// OnShutdown runs once ctx is done, while the listener still accepts connections.
	OnShutdown func()
}

func New(handler http.Handler) *Server {
	return &Server{
		http: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: defaultReadHeaderTimeout,
		},
		ShutdownTimeout: defaultShutdownTimeout,
	}
}

// Serve accepts connections on ln until ctx is done, then stops accepting and waits
// for requests in flight, including the one that asked to stop.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.http.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Println("Shutting down server...")
	if s.OnShutdown != nil {
		s.OnShutdown()
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.ShutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	log.Println("Server stopped")
	return nil
}
