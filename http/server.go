package http

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"sync"
	"time"
)

// Config is the read-only view of the server options a connection
// carries around. It is copied per connection and never mutated.
type Config struct {
	// Directory roots the file routes. Empty disables their success
	// path.
	Directory string
}

type Server struct {
	Name        string
	Router      Router
	Config      Config
	ReadTimeout time.Duration
	Workers     int

	mu       sync.Mutex
	listener net.Listener
}

func NewServer(name string) *Server {
	return &Server{
		Name:        name,
		Router:      NewRouter(),
		ReadTimeout: DefaultReadTimeout,
		Workers:     DefaultWorkerCount,
	}
}

func (s *Server) ListenAndServe(addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(listener)
}

// Serve accepts connections and hands each one to the worker pool. It
// only ever blocks on Accept; connection state is the workers'
// business. Serve returns nil once the listener is closed.
func (s *Server) Serve(listener net.Listener) error {
	s.mu.Lock()
	s.listener = listener
	s.mu.Unlock()

	pool := NewWorkerPool(s.Workers)
	defer pool.Close()

	for {
		stream, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			slog.Error("accepting connection", "server", s.Name, "error", err)
			continue
		}
		pool.Submit(newConn(stream, &s.Router, s.Config, s.ReadTimeout))
	}
}

// Shutdown stops accepting new connections. Connections already handed
// to the pool finish on their own; the per connection read timeout is
// the only bound on a stuck one.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	listener := s.listener
	s.listener = nil
	s.mu.Unlock()

	if listener == nil {
		return nil
	}
	return listener.Close()
}
