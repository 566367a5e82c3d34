package http

import (
	"context"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"
)

// Server exposes liveness and readiness of the poll loop.
type Server struct {
	server     *http.Server
	mux        *http.ServeMux
	ready      atomic.Bool
	lastPoll   atomic.Int64
	staleAfter time.Duration
	now        func() time.Time
	log        *slog.Logger
}

// New creates a new HTTP server. The service is ready while it accepts
// traffic and the last successful poll is younger than staleAfter.
func New(addr string, staleAfter time.Duration, log *slog.Logger) *Server {
	mux := http.NewServeMux()
	s := &Server{
		mux: mux,
		server: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		staleAfter: staleAfter,
		now:        time.Now,
		log:        log,
	}
	s.registerHealth()
	return s
}

// SetReady updates whether the service accepts traffic.
func (s *Server) SetReady(ready bool) {
	s.ready.Store(ready)
}

// PollSucceeded records the time of a successful poll.
func (s *Server) PollSucceeded(at time.Time) {
	s.lastPoll.Store(at.UnixNano())
}

// Ready reports the readiness state served on /readyz.
func (s *Server) Ready() bool {
	if !s.ready.Load() {
		return false
	}
	last := s.lastPoll.Load()
	if last == 0 {
		return false
	}
	return s.now().Sub(time.Unix(0, last)) <= s.staleAfter
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	s.log.Info("HTTP server listening", "addr", s.server.Addr)
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerHealth() {
	s.mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	s.mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if !s.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("not ready"))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
}
