package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"leetgen/internal/platform/config"
	"leetgen/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// Server owns the root chi mux and the listener lifecycle
type Server struct {
	addr  string
	grace time.Duration
	mux   *chi.Mux
	srv   *http.Server
}

// NewServer reads API_PORT (a port or host:port) and SHUTDOWN_GRACE from cfg
func NewServer(cfg config.Conf) *Server {
	mux := chi.NewRouter()
	s := &Server{
		addr:  cfg.MayPort("API_PORT", ":4000"),
		grace: cfg.MayDuration("SHUTDOWN_GRACE", 10*time.Second),
		mux:   mux,
	}
	s.srv = &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second}
	return s
}

// Router is the root router
func (s *Server) Router() Router { return AdaptChi(s.mux) }

// Addr is the configured listen address
func (s *Server) Addr() string { return s.addr }

// Run listens on Addr and serves until ctx is cancelled, then drains for up to the grace period
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is Run over a listener the caller already holds
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	log := logger.Named("http")
	log.Info().Str("addr", ln.Addr().String()).Msg("http listening")

	errc := make(chan error, 1)
	go func() { errc <- s.srv.Serve(ln) }()

	select {
	case err := <-errc:
		return ignoreClosed(err)
	case <-ctx.Done():
	}

	log.Info().Dur("grace", s.grace).Msg("http draining")
	sctx, cancel := context.WithTimeout(context.Background(), s.grace)
	defer cancel()
	if err := s.srv.Shutdown(sctx); err != nil {
		return err
	}
	return ignoreClosed(<-errc)
}

func ignoreClosed(err error) error {
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
