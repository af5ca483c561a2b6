package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/landsetu/landsetu/internal/app/config"
)

type Server struct {
	srv *http.Server
}

func NewServer(cfg config.HTTPServerConfig, router http.Handler) *Server {
	return &Server{
		srv: &http.Server{
			Addr:         net.JoinHostPort("", cfg.Port),
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
	}
}

func (s *Server) Start() error {
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
