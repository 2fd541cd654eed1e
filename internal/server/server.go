// Package server serves the export directory over HTTP so generated
// reports can be fetched from other devices on the network.
package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

type Config struct {
	Addr            string
	Dir             string
	ShutdownTimeout time.Duration
}

type Server struct {
	router          *chi.Mux
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

func New(logger zerolog.Logger, cfg Config) *Server {
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}

	router := chi.NewRouter()
	router.Use(requestLogger(&logger))
	router.Use(middleware.Recoverer)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	router.Handle("/*", http.FileServer(http.Dir(cfg.Dir)))

	return &Server{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    cfg.Addr,
			Handler: router,
		},
		shutdownTimeout: cfg.ShutdownTimeout,
	}
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start runs the server until it fails or an interrupt arrives, then
// shuts down gracefully.
func (s *Server) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		s.logger.Info().Str("addr", s.server.Addr).Msg("starting server")
		serverErrors <- s.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		s.logger.Info().Msg("shutdown initiated")

		ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		err := s.server.Shutdown(ctx)
		if err != nil {
			s.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = s.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}

func requestLogger(logger *zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			logger.Info().
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Str("remote_ip", req.RemoteAddr).
				Msg("request")

			next.ServeHTTP(w, req)
		})
	}
}
