// Package api exposes the statistics pipeline as a small JSON service.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"cytostats/app"
	"cytostats/internal"
)

// Server is the HTTP front-end over the stats service.
type Server struct {
	router  *chi.Mux
	service *app.StatsService
	log     *internal.Logger
}

// NewServer creates a server with routing and middleware configured.
func NewServer(service *app.StatsService, logger *internal.Logger) *Server {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	s := &Server{
		router:  chi.NewRouter(),
		service: service,
		log:     logger,
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(60 * time.Second))

	s.router.Get("/healthz", s.handleHealth)
	s.router.Route("/v1", func(r chi.Router) {
		r.Get("/statistics", s.handleListStatistics)
		r.Post("/stats", s.handleCompute)
	})
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe starts serving on addr.
func (s *Server) ListenAndServe(addr string) error {
	s.log.Info("listening on %s", addr)
	return http.ListenAndServe(addr, s.router)
}
