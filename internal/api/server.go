// Package api exposes the admin-facing HTTP surface: one authenticated
// endpoint dispatching the recovery workflow actions, plus a health check.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/elecmate/signup-recovery/internal/campaign"
	"github.com/elecmate/signup-recovery/internal/config"
	"github.com/elecmate/signup-recovery/internal/domain"
)

// TokenVerifier authenticates a caller's bearer token, returning the
// caller's user id. identity.Client is the production implementation.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (string, error)
}

// ProfileGetter looks up one profile; the admin gate checks the caller's
// role through it on every request.
type ProfileGetter interface {
	Get(ctx context.Context, id string) (*domain.Profile, error)
}

// Server is the API server.
type Server struct {
	config   config.ServerConfig
	handler  http.Handler
	server   *http.Server
	svc      *campaign.Service
	verifier TokenVerifier
	profiles ProfileGetter
}

// NewServer wires the router and middleware around the workflow service.
func NewServer(cfg config.ServerConfig, svc *campaign.Service, verifier TokenVerifier, profiles ProfileGetter) *Server {
	s := &Server{
		config:   cfg,
		svc:      svc,
		verifier: verifier,
		profiles: profiles,
	}
	s.handler = s.routes()
	return s
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://elec-mate.com", "http://localhost:5173"},
		AllowedMethods:   []string{"POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Use(s.requireAdmin)
		r.Post("/recovery", s.handleRecovery)
	})

	return r
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe(addr string) error {
	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 15 * time.Second,
		// A full bulk batch waits out the inter-send delay for every
		// recipient, so the write timeout has to cover the whole run.
		WriteTimeout: 15 * time.Minute,
		IdleTimeout:  120 * time.Second,
	}
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Handler returns the HTTP handler for testing.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Write([]byte(`{"status":"ok"}`))
}
