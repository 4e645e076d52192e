// Package api exposes the launch and planet endpoints over HTTP.
package api

import (
	"encoding/json"
	"net/http"

	"mission-control/internal/domain/repository"
	"mission-control/internal/usecase"
	"mission-control/pkg/logger"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server is the HTTP adapter over the launch service and planet store.
type Server struct {
	launchService *usecase.LaunchService
	planetRepo    repository.PlanetRepository
	corsOrigin    string
	logger        logger.Logger
}

// NewServer creates a new API server
func NewServer(
	launchService *usecase.LaunchService,
	planetRepo repository.PlanetRepository,
	corsOrigin string,
	logger logger.Logger,
) *Server {
	return &Server{
		launchService: launchService,
		planetRepo:    planetRepo,
		corsOrigin:    corsOrigin,
		logger:        logger,
	}
}

// Router builds the chi routing tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	// Standard middleware.
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(s.cors)

	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Get("/launches", s.handleListLaunches)
		r.Post("/launches", s.handleCreateLaunch)
		r.Delete("/launches/{id}", s.handleAbortLaunch)
		r.Get("/planets", s.handleListPlanets)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", s.corsOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
