package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"mission-control/internal/domain"
	"mission-control/internal/usecase"
	"mission-control/pkg/pagination"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleListLaunches(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	skip, limit := pagination.GetPagination(query.Get("limit"), query.Get("page"))

	launches, err := s.launchService.List(r.Context(), skip, limit)
	if err != nil {
		s.logger.Error("Failed to list launches", "error", err)
		writeError(w, http.StatusInternalServerError, "could not list launches")
		return
	}
	writeJSON(w, http.StatusOK, launches)
}

func (s *Server) handleCreateLaunch(w http.ResponseWriter, r *http.Request) {
	var req usecase.LaunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	launch, err := s.launchService.Create(r.Context(), req)
	switch {
	case errors.Is(err, domain.ErrMissingField):
		writeError(w, http.StatusBadRequest, "Missing required launch property")
	case errors.Is(err, domain.ErrInvalidDate):
		writeError(w, http.StatusBadRequest, "Invalid launch date")
	case errors.Is(err, domain.ErrPlanetNotFound):
		writeError(w, http.StatusBadRequest, "No matching planet found")
	case err != nil:
		s.logger.Error("Failed to create launch", "error", err)
		writeError(w, http.StatusInternalServerError, "could not create launch")
	default:
		writeJSON(w, http.StatusCreated, launch)
	}
}

func (s *Server) handleAbortLaunch(w http.ResponseWriter, r *http.Request) {
	flightNumber, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid launch id")
		return
	}

	err = s.launchService.Abort(r.Context(), flightNumber)
	switch {
	case errors.Is(err, domain.ErrLaunchNotFound):
		writeError(w, http.StatusNotFound, "Launch not found")
	case errors.Is(err, domain.ErrLaunchNotAborted):
		writeError(w, http.StatusBadRequest, "Launch not aborted")
	case err != nil:
		s.logger.Error("Failed to abort launch", "flightNumber", flightNumber, "error", err)
		writeError(w, http.StatusInternalServerError, "could not abort launch")
	default:
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	}
}
