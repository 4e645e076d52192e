package api

import (
	"net/http"
)

func (s *Server) handleListPlanets(w http.ResponseWriter, r *http.Request) {
	planets, err := s.planetRepo.ListAll(r.Context())
	if err != nil {
		s.logger.Error("Failed to list planets", "error", err)
		writeError(w, http.StatusInternalServerError, "could not list planets")
		return
	}
	writeJSON(w, http.StatusOK, planets)
}
