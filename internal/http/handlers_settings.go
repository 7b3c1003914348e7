package http

import (
	"log/slog"
	"net/http"
)

type darkModeResponse struct {
	DarkMode bool `json:"darkMode"`
}

func (s *Server) handleGetDarkMode(w http.ResponseWriter, r *http.Request) {
	enabled, err := s.prefs.DarkMode(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to read dark mode preference", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, darkModeResponse{DarkMode: enabled})
}

func (s *Server) handleSetDarkMode(w http.ResponseWriter, r *http.Request) {
	var req darkModeResponse
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.prefs.SetDarkMode(r.Context(), req.DarkMode); err != nil {
		slog.ErrorContext(r.Context(), "Failed to store dark mode preference", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
