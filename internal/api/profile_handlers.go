package api

import (
	"net/http"
	"strconv"

	"github.com/jmercado/uicguessr/internal/models"
)

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := s.Settings.Get(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, settings)
}

func (s *Server) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var settings models.Settings
	if err := decodeJSON(r, &settings); err != nil {
		handleError(w, r, err)
		return
	}

	saved, err := s.Settings.Update(r.Context(), settings)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, saved)
}

func (s *Server) handleResetSettings(w http.ResponseWriter, r *http.Request) {
	defaults, err := s.Settings.Reset(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, defaults)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	overview, err := s.Profile.Stats(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, overview)
}

func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
	insights, err := s.Profile.Insights(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, insights)
}

func (s *Server) handleSessionHistory(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.SessionFilter{
		Difficulty: q.Get("difficulty"),
		Mode:       q.Get("mode"),
	}
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))
	filter.Offset, _ = strconv.Atoi(q.Get("offset"))

	sessions, total, err := s.Profile.SessionHistory(r.Context(), filter)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{
		"sessions": sessions,
		"total":    total,
	})
}

func (s *Server) handleAchievements(w http.ResponseWriter, r *http.Request) {
	list, err := s.Profile.Achievements(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, list)
}
