package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jmercado/uicguessr/internal/errors"
	"github.com/jmercado/uicguessr/internal/geo"
	"github.com/jmercado/uicguessr/internal/logger"
	"github.com/jmercado/uicguessr/internal/services"
)

func (s *Server) handleBuildings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, s.Campus.Buildings(r.Context()))
}

func (s *Server) handleBuilding(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	b, err := s.Campus.Building(r.Context(), key)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, b)
}

func (s *Server) handleResources(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, s.Campus.Resources(r.Context()))
}

func (s *Server) handlePersonas(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, s.Campus.Personas(r.Context()))
}

func (s *Server) handleMajorDecks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, s.Campus.MajorDecks(r.Context()))
}

// handleMap serves the campus map model, optionally highlighting one
// building (path key or ?highlight=). Opening the map also unlocks the
// exploration achievement.
func (s *Server) handleMap(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	highlight := chi.URLParam(r, "key")
	if highlight == "" {
		highlight = r.URL.Query().Get("highlight")
	}
	model, err := s.Campus.Map(r.Context(), highlight)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if first, err := s.Profile.MarkMapViewed(r.Context()); err != nil {
		log.Error("failed to record map view: %v", err)
	} else if first {
		log.Debug("map viewed for the first time")
	}
	writeJSON(w, r, http.StatusOK, model)
}

// handleNavigate computes a walking route to a building. The origin is either
// another building (?from=KEY) or the caller's coordinates (?lat=..&lng=..).
func (s *Server) handleNavigate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := services.NavigateRequest{
		To:   q.Get("to"),
		From: q.Get("from"),
	}
	if req.To == "" {
		handleError(w, r, errors.NewBadRequestError("to is required"))
		return
	}
	if latStr, lngStr := q.Get("lat"), q.Get("lng"); latStr != "" || lngStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lng, lngErr := strconv.ParseFloat(lngStr, 64)
		if latErr != nil || lngErr != nil {
			handleError(w, r, errors.NewBadRequestError("lat and lng must both be valid coordinates"))
			return
		}
		req.Origin = &geo.Point{Lat: lat, Lng: lng}
	}

	result, err := s.Campus.Navigate(r.Context(), req)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, result)
}
