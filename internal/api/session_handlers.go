package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jmercado/uicguessr/internal/errors"
	"github.com/jmercado/uicguessr/internal/game"
	"github.com/jmercado/uicguessr/internal/logger"
	"github.com/jmercado/uicguessr/internal/services"
)

type sessionResponse struct {
	ID      string    `json:"id"`
	Session game.View `json:"session"`
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req services.CreateSessionRequest
	if r.ContentLength > 0 {
		if err := decodeJSON(r, &req); err != nil {
			handleError(w, r, err)
			return
		}
	}

	id, view, err := s.Sessions.Create(r.Context(), req)
	if err != nil {
		handleError(w, r, err)
		return
	}
	log.Debug("session started: id=%s", id)
	writeJSON(w, r, http.StatusCreated, sessionResponse{ID: id, Session: view})
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	view, err := s.Sessions.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, sessionResponse{ID: id, Session: view})
}

func (s *Server) handleSelectAnswer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req struct {
		Option string `json:"option"`
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	if req.Option == "" {
		handleError(w, r, errors.NewBadRequestError("option is required"))
		return
	}

	view, err := s.Sessions.Select(r.Context(), id, req.Option)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, sessionResponse{ID: id, Session: view})
}

func (s *Server) handleSubmitAnswer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	view, err := s.Sessions.Answer(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, sessionResponse{ID: id, Session: view})
}

func (s *Server) handleHint(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	hint, view, err := s.Sessions.Hint(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, struct {
		sessionResponse
		Hint string `json:"hint"`
	}{sessionResponse{ID: id, Session: view}, hint})
}

func (s *Server) handleRetry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	view, err := s.Sessions.Retry(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, sessionResponse{ID: id, Session: view})
}

func (s *Server) handleNextRound(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	view, err := s.Sessions.Next(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, sessionResponse{ID: id, Session: view})
}

func (s *Server) handleEndSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	summary, err := s.Sessions.End(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, summary)
}

func (s *Server) handleReveal(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	reveal, err := s.Sessions.Reveal(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, reveal)
}
