package api

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jmercado/uicguessr/internal/services"
)

type Server struct {
	Sessions services.SessionService
	Settings services.SettingsService
	Profile  services.ProfileService
	Campus   services.CampusService
	DB       *sql.DB
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(securityHeadersMiddleware)

	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleReady)

	r.Route("/api", func(r chi.Router) {
		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", s.handleCreateSession)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleGetSession)
				r.Post("/select", s.handleSelectAnswer)
				r.Post("/answer", s.handleSubmitAnswer)
				r.Post("/hint", s.handleHint)
				r.Post("/retry", s.handleRetry)
				r.Post("/next", s.handleNextRound)
				r.Post("/end", s.handleEndSession)
				r.Get("/reveal", s.handleReveal)
			})
		})

		r.Get("/buildings", s.handleBuildings)
		r.Get("/buildings/{key}", s.handleBuilding)
		r.Get("/resources", s.handleResources)
		r.Get("/personas", s.handlePersonas)
		r.Get("/decks", s.handleMajorDecks)
		r.Get("/map", s.handleMap)
		r.Get("/map/{key}", s.handleMap)
		r.Get("/navigate", s.handleNavigate)

		r.Get("/settings", s.handleGetSettings)
		r.Put("/settings", s.handleUpdateSettings)
		r.Post("/settings/reset", s.handleResetSettings)
		r.Get("/stats", s.handleStats)
		r.Get("/insights", s.handleInsights)
		r.Get("/history", s.handleSessionHistory)
		r.Get("/achievements", s.handleAchievements)
	})

	r.Handle("/photos/*", http.StripPrefix("/photos/", http.FileServer(http.Dir("web/photos"))))
	return r
}
