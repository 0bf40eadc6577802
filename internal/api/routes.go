package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(securityHeadersMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Post("/sessions", s.handleSubmitSession)
		r.Get("/leaderboard", s.handleLeaderboard)

		r.Route("/employees/{employeeID}", func(r chi.Router) {
			r.Get("/progress", s.handleGetProgress)
			r.Get("/puzzles", s.handleGetActivePuzzles)
			r.Get("/puzzles/history", s.handleGetPuzzleHistory)
			r.Get("/sessions", s.handleGetSessions)
		})
	})

	return r
}
