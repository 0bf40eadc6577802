package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kkarakas-lxera/lxera-vision-platform-sub007/internal/errors"
	"github.com/kkarakas-lxera/lxera-vision-platform-sub007/internal/logger"
	"github.com/kkarakas-lxera/lxera-vision-platform-sub007/internal/models"
)

func (s *Server) handleGetProgress(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		handleError(w, r, errors.NewBadRequestError("employee id required"))
		return
	}
	log.Debug("fetching progress: employee_id=%s", employeeID)

	progress, err := s.ProgressService.GetProgress(r.Context(), employeeID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, progress)
}

func (s *Server) handleGetActivePuzzles(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		handleError(w, r, errors.NewBadRequestError("employee id required"))
		return
	}
	log.Debug("fetching active puzzles: employee_id=%s", employeeID)

	puzzles, err := s.ProgressService.GetActivePuzzles(r.Context(), employeeID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if puzzles == nil {
		puzzles = []models.PuzzleState{}
	}

	writeJSON(w, r, http.StatusOK, puzzles)
}

func (s *Server) handleGetPuzzleHistory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		handleError(w, r, errors.NewBadRequestError("employee id required"))
		return
	}

	filter := models.PuzzleHistoryFilter{
		EmployeeID: employeeID,
		Skill:      r.URL.Query().Get("skill"),
		Limit:      queryInt(r, "limit", 20),
		Offset:     queryInt(r, "offset", 0),
	}
	log.Debug("fetching puzzle history: employee_id=%s, skill=%s", filter.EmployeeID, filter.Skill)

	puzzles, err := s.ProgressService.GetPuzzleHistory(r.Context(), filter)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if puzzles == nil {
		puzzles = []models.PuzzleState{}
	}

	writeJSON(w, r, http.StatusOK, puzzles)
}

func (s *Server) handleGetSessions(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		handleError(w, r, errors.NewBadRequestError("employee id required"))
		return
	}
	log.Debug("fetching sessions: employee_id=%s", employeeID)

	sessions, err := s.ProgressService.GetSessions(r.Context(), employeeID, queryInt(r, "limit", 20), queryInt(r, "offset", 0))
	if err != nil {
		handleError(w, r, err)
		return
	}
	if sessions == nil {
		sessions = []models.SessionRecord{}
	}

	writeJSON(w, r, http.StatusOK, sessions)
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	limit := queryInt(r, "limit", s.LeaderboardSize)
	log.Debug("fetching leaderboard: limit=%d", limit)

	entries, err := s.ProgressService.GetLeaderboard(r.Context(), limit)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if entries == nil {
		entries = []models.GameProgress{}
	}

	writeJSON(w, r, http.StatusOK, entries)
}
