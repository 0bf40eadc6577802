package api

import (
	"encoding/json"
	"net/http"

	"github.com/kkarakas-lxera/lxera-vision-platform-sub007/internal/errors"
	"github.com/kkarakas-lxera/lxera-vision-platform-sub007/internal/logger"
	"github.com/kkarakas-lxera/lxera-vision-platform-sub007/internal/models"
)

func (s *Server) handleSubmitSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	log.Debug("handling session submission")

	var session models.Session
	if err := json.NewDecoder(r.Body).Decode(&session); err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid JSON body"))
		return
	}

	outcome, err := s.ProgressionService.SubmitSession(r.Context(), session)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, outcome)
}
