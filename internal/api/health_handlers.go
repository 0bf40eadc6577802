package api

import (
	"net/http"

	"github.com/kkarakas-lxera/lxera-vision-platform-sub007/internal/logger"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if err := s.DB.PingContext(r.Context()); err != nil {
		log.Error("database ping failed: %v", err)
		writeJSON(w, r, http.StatusServiceUnavailable, map[string]string{
			"status": "unavailable",
		})
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]string{
		"status": "ok",
	})
}
