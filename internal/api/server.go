package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/kkarakas-lxera/lxera-vision-platform-sub007/internal/db"
	"github.com/kkarakas-lxera/lxera-vision-platform-sub007/internal/logger"
	"github.com/kkarakas-lxera/lxera-vision-platform-sub007/internal/services"
)

type Server struct {
	DB                 *db.DB
	ProgressionService services.ProgressionService
	ProgressService    services.ProgressService
	LeaderboardSize    int
}

// writeJSON renders v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode response: %v", err)
	}
}

// queryInt parses an integer query parameter, falling back to def when the
// parameter is absent or malformed.
func queryInt(r *http.Request, key string, def int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}
