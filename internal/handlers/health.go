package handlers

import (
	"net/http"
)

// Health reports process liveness and store counters
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":         "OK",
		"users":          h.userStore.Count(),
		"activeSessions": h.sessionStore.Active(),
	})
}
