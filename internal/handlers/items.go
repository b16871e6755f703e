package handlers

import (
	"net/http"
)

// ListItems returns the full item catalog
func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.catalog.List())
}
