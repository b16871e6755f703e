// Package handlers provides HTTP request handlers
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/findosh/onecart/internal/catalog"
	"github.com/findosh/onecart/internal/config"
	"github.com/findosh/onecart/internal/services/auth"
	"github.com/findosh/onecart/internal/services/checkout"
	"github.com/findosh/onecart/internal/storage"
)

// Handler contains all HTTP handlers and dependencies
type Handler struct {
	cfg             *config.Config
	catalog         *catalog.Catalog
	authService     *auth.Service
	checkoutService *checkout.Service
	userStore       *storage.UserStore
	sessionStore    *storage.SessionStore
	cartStore       *storage.CartStore
	orderStore      *storage.OrderStore
}

// New creates a new handler with all dependencies
func New(
	cfg *config.Config,
	cat *catalog.Catalog,
	authService *auth.Service,
	checkoutService *checkout.Service,
	userStore *storage.UserStore,
	sessionStore *storage.SessionStore,
	cartStore *storage.CartStore,
	orderStore *storage.OrderStore,
) *Handler {
	return &Handler{
		cfg:             cfg,
		catalog:         cat,
		authService:     authService,
		checkoutService: checkoutService,
		userStore:       userStore,
		sessionStore:    sessionStore,
		cartStore:       cartStore,
		orderStore:      orderStore,
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (h *Handler) jsonError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"error":"` + message + `"}`))
}
