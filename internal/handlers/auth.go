package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/findosh/onecart/internal/middleware"
	"github.com/findosh/onecart/internal/services/auth"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register handles account creation
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.jsonError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.authService.Register(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidInput):
			h.jsonError(w, "Username & password required", http.StatusBadRequest)
		case errors.Is(err, auth.ErrUsernameTaken):
			h.jsonError(w, "Username exists", http.StatusBadRequest)
		default:
			h.jsonError(w, "Registration failed", http.StatusInternalServerError)
		}
		return
	}

	log.Printf("new user: %s", user.Username)
	h.writeJSON(w, http.StatusCreated, map[string]string{"message": "User created successfully"})
}

// Login handles credential verification and session issuance. A user who
// already holds a live session is refused with 403 rather than having the
// first session displaced.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.jsonError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	token, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrSessionActive):
			log.Printf("login blocked: %s already logged in", req.Username)
			h.jsonError(w, "You cannot login on another device.", http.StatusForbidden)
		case errors.Is(err, auth.ErrInvalidCredentials):
			h.jsonError(w, "Invalid username/password", http.StatusBadRequest)
		default:
			h.jsonError(w, "Login failed", http.StatusInternalServerError)
		}
		return
	}

	log.Printf("login: %s", req.Username)
	h.writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// Logout releases the caller's session. Always succeeds.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	username := middleware.GetUsername(r)
	h.authService.Logout(username)

	log.Printf("logout: %s", username)
	h.writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}
