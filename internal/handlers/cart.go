package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/findosh/onecart/internal/middleware"
	"github.com/findosh/onecart/internal/storage"
)

// GetCart returns the caller's current cart, empty if they have none
func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	username := middleware.GetUsername(r)
	h.writeJSON(w, http.StatusOK, h.cartStore.Get(username))
}

type addToCartRequest struct {
	ItemID string `json:"itemId"`
}

// AddToCart adds one unit of an item to the caller's cart and returns the
// updated cart
func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req addToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.jsonError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	username := middleware.GetUsername(r)
	cart, err := h.cartStore.AddItem(username, req.ItemID)
	if err != nil {
		if errors.Is(err, storage.ErrItemNotFound) {
			h.jsonError(w, "Item not found", http.StatusNotFound)
			return
		}
		h.jsonError(w, "Failed to update cart", http.StatusInternalServerError)
		return
	}

	log.Printf("cart updated: %s ($%s)", username, cart.Total.StringFixed(2))
	h.writeJSON(w, http.StatusOK, cart)
}
