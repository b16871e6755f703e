package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/findosh/onecart/internal/middleware"
	"github.com/findosh/onecart/internal/services/checkout"
)

// PlaceOrder checks out the caller's cart into a new order
func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	username := middleware.GetUsername(r)

	order, err := h.checkoutService.Checkout(username)
	if err != nil {
		if errors.Is(err, checkout.ErrEmptyCart) {
			h.jsonError(w, "Cart empty", http.StatusBadRequest)
			return
		}
		h.jsonError(w, "Checkout failed", http.StatusInternalServerError)
		return
	}

	log.Printf("order placed: %s ($%s)", username, order.Total.StringFixed(2))
	h.writeJSON(w, http.StatusOK, order)
}

// ListOrders returns the caller's order history, newest first
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	username := middleware.GetUsername(r)
	h.writeJSON(w, http.StatusOK, h.orderStore.List(username))
}
