package storage

import (
	"github.com/findosh/onecart/internal/models"
)

// OrderStore is the per-user order ledger: append-only, newest-first.
type OrderStore struct {
	orders *keyedStore[[]models.Order]
}

// NewOrderStore creates an empty order store
func NewOrderStore() *OrderStore {
	return &OrderStore{orders: newKeyedStore[[]models.Order]()}
}

// Append inserts the order at the front of the user's history, so List
// always reads newest-first without sorting
func (s *OrderStore) Append(username string, order models.Order) {
	s.orders.update(username, func(history []models.Order, _ bool) ([]models.Order, bool) {
		next := make([]models.Order, 0, len(history)+1)
		next = append(next, order)
		next = append(next, history...)
		return next, true
	})
}

// List returns the user's order history newest-first, or an empty slice if
// the user has never checked out. The returned slice is a copy.
func (s *OrderStore) List(username string) []models.Order {
	history, ok := s.orders.get(username)
	if !ok {
		return []models.Order{}
	}
	out := make([]models.Order, len(history))
	copy(out, history)
	return out
}
