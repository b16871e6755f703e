// Package checkout converts carts into orders
package checkout

import (
	"errors"

	"github.com/findosh/onecart/internal/catalog"
	"github.com/findosh/onecart/internal/models"
	"github.com/findosh/onecart/internal/storage"
)

// ErrEmptyCart is returned when checking out a cart with no lines
var ErrEmptyCart = errors.New("cart empty")

// Service coordinates the cart-to-order transition. The cart store's
// atomic drain is the serialization point: of two racing checkouts for
// one user, exactly one receives the cart, and an add racing the drain
// lands either in the produced order or in the next cart, never in both
// and never nowhere.
type Service struct {
	catalog *catalog.Catalog
	carts   *storage.CartStore
	orders  *storage.OrderStore
}

// NewService creates a new checkout service
func NewService(cat *catalog.Catalog, carts *storage.CartStore, orders *storage.OrderStore) *Service {
	return &Service{
		catalog: cat,
		carts:   carts,
		orders:  orders,
	}
}

// Checkout drains the user's cart into a new immutable order and appends
// it to the head of the user's history. Each order line snapshots the
// item's name and unit price at this moment; the order total is the
// drained cart's total. An empty cart fails with ErrEmptyCart and leaves
// every store unchanged.
func (s *Service) Checkout(username string) (models.Order, error) {
	cart, ok := s.carts.Drain(username)
	if !ok {
		return models.Order{}, ErrEmptyCart
	}

	items := make([]models.OrderLine, 0, len(cart.Items))
	for _, line := range cart.Items {
		item, found := s.catalog.Get(line.ItemID)
		if !found {
			continue
		}
		items = append(items, models.OrderLine{
			ItemID:    line.ItemID,
			Name:      item.Name,
			Quantity:  line.Quantity,
			UnitPrice: item.Price,
		})
	}

	order := models.NewOrder(username, items, cart.Total)
	s.orders.Append(username, order)
	return order, nil
}
