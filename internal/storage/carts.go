package storage

import (
	"errors"

	"github.com/findosh/onecart/internal/catalog"
	"github.com/findosh/onecart/internal/models"
)

// ErrItemNotFound is returned when adding an unknown item ID to a cart
var ErrItemNotFound = errors.New("item not found")

// CartStore holds each user's current cart. Every mutation for a username
// runs as one atomic step under that username's shard lock, so concurrent
// adds never lose an increment and a checkout's drain never interleaves
// with an add.
type CartStore struct {
	catalog *catalog.Catalog
	carts   *keyedStore[models.Cart]
}

// NewCartStore creates an empty cart store backed by the given catalog
func NewCartStore(cat *catalog.Catalog) *CartStore {
	return &CartStore{
		catalog: cat,
		carts:   newKeyedStore[models.Cart](),
	}
}

// Get returns the user's cart, or an empty cart if none exists yet.
// Reading never creates an entry; an absent cart and a stored empty cart
// are indistinguishable to callers.
func (s *CartStore) Get(username string) models.Cart {
	cart, ok := s.carts.get(username)
	if !ok {
		return models.EmptyCart()
	}
	return cart.Clone()
}

// AddItem adds one unit of itemID to the user's cart: an existing line is
// incremented, otherwise a new line is appended. The total is recomputed
// from scratch after the mutation. Returns the updated cart.
func (s *CartStore) AddItem(username, itemID string) (models.Cart, error) {
	if _, ok := s.catalog.Get(itemID); !ok {
		return models.Cart{}, ErrItemNotFound
	}

	var updated models.Cart
	s.carts.update(username, func(cart models.Cart, ok bool) (models.Cart, bool) {
		if !ok {
			cart = models.EmptyCart()
		} else {
			cart = cart.Clone()
		}
		cart.AddLine(itemID)
		cart.Recompute(s.catalog.Price)
		updated = cart
		return cart, true
	})
	return updated.Clone(), nil
}

// Drain atomically returns the user's cart and resets it to empty. It is
// the linearization point for checkout: an add that lands before the drain
// is part of the returned cart, one that lands after goes to the fresh
// cart. Draining an empty or absent cart returns ok=false and changes
// nothing.
func (s *CartStore) Drain(username string) (models.Cart, bool) {
	var drained models.Cart
	var ok bool
	s.carts.update(username, func(cart models.Cart, exists bool) (models.Cart, bool) {
		if !exists || cart.IsEmpty() {
			return cart, exists
		}
		drained = cart
		ok = true
		return models.EmptyCart(), true
	})
	return drained, ok
}

// Clear resets the user's cart to empty
func (s *CartStore) Clear(username string) {
	s.carts.update(username, func(_ models.Cart, _ bool) (models.Cart, bool) {
		return models.EmptyCart(), true
	})
}
