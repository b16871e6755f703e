// Package catalog provides the read-only item catalog
package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/findosh/onecart/internal/models"
)

// Catalog is a fixed set of purchasable items. It is built once at startup
// and never mutated, so lookups need no locking.
type Catalog struct {
	items []models.Item
	byID  map[string]models.Item
}

// New creates a catalog from the given items, preserving their order
func New(items []models.Item) *Catalog {
	byID := make(map[string]models.Item, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}
	return &Catalog{items: items, byID: byID}
}

// Default returns the built-in demo catalog
func Default() *Catalog {
	return New([]models.Item{
		{ID: "1", Name: "Gaming Laptop", Price: decimal.NewFromFloat(1299.99), Description: "RTX 4060, 16GB RAM"},
		{ID: "2", Name: "iPhone 16 Pro", Price: decimal.NewFromFloat(1199.00), Description: "Latest flagship phone"},
		{ID: "3", Name: "AirPods Pro 2", Price: decimal.NewFromFloat(249.00), Description: "Noise cancelling earbuds"},
		{ID: "4", Name: "Logitech Mouse", Price: decimal.NewFromFloat(49.99), Description: "Wireless gaming mouse"},
		{ID: "5", Name: "SSD 1TB", Price: decimal.NewFromFloat(89.99), Description: "NVMe Gen4 storage"},
	})
}

// Get returns the item with the given ID
func (c *Catalog) Get(id string) (models.Item, bool) {
	item, ok := c.byID[id]
	return item, ok
}

// Price returns the current unit price for the given item ID
func (c *Catalog) Price(id string) (decimal.Decimal, bool) {
	item, ok := c.byID[id]
	return item.Price, ok
}

// List returns all items in catalog order
func (c *Catalog) List() []models.Item {
	out := make([]models.Item, len(c.items))
	copy(out, c.items)
	return out
}
