package models

import (
	"github.com/shopspring/decimal"
)

// Item is a catalog entry. The catalog is read-only for the process
// lifetime, so items are only ever copied, never mutated.
type Item struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
}
