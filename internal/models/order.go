package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderLine is an immutable snapshot of a cart line at checkout time.
// Name and unit price are copied from the catalog entry, not referenced,
// so later price changes never alter a placed order.
type OrderLine struct {
	ItemID    string          `json:"itemId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// Order is a completed checkout. Orders are immutable once created and
// live in the per-user ledger newest-first.
type Order struct {
	ID        uuid.UUID       `json:"id"`
	Username  string          `json:"username"`
	Items     []OrderLine     `json:"items"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
}

// NewOrder creates an order for username from snapshotted lines and a
// precomputed total, with a generated ID and UTC timestamp
func NewOrder(username string, items []OrderLine, total decimal.Decimal) Order {
	return Order{
		ID:        uuid.New(),
		Username:  username,
		Items:     items,
		Total:     total,
		CreatedAt: time.Now().UTC(),
	}
}
