package models

import (
	"github.com/shopspring/decimal"
)

// CartLine is one (item, quantity) pairing within a cart. A cart holds at
// most one line per item ID; repeated adds increment the quantity.
type CartLine struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

// Cart is a user's current shopping cart. Total is derived from the lines
// and current catalog prices; it is recomputed on every mutation, never
// patched incrementally.
type Cart struct {
	Items []CartLine      `json:"items"`
	Total decimal.Decimal `json:"total"`
}

// EmptyCart returns a cart with no lines and a zero total
func EmptyCart() Cart {
	return Cart{
		Items: []CartLine{},
		Total: decimal.Zero,
	}
}

// IsEmpty returns true if the cart has no lines
func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// AddLine increments the quantity of an existing line for itemID, or
// appends a new line with quantity 1, preserving insertion order
func (c *Cart) AddLine(itemID string) {
	for i := range c.Items {
		if c.Items[i].ItemID == itemID {
			c.Items[i].Quantity++
			return
		}
	}
	c.Items = append(c.Items, CartLine{ItemID: itemID, Quantity: 1})
}

// Recompute recalculates the total from scratch as the sum of
// quantity x unit price over all lines. Prices are resolved through the
// given lookup; lines whose item is unknown contribute nothing.
func (c *Cart) Recompute(price func(itemID string) (decimal.Decimal, bool)) {
	total := decimal.Zero
	for _, line := range c.Items {
		p, ok := price(line.ItemID)
		if !ok {
			continue
		}
		total = total.Add(p.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	c.Total = total
}

// Clone returns a deep copy so callers can hand out snapshots without
// exposing the stored slice to mutation
func (c Cart) Clone() Cart {
	items := make([]CartLine, len(c.Items))
	copy(items, c.Items)
	return Cart{Items: items, Total: c.Total}
}
