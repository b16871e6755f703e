package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestDefault(t *testing.T) {
	c := Default()

	items := c.List()
	if len(items) != 5 {
		t.Fatalf("Expected 5 items, got %d", len(items))
	}
	if items[0].Name != "Gaming Laptop" {
		t.Errorf("Expected Gaming Laptop first, got %s", items[0].Name)
	}
}

func TestCatalog_Get(t *testing.T) {
	c := Default()

	item, ok := c.Get("1")
	if !ok {
		t.Fatal("Expected item 1 to exist")
	}
	if !item.Price.Equal(decimal.NewFromFloat(1299.99)) {
		t.Errorf("Expected price 1299.99, got %s", item.Price)
	}

	if _, ok := c.Get("999"); ok {
		t.Error("Expected unknown item to be absent")
	}
}

func TestCatalog_Price(t *testing.T) {
	c := Default()

	tests := []struct {
		id       string
		expected string
		ok       bool
	}{
		{"1", "1299.99", true},
		{"3", "249", true},
		{"5", "89.99", true},
		{"0", "0", false},
	}

	for _, tt := range tests {
		p, ok := c.Price(tt.id)
		if ok != tt.ok {
			t.Errorf("Price(%s): expected ok=%v, got %v", tt.id, tt.ok, ok)
			continue
		}
		if ok && !p.Equal(decimal.RequireFromString(tt.expected)) {
			t.Errorf("Price(%s): expected %s, got %s", tt.id, tt.expected, p)
		}
	}
}

func TestCatalog_ListIsACopy(t *testing.T) {
	c := Default()

	items := c.List()
	items[0].Name = "mutated"

	if c.List()[0].Name == "mutated" {
		t.Error("Mutating the listed slice changed the catalog")
	}
}
