// Package cart holds the shopping cart reconciliation rules.
//
// Entries are merged by (product id, size) when added, but removed and
// updated by their composite cart id. Once created, two entries are never
// merged again, even if edits leave them describing the same pair.
package cart

import (
	"fmt"
	"strings"
	"time"

	"mix-store/internal/model"
)

// Cart is an ordered list of cart entries. The zero value is an empty cart.
type Cart struct {
	items []model.CartItem
}

// New returns a cart holding a copy of items.
func New(items []model.CartItem) *Cart {
	c := &Cart{items: make([]model.CartItem, len(items))}
	copy(c.items, items)
	return c
}

// Items returns a copy of the entries in insertion order.
func (c *Cart) Items() []model.CartItem {
	items := make([]model.CartItem, len(c.items))
	copy(items, c.items)
	return items
}

// Add puts one unit of product in the given size into the cart. An existing
// entry for the same (product, size) has its quantity incremented; otherwise
// a new entry with quantity one is appended. The affected entry is returned.
func (c *Cart) Add(product model.Product, size int, now time.Time) model.CartItem {
	for i := range c.items {
		if c.items[i].ID == product.ID && c.items[i].SelectedSize == size {
			c.items[i].Quantity++
			return c.items[i]
		}
	}

	item := model.CartItem{
		Product:      product,
		CartID:       NewCartID(product.ID, size, now),
		SelectedSize: size,
		Quantity:     1,
	}
	c.items = append(c.items, item)
	return item
}

// Remove drops the entry with the given cart id. It reports whether an entry
// was removed.
func (c *Cart) Remove(cartID string) bool {
	for i := range c.items {
		if c.items[i].CartID == cartID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// UpdateQuantity sets the quantity of the entry with the given cart id.
// Quantities below one are ignored. It reports whether an entry changed.
func (c *Cart) UpdateQuantity(cartID string, quantity int) bool {
	if quantity < 1 {
		return false
	}
	for i := range c.items {
		if c.items[i].CartID == cartID {
			c.items[i].Quantity = quantity
			return true
		}
	}
	return false
}

// Find returns the entry with the given cart id.
func (c *Cart) Find(cartID string) (model.CartItem, bool) {
	for _, item := range c.items {
		if item.CartID == cartID {
			return item, true
		}
	}
	return model.CartItem{}, false
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = nil
}

// Len returns the number of distinct entries.
func (c *Cart) Len() int {
	return len(c.items)
}

// Count returns the total number of units across all entries.
func (c *Cart) Count() int {
	n := 0
	for _, item := range c.items {
		n += item.Quantity
	}
	return n
}

// Total returns the sum of price times quantity.
func (c *Cart) Total() float64 {
	total := 0.0
	for _, item := range c.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// Summary renders the cart as a single human-readable line, the form kept by
// the remote order store.
func (c *Cart) Summary() string {
	parts := make([]string, len(c.items))
	for i, item := range c.items {
		parts[i] = fmt.Sprintf("%s (Size: %d, Qty: %d)", item.Name, item.SelectedSize, item.Quantity)
	}
	return strings.Join(parts, ", ")
}

// NewCartID mints the composite identifier for a new entry.
func NewCartID(productID string, size int, now time.Time) string {
	return fmt.Sprintf("%s-%d-%d", productID, size, now.UnixMilli())
}
