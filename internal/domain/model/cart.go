package model

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

type CartError error

var ErrInvalidQuantity CartError = errors.New("quantity must be at least 1")

// LineItem is a (product, quantity) pair held in a cart. quantity >= 1 holds
// for every constructed line item.
type LineItem struct {
	product  *Product
	quantity int
}

func (l *LineItem) Product() *Product {
	return l.product
}

func (l *LineItem) Quantity() int {
	return l.quantity
}

// SetQuantity replaces the quantity. quantity < 1 returns ErrInvalidQuantity
// and leaves the item unchanged.
func (l *LineItem) SetQuantity(quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}
	l.quantity = quantity
	return nil
}

// Cart is an ordered collection of line items, at most one per product.
// Insertion order of distinct products is preserved; re-adding an existing
// product merges quantities in place without moving the line.
//
// Cart is not safe for concurrent use.
type Cart struct {
	items []*LineItem
}

func NewCart() *Cart {
	return &Cart{items: make([]*LineItem, 0)}
}

// AddItem appends a new line item, or increments the quantity of the
// existing line when the product is already in the cart.
// quantity < 1 returns ErrInvalidQuantity and leaves the cart unchanged.
func (c *Cart) AddItem(product *Product, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}
	for _, item := range c.items {
		if item.product.ID() == product.ID() {
			item.quantity += quantity
			return nil
		}
	}
	c.items = append(c.items, &LineItem{product: product, quantity: quantity})
	return nil
}

// RemoveItem deletes the line item for the given product. Removing a product
// that is not in the cart is a no-op.
func (c *Cart) RemoveItem(product *Product) {
	for i, item := range c.items {
		if item.product.ID() == product.ID() {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Items returns the cart's current line items in insertion order.
func (c *Cart) Items() []*LineItem {
	return c.items
}

// CalculateTotal sums price x quantity over all line items with exact decimal
// arithmetic. An empty cart totals zero. Shipping cost is not included.
func (c *Cart) CalculateTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.product.Price().Mul(decimal.NewFromInt(int64(item.quantity))))
	}
	return total
}
