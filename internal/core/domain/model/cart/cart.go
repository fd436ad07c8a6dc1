// Package cart provides the shopping cart of the storefront.
// A cart is an ordered collection of lines, unique by product identifier.
// Carts are session-local and mutated by a single caller; the snapshot taken at
// checkout is a deep copy, so later cart or catalog changes never touch a
// placed order.
package cart

import (
	"fmt"

	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// Line is one cart entry: a product snapshot plus the ordered quantity.
type Line struct {
	ProductID int     `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Cart is an ordered list of lines, unique by product identifier.
type Cart struct {
	lines []Line
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// Add puts one unit of the given product into the cart.
// Adding a product that is already present increments its line quantity
// instead of duplicating the line.
func (c *Cart) Add(product catalog.Product) {
	for i := range c.lines {
		if c.lines[i].ProductID == product.ID {
			c.lines[i].Quantity++
			return
		}
	}

	c.lines = append(c.lines, Line{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  1,
	})
}

// AddLine puts the given line into the cart, merging with an existing line for
// the same product. The quantity must be positive.
func (c *Cart) AddLine(line Line) error {
	if line.Quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", line.Quantity),
		)
	}

	for i := range c.lines {
		if c.lines[i].ProductID == line.ProductID {
			c.lines[i].Quantity += line.Quantity
			return nil
		}
	}

	c.lines = append(c.lines, line)
	return nil
}

// UpdateQuantity changes the quantity of a product's line by delta.
// A line whose quantity drops to zero or below is removed from the cart.
// Unknown products are ignored.
func (c *Cart) UpdateQuantity(productID int, delta int) {
	for i := range c.lines {
		if c.lines[i].ProductID != productID {
			continue
		}

		c.lines[i].Quantity += delta
		if c.lines[i].Quantity <= 0 {
			c.Remove(productID)
		}
		return
	}
}

// Remove deletes the line of the given product, if present.
func (c *Cart) Remove(productID int) {
	kept := c.lines[:0]
	for _, line := range c.lines {
		if line.ProductID != productID {
			kept = append(kept, line)
		}
	}
	c.lines = kept
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Snapshot returns a deep copy of the cart lines for order assembly.
func (c *Cart) Snapshot() []Line {
	return c.Lines()
}

// Total returns the cart subtotal: the sum of price times quantity over all
// lines, rounded to two decimal places.
func (c *Cart) Total() float64 {
	var total float64
	for _, line := range c.lines {
		total += line.Price * float64(line.Quantity)
	}
	return kernel.RoundMoney(total)
}

// Count returns the total number of units in the cart.
func (c *Cart) Count() int {
	var count int
	for _, line := range c.lines {
		count += line.Quantity
	}
	return count
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}
