// Package catalog provides the product reference data of the storefront.
// Products are immutable records loaded once at startup; the catalog offers
// lookup by identifier and the search/category filtering used by the shop page.
package catalog

import (
	"fmt"
	"strings"

	"storefront/internal/pkg/errs"
)

// Product is an immutable catalog record.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}

// Catalog holds the product reference data. It is read-only after construction,
// making it safe for concurrent use by HTTP handlers.
type Catalog struct {
	products []Product
	byID     map[int]Product
}

// NewCatalog builds a catalog from the given products.
// Product identifiers must be unique and prices non-negative.
func NewCatalog(products []Product) (*Catalog, error) {
	byID := make(map[int]Product, len(products))
	for _, p := range products {
		if p.Price < 0 {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"product price",
				fmt.Errorf("product %d has negative price %v", p.ID, p.Price),
			)
		}
		if _, exists := byID[p.ID]; exists {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"product id",
				fmt.Errorf("product id %d is duplicated", p.ID),
			)
		}
		byID[p.ID] = p
	}

	out := make([]Product, len(products))
	copy(out, products)

	return &Catalog{products: out, byID: byID}, nil
}

// Products returns all products in catalog order.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Get returns the product with the given identifier.
func (c *Catalog) Get(id int) (Product, error) {
	p, ok := c.byID[id]
	if !ok {
		return Product{}, errs.NewObjectNotFoundError("product", id)
	}
	return p, nil
}

// Filter returns the products matching a free-text search and a category.
// The search matches case-insensitively against name and description; an empty
// search matches everything. The category must match exactly; an empty category
// matches everything. Catalog order is preserved.
func (c *Catalog) Filter(search string, category string) []Product {
	search = strings.ToLower(search)

	matched := make([]Product, 0, len(c.products))
	for _, p := range c.products {
		matchesSearch := search == "" ||
			strings.Contains(strings.ToLower(p.Name), search) ||
			strings.Contains(strings.ToLower(p.Description), search)
		matchesCategory := category == "" || p.Category == category

		if matchesSearch && matchesCategory {
			matched = append(matched, p)
		}
	}
	return matched
}

// DefaultProducts returns the storefront's built-in product list.
func DefaultProducts() []Product {
	return []Product{
		{
			ID:          1,
			Name:        "Imprimante Laser Canon LBP6030B",
			Category:    "imprimantes",
			Price:       41500,
			Image:       "images/6030.jpg",
			Description: "Imprimante Laser avec toner",
		},
		{
			ID:          2,
			Name:        "Imprimante Laser Canon MF3010",
			Category:    "imprimantes",
			Price:       50500,
			Image:       "images/3010.jpg",
			Description: "Son haute qualité avec isolation du bruit",
		},
		{
			ID:          3,
			Name:        "Imprimante Epson L3210",
			Category:    "imprimantes",
			Price:       410000,
			Image:       "images/3210.jfif",
			Description: "Imprimante sans Wifi",
		},
		{
			ID:          4,
			Name:        "Imprimante Brother DCP-T530 DW",
			Category:    "imprimantes",
			Price:       52500,
			Image:       "images/530.jfif",
			Description: "Suivi de la santé et des activités",
		},
	}
}
