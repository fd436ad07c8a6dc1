package queries

import (
	"errors"

	"storefront/internal/pkg/guard"
)

var (
	ErrListProductsQueryIsNotConstructed = errors.New(
		"ListProductsQuery must be created via NewListProductsQuery constructor",
	)
)

// ListProductsQuery retrieves catalog products for the storefront grid,
// optionally narrowed by a text search and a category.
//
// Example:
//
//	query := NewListProductsQuery("laser", "printers")
//	products, err := handler.Handle(ctx, query)
type ListProductsQuery struct {
	search   string
	category string

	guard guard.ConstructorGuard
}

// NewListProductsQuery creates a query to list catalog products.
// Empty search and category mean the whole catalog.
func NewListProductsQuery(search string, category string) ListProductsQuery {
	return ListProductsQuery{
		search:   search,
		category: category,
		guard:    guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}

// Search returns the free-text filter, empty when unset.
func (q ListProductsQuery) Search() string {
	return q.search
}

// Category returns the category filter, empty when unset.
func (q ListProductsQuery) Category() string {
	return q.category
}
