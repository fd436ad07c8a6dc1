package queries

import (
	"context"

	"storefront/internal/core/domain/model/catalog"
)

// ListProductsQueryHandler serves the storefront product grid.
// The catalog is in-memory reference data, so the handler has no storage
// dependency.
type ListProductsQueryHandler struct {
	catalog *catalog.Catalog
}

// NewListProductsQueryHandler creates a handler for product listing queries.
func NewListProductsQueryHandler(c *catalog.Catalog) ListProductsQueryHandler {
	return ListProductsQueryHandler{catalog: c}
}

// Handle executes the query. Catalog order is preserved.
func (h ListProductsQueryHandler) Handle(
	_ context.Context,
	query ListProductsQuery,
) ([]catalog.Product, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.catalog.Filter(query.Search(), query.Category()), nil
}
