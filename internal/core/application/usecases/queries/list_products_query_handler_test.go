package queries_test

import (
	"testing"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProductsQueryHandler_Handle(t *testing.T) {
	c, err := catalog.NewCatalog(catalog.DefaultProducts())
	require.NoError(t, err)
	handler := queries.NewListProductsQueryHandler(c)

	products, err := handler.Handle(t.Context(), queries.NewListProductsQuery("", ""))
	require.NoError(t, err)
	assert.Len(t, products, 4)

	products, err = handler.Handle(t.Context(), queries.NewListProductsQuery("epson", ""))
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, 3, products[0].ID)

	products, err = handler.Handle(t.Context(), queries.NewListProductsQuery("", "imprimantes"))
	require.NoError(t, err)
	assert.Len(t, products, 4)

	products, err = handler.Handle(t.Context(), queries.NewListProductsQuery("", "accessoires"))
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestListProductsQueryHandler_Handle_NotConstructed(t *testing.T) {
	c, err := catalog.NewCatalog(catalog.DefaultProducts())
	require.NoError(t, err)
	handler := queries.NewListProductsQueryHandler(c)

	_, err = handler.Handle(t.Context(), queries.ListProductsQuery{})
	require.ErrorIs(t, err, queries.ErrListProductsQueryIsNotConstructed)
}
