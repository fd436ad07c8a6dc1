package catalog_test

import (
	"testing"

	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog(t *testing.T) {
	t.Run("builds_catalog_from_default_products", func(t *testing.T) {
		c, err := catalog.NewCatalog(catalog.DefaultProducts())

		require.NoError(t, err)
		assert.Len(t, c.Products(), 4)
	})

	t.Run("rejects_duplicate_product_ids", func(t *testing.T) {
		_, err := catalog.NewCatalog([]catalog.Product{
			{ID: 1, Name: "a", Price: 10},
			{ID: 1, Name: "b", Price: 20},
		})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_negative_price", func(t *testing.T) {
		_, err := catalog.NewCatalog([]catalog.Product{
			{ID: 1, Name: "a", Price: -1},
		})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestCatalog_Get(t *testing.T) {
	c, err := catalog.NewCatalog(catalog.DefaultProducts())
	require.NoError(t, err)

	t.Run("returns_product_by_id", func(t *testing.T) {
		p, err := c.Get(1)

		require.NoError(t, err)
		assert.Equal(t, "Imprimante Laser Canon LBP6030B", p.Name)
		assert.InDelta(t, 41500, p.Price, 0.001)
	})

	t.Run("unknown_id_is_not_found", func(t *testing.T) {
		_, err := c.Get(99)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestCatalog_Filter(t *testing.T) {
	c, err := catalog.NewCatalog(catalog.DefaultProducts())
	require.NoError(t, err)

	t.Run("empty_filter_returns_everything", func(t *testing.T) {
		assert.Len(t, c.Filter("", ""), 4)
	})

	t.Run("search_matches_name_case_insensitively", func(t *testing.T) {
		matched := c.Filter("CANON", "")

		require.Len(t, matched, 2)
		assert.Equal(t, 1, matched[0].ID)
		assert.Equal(t, 2, matched[1].ID)
	})

	t.Run("search_matches_description", func(t *testing.T) {
		matched := c.Filter("toner", "")

		require.Len(t, matched, 1)
		assert.Equal(t, 1, matched[0].ID)
	})

	t.Run("category_matches_exactly", func(t *testing.T) {
		assert.Len(t, c.Filter("", "imprimantes"), 4)
		assert.Empty(t, c.Filter("", "claviers"))
	})

	t.Run("no_match_returns_empty_slice", func(t *testing.T) {
		assert.Empty(t, c.Filter("tablette", ""))
	})
}
