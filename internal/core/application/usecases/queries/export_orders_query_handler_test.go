package queries_test

import (
	"bytes"
	"encoding/csv"
	"testing"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportOrdersQueryHandler_Handle(t *testing.T) {
	handler := queries.NewExportOrdersQueryHandler(boardFixture(t))
	query, err := queries.NewExportOrdersQuery("", kernel.UnknownOrderType, "")
	require.NoError(t, err)

	export, err := handler.Handle(t.Context(), query)
	require.NoError(t, err)

	assert.Regexp(t, `^orders-\d{4}-\d{2}-\d{2}\.csv$`, export.Filename)

	records, err := csv.NewReader(bytes.NewReader(export.Content)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4) // header plus three orders

	assert.Equal(t, []string{
		"Order Number", "Customer", "Phone", "Region",
		"Sub-region", "Type", "Grand Total", "Status", "Date",
	}, records[0])

	assert.Equal(t, []string{
		"AM260828003", "Yacine Bouzid", "0770111222", "01 - Adrar",
		"Aoulef", "pickup-point", "41500.00", "pending", "2026-08-28",
	}, records[1])
}

func TestExportOrdersQueryHandler_Handle_RespectsFilters(t *testing.T) {
	handler := queries.NewExportOrdersQueryHandler(boardFixture(t))
	query, err := queries.NewExportOrdersQuery("", kernel.HomeDelivery, "12 - Algiers")
	require.NoError(t, err)

	export, err := handler.Handle(t.Context(), query)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(export.Content)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "AM260828002", records[1][0])
}

func TestExportOrdersQueryHandler_Handle_NotConstructed(t *testing.T) {
	handler := queries.NewExportOrdersQueryHandler(boardFixture(t))
	_, err := handler.Handle(t.Context(), queries.ExportOrdersQuery{})
	require.ErrorIs(t, err, queries.ErrExportOrdersQueryIsNotConstructed)
}
