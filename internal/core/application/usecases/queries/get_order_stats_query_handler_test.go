package queries_test

import (
	"testing"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrderStatsQueryHandler_Handle(t *testing.T) {
	handler := queries.NewGetOrderStatsQueryHandler(boardFixture(t))

	stats, err := handler.Handle(t.Context(), queries.NewGetOrderStatsQuery())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalOrders)
	assert.Equal(t, 2, stats.HomeDeliveryCount)
	assert.Equal(t, 1, stats.PickupPointCount)
	// Two home deliveries at 41500+500 plus one pickup at 41500+0.
	assert.InDelta(t, 2*42000+41500, stats.TotalRevenue, 0.001)
}

func TestGetOrderStatsQueryHandler_Handle_EmptyStore(t *testing.T) {
	handler := queries.NewGetOrderStatsQueryHandler(&stubOrderRepository{orders: []*order.Order{}})

	stats, err := handler.Handle(t.Context(), queries.NewGetOrderStatsQuery())
	require.NoError(t, err)

	assert.Equal(t, 0, stats.TotalOrders)
	assert.InDelta(t, 0, stats.TotalRevenue, 0.001)
}

func TestGetOrderStatsQueryHandler_Handle_NotConstructed(t *testing.T) {
	handler := queries.NewGetOrderStatsQueryHandler(boardFixture(t))
	_, err := handler.Handle(t.Context(), queries.GetOrderStatsQuery{})
	require.ErrorIs(t, err, queries.ErrGetOrderStatsQueryIsNotConstructed)
}
