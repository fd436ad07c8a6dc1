package queries

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/ports"
)

// GetOrderStatsQueryHandler computes the dashboard counters over every stored
// order. Revenue sums grand totals, shipping included.
type GetOrderStatsQueryHandler struct {
	repo ports.OrderRepository
}

// NewGetOrderStatsQueryHandler creates a handler for the dashboard counters.
func NewGetOrderStatsQueryHandler(repo ports.OrderRepository) GetOrderStatsQueryHandler {
	return GetOrderStatsQueryHandler{repo: repo}
}

// Handle executes the query and returns the counters.
func (h GetOrderStatsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatsQuery,
) (GetOrderStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	all, err := h.repo.GetAll(ctx)
	if err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	var stats GetOrderStatsQueryResponse
	var revenue float64

	for _, aggregate := range all {
		stats.TotalOrders++
		revenue += aggregate.GrandTotal()

		switch aggregate.OrderType() {
		case kernel.HomeDelivery:
			stats.HomeDeliveryCount++
		case kernel.PickupPoint:
			stats.PickupPointCount++
		}
	}

	stats.TotalRevenue = kernel.RoundMoney(revenue)

	return stats, nil
}
