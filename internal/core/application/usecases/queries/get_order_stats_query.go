package queries

import (
	"errors"

	"storefront/internal/pkg/guard"
)

var (
	ErrGetOrderStatsQueryIsNotConstructed = errors.New(
		"GetOrderStatsQuery must be created via NewGetOrderStatsQuery constructor",
	)
)

// GetOrderStatsQuery computes the admin dashboard counters.
// The counters always cover the whole store: board filters never narrow them.
//
// Example:
//
//	query := NewGetOrderStatsQuery()
//	stats, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to compute stats: %w", err)
//	}
//
//	fmt.Printf("%d orders, %.2f DA revenue\n", stats.TotalOrders, stats.TotalRevenue)
type GetOrderStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderStatsQuery creates a parameterless query for the dashboard counters.
func NewGetOrderStatsQuery() GetOrderStatsQuery {
	return GetOrderStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatsQueryIsNotConstructed)
}

// GetOrderStatsQueryResponse carries the dashboard counters.
type GetOrderStatsQueryResponse struct {
	TotalOrders       int     `json:"totalOrders"`
	TotalRevenue      float64 `json:"totalRevenue"`
	HomeDeliveryCount int     `json:"homeDeliveryCount"`
	PickupPointCount  int     `json:"pickupPointCount"`
}
