package queries

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/pricing"
)

// ListRegionsQueryHandler serves the delivery zone reference data.
// The zones and their prices are compiled into the domain model, so the
// handler has no storage dependency.
type ListRegionsQueryHandler struct {
	table pricing.Table
}

// NewListRegionsQueryHandler creates a handler for the served-regions query.
func NewListRegionsQueryHandler(table pricing.Table) ListRegionsQueryHandler {
	return ListRegionsQueryHandler{table: table}
}

// Handle executes the query. Regions come back sorted by code, each with its
// sub-regions in their declared order.
func (h ListRegionsQueryHandler) Handle(
	_ context.Context,
	query ListRegionsQuery,
) ([]ListRegionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	codes := kernel.RegionCodes()
	responses := make([]ListRegionsQueryResponse, 0, len(codes))
	for _, code := range codes {
		subRegions, _ := kernel.SubRegions(code)
		responses = append(responses, ListRegionsQueryResponse{
			Code:              code,
			SubRegions:        subRegions,
			HomeDeliveryPrice: h.table.Quote(kernel.HomeDelivery, code),
			PickupPointPrice:  h.table.Quote(kernel.PickupPoint, code),
		})
	}

	return responses, nil
}
