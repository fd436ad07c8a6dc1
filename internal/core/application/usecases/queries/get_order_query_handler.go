package queries

import (
	"context"

	"storefront/internal/core/ports"
)

// GetOrderQueryHandler retrieves a single order read model.
// A missing order surfaces as errs.ObjectNotFoundError.
type GetOrderQueryHandler struct {
	repo ports.OrderRepository
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
func NewGetOrderQueryHandler(repo ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{repo: repo}
}

// Handle executes the query and returns the order's read model.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	aggregate, err := h.repo.Get(ctx, query.OrderNumber())
	if err != nil {
		return OrderResponse{}, err
	}

	return newOrderResponse(aggregate), nil
}
