package queries

import (
	"context"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
)

// ListOrdersQueryHandler retrieves orders for the admin board.
// Filtering happens on the read side over the repository's most-recent-first
// listing, so every storage backend serves the same board semantics.
//
// Example:
//
//	handler := NewListOrdersQueryHandler(repo)
//	query, _ := NewListOrdersQuery("", kernel.UnknownOrderType, "")
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to list orders: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Found %d orders\n", len(orders))
type ListOrdersQueryHandler struct {
	repo ports.OrderRepository
}

// NewListOrdersQueryHandler creates a handler for order listing queries.
func NewListOrdersQueryHandler(repo ports.OrderRepository) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{repo: repo}
}

// Handle executes the listing query.
// Returns matching orders in the store's most-recent-first order; filters
// never reorder results.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	all, err := h.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, 0, len(all))
	for _, aggregate := range all {
		if !matchesFilters(aggregate, query) {
			continue
		}
		responses = append(responses, newOrderResponse(aggregate))
	}

	return responses, nil
}

func matchesFilters(aggregate *order.Order, query ListOrdersQuery) bool {
	if query.OrderType() != kernel.UnknownOrderType && aggregate.OrderType() != query.OrderType() {
		return false
	}

	if query.Region() != "" && aggregate.Destination().Region() != query.Region() {
		return false
	}

	if search := strings.ToLower(strings.TrimSpace(query.Search())); search != "" {
		customer := aggregate.Customer()
		haystacks := []string{
			aggregate.OrderNumber(),
			customer.FirstName(),
			customer.LastName(),
			customer.Phone1(),
		}

		found := false
		for _, haystack := range haystacks {
			if strings.Contains(strings.ToLower(haystack), search) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}
