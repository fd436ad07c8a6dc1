package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery retrieves stored orders for the admin board, most recent
// first, optionally narrowed by a text search, a delivery mode or a region.
// Empty filters mean "everything"; filters combine with AND.
//
// Example:
//
//	query, err := NewListOrdersQuery("0550", kernel.HomeDelivery, "12 - Algiers")
//	if err != nil {
//	    return fmt.Errorf("invalid filter: %w", err)
//	}
//
//	orders, err := handler.Handle(ctx, query)
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	search    string
	orderType kernel.OrderType
	region    string

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query to list orders.
// The search text matches order numbers, customer names and primary phone
// numbers case-insensitively. Pass kernel.UnknownOrderType and an empty region
// to skip those filters; a non-empty region must be a served region code.
func NewListOrdersQuery(search string, orderType kernel.OrderType, region string) (ListOrdersQuery, error) {
	q := ListOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setSearch(search),
		q.setOrderType(orderType),
		q.setRegion(region),
	); err != nil {
		return ListOrdersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersQueryIsNotConstructed if validation fails.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Search returns the free-text filter, empty when unset.
func (q ListOrdersQuery) Search() string {
	return q.search
}

// OrderType returns the delivery mode filter, UnknownOrderType when unset.
func (q ListOrdersQuery) OrderType() kernel.OrderType {
	return q.orderType
}

// Region returns the region filter, empty when unset.
func (q ListOrdersQuery) Region() string {
	return q.region
}

func (q *ListOrdersQuery) setSearch(search string) error {
	q.search = search
	return nil
}

func (q *ListOrdersQuery) setOrderType(orderType kernel.OrderType) error {
	if orderType != kernel.UnknownOrderType {
		if err := orderType.Validate(); err != nil {
			return err
		}
	}
	q.orderType = orderType
	return nil
}

func (q *ListOrdersQuery) setRegion(region string) error {
	if region != "" {
		if err := kernel.ValidateRegion(region); err != nil {
			return err
		}
	}
	q.region = region
	return nil
}
