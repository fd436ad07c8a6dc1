package ports

import (
	"context"

	"storefront/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Implementations exist for the relational store, the remote document store and
// the local single-device store; all of them address orders by order number.
//
// Every mutating call is immediately visible to any other reader of the same
// store: there is no caching layer between the repository and its medium.
type OrderRepository interface {
	// Add persists a freshly placed order.
	// The order must be valid and its order number must not already exist.
	Add(ctx context.Context, aggregate *order.Order) error

	// GetAll retrieves every stored order, most recent first.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// Get retrieves an order by its order number.
	// Returns errs.ObjectNotFoundError if no such order exists.
	Get(ctx context.Context, orderNumber string) (*order.Order, error)

	// UpdateStatus changes the status of the given order and nothing else.
	// Returns errs.ObjectNotFoundError if no such order exists.
	UpdateStatus(ctx context.Context, orderNumber string, status order.Status) error

	// Delete removes the given order permanently. There is no archival tier.
	// Returns errs.ObjectNotFoundError if no such order exists.
	Delete(ctx context.Context, orderNumber string) error
}
