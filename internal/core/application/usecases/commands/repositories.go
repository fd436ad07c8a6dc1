// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// and persistence.
package commands

import (
	"context"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderUoW manages transactions for order operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)

// OrderEventPublisher notifies the operator-facing event stream about order
// activity. Publishing is best-effort: command handlers never fail a committed
// operation because the broker is unreachable.
type OrderEventPublisher interface {
	// PublishOrderPlaced announces a freshly placed order.
	PublishOrderPlaced(ctx context.Context, placed *order.Order) error

	// PublishOrderStatusChanged announces an admin status change.
	PublishOrderStatusChanged(ctx context.Context, orderNumber string, status order.Status) error
}

// NopEventPublisher is an OrderEventPublisher that discards all events.
// Used when no message broker is configured.
type NopEventPublisher struct{}

// PublishOrderPlaced discards the event.
func (NopEventPublisher) PublishOrderPlaced(_ context.Context, _ *order.Order) error {
	return nil
}

// PublishOrderStatusChanged discards the event.
func (NopEventPublisher) PublishOrderStatusChanged(_ context.Context, _ string, _ order.Status) error {
	return nil
}
