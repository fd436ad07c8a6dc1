package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
)

// PlaceOrderCommandHandler handles the business logic for checkout submission.
// Draws the next order number from the durable sequence, assembles the order
// through the checkout domain service and persists it in Pending status.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, sequence, checkout, publisher)
//	orderNumber, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
//	fmt.Printf("Order %s placed", orderNumber)
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	sequence   ports.SequenceRepository
	checkout   services.CheckoutService
	publisher  OrderEventPublisher
}

// NewPlaceOrderCommandHandler creates a handler for checkout submissions.
func NewPlaceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	sequence ports.SequenceRepository,
	checkout services.CheckoutService,
	publisher OrderEventPublisher,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		sequence:   sequence,
		checkout:   checkout,
		publisher:  publisher,
	}
}

// Handle processes the checkout submission and returns the placed order number.
//
// The sequence draw happens before the order transaction begins: a consumed
// value is never returned, so a submission that fails after the draw leaves a
// gap in the visible sequence instead of risking a reused number.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	seq, err := h.sequence.Next(ctx)
	if err != nil {
		return "", err
	}

	now := time.Now()
	orderNumber := order.NumberFor(now, seq)

	placed, err := h.checkout.Checkout(
		orderNumber,
		cmd.OrderType(),
		cmd.Customer(),
		cmd.Destination(),
		cmd.Snapshot(),
		now,
	)
	if err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	// Best effort: a committed order is never failed because the broker is down.
	_ = h.publisher.PublishOrderPlaced(ctx, placed)

	return orderNumber, nil
}
