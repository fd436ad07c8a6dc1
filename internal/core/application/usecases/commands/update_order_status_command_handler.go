package commands

import (
	"context"
)

// UpdateOrderStatusCommandHandler handles admin status changes.
// Changes exactly one field of one order; a missing order surfaces as
// errs.ObjectNotFoundError with no partial mutation.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  OrderEventPublisher
}

// NewUpdateOrderStatusCommandHandler creates a handler for status changes.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	publisher OrderEventPublisher,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the status change command.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().UpdateStatus(ctx, cmd.OrderNumber(), cmd.Status()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	// Best effort: the operator notification never fails a committed change.
	_ = h.publisher.PublishOrderStatusChanged(ctx, cmd.OrderNumber(), cmd.Status())

	return nil
}
