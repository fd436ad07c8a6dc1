package commands

import (
	"errors"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
)

// PlaceOrderCommand represents a checkout submission: the cart snapshot, the
// customer's contact details and the chosen delivery mode and destination.
//
// Example:
//
//	customer, _ := order.NewCustomer("Amine", "Bouzid", "0550123456", "")
//	dest, _ := kernel.NewDestination("12 - Algiers", "Kouba")
//	cmd, err := NewPlaceOrderCommand(kernel.HomeDelivery, customer, dest, cartSnapshot)
//	if err != nil {
//	    return fmt.Errorf("invalid checkout data: %w", err)
//	}
//
//	orderNumber, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderType   kernel.OrderType
	customer    order.Customer
	destination kernel.Destination
	snapshot    []cart.Line

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order.
// The order type, customer and destination must be valid value objects and the
// cart snapshot must be non-empty. Validation failures are surfaced to the
// submitter; nothing is persisted.
func NewPlaceOrderCommand(
	orderType kernel.OrderType,
	customer order.Customer,
	destination kernel.Destination,
	snapshot []cart.Line,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderType(orderType),
		cmd.setCustomer(customer),
		cmd.setDestination(destination),
		cmd.setSnapshot(snapshot),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderType returns the delivery mode of the submission.
func (c PlaceOrderCommand) OrderType() kernel.OrderType {
	return c.orderType
}

// Customer returns the contact details of the submission.
func (c PlaceOrderCommand) Customer() order.Customer {
	return c.customer
}

// Destination returns the delivery zone of the submission.
func (c PlaceOrderCommand) Destination() kernel.Destination {
	return c.destination
}

// Snapshot returns the cart lines of the submission.
func (c PlaceOrderCommand) Snapshot() []cart.Line {
	out := make([]cart.Line, len(c.snapshot))
	copy(out, c.snapshot)
	return out
}

func (c *PlaceOrderCommand) setOrderType(orderType kernel.OrderType) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	c.orderType = orderType
	return nil
}

func (c *PlaceOrderCommand) setCustomer(customer order.Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	c.customer = customer
	return nil
}

func (c *PlaceOrderCommand) setDestination(destination kernel.Destination) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	c.destination = destination
	return nil
}

func (c *PlaceOrderCommand) setSnapshot(snapshot []cart.Line) error {
	if len(snapshot) == 0 {
		return errs.NewValueIsRequiredError("cart is empty")
	}
	c.snapshot = make([]cart.Line, len(snapshot))
	copy(c.snapshot, snapshot)
	return nil
}
