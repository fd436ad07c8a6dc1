package order

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Item is an immutable snapshot of one cart line, copied into the order at
// submission time. Later catalog price changes never touch a placed order.
type Item struct {
	ID       int     `json:"id" bson:"id"`
	Name     string  `json:"name" bson:"name"`
	Price    float64 `json:"price" bson:"price"`
	Quantity int     `json:"quantity" bson:"quantity"`
}

// Order is the aggregate root created once at checkout submission.
//
// Order follows these invariants:
//   - The order number, item snapshot, customer, destination, order type and
//     every monetary field are immutable after creation
//   - grandTotal is always the sum of cartTotal and shippingPrice at the moment
//     of creation and is never independently edited
//   - Only the status may be mutated post-creation, through ChangeStatus
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	orderNumber   string
	status        Status
	orderType     kernel.OrderType
	customer      Customer
	destination   kernel.Destination
	items         []Item
	cartTotal     float64
	shippingPrice float64
	grandTotal    float64
	date          time.Time

	isConstructed bool
}

// NewOrder creates a freshly submitted Order in Pending status.
//
// The cart subtotal is computed from the item snapshot and the grand total from
// subtotal plus shipping, both rounded to two decimal places. All inputs are
// validated; a nil error guarantees the aggregate satisfies its invariants.
func NewOrder(
	orderNumber string,
	orderType kernel.OrderType,
	customer Customer,
	destination kernel.Destination,
	items []Item,
	shippingPrice float64,
	date time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setOrderNumber(orderNumber),
		o.setOrderType(orderType),
		o.setCustomer(customer),
		o.setDestination(destination),
		o.setItems(items),
		o.setShippingPrice(shippingPrice),
		o.setDate(date),
	); err != nil {
		return nil, err
	}

	o.cartTotal = subtotal(o.items)
	o.grandTotal = kernel.RoundMoney(o.cartTotal + o.shippingPrice)

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence.
//
// Stored totals are taken as-is rather than recomputed, so an order read back
// from the store is byte-identical to the one written, but the grand total
// invariant is still checked to catch corrupted records.
func RestoreOrder(
	orderNumber string,
	status Status,
	orderType kernel.OrderType,
	customer Customer,
	destination kernel.Destination,
	items []Item,
	cartTotal float64,
	shippingPrice float64,
	grandTotal float64,
	date time.Time,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setOrderNumber(orderNumber),
		o.setStatus(status),
		o.setOrderType(orderType),
		o.setCustomer(customer),
		o.setDestination(destination),
		o.setItems(items),
		o.setShippingPrice(shippingPrice),
		o.setDate(date),
	); err != nil {
		return nil, err
	}

	if kernel.RoundMoney(cartTotal+shippingPrice) != kernel.RoundMoney(grandTotal) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"grandTotal",
			fmt.Errorf("%v is not the sum of cart total %v and shipping %v", grandTotal, cartTotal, shippingPrice),
		)
	}

	o.cartTotal = cartTotal
	o.grandTotal = grandTotal

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a factory.
// This prevents bypassing validation by directly instantiating the struct and
// should be called when handing orders to persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their order numbers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.orderNumber == other.orderNumber
}

// OrderNumber returns the order's unique human-readable identifier.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// OrderType returns the delivery mode of the order.
func (o *Order) OrderType() kernel.OrderType {
	return o.orderType
}

// Customer returns the contact details captured at checkout.
func (o *Order) Customer() Customer {
	return o.customer
}

// Destination returns the delivery zone of the order.
func (o *Order) Destination() kernel.Destination {
	return o.destination
}

// Items returns a copy of the item snapshot taken at submission time.
func (o *Order) Items() []Item {
	out := make([]Item, len(o.items))
	copy(out, o.items)
	return out
}

// CartTotal returns the cart subtotal computed at submission time.
func (o *Order) CartTotal() float64 {
	return o.cartTotal
}

// ShippingPrice returns the shipping cost quoted at submission time.
func (o *Order) ShippingPrice() float64 {
	return o.shippingPrice
}

// GrandTotal returns the amount charged to the customer:
// cart subtotal plus shipping cost.
func (o *Order) GrandTotal() float64 {
	return o.grandTotal
}

// Date returns the submission timestamp.
func (o *Order) Date() time.Time {
	return o.date
}

// ChangeStatus moves the order to the given status.
//
// Any valid status can follow any other; the storefront's admin workflow
// enforces no transition rules. Only status membership is validated.
func (o *Order) ChangeStatus(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setOrderType(orderType kernel.OrderType) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	o.orderType = orderType
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setDestination(destination kernel.Destination) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	o.destination = destination
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("cartItems")
	}

	for _, item := range items {
		if item.Quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"cartItems",
				fmt.Errorf("item %d has non-positive quantity %d", item.ID, item.Quantity),
			)
		}
		if item.Price < 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"cartItems",
				fmt.Errorf("item %d has negative price %v", item.ID, item.Price),
			)
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setShippingPrice(shippingPrice float64) error {
	if shippingPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"shippingPrice",
			fmt.Errorf("%v is negative", shippingPrice),
		)
	}
	o.shippingPrice = shippingPrice
	return nil
}

func (o *Order) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}
	o.date = date
	return nil
}

func subtotal(items []Item) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return kernel.RoundMoney(total)
}
