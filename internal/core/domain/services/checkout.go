package services

import (
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/pricing"
	"storefront/internal/pkg/errs"
)

// CheckoutService is a domain service that turns a cart snapshot, the customer's
// form input and a freshly drawn order number into a persistable Order.
//
// Business rules:
//   - The cart must not be empty
//   - Order type, destination and primary phone are validated by their value
//     objects before any money is computed
//   - The shipping price is quoted from the pricing table by (order type,
//     region); unknown regions quote 0 by the table's permissive default
//   - The resulting order is always Pending with grandTotal = cartTotal +
//     shippingPrice
//
// The service is pure: it performs no I/O. Drawing the order number from the
// durable sequence is the caller's job, because a drawn number must never be
// returned even when assembling or persisting the order subsequently fails.
type CheckoutService struct {
	pricing pricing.Table
}

// NewCheckoutService creates a CheckoutService using the given pricing table.
func NewCheckoutService(table pricing.Table) (CheckoutService, error) {
	if err := table.Validate(); err != nil {
		return CheckoutService{}, err
	}
	return CheckoutService{pricing: table}, nil
}

// Checkout assembles the Order for a submission.
//
// Parameters:
//   - orderNumber: the number drawn from the durable sequence for this submission
//   - orderType: the delivery mode chosen by the customer
//   - customer: validated contact details
//   - destination: validated region / sub-region pair
//   - snapshot: the cart lines at submission time (must be non-empty)
//   - now: the submission timestamp stamped onto the order
//
// Returns the completed Order ready for persistence, or a validation error
// that is surfaced to the submitter without persisting anything.
func (s CheckoutService) Checkout(
	orderNumber string,
	orderType kernel.OrderType,
	customer order.Customer,
	destination kernel.Destination,
	snapshot []cart.Line,
	now time.Time,
) (*order.Order, error) {
	if len(snapshot) == 0 {
		return nil, errs.NewValueIsRequiredError("cart is empty")
	}

	items := make([]order.Item, len(snapshot))
	for i, line := range snapshot {
		items[i] = order.Item{
			ID:       line.ProductID,
			Name:     line.Name,
			Price:    line.Price,
			Quantity: line.Quantity,
		}
	}

	shippingPrice := s.pricing.Quote(orderType, destination.Region())

	return order.NewOrder(orderNumber, orderType, customer, destination, items, shippingPrice, now)
}
