package kernel

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// OrderType represents the delivery mode chosen at checkout.
// Each mode has its own shipping price table entry per region.
type OrderType int

const (
	// UnknownOrderType represents an invalid or undefined order type.
	// This value (0) helps catch uninitialized OrderType values.
	UnknownOrderType OrderType = iota

	// HomeDelivery ships the order to the customer's address.
	HomeDelivery

	// PickupPoint ships the order to a pickup desk in the destination region.
	PickupPoint
)

func getOrderTypeStrings() map[OrderType]string {
	return map[OrderType]string{
		UnknownOrderType: "unknown",
		HomeDelivery:     "home-delivery",
		PickupPoint:      "pickup-point",
	}
}

func getValidOrderTypeStrings() map[OrderType]string {
	//nolint:exhaustive // UnknownOrderType is intentionally excluded as it's invalid
	return map[OrderType]string{
		HomeDelivery: "home-delivery",
		PickupPoint:  "pickup-point",
	}
}

// ParseOrderType converts the wire representation of a delivery mode into an OrderType.
// Accepted values are "home-delivery" and "pickup-point"; anything else is rejected,
// an empty string with a required-value error so the checkout form can surface it.
func ParseOrderType(s string) (OrderType, error) {
	if s == "" {
		return UnknownOrderType, errs.NewValueIsRequiredError("orderType")
	}

	for orderType, str := range getValidOrderTypeStrings() {
		if str == s {
			return orderType, nil
		}
	}

	return UnknownOrderType, errs.NewValueIsInvalidErrorWithCause(
		"orderType",
		fmt.Errorf("%q is not a valid order type", s),
	)
}

// Validate checks if the OrderType value is valid.
// Valid order types are HomeDelivery and PickupPoint.
func (t OrderType) Validate() error {
	if _, ok := getValidOrderTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("orderType", fmt.Errorf("%d is not a valid order type", t))
	}
	return nil
}

// String returns the wire representation of the order type.
// It implements the fmt.Stringer interface and is safe to call on any value,
// including invalid ones, for which it returns "unknown".
func (t OrderType) String() string {
	if str, ok := getOrderTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}
