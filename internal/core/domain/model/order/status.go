package order

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Status represents the admin-managed lifecycle value of an order.
//
// Unlike a classic order state machine, transitions are deliberately
// unrestricted: operators correct mistakes by moving an order to any status at
// any time, so Validate only checks membership, never transition legality.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	UnknownStatus Status = iota

	// Pending is the initial status of every freshly placed order.
	Pending

	// Accepted means an operator confirmed the order.
	Accepted

	// Shipped means the order was handed to the carrier.
	Shipped

	// Arrived means the order reached the customer or pickup desk.
	Arrived

	// Returned means the order came back undelivered.
	Returned
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "unknown",
		Pending:       "pending",
		Accepted:      "accepted",
		Shipped:       "shipped",
		Arrived:       "arrived",
		Returned:      "returned",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownStatus is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:  "pending",
		Accepted: "accepted",
		Shipped:  "shipped",
		Arrived:  "arrived",
		Returned: "returned",
	}
}

// ParseStatus converts the wire representation of a status into a Status.
func ParseStatus(s string) (Status, error) {
	if s == "" {
		return UnknownStatus, errs.NewValueIsRequiredError("status")
	}

	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}

	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
// Valid statuses are: Pending, Accepted, Shipped, Arrived, Returned.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status.
// It implements the fmt.Stringer interface and is safe to call on any value,
// including invalid ones, for which it returns "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
