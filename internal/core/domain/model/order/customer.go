package order

import (
	"strings"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when attempting to use an improperly
// initialized Customer. Customers must be created via NewCustomer.
var ErrCustomerIsNotConstructed = errs.NewValueIsRequiredError(
	"customer must be created via NewCustomer constructor")

// Customer holds the contact details captured by the checkout form.
// The primary phone is mandatory; everything else is free text the way the
// customer typed it, with surrounding whitespace trimmed.
type Customer struct {
	firstName string
	lastName  string
	phone1    string
	phone2    string
	guard     guard.ConstructorGuard
}

// NewCustomer creates a Customer. The primary phone must be non-empty;
// the secondary phone is optional.
func NewCustomer(firstName string, lastName string, phone1 string, phone2 string) (Customer, error) {
	phone1 = strings.TrimSpace(phone1)
	if phone1 == "" {
		return Customer{}, errs.NewValueIsRequiredError("phone1")
	}

	return Customer{
		firstName: strings.TrimSpace(firstName),
		lastName:  strings.TrimSpace(lastName),
		phone1:    phone1,
		phone2:    strings.TrimSpace(phone2),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Customer was properly constructed via NewCustomer.
func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// FirstName returns the customer's first name.
func (c Customer) FirstName() string {
	return c.firstName
}

// LastName returns the customer's last name.
func (c Customer) LastName() string {
	return c.lastName
}

// Phone1 returns the customer's primary phone number.
func (c Customer) Phone1() string {
	return c.phone1
}

// Phone2 returns the customer's secondary phone number, empty when not given.
func (c Customer) Phone2() string {
	return c.phone2
}

// FullName returns "first last" for display and CSV export.
func (c Customer) FullName() string {
	return strings.TrimSpace(c.firstName + " " + c.lastName)
}
