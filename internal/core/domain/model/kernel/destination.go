package kernel

import (
	"errors"
	"fmt"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrDestinationIsNotConstructed is returned when attempting to use an improperly
// initialized Destination. Destinations must be created via NewDestination.
var ErrDestinationIsNotConstructed = errs.NewValueIsRequiredError(
	"destination must be created via NewDestination constructor")

// Destination represents the delivery address zone of an order: a served region and
// one of its sub-regions. Destination is an immutable value object; the zero value is
// invalid and will fail validation - use the constructor to create instances.
//
// Example:
//
//	dest, err := kernel.NewDestination("12 - Algiers", "Kouba")
//	if err != nil {
//	    // Handle validation error
//	}
type Destination struct { //nolint:recvcheck //using for validation
	region    string
	subRegion string
	guard     guard.ConstructorGuard
}

// NewDestination creates a Destination from a region code and a sub-region name.
// Both values must be non-empty, the region must be a served delivery zone, and the
// sub-region must belong to the chosen region.
func NewDestination(region string, subRegion string) (Destination, error) {
	dest := Destination{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(dest.setRegion(region), dest.setSubRegion(subRegion)); err != nil {
		return Destination{}, err
	}

	return dest, nil
}

// Validate checks if the Destination was properly constructed via NewDestination.
// The zero value of Destination is invalid and will fail this validation.
func (d Destination) Validate() error {
	return d.guard.Validate(ErrDestinationIsNotConstructed)
}

// Region returns the region code of the destination, e.g. "12 - Algiers".
func (d Destination) Region() string {
	return d.region
}

// SubRegion returns the sub-region name within the destination's region.
func (d Destination) SubRegion() string {
	return d.subRegion
}

// IsEqual compares two destinations by value.
func (d Destination) IsEqual(other Destination) bool {
	return d.region == other.region && d.subRegion == other.subRegion
}

// String returns a human-readable representation of the destination.
func (d Destination) String() string {
	return fmt.Sprintf("%s / %s", d.region, d.subRegion)
}

func (d *Destination) setRegion(region string) error {
	if err := ValidateRegion(region); err != nil {
		return err
	}
	d.region = region
	return nil
}

func (d *Destination) setSubRegion(subRegion string) error {
	if subRegion == "" {
		return errs.NewValueIsRequiredError("subRegion")
	}

	subRegions, ok := regionSubRegions[d.region]
	if !ok {
		// setRegion already reported the unknown region.
		return nil
	}

	for _, candidate := range subRegions {
		if candidate == subRegion {
			d.subRegion = subRegion
			return nil
		}
	}

	return errs.NewValueIsInvalidErrorWithCause(
		"subRegion",
		fmt.Errorf("%q does not belong to region %q", subRegion, d.region),
	)
}
