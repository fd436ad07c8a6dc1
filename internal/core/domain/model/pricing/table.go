// Package pricing provides the shipping price table of the storefront.
// Prices are keyed by (delivery mode, region) and are validated against the
// kernel region dataset when the table is constructed, so a priced region that
// is not served - or a served region without a price - is caught at startup
// rather than at checkout.
package pricing

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrTableIsNotConstructed is returned when attempting to use an improperly
// initialized Table. Tables must be created via NewTable.
var ErrTableIsNotConstructed = errs.NewValueIsRequiredError(
	"pricing table must be created via NewTable constructor")

// homeDeliveryPrices maps region codes to the home-delivery shipping cost.
var homeDeliveryPrices = map[string]float64{
	"01 - Adrar":   2500,
	"02 - Chlef":   800,
	"12 - Algiers": 500,
}

// pickupPointPrices maps region codes to the pickup-desk shipping cost.
// Algiers pickup is free.
var pickupPointPrices = map[string]float64{
	"01 - Adrar":   600,
	"02 - Chlef":   600,
	"12 - Algiers": 0,
}

// Table is the shipping cost lookup used at checkout. It is an immutable value
// object; the zero value is invalid and will fail validation.
type Table struct {
	home   map[string]float64
	pickup map[string]float64
	guard  guard.ConstructorGuard
}

// NewTable builds the shipping price table and validates it against the kernel
// region dataset: every served region must carry a non-negative price for both
// delivery modes, and no price may refer to a region that is not served.
func NewTable() (Table, error) {
	if err := errors.Join(
		validatePrices("home-delivery", homeDeliveryPrices),
		validatePrices("pickup-point", pickupPointPrices),
	); err != nil {
		return Table{}, err
	}

	return Table{
		home:   homeDeliveryPrices,
		pickup: pickupPointPrices,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Table was properly constructed via NewTable.
func (t Table) Validate() error {
	return t.guard.Validate(ErrTableIsNotConstructed)
}

// Quote returns the shipping cost for delivering an order of the given type to
// the given region. An unknown region quotes 0: the storefront deliberately
// treats unlisted regions as free shipping instead of failing the checkout.
func (t Table) Quote(orderType kernel.OrderType, region string) float64 {
	switch orderType {
	case kernel.HomeDelivery:
		return t.home[region]
	case kernel.PickupPoint:
		return t.pickup[region]
	default:
		return 0
	}
}

func validatePrices(mode string, prices map[string]float64) error {
	for region, price := range prices {
		if !kernel.IsServedRegion(region) {
			return errs.NewValueIsInvalidErrorWithCause(
				"pricing table",
				fmt.Errorf("%s price refers to unserved region %q", mode, region),
			)
		}
		if price < 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"pricing table",
				fmt.Errorf("%s price for region %q is negative", mode, region),
			)
		}
	}

	for _, region := range kernel.RegionCodes() {
		if _, ok := prices[region]; !ok {
			return errs.NewValueIsInvalidErrorWithCause(
				"pricing table",
				fmt.Errorf("served region %q has no %s price", region, mode),
			)
		}
	}

	return nil
}
