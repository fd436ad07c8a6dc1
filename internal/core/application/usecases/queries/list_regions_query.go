package queries

import (
	"errors"

	"storefront/internal/pkg/guard"
)

var (
	ErrListRegionsQueryIsNotConstructed = errors.New(
		"ListRegionsQuery must be created via NewListRegionsQuery constructor",
	)
)

// ListRegionsQuery retrieves the served regions and their sub-regions, for the
// checkout form's cascading destination selects.
type ListRegionsQuery struct {
	guard guard.ConstructorGuard
}

// NewListRegionsQuery creates a parameterless query for the served regions.
func NewListRegionsQuery() ListRegionsQuery {
	return ListRegionsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListRegionsQuery) Validate() error {
	return q.guard.Validate(ErrListRegionsQueryIsNotConstructed)
}

// ListRegionsQueryResponse describes one served region: its sub-regions and
// the shipping price of each delivery mode.
type ListRegionsQueryResponse struct {
	Code              string   `json:"code"`
	SubRegions        []string `json:"subRegions"`
	HomeDeliveryPrice float64  `json:"homeDeliveryPrice"`
	PickupPointPrice  float64  `json:"pickupPointPrice"`
}
