package kernel

import (
	"sort"

	"storefront/internal/pkg/errs"
)

// regionSubRegions enumerates the delivery zones served by the storefront and the
// sub-regions belonging to each. The region codes double as the keys of the
// shipping price table, so the pricing package cross-checks itself against this
// dataset at load time.
var regionSubRegions = map[string][]string{
	"01 - Adrar":   {"Adrar", "Aoulef", "Charouine"},
	"02 - Chlef":   {"Chlef", "Abou", "Ain Merane"},
	"12 - Algiers": {"Algiers", "Bab El Oued", "Kouba"},
}

// RegionCodes returns the codes of all served regions in ascending order.
func RegionCodes() []string {
	codes := make([]string, 0, len(regionSubRegions))
	for code := range regionSubRegions {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// SubRegions returns the sub-regions of the given region code.
// The second return value reports whether the region is served at all.
func SubRegions(region string) ([]string, bool) {
	subRegions, ok := regionSubRegions[region]
	if !ok {
		return nil, false
	}

	out := make([]string, len(subRegions))
	copy(out, subRegions)
	return out, true
}

// IsServedRegion reports whether the given region code is a known delivery zone.
func IsServedRegion(region string) bool {
	_, ok := regionSubRegions[region]
	return ok
}

// ValidateRegion checks that the region is present and served.
func ValidateRegion(region string) error {
	if region == "" {
		return errs.NewValueIsRequiredError("region")
	}
	if !IsServedRegion(region) {
		return errs.NewValueIsInvalidError("region")
	}
	return nil
}
