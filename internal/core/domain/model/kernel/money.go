package kernel

import "math"

// RoundMoney rounds a monetary amount to two decimal places.
// All totals computed by the domain pass through this helper so that sums are
// exact to the cent regardless of line order.
func RoundMoney(amount float64) float64 {
	return math.Round(amount*100) / 100
}
