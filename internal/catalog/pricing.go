package catalog

import "math"

// PriceAfter is the displayed sale price: the base price with the
// percentage discount applied, rounded to the nearest rupee. A zero
// discount leaves the price untouched.
func PriceAfter(p Product) int {
	return int(math.Round(float64(p.Price) * (1 - float64(p.Discount)/100)))
}
