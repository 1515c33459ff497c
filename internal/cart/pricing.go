package cart

import "math"

// DefaultTaxRate is applied when callers do not supply their own rate.
const DefaultTaxRate = 0.08

// roundCents rounds half-up to two decimal places. Totals are recomputed
// from line items on every change, so rounding happens once per derived
// value instead of accumulating float drift across additions.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// Subtotal sums unit price times quantity across all lines.
func Subtotal(items []LineItem) float64 {
	sum := 0.0
	for _, item := range items {
		sum += item.UnitPrice * float64(item.Quantity)
	}
	return roundCents(sum)
}

// Tax computes tax on a subtotal at the given rate.
func Tax(subtotal, rate float64) float64 {
	return roundCents(subtotal * rate)
}

// Total combines an already-rounded subtotal and tax.
func Total(subtotal, tax float64) float64 {
	return roundCents(subtotal + tax)
}

// ItemCount sums quantities, not line count.
func ItemCount(items []LineItem) int {
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count
}
