package billing

// ApplyTax computes the TVA on a pre-tax subtotal and the resulting
// tax-inclusive total.
//
// Rounding policy: half-up to the nearest franc. Done in integer
// arithmetic so every caller gets the same canonical figure;
// multiplying large subtotals by 0.18 in floating point is not exact.
func ApplyTax(subtotalExclTax int64) (tax, totalInclTax int64) {
	tax = (subtotalExclTax*TaxRatePercent + 50) / 100
	return tax, subtotalExclTax + tax
}
