package billing

// Settle applies the optional provision against the tax-inclusive
// total and returns the balance due (reste à payer).
//
// A provision larger than the total is an error, not a negative
// balance: the returned balance is always >= 0.
func Settle(totalInclTax int64, p Payment) (int64, error) {
	if !p.ProvisionRequested {
		return totalInclTax, nil
	}
	if p.ProvisionAmount < 0 {
		return 0, &NegativeAmountError{Field: "montant_provision"}
	}
	if p.ProvisionAmount > totalInclTax {
		return 0, &ProvisionExceedsTotalError{
			ProvisionAmount: p.ProvisionAmount,
			TotalInclTax:    totalInclTax,
		}
	}
	return totalInclTax - p.ProvisionAmount, nil
}
