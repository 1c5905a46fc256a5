package billing

import "github.com/lexcabinet/facturation/internal/frwords"

// Assemble runs the whole pipeline (aggregation, TVA, provision)
// and returns the invoice totals, or every validation error found
// across all stages. It never fails fast: a form can show the user all
// problems in one pass.
//
// Assemble is pure and deterministic; the editing form calls it on
// every change and the same input always yields the same totals.
func Assemble(c FeeComponents, p Payment) (*InvoiceTotals, ValidationErrors) {
	totalDisb, totalHon, errs := Aggregate(c)

	subtotal := totalDisb + totalHon
	tax, ttc := ApplyTax(subtotal)

	balance, err := Settle(ttc, p)
	if err != nil {
		errs = append(errs, err)
	}

	if !errs.Empty() {
		return nil, errs
	}
	return &InvoiceTotals{
		TotalDisbursements: totalDisb,
		TotalHonoraria:     totalHon,
		SubtotalExclTax:    subtotal,
		Tax:                tax,
		TotalInclTax:       ttc,
		BalanceDue:         balance,
		Payment:            p,
	}, nil
}

// DescribeAmount renders the legal spelled-out form of the totals: the
// tax-inclusive amount and, when a provision was requested, the
// remaining balance.
func DescribeAmount(t *InvoiceTotals) string {
	s := frwords.AmountInWords(t.TotalInclTax, CurrencyName)
	if t.Payment.ProvisionRequested {
		s += ", reste à payer " + frwords.AmountInWords(t.BalanceDue, CurrencyName)
	}
	return s
}
