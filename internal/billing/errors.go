package billing

import (
	"fmt"
	"strings"
)

// Validation problems are returned, never panicked, so callers are
// forced to handle them; an invoice whose computation produced any of
// these must not be persisted or printed.

// NegativeAmountError reports a fee line item that parsed as a number
// but is negative. A negative line has no business meaning and must
// not silently understate the invoice.
type NegativeAmountError struct {
	Field string
}

func (e *NegativeAmountError) Error() string {
	return "negative_amount: " + e.Field
}

// InvalidNumericInputError reports a fee field that was present but not
// coercible to a number at all (an object, an array, ...). Distinct
// from a missing field, which coerces to zero.
type InvalidNumericInputError struct {
	Field string
}

func (e *InvalidNumericInputError) Error() string {
	return "invalid_numeric_input: " + e.Field
}

// ProvisionExceedsTotalError reports a requested provision larger than
// the tax-inclusive total. The balance due is never negative.
type ProvisionExceedsTotalError struct {
	ProvisionAmount int64
	TotalInclTax    int64
}

func (e *ProvisionExceedsTotalError) Error() string {
	return fmt.Sprintf("provision_exceeds_total: %d > %d", e.ProvisionAmount, e.TotalInclTax)
}

// ValidationErrors collects every problem found during an assembly so
// the caller can show them all at once instead of one per round-trip.
type ValidationErrors []error

func (v ValidationErrors) Empty() bool { return len(v) == 0 }

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, err := range v {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}
