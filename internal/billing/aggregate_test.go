package billing

import (
	"errors"
	"testing"
)

func TestAggregate(t *testing.T) {
	c := FeeComponents{
		Disbursements: Disbursements{Entrevue: 50000, Dossier: 100000},
		Honoraria:     Honoraria{Forfait: 1350000},
	}
	disb, hon, errs := Aggregate(c)
	if !errs.Empty() {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if disb != 150000 {
		t.Errorf("totalDisbursements = %d, want 150000", disb)
	}
	if hon != 1350000 {
		t.Errorf("totalHonoraria = %d, want 1350000", hon)
	}
}

func TestAggregateEmpty(t *testing.T) {
	disb, hon, errs := Aggregate(FeeComponents{})
	if disb != 0 || hon != 0 || !errs.Empty() {
		t.Errorf("Aggregate(zero) = %d, %d, %v", disb, hon, errs)
	}
}

func TestAggregateNegativeFields(t *testing.T) {
	c := FeeComponents{
		Disbursements: Disbursements{Entrevue: -1, Dossier: 100},
		Honoraria:     Honoraria{Resultat: -50},
	}
	_, _, errs := Aggregate(c)
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", len(errs), errs)
	}
	fields := map[string]bool{}
	for _, err := range errs {
		var negErr *NegativeAmountError
		if !errors.As(err, &negErr) {
			t.Fatalf("expected NegativeAmountError, got %v", err)
		}
		fields[negErr.Field] = true
	}
	if !fields["entrevue"] || !fields["resultat"] {
		t.Errorf("wrong fields reported: %v", fields)
	}
}
