package billing

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestDecodeFeeComponents(t *testing.T) {
	payload := `{
		"debours": {"entrevue": 50000, "dossier": "100000", "plaidoirie": null},
		"honoraires": {"forfait": 1350000}
	}`
	var raw map[string]any
	if err := json.NewDecoder(strings.NewReader(payload)).Decode(&raw); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	c, errs := DecodeFeeComponents(raw)
	if !errs.Empty() {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if c.Disbursements.Entrevue != 50000 {
		t.Errorf("entrevue = %d, want 50000", c.Disbursements.Entrevue)
	}
	if c.Disbursements.Dossier != 100000 {
		t.Errorf("dossier (string input) = %d, want 100000", c.Disbursements.Dossier)
	}
	if c.Disbursements.Plaidoirie != 0 {
		t.Errorf("plaidoirie (null) = %d, want 0", c.Disbursements.Plaidoirie)
	}
	if c.Disbursements.Huissier != 0 {
		t.Errorf("huissier (absent) = %d, want 0", c.Disbursements.Huissier)
	}
	if c.Honoraria.Forfait != 1350000 {
		t.Errorf("forfait = %d, want 1350000", c.Honoraria.Forfait)
	}
}

func TestDecodeFeeComponentsMissingGroups(t *testing.T) {
	c, errs := DecodeFeeComponents(map[string]any{})
	if !errs.Empty() {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if c != (FeeComponents{}) {
		t.Errorf("expected zero components, got %+v", c)
	}
}

func TestDecodeFeeComponentsInvalidInputs(t *testing.T) {
	tests := []struct {
		name      string
		value     any
		wantField string
	}{
		{"array", []any{1, 2}, "entrevue"},
		{"object", map[string]any{"x": 1}, "entrevue"},
		{"bool", true, "entrevue"},
		{"fractional", 12.5, "entrevue"},
		{"non numeric string", "abc", "entrevue"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := map[string]any{"debours": map[string]any{"entrevue": tt.value}}
			_, errs := DecodeFeeComponents(raw)
			if len(errs) != 1 {
				t.Fatalf("expected 1 error, got %v", errs)
			}
			var numErr *InvalidNumericInputError
			if !errors.As(errs[0], &numErr) {
				t.Fatalf("expected InvalidNumericInputError, got %v", errs[0])
			}
			if numErr.Field != tt.wantField {
				t.Errorf("field = %q, want %q", numErr.Field, tt.wantField)
			}
		})
	}
}

func TestDecodeFeeComponentsGroupNotObject(t *testing.T) {
	raw := map[string]any{"debours": "oops"}
	_, errs := DecodeFeeComponents(raw)
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %v", errs)
	}
	var numErr *InvalidNumericInputError
	if !errors.As(errs[0], &numErr) || numErr.Field != "debours" {
		t.Errorf("expected InvalidNumericInputError on debours, got %v", errs[0])
	}
}

func TestDecodeFeeComponentsEmptyStringIsZero(t *testing.T) {
	raw := map[string]any{"honoraires": map[string]any{"forfait": "  "}}
	c, errs := DecodeFeeComponents(raw)
	if !errs.Empty() {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if c.Honoraria.Forfait != 0 {
		t.Errorf("forfait = %d, want 0", c.Honoraria.Forfait)
	}
}
