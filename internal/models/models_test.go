package models

import (
	"strings"
	"testing"

	"github.com/lexcabinet/facturation/internal/billing"
)

func TestClient_FullName(t *testing.T) {
	tests := []struct {
		name   string
		client Client
		want   string
	}{
		{"both parts", Client{Prenom: "Awa", Nom: "Ndiaye"}, "Awa Ndiaye"},
		{"company", Client{Nom: "SOCOCIM"}, "SOCOCIM"},
		{"empty", Client{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.client.FullName(); got != tt.want {
				t.Errorf("FullName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFeeInvoice_Status(t *testing.T) {
	tests := []struct {
		name    string
		status  FeeInvoiceStatus
		isDraft bool
		isFinal bool
		canEdit bool
	}{
		{"draft", FeeInvoiceDraft, true, false, true},
		{"final", FeeInvoiceFinal, false, true, false},
		{"paid", FeeInvoicePaid, false, true, false},
		{"cancelled", FeeInvoiceCancelled, false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := &FeeInvoice{Status: tt.status}
			if got := inv.IsDraft(); got != tt.isDraft {
				t.Errorf("IsDraft() = %v, want %v", got, tt.isDraft)
			}
			if got := inv.IsFinal(); got != tt.isFinal {
				t.Errorf("IsFinal() = %v, want %v", got, tt.isFinal)
			}
			if got := inv.CanEdit(); got != tt.canEdit {
				t.Errorf("CanEdit() = %v, want %v", got, tt.canEdit)
			}
		})
	}
}

func TestFeeInvoice_ComponentsRoundTrip(t *testing.T) {
	c := billing.FeeComponents{
		Disbursements: billing.Disbursements{Entrevue: 50000, Dossier: 100000, Huissier: 7500},
		Honoraria:     billing.Honoraria{Forfait: 1350000, TauxHoraire: 20000},
	}
	p := billing.Payment{Method: billing.PaymentCheque, ProvisionRequested: true, ProvisionAmount: 400000}

	var inv FeeInvoice
	inv.SetComponents(c)
	inv.SetPaymentTerms(p)

	if got := inv.Components(); got != c {
		t.Errorf("Components() = %+v, want %+v", got, c)
	}
	if got := inv.PaymentTerms(); got != p {
		t.Errorf("PaymentTerms() = %+v, want %+v", got, p)
	}
}

func TestFeeInvoice_ApplyTotals(t *testing.T) {
	c := billing.FeeComponents{
		Disbursements: billing.Disbursements{Entrevue: 50000, Dossier: 100000},
		Honoraria:     billing.Honoraria{Forfait: 1350000},
	}
	p := billing.Payment{Method: billing.PaymentVirement, ProvisionRequested: true, ProvisionAmount: 1770000}
	totals, errs := billing.Assemble(c, p)
	if !errs.Empty() {
		t.Fatalf("assemble: %v", errs)
	}

	var inv FeeInvoice
	inv.SetComponents(c)
	inv.SetPaymentTerms(p)
	inv.ApplyTotals(totals)

	if inv.TotalHT != 1500000 || inv.TVA != 270000 || inv.TotalTTC != 1770000 || inv.ResteAPayer != 0 {
		t.Errorf("snapshot = HT %d TVA %d TTC %d reste %d", inv.TotalHT, inv.TVA, inv.TotalTTC, inv.ResteAPayer)
	}
	if !strings.Contains(inv.ArreteEnLettres, "un million sept cent soixante-dix mille francs CFA") {
		t.Errorf("ArreteEnLettres = %q", inv.ArreteEnLettres)
	}
}
