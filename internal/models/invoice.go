package models

import (
	"fmt"
	"time"

	"github.com/lexcabinet/facturation/internal/billing"
	"gorm.io/gorm"
)

// FeeInvoiceStatus represents the status of a fee invoice.
type FeeInvoiceStatus string

const (
	FeeInvoiceDraft     FeeInvoiceStatus = "draft"
	FeeInvoiceFinal     FeeInvoiceStatus = "final"
	FeeInvoicePaid      FeeInvoiceStatus = "paid"
	FeeInvoiceCancelled FeeInvoiceStatus = "cancelled"
)

// FeeInvoice is the persisted snapshot of one fee invoice: the raw
// line items as entered, the payment terms, and the computed totals
// copied verbatim from billing.InvoiceTotals at save time. The totals
// columns are never recomputed at read time; screen, PDF and database
// stay in agreement by construction.
type FeeInvoice struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Number string `gorm:"size:50;uniqueIndex" json:"number"`

	DossierID uint     `gorm:"index;not null" json:"dossier_id"`
	Dossier   *Dossier `gorm:"foreignKey:DossierID" json:"dossier,omitempty"`

	IssueDate time.Time        `gorm:"not null" json:"issue_date"`
	Status    FeeInvoiceStatus `gorm:"size:20;default:'draft'" json:"status"`

	// Débours as entered
	Entrevue     int64 `gorm:"not null;default:0" json:"entrevue"`
	FraisDossier int64 `gorm:"not null;default:0" json:"frais_dossier"`
	Plaidoirie   int64 `gorm:"not null;default:0" json:"plaidoirie"`
	Huissier     int64 `gorm:"not null;default:0" json:"huissier"`
	Deplacement  int64 `gorm:"not null;default:0" json:"deplacement"`

	// Honoraires as entered
	Forfait     int64 `gorm:"not null;default:0" json:"forfait"`
	TauxHoraire int64 `gorm:"not null;default:0" json:"taux_horaire"`
	BaseCalcul  int64 `gorm:"not null;default:0" json:"base"`
	Resultat    int64 `gorm:"not null;default:0" json:"resultat"`

	// Payment terms
	ModePaiement      billing.PaymentMethod `gorm:"size:30;default:'virement'" json:"mode_paiement"`
	ProvisionDemandee bool                  `gorm:"not null;default:false" json:"provision_demandee"`
	MontantProvision  int64                 `gorm:"not null;default:0" json:"montant_provision"`

	// Computed snapshot
	TotalDebours    int64  `gorm:"not null;default:0" json:"total_debours"`
	TotalHonoraires int64  `gorm:"not null;default:0" json:"total_honoraires"`
	TotalHT         int64  `gorm:"not null;default:0" json:"total_ht"`
	TVA             int64  `gorm:"not null;default:0" json:"tva"`
	TotalTTC        int64  `gorm:"not null;default:0" json:"total_ttc"`
	ResteAPayer     int64  `gorm:"not null;default:0" json:"reste_a_payer"`
	ArreteEnLettres string `gorm:"size:500" json:"arrete_en_lettres"`
}

// IsDraft returns true if the invoice is in draft status.
func (f *FeeInvoice) IsDraft() bool {
	return f.Status == FeeInvoiceDraft
}

// IsFinal returns true if the invoice has been finalized.
func (f *FeeInvoice) IsFinal() bool {
	return f.Status == FeeInvoiceFinal || f.Status == FeeInvoicePaid
}

// CanEdit returns true if the invoice can still be edited.
func (f *FeeInvoice) CanEdit() bool {
	return f.Status == FeeInvoiceDraft
}

// Components maps the stored line items back to the billing input.
func (f *FeeInvoice) Components() billing.FeeComponents {
	return billing.FeeComponents{
		Disbursements: billing.Disbursements{
			Entrevue:    f.Entrevue,
			Dossier:     f.FraisDossier,
			Plaidoirie:  f.Plaidoirie,
			Huissier:    f.Huissier,
			Deplacement: f.Deplacement,
		},
		Honoraria: billing.Honoraria{
			Forfait:     f.Forfait,
			TauxHoraire: f.TauxHoraire,
			Base:        f.BaseCalcul,
			Resultat:    f.Resultat,
		},
	}
}

// PaymentTerms maps the stored payment columns to the billing input.
func (f *FeeInvoice) PaymentTerms() billing.Payment {
	return billing.Payment{
		Method:             f.ModePaiement,
		ProvisionRequested: f.ProvisionDemandee,
		ProvisionAmount:    f.MontantProvision,
	}
}

// ApplyTotals copies a computed snapshot into the persisted columns,
// including the spelled-out legal form.
func (f *FeeInvoice) ApplyTotals(t *billing.InvoiceTotals) {
	f.TotalDebours = t.TotalDisbursements
	f.TotalHonoraires = t.TotalHonoraria
	f.TotalHT = t.SubtotalExclTax
	f.TVA = t.Tax
	f.TotalTTC = t.TotalInclTax
	f.ResteAPayer = t.BalanceDue
	f.ArreteEnLettres = billing.DescribeAmount(t)
}

// SetComponents writes the billing input back onto the stored columns.
func (f *FeeInvoice) SetComponents(c billing.FeeComponents) {
	f.Entrevue = c.Disbursements.Entrevue
	f.FraisDossier = c.Disbursements.Dossier
	f.Plaidoirie = c.Disbursements.Plaidoirie
	f.Huissier = c.Disbursements.Huissier
	f.Deplacement = c.Disbursements.Deplacement
	f.Forfait = c.Honoraria.Forfait
	f.TauxHoraire = c.Honoraria.TauxHoraire
	f.BaseCalcul = c.Honoraria.Base
	f.Resultat = c.Honoraria.Resultat
}

// SetPaymentTerms writes the payment input back onto the stored columns.
func (f *FeeInvoice) SetPaymentTerms(p billing.Payment) {
	f.ModePaiement = p.Method
	f.ProvisionDemandee = p.ProvisionRequested
	f.MontantProvision = p.ProvisionAmount
}

// GenerateInvoiceNumber generates a unique invoice number.
// Format: HON-YYYY-NNNN (e.g. HON-2026-0001)
func GenerateInvoiceNumber(db *gorm.DB, year int) (string, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)
	var count int64
	err := db.Model(&FeeInvoice{}).
		Where("issue_date >= ? AND issue_date < ?", start, end).
		Count(&count).Error
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("HON-%d-%04d", year, count+1), nil
}
