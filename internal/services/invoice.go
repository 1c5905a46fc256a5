package services

import (
	"time"

	"github.com/lexcabinet/facturation/internal/billing"
	"github.com/lexcabinet/facturation/internal/models"
	"gorm.io/gorm"
)

// FeeInvoiceService encapsulates fee-invoice business logic: it is the
// only place that turns form input into persisted totals, and it never
// saves an invoice whose computation reported a validation error.
type FeeInvoiceService struct {
	db *gorm.DB
}

func NewFeeInvoiceService(db *gorm.DB) *FeeInvoiceService {
	return &FeeInvoiceService{db: db}
}

// Compute runs the billing pipeline on raw input without touching the
// database; the editing form calls this on every change.
func (s *FeeInvoiceService) Compute(c billing.FeeComponents, p billing.Payment) (*billing.InvoiceTotals, billing.ValidationErrors) {
	return billing.Assemble(c, p)
}

// Create assembles and persists a new invoice for a dossier. On
// validation errors nothing is written and the errors are returned for
// display, all together.
func (s *FeeInvoiceService) Create(dossierID uint, c billing.FeeComponents, p billing.Payment) (*models.FeeInvoice, billing.ValidationErrors, error) {
	totals, verrs := billing.Assemble(c, p)
	if !verrs.Empty() {
		return nil, verrs, nil
	}

	now := time.Now()
	number, err := models.GenerateInvoiceNumber(s.db, now.Year())
	if err != nil {
		return nil, nil, err
	}

	inv := &models.FeeInvoice{
		Number:    number,
		DossierID: dossierID,
		IssueDate: now,
		Status:    models.FeeInvoiceDraft,
	}
	inv.SetComponents(c)
	inv.SetPaymentTerms(p)
	inv.ApplyTotals(totals)

	if err := s.db.Create(inv).Error; err != nil {
		return nil, nil, err
	}
	return inv, nil, nil
}

// Update recomputes and saves a draft invoice with new input. The
// totals snapshot is always rebuilt from scratch, never patched.
func (s *FeeInvoiceService) Update(inv *models.FeeInvoice, c billing.FeeComponents, p billing.Payment) (billing.ValidationErrors, error) {
	totals, verrs := billing.Assemble(c, p)
	if !verrs.Empty() {
		return verrs, nil
	}
	inv.SetComponents(c)
	inv.SetPaymentTerms(p)
	inv.ApplyTotals(totals)
	return nil, s.db.Save(inv).Error
}

// Finalize freezes a draft invoice after one last recomputation, so a
// stale stored snapshot can never be finalized.
func (s *FeeInvoiceService) Finalize(inv *models.FeeInvoice) (billing.ValidationErrors, error) {
	totals, verrs := billing.Assemble(inv.Components(), inv.PaymentTerms())
	if !verrs.Empty() {
		return verrs, nil
	}
	inv.ApplyTotals(totals)
	inv.Status = models.FeeInvoiceFinal
	return nil, s.db.Save(inv).Error
}

// Revenue sums the tax-inclusive totals of finalized and paid
// invoices.
func (s *FeeInvoiceService) Revenue() (int64, error) {
	var total int64
	err := s.db.Model(&models.FeeInvoice{}).
		Where("status IN ?", []models.FeeInvoiceStatus{models.FeeInvoiceFinal, models.FeeInvoicePaid}).
		Select("COALESCE(SUM(total_ttc), 0)").
		Scan(&total).Error
	return total, err
}
