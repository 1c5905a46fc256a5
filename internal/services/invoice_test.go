package services

import (
	"fmt"
	"testing"

	"github.com/lexcabinet/facturation/internal/billing"
	"github.com/lexcabinet/facturation/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := conn.AutoMigrate(&models.Client{}, &models.Dossier{}, &models.FeeInvoice{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return conn
}

func seedDossier(t *testing.T, conn *gorm.DB) models.Dossier {
	t.Helper()
	client := models.Client{Nom: "Diallo", Prenom: "Mamadou"}
	if err := conn.Create(&client).Error; err != nil {
		t.Fatalf("client: %v", err)
	}
	dossier := models.Dossier{ClientID: client.ID, Reference: "DOS-2026-001", Objet: "Litige commercial"}
	if err := conn.Create(&dossier).Error; err != nil {
		t.Fatalf("dossier: %v", err)
	}
	return dossier
}

func TestCreatePersistsSnapshot(t *testing.T) {
	conn := setupServiceTestDB(t)
	dossier := seedDossier(t, conn)
	svc := NewFeeInvoiceService(conn)

	c := billing.FeeComponents{
		Disbursements: billing.Disbursements{Entrevue: 50000, Dossier: 100000},
		Honoraria:     billing.Honoraria{Forfait: 1350000},
	}
	p := billing.Payment{Method: billing.PaymentVirement, ProvisionRequested: true, ProvisionAmount: 1770000}

	inv, verrs, err := svc.Create(dossier.ID, c, p)
	if err != nil || !verrs.Empty() {
		t.Fatalf("Create: err=%v verrs=%v", err, verrs)
	}
	if inv.Number == "" || inv.Status != models.FeeInvoiceDraft {
		t.Errorf("invoice = number %q status %q", inv.Number, inv.Status)
	}

	var stored models.FeeInvoice
	if err := conn.First(&stored, inv.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if stored.TotalHT != 1500000 || stored.TVA != 270000 || stored.TotalTTC != 1770000 || stored.ResteAPayer != 0 {
		t.Errorf("stored snapshot = HT %d TVA %d TTC %d reste %d", stored.TotalHT, stored.TVA, stored.TotalTTC, stored.ResteAPayer)
	}
	if stored.ArreteEnLettres == "" {
		t.Error("stored invoice misses the spelled-out amount")
	}
}

func TestCreateRefusesInvalidComputation(t *testing.T) {
	conn := setupServiceTestDB(t)
	dossier := seedDossier(t, conn)
	svc := NewFeeInvoiceService(conn)

	p := billing.Payment{Method: billing.PaymentCheque, ProvisionRequested: true, ProvisionAmount: 2000000}
	inv, verrs, err := svc.Create(dossier.ID, billing.FeeComponents{Honoraria: billing.Honoraria{Forfait: 1500000}}, p)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if inv != nil {
		t.Fatalf("expected no invoice, got %+v", inv)
	}
	if verrs.Empty() {
		t.Fatal("expected validation errors")
	}
	var count int64
	conn.Model(&models.FeeInvoice{}).Count(&count)
	if count != 0 {
		t.Errorf("expected nothing persisted, found %d rows", count)
	}
}

func TestFinalizeRebuildsSnapshot(t *testing.T) {
	conn := setupServiceTestDB(t)
	dossier := seedDossier(t, conn)
	svc := NewFeeInvoiceService(conn)

	c := billing.FeeComponents{Honoraria: billing.Honoraria{Forfait: 100}}
	inv, verrs, err := svc.Create(dossier.ID, c, billing.Payment{Method: billing.PaymentEspeces})
	if err != nil || !verrs.Empty() {
		t.Fatalf("Create: err=%v verrs=%v", err, verrs)
	}

	// corrupt the stored snapshot, finalize must repair it
	inv.TotalTTC = 42
	verrs, err = svc.Finalize(inv)
	if err != nil || !verrs.Empty() {
		t.Fatalf("Finalize: err=%v verrs=%v", err, verrs)
	}
	if inv.Status != models.FeeInvoiceFinal {
		t.Errorf("status = %q, want final", inv.Status)
	}
	if inv.TotalTTC != 118 {
		t.Errorf("TotalTTC = %d, want 118", inv.TotalTTC)
	}
}

func TestRevenueCountsOnlyFinalized(t *testing.T) {
	conn := setupServiceTestDB(t)
	dossier := seedDossier(t, conn)
	svc := NewFeeInvoiceService(conn)

	c := billing.FeeComponents{Honoraria: billing.Honoraria{Forfait: 1000}}
	draft, _, err := svc.Create(dossier.ID, c, billing.Payment{Method: billing.PaymentVirement})
	if err != nil {
		t.Fatalf("Create draft: %v", err)
	}
	_ = draft

	final, _, err := svc.Create(dossier.ID, c, billing.Payment{Method: billing.PaymentVirement})
	if err != nil {
		t.Fatalf("Create final: %v", err)
	}
	if verrs, err := svc.Finalize(final); err != nil || !verrs.Empty() {
		t.Fatalf("Finalize: err=%v verrs=%v", err, verrs)
	}

	revenue, err := svc.Revenue()
	if err != nil {
		t.Fatalf("Revenue: %v", err)
	}
	// 1000 + 18% = 1180, drafts excluded
	if revenue != 1180 {
		t.Errorf("Revenue = %d, want 1180", revenue)
	}
}
