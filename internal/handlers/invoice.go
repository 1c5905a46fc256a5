package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/lexcabinet/facturation/internal/billing"
	"github.com/lexcabinet/facturation/internal/httpx"
	"github.com/lexcabinet/facturation/internal/i18n"
	"github.com/lexcabinet/facturation/internal/models"
	"github.com/lexcabinet/facturation/internal/pdf"
	"github.com/lexcabinet/facturation/internal/services"
	"github.com/lexcabinet/facturation/internal/validation"
	"gorm.io/gorm"
)

// FeeInvoiceHandler exposes the fee-invoice endpoints. Computation
// always goes through the service; the handler only decodes input,
// translates errors and shapes responses.
type FeeInvoiceHandler struct {
	DB  *gorm.DB
	Svc *services.FeeInvoiceService
}

func NewFeeInvoiceHandler(db *gorm.DB, svc *services.FeeInvoiceService) *FeeInvoiceHandler {
	return &FeeInvoiceHandler{DB: db, Svc: svc}
}

// feeInvoiceRequest is the editing-form payload. The fee groups stay
// loosely typed so the billing decode layer can report per-field
// coercion problems instead of failing the whole JSON decode.
type feeInvoiceRequest struct {
	DossierID  uint            `json:"dossier_id"`
	Debours    map[string]any  `json:"debours"`
	Honoraires map[string]any  `json:"honoraires"`
	Paiement   billing.Payment `json:"paiement"`
}

func (req *feeInvoiceRequest) decode(lang string) (billing.FeeComponents, billing.Payment, []fieldError) {
	raw := map[string]any{}
	if req.Debours != nil {
		raw["debours"] = req.Debours
	}
	if req.Honoraires != nil {
		raw["honoraires"] = req.Honoraires
	}
	components, errs := billing.DecodeFeeComponents(raw)

	payload := validationPayload(lang, errs)
	v := validation.Violations{}
	if req.Paiement.Method == "" {
		req.Paiement.Method = billing.PaymentVirement
	}
	if !req.Paiement.Method.Valid() {
		v["mode"] = "invalid_payment_method"
	}
	for field, code := range v {
		payload = append(payload, fieldError{Field: field, Code: code, Message: i18n.T(lang, code)})
	}
	return components, req.Paiement, payload
}

// fieldError is one translated validation problem; responses carry all
// of them at once.
type fieldError struct {
	Field   string `json:"field,omitempty"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func validationPayload(lang string, errs billing.ValidationErrors) []fieldError {
	out := make([]fieldError, 0, len(errs))
	for _, err := range errs {
		var fe fieldError
		var negErr *billing.NegativeAmountError
		var numErr *billing.InvalidNumericInputError
		var provErr *billing.ProvisionExceedsTotalError
		switch {
		case errors.As(err, &negErr):
			fe = fieldError{Field: negErr.Field, Code: "negative_amount"}
		case errors.As(err, &numErr):
			fe = fieldError{Field: numErr.Field, Code: "invalid_numeric_input"}
		case errors.As(err, &provErr):
			fe = fieldError{Field: "montant_provision", Code: "provision_exceeds_total"}
		default:
			fe = fieldError{Code: err.Error()}
		}
		fe.Message = i18n.T(lang, fe.Code)
		out = append(out, fe)
	}
	return out
}

func requestLang(r *http.Request) string {
	return i18n.DetectLanguage(r.Header.Get("Accept-Language"))
}

// Preview: POST /factures/preview. Pure recompute for the editing
// form, nothing persisted. Called on every edit.
func (h *FeeInvoiceHandler) Preview(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)
	var req feeInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	components, payment, ferrs := req.decode(lang)
	totals, verrs := h.Svc.Compute(components, payment)
	// decode and computation problems are reported together, all at once
	if all := append(ferrs, validationPayload(lang, verrs)...); len(all) > 0 {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "validation_failed", all)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"totals":            totals,
		"arrete_en_lettres": billing.DescribeAmount(totals),
	})
}

// Create: POST /factures
func (h *FeeInvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)
	var req feeInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	var dossier models.Dossier
	if err := h.DB.First(&dossier, req.DossierID).Error; err != nil {
		httpx.JSONError(w, http.StatusNotFound, "not_found", i18n.T(lang, "not_found"))
		return
	}
	components, payment, ferrs := req.decode(lang)
	if len(ferrs) > 0 {
		// surface computation problems alongside the decode ones
		_, verrs := h.Svc.Compute(components, payment)
		httpx.JSONError(w, http.StatusUnprocessableEntity, "validation_failed",
			append(ferrs, validationPayload(lang, verrs)...))
		return
	}
	inv, verrs, err := h.Svc.Create(dossier.ID, components, payment)
	if !verrs.Empty() {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "validation_failed", validationPayload(lang, verrs))
		return
	}
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_create_invoice", nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, inv)
}

// List: GET /factures, paginated, with optional dossier filter.
func (h *FeeInvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}
	offset := 0
	if v := r.URL.Query().Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 1 {
			offset = (n - 1) * limit
		}
	}
	dbq := h.DB.Model(&models.FeeInvoice{})
	if v := r.URL.Query().Get("dossier_id"); v != "" {
		if id, err := strconv.Atoi(v); err == nil {
			dbq = dbq.Where("dossier_id = ?", id)
		}
	}
	var total int64
	dbq.Count(&total)
	var invs []models.FeeInvoice
	if err := dbq.Preload("Dossier").Order("id desc").Limit(limit).Offset(offset).Find(&invs).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_invoices", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": invs, "total": total, "limit": limit, "offset": offset})
}

func (h *FeeInvoiceHandler) find(w http.ResponseWriter, r *http.Request) (*models.FeeInvoice, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return nil, false
	}
	var inv models.FeeInvoice
	if err := h.DB.Preload("Dossier.Client").First(&inv, id).Error; err != nil {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return nil, false
	}
	return &inv, true
}

// Get: GET /factures/{id}
func (h *FeeInvoiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	inv, ok := h.find(w, r)
	if !ok {
		return
	}
	httpx.JSON(w, http.StatusOK, inv)
}

// Update: POST /factures/{id}, drafts only.
func (h *FeeInvoiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)
	inv, ok := h.find(w, r)
	if !ok {
		return
	}
	if !inv.CanEdit() {
		httpx.JSONError(w, http.StatusConflict, "invoice_not_editable", i18n.T(lang, "invoice_not_editable"))
		return
	}
	var req feeInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	components, payment, ferrs := req.decode(lang)
	if len(ferrs) > 0 {
		_, verrs := h.Svc.Compute(components, payment)
		httpx.JSONError(w, http.StatusUnprocessableEntity, "validation_failed",
			append(ferrs, validationPayload(lang, verrs)...))
		return
	}
	verrs, err := h.Svc.Update(inv, components, payment)
	if !verrs.Empty() {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "validation_failed", validationPayload(lang, verrs))
		return
	}
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_update_invoice", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, inv)
}

// Finalize: POST /factures/{id}/finalize
func (h *FeeInvoiceHandler) Finalize(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)
	inv, ok := h.find(w, r)
	if !ok {
		return
	}
	if !inv.CanEdit() {
		httpx.JSONError(w, http.StatusConflict, "invoice_not_editable", i18n.T(lang, "invoice_not_editable"))
		return
	}
	verrs, err := h.Svc.Finalize(inv)
	if !verrs.Empty() {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "validation_failed", validationPayload(lang, verrs))
		return
	}
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_finalize_invoice", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, inv)
}

// Delete: POST /factures/{id}/delete, drafts only, soft delete.
func (h *FeeInvoiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)
	inv, ok := h.find(w, r)
	if !ok {
		return
	}
	if !inv.CanEdit() {
		httpx.JSONError(w, http.StatusConflict, "invoice_not_editable", i18n.T(lang, "invoice_not_editable"))
		return
	}
	if err := h.DB.Delete(inv).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_delete_invoice", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"deleted": inv.ID})
}

// PDF: GET /factures/{id}/pdf
func (h *FeeInvoiceHandler) PDF(w http.ResponseWriter, r *http.Request) {
	inv, ok := h.find(w, r)
	if !ok {
		return
	}
	data, err := pdf.RenderFeeInvoice(inv)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_render_pdf", nil)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `inline; filename="`+inv.Number+`.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
