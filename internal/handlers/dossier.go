package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/lexcabinet/facturation/internal/httpx"
	"github.com/lexcabinet/facturation/internal/i18n"
	"github.com/lexcabinet/facturation/internal/models"
	"github.com/lexcabinet/facturation/internal/validation"
	"gorm.io/gorm"
)

// DossierHandler exposes the case-file endpoints.
type DossierHandler struct {
	DB *gorm.DB
}

func NewDossierHandler(db *gorm.DB) *DossierHandler {
	return &DossierHandler{DB: db}
}

type dossierRequest struct {
	ClientID    uint   `json:"client_id"`
	Reference   string `json:"reference"`
	Objet       string `json:"objet"`
	Juridiction string `json:"juridiction"`
}

func (req *dossierRequest) validate() validation.Violations {
	v := validation.Violations{}
	validation.Required("reference", req.Reference, v)
	if req.ClientID == 0 {
		v["client_id"] = "required"
	}
	return v
}

// List: GET /dossiers
func (h *DossierHandler) List(w http.ResponseWriter, r *http.Request) {
	dbq := h.DB.Model(&models.Dossier{})
	if v := r.URL.Query().Get("client_id"); v != "" {
		if id, err := strconv.Atoi(v); err == nil {
			dbq = dbq.Where("client_id = ?", id)
		}
	}
	var dossiers []models.Dossier
	if err := dbq.Preload("Client").Order("id desc").Find(&dossiers).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_dossiers", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": dossiers, "total": len(dossiers)})
}

// Create: POST /dossiers
func (h *DossierHandler) Create(w http.ResponseWriter, r *http.Request) {
	lang := i18n.DetectLanguage(r.Header.Get("Accept-Language"))
	var req dossierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	if v := req.validate(); !v.Empty() {
		details := map[string]string{}
		for field, code := range v {
			details[field] = i18n.T(lang, code)
		}
		httpx.JSONError(w, http.StatusUnprocessableEntity, "validation_failed", details)
		return
	}
	var client models.Client
	if err := h.DB.First(&client, req.ClientID).Error; err != nil {
		httpx.JSONError(w, http.StatusNotFound, "not_found", i18n.T(lang, "not_found"))
		return
	}
	dossier := models.Dossier{
		ClientID:    client.ID,
		Reference:   req.Reference,
		Objet:       req.Objet,
		Juridiction: req.Juridiction,
		Statut:      models.DossierOuvert,
	}
	if err := h.DB.Create(&dossier).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_create_dossier", nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, dossier)
}

// Get: GET /dossiers/{id}
func (h *DossierHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	var dossier models.Dossier
	if err := h.DB.Preload("Client").Preload("Factures").First(&dossier, id).Error; err != nil {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, dossier)
}
