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

// ClientHandler exposes the client directory endpoints.
type ClientHandler struct {
	DB *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{DB: db}
}

type clientRequest struct {
	Nom       string `json:"nom"`
	Prenom    string `json:"prenom"`
	Telephone string `json:"telephone"`
	Email     string `json:"email"`
	Adresse   string `json:"adresse"`
}

func (req *clientRequest) validate() validation.Violations {
	v := validation.Violations{}
	validation.Required("nom", req.Nom, v)
	return v
}

// List: GET /clients
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	var clients []models.Client
	if err := h.DB.Order("nom, prenom").Find(&clients).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_clients", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": clients, "total": len(clients)})
}

// Create: POST /clients
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	lang := i18n.DetectLanguage(r.Header.Get("Accept-Language"))
	var req clientRequest
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
	client := models.Client{
		Nom:       req.Nom,
		Prenom:    req.Prenom,
		Telephone: req.Telephone,
		Email:     req.Email,
		Adresse:   req.Adresse,
	}
	if err := h.DB.Create(&client).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_create_client", nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, client)
}

// Get: GET /clients/{id}
func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	var client models.Client
	if err := h.DB.Preload("Dossiers").First(&client, id).Error; err != nil {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, client)
}
