package models

import (
	"time"

	"gorm.io/gorm"
)

// DossierStatus tracks the life of a case file.
type DossierStatus string

const (
	DossierOuvert DossierStatus = "ouvert"
	DossierClos   DossierStatus = "clos"
)

// Dossier is a case file opened for a client; fee invoices attach to
// it.
type Dossier struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	ClientID uint    `gorm:"index;not null" json:"client_id"`
	Client   *Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`

	Reference   string        `gorm:"size:50;uniqueIndex" json:"reference"`
	Objet       string        `gorm:"size:500" json:"objet,omitempty"`
	Juridiction string        `gorm:"size:255" json:"juridiction,omitempty"`
	Statut      DossierStatus `gorm:"size:20;default:'ouvert'" json:"statut"`

	Factures []FeeInvoice `gorm:"foreignKey:DossierID" json:"factures,omitempty"`
}

// IsOpen reports whether new invoices may still be attached.
func (d *Dossier) IsOpen() bool {
	return d.Statut == DossierOuvert
}
