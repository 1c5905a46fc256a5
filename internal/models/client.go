package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Client is a person or company the firm represents.
type Client struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Nom       string `gorm:"size:255;not null" json:"nom"`
	Prenom    string `gorm:"size:255" json:"prenom,omitempty"`
	Telephone string `gorm:"size:50" json:"telephone,omitempty"`
	Email     string `gorm:"size:255" json:"email,omitempty"`
	Adresse   string `gorm:"size:500" json:"adresse,omitempty"`

	Dossiers []Dossier `gorm:"foreignKey:ClientID" json:"dossiers,omitempty"`
}

// FullName returns "Prenom Nom" without stray spaces when a part is
// missing.
func (c *Client) FullName() string {
	return strings.TrimSpace(c.Prenom + " " + c.Nom)
}
