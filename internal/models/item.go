package models

import (
	"time"
)

// Item is a registered lost/found object. The lifecycle status
// (active/expiring/expired) is derived from ExpiresAt at read time and is
// never persisted.
type Item struct {
	ID               uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title            string    `gorm:"size:255;not null" json:"title"`
	Category         string    `gorm:"size:100;index" json:"category"`
	Description      string    `gorm:"type:text" json:"description"`
	Location         string    `gorm:"size:255;not null;index" json:"location"`
	ContactWhatsApp  string    `gorm:"size:30" json:"contact_whatsapp"`
	ContactInstagram string    `gorm:"size:100" json:"contact_instagram"`
	PhotoURL         string    `gorm:"size:500" json:"photo_url"`
	DeletionPassword string    `gorm:"not null" json:"-"`
	RegisteredAt     time.Time `gorm:"type:date;not null;index" json:"registered_at"`
	ExpiresAt        time.Time `gorm:"type:date;not null;index" json:"expires_at"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (Item) TableName() string {
	return "items"
}

// Categories accepted on registration. Free text is allowed for Location
// (the "Outro" form option), but Category must come from this list when set.
var Categories = []string{
	"Documentos",
	"Eletrônicos",
	"Roupas",
	"Acessórios",
	"Chaves",
	"Livros",
	"Outros",
}

// Locations offered by the registration form. A value outside this list is
// treated as a freeform "other" location and stored as-is.
var Locations = []string{
	"Biblioteca",
	"Cantina",
	"Quadra",
	"Secretaria",
	"Pátio",
	"Sala de Aula",
}
