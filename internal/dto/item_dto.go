package dto

import (
	"time"

	"github.com/equipe-centaurus/achados-backend/internal/lifecycle"
	"github.com/equipe-centaurus/achados-backend/internal/models"
)

type CreateItemRequest struct {
	Title            string `json:"title"`
	Category         string `json:"category"`
	Description      string `json:"description"`
	Location         string `json:"location"`
	ContactWhatsApp  string `json:"contact_whatsapp"`
	ContactInstagram string `json:"contact_instagram"`
	PhotoURL         string `json:"photo_url"`
	DeletionPassword string `json:"deletion_password"`
}

// UpdateItemRequest edits the descriptive fields of an item. The deletion
// password authorizes the edit; registration and expiry dates are immutable.
type UpdateItemRequest struct {
	Title            string `json:"title"`
	Category         string `json:"category"`
	Description      string `json:"description"`
	Location         string `json:"location"`
	ContactWhatsApp  string `json:"contact_whatsapp"`
	ContactInstagram string `json:"contact_instagram"`
	PhotoURL         string `json:"photo_url"`
	DeletionPassword string `json:"deletion_password"`
}

type DeleteItemRequest struct {
	DeletionPassword string `json:"deletion_password"`
}

// ItemResponse is an item plus its derived lifecycle status.
type ItemResponse struct {
	ID               uint             `json:"id"`
	Title            string           `json:"title"`
	Category         string           `json:"category"`
	Description      string           `json:"description"`
	Location         string           `json:"location"`
	ContactWhatsApp  string           `json:"contact_whatsapp"`
	ContactInstagram string           `json:"contact_instagram"`
	PhotoURL         string           `json:"photo_url"`
	RegisteredAt     time.Time        `json:"registered_at"`
	ExpiresAt        time.Time        `json:"expires_at"`
	Status           lifecycle.Status `json:"status"`
}

func NewItemResponse(it models.Item, now time.Time) ItemResponse {
	return ItemResponse{
		ID:               it.ID,
		Title:            it.Title,
		Category:         it.Category,
		Description:      it.Description,
		Location:         it.Location,
		ContactWhatsApp:  it.ContactWhatsApp,
		ContactInstagram: it.ContactInstagram,
		PhotoURL:         it.PhotoURL,
		RegisteredAt:     it.RegisteredAt,
		ExpiresAt:        it.ExpiresAt,
		Status:           lifecycle.DeriveStatus(it.ExpiresAt, now),
	}
}

func NewItemResponses(items []models.Item, now time.Time) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i, it := range items {
		out[i] = NewItemResponse(it, now)
	}
	return out
}
