package dto

import (
	"github.com/equipe-centaurus/achados-backend/internal/models"
)

type CreateReportRequest struct {
	Reason string `json:"reason"`
}

type ResolveReportRequest struct {
	Action    string `json:"action"` // "approve" or "reject"
	AdminNote string `json:"admin_note"`
}

// PendingReportResponse joins a pending report with the item it targets, the
// way the moderation panel displays it.
type PendingReportResponse struct {
	Report models.Report `json:"report"`
	Item   ItemResponse  `json:"item"`
}
