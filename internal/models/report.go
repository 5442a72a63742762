package models

import (
	"time"
)

// Report statuses. Pending reports transition once to approved or rejected
// and stay terminal after that.
const (
	ReportPending  = "pending"
	ReportApproved = "approved"
	ReportRejected = "rejected"
)

// Report is a user complaint (denúncia) against an item. ItemID is a plain
// indexed reference, not a GORM association: resolved reports must survive
// deletion of the item they pointed at.
type Report struct {
	ID         uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	ItemID     uint       `gorm:"not null;index" json:"item_id"`
	Reason     string     `gorm:"size:500;not null" json:"reason"`
	Status     string     `gorm:"size:20;not null;default:'pending';index" json:"status"`
	AdminNote  string     `gorm:"size:1000" json:"admin_note,omitempty"`
	ReportedAt time.Time  `gorm:"not null" json:"reported_at"`
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (Report) TableName() string {
	return "reports"
}
