package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an administrator account. Regular visitors never authenticate;
// the only users in this system are the moderators seeded from config.
type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Username  string         `gorm:"not null;size:100;uniqueIndex" json:"username"`
	Password  string         `gorm:"not null" json:"-"`
	Role      string         `gorm:"size:20;default:'admin'" json:"role"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
