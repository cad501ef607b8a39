package model

import (
	"time"

	"github.com/google/uuid"
)

// Device is an enrolled client installation. Its bearer token authenticates
// requests and resolves the opaque user identifier.
type Device struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID string    `gorm:"type:text;not null;index" json:"user_id"`

	Platform string `gorm:"type:text" json:"platform"`

	// TokenHMAC is the cheap lookup digest; TokenPHC the argon2id hash used
	// for optional full verification.
	TokenHMAC string `gorm:"type:text;not null;uniqueIndex" json:"-"`
	TokenPHC  string `gorm:"type:text;not null" json:"-"`

	CreatedAt  time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	LastSeenAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"last_seen_at"`
}

func (Device) TableName() string { return "devices" }
