package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PasswordReset is a single use ticket authorizing one password change. Only
// the hash of the token is stored, the raw token lives in the mailed link.
type PasswordReset struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null"`
	TokenHash string    `gorm:"uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"index;not null"`
	CreatedAt time.Time
}

func (PasswordReset) TableName() string { return "passwordResets" }

func (p *PasswordReset) BeforeCreate(*gorm.DB) error {
	newID(&p.ID)
	return nil
}

// Expired reports whether the ticket can no longer be used at t
func (p *PasswordReset) Expired(t time.Time) bool {
	return !t.Before(p.ExpiresAt)
}
