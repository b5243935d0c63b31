package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TimestampLayout is how journal entry times are shown to the user
const TimestampLayout = "2. 1. 2006. 15:04:05"

type JournalEntry struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;index;not null" json:"userId"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Timestamp   string    `json:"timestamp"`
	CreatedAt   time.Time `json:"-"`
}

func (JournalEntry) TableName() string { return "journalLogs" }

func (j *JournalEntry) BeforeCreate(*gorm.DB) error {
	newID(&j.ID)
	return nil
}
