package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScheduleEvent is a calendar entry. Start and End are kept exactly as the
// calendar client sent them.
type ScheduleEvent struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null" json:"userId"`
	Title     string    `gorm:"not null" json:"title"`
	Content   string    `json:"content"`
	Start     string    `gorm:"column:start_time;not null" json:"start"`
	End       string    `gorm:"column:end_time;not null" json:"end"`
	CreatedAt time.Time `json:"-"`
}

func (ScheduleEvent) TableName() string { return "scheduleEvents" }

func (s *ScheduleEvent) BeforeCreate(*gorm.DB) error {
	newID(&s.ID)
	return nil
}
