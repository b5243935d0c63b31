package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Comment struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	// Display name of the author at the time of writing
	Author string `gorm:"not null" json:"author"`
	// Nil for comments written before author ids were recorded
	AuthorID    *uuid.UUID `gorm:"type:uuid;index" json:"-"`
	Text        string     `gorm:"not null" json:"text"`
	ComponentID string     `gorm:"index;not null" json:"componentId"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func (Comment) TableName() string { return "comments" }

func (c *Comment) BeforeCreate(*gorm.DB) error {
	newID(&c.ID)
	return nil
}
