package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DogProfile is a singleton, the table holds at most one row
type DogProfile struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string    `gorm:"not null" json:"name"`
	Breed         string    `gorm:"not null" json:"breed"`
	Age           string    `gorm:"not null" json:"age"`
	Health        string    `gorm:"not null" json:"health"`
	TrainingLevel string    `gorm:"not null" json:"trainingLevel"`
	CreatedAt     time.Time `json:"-"`
}

func (DogProfile) TableName() string { return "dogProfile" }

func (d *DogProfile) BeforeCreate(*gorm.DB) error {
	newID(&d.ID)
	return nil
}

type Milestone struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Skill     string    `gorm:"not null" json:"skill"`
	Status    string    `gorm:"not null" json:"status"`
	CreatedAt time.Time `json:"-"`
}

func (Milestone) TableName() string { return "trainingProgress" }

func (m *Milestone) BeforeCreate(*gorm.DB) error {
	newID(&m.ID)
	return nil
}

// WeightEntry is one weighing of the dog. Date is unique.
type WeightEntry struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Date      string    `gorm:"uniqueIndex;not null" json:"date"`
	Weight    float64   `gorm:"not null" json:"weight"`
	CreatedAt time.Time `json:"-"`
}

func (WeightEntry) TableName() string { return "dogWeights" }

func (w *WeightEntry) BeforeCreate(*gorm.DB) error {
	newID(&w.ID)
	return nil
}
