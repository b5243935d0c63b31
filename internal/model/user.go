// Package model defines database models
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Birthday     string    `json:"birthday"`
	ColorPattern string    `json:"colorPattern"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	// File name of the uploaded picture, exposed as /uploads/<name>
	ProfilePicture *string `json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	PasswordResets []PasswordReset `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (User) TableName() string { return "users" }

func (u *User) BeforeCreate(*gorm.DB) error {
	newID(&u.ID)
	return nil
}

// PictureURL returns the path the profile picture is served from, or nil
func (u *User) PictureURL() *string {
	if u.ProfilePicture == nil || *u.ProfilePicture == "" {
		return nil
	}

	p := "/uploads/" + *u.ProfilePicture
	return &p
}

func newID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}
