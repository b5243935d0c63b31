package service

import (
	"barkwise/pet-api/internal/model"
	"context"

	"gorm.io/gorm"
)

// ReplaceDogProfile makes p the only dog profile. Every earlier profile is
// removed in the same transaction so readers never see zero or two rows.
func ReplaceDogProfile(ctx context.Context, db *gorm.DB, p *model.DogProfile) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.DogProfile{}).Error; err != nil {
			return err
		}

		return tx.Create(p).Error
	})
}

// CurrentDogProfile returns the dog profile, or nil when none was created yet
func CurrentDogProfile(ctx context.Context, db *gorm.DB) (*model.DogProfile, error) {
	var profiles []model.DogProfile

	err := db.WithContext(ctx).
		Order("created_at desc").
		Limit(1).
		Find(&profiles).
		Error
	if err != nil {
		return nil, err
	}

	if len(profiles) == 0 {
		return nil, nil
	}

	return &profiles[0], nil
}
