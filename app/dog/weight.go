package dog

import (
	"barkwise/pet-api/internal"
	"barkwise/pet-api/internal/model"
	"barkwise/pet-api/internal/respond"
	"barkwise/pet-api/pkg/apperr"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

var errDateTaken = apperr.Conflict("Entry for this date already exists")

type weightBody struct {
	Date string `json:"date" binding:"required"`
	// Number or numeric string
	Weight json.Number `json:"weight" binding:"required"`
}

func WeightList(c *gin.Context, d *internal.Deps) {
	weights := []model.WeightEntry{}

	err := d.DB.WithContext(c.Request.Context()).
		Order("date asc").
		Find(&weights).
		Error
	if err != nil {
		respond.Error(c, apperr.Internal(fmt.Errorf("failed to list weights, %w", err)))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"weights": weights,
	})
}

func WeightCreate(c *gin.Context, d *internal.Deps) {
	var data weightBody
	if !respond.Bind(c, &data, "Missing date or weight") {
		return
	}

	// Dates are compared as strings so they must be in one layout
	if _, err := time.Parse(dateLayout, data.Date); err != nil {
		respond.Error(c, apperr.Validation("Date must be in YYYY-MM-DD format"))
		return
	}

	weight, err := data.Weight.Float64()
	if err != nil || weight <= 0 {
		respond.Error(c, apperr.Validation("Weight must be a positive number"))
		return
	}

	entry := model.WeightEntry{
		Date:   data.Date,
		Weight: weight,
	}

	err = d.DB.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&model.WeightEntry{}).Where("date = ?", data.Date).Count(&n).Error; err != nil {
			return err
		}

		if n > 0 {
			return errDateTaken
		}

		return tx.Create(&entry).Error
	})
	if err != nil {
		// The unique index catches inserts racing past the count
		if errors.Is(err, errDateTaken) || errors.Is(err, gorm.ErrDuplicatedKey) {
			respond.Error(c, errDateTaken)
			return
		}

		respond.Error(c, apperr.Internal(fmt.Errorf("failed to add weight entry, %w", err)))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Weight entry added",
		"entry":   entry,
	})
}
