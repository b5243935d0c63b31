package journal

import (
	"barkwise/pet-api/internal"
	"barkwise/pet-api/internal/model"
	"barkwise/pet-api/internal/respond"
	"barkwise/pet-api/pkg/apperr"
	"barkwise/pet-api/pkg/middleware"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Only fields present in the request are changed
type updateBody struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

func JournalUpdate(c *gin.Context, d *internal.Deps) {
	id, ok := respond.ParamID(c, notFound)
	if !ok {
		return
	}

	var data updateBody
	if !respond.Bind(c, &data, "") {
		return
	}

	update := map[string]any{}
	if data.Title != nil {
		if *data.Title == "" {
			respond.Error(c, apperr.Validation("Title is required"))
			return
		}
		update["title"] = *data.Title
	}
	if data.Description != nil {
		update["description"] = *data.Description
	}
	if data.Image != nil {
		update["image"] = *data.Image
	}

	if len(update) == 0 {
		respond.Error(c, apperr.Validation("No fields to update"))
		return
	}

	userID := middleware.UserID(c)

	var entry model.JournalEntry

	err := d.DB.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		r := tx.Model(&model.JournalEntry{}).
			Where("id = ? AND user_id = ?", id, userID).
			Updates(update)
		if r.Error != nil {
			return r.Error
		}

		if r.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return tx.Where("id = ?", id).First(&entry).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respond.Error(c, apperr.NotFound(notFound))
			return
		}

		respond.Error(c, apperr.Internal(fmt.Errorf("failed to update journal entry, %w", err)))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Entry updated",
		"entry":   entry,
	})
}
