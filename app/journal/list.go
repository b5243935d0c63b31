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

func JournalList(c *gin.Context, d *internal.Deps) {
	entries := []model.JournalEntry{}

	err := d.DB.WithContext(c.Request.Context()).
		Where("user_id = ?", middleware.UserID(c)).
		Order("created_at asc").
		Find(&entries).
		Error
	if err != nil {
		respond.Error(c, apperr.Internal(fmt.Errorf("failed to list journal entries, %w", err)))
		return
	}

	c.JSON(http.StatusOK, entries)
}

func JournalFetch(c *gin.Context, d *internal.Deps) {
	id, ok := respond.ParamID(c, notFound)
	if !ok {
		return
	}

	var entry model.JournalEntry

	err := d.DB.WithContext(c.Request.Context()).
		Where("id = ? AND user_id = ?", id, middleware.UserID(c)).
		First(&entry).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respond.Error(c, apperr.NotFound(notFound))
			return
		}

		respond.Error(c, apperr.Internal(fmt.Errorf("failed to fetch journal entry, %w", err)))
		return
	}

	c.JSON(http.StatusOK, entry)
}
