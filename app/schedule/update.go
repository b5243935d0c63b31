package schedule

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

func ScheduleUpdate(c *gin.Context, d *internal.Deps) {
	id, ok := respond.ParamID(c, notFound)
	if !ok {
		return
	}

	var data eventBody
	if !respond.Bind(c, &data, missingMsg) {
		return
	}

	userID := middleware.UserID(c)

	var event model.ScheduleEvent

	err := d.DB.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		r := tx.Model(&model.ScheduleEvent{}).
			Where("id = ? AND user_id = ?", id, userID).
			Updates(map[string]any{
				"title":      data.Title,
				"content":    data.Content,
				"start_time": data.Start,
				"end_time":   data.End,
			})
		if r.Error != nil {
			return r.Error
		}

		if r.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return tx.Where("id = ?", id).First(&event).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respond.Error(c, apperr.NotFound(notFound))
			return
		}

		respond.Error(c, apperr.Internal(fmt.Errorf("failed to update schedule event, %w", err)))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event updated",
		"event":   event,
	})
}
