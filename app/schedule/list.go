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

func ScheduleList(c *gin.Context, d *internal.Deps) {
	events := []model.ScheduleEvent{}

	err := d.DB.WithContext(c.Request.Context()).
		Where("user_id = ?", middleware.UserID(c)).
		Order("start_time asc").
		Find(&events).
		Error
	if err != nil {
		respond.Error(c, apperr.Internal(fmt.Errorf("failed to list schedule events, %w", err)))
		return
	}

	c.JSON(http.StatusOK, events)
}

func ScheduleFetch(c *gin.Context, d *internal.Deps) {
	id, ok := respond.ParamID(c, notFound)
	if !ok {
		return
	}

	var event model.ScheduleEvent

	err := d.DB.WithContext(c.Request.Context()).
		Where("id = ? AND user_id = ?", id, middleware.UserID(c)).
		First(&event).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respond.Error(c, apperr.NotFound(notFound))
			return
		}

		respond.Error(c, apperr.Internal(fmt.Errorf("failed to fetch schedule event, %w", err)))
		return
	}

	c.JSON(http.StatusOK, event)
}
