package schedule

import (
	"barkwise/pet-api/internal"
	"barkwise/pet-api/internal/model"
	"barkwise/pet-api/internal/respond"
	"barkwise/pet-api/pkg/apperr"
	"barkwise/pet-api/pkg/middleware"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

func ScheduleDelete(c *gin.Context, d *internal.Deps) {
	id, ok := respond.ParamID(c, notFound)
	if !ok {
		return
	}

	r := d.DB.WithContext(c.Request.Context()).
		Where("id = ? AND user_id = ?", id, middleware.UserID(c)).
		Delete(&model.ScheduleEvent{})
	if r.Error != nil {
		respond.Error(c, apperr.Internal(fmt.Errorf("failed to delete schedule event, %w", r.Error)))
		return
	}

	if r.RowsAffected == 0 {
		respond.Error(c, apperr.NotFound(notFound))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event deleted",
	})
}
