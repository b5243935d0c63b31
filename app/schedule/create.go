// Package schedule contains the calendar endpoints. Events are private to
// the user that created them.
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

const (
	notFound   = "Event not found"
	missingMsg = "Missing required fields"
)

type eventBody struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
	Start   string `json:"start" binding:"required"`
	End     string `json:"end" binding:"required"`
}

func ScheduleCreate(c *gin.Context, d *internal.Deps) {
	var data eventBody
	if !respond.Bind(c, &data, missingMsg) {
		return
	}

	event := model.ScheduleEvent{
		UserID:  middleware.UserID(c),
		Title:   data.Title,
		Content: data.Content,
		Start:   data.Start,
		End:     data.End,
	}

	if err := d.DB.WithContext(c.Request.Context()).Create(&event).Error; err != nil {
		respond.Error(c, apperr.Internal(fmt.Errorf("failed to create schedule event, %w", err)))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Event added successfully",
		"event":   event,
	})
}
