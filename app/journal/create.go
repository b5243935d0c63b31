// Package journal contains the endpoints of the personal journal. Every
// query is scoped to the logged in user.
package journal

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

const notFound = "Entry not found"

type createBody struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

func JournalCreate(c *gin.Context, d *internal.Deps) {
	var data createBody
	if !respond.Bind(c, &data, "Title is required") {
		return
	}

	entry := model.JournalEntry{
		UserID:      middleware.UserID(c),
		Title:       data.Title,
		Description: data.Description,
		Image:       data.Image,
		Timestamp:   d.Now().Format(model.TimestampLayout),
	}

	if err := d.DB.WithContext(c.Request.Context()).Create(&entry).Error; err != nil {
		respond.Error(c, apperr.Internal(fmt.Errorf("failed to create journal entry, %w", err)))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Journal entry created",
		"entry":   entry,
	})
}
