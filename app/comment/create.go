package comment

import (
	"barkwise/pet-api/internal"
	"barkwise/pet-api/internal/model"
	"barkwise/pet-api/internal/respond"
	"barkwise/pet-api/pkg/apperr"
	"barkwise/pet-api/pkg/middleware"
	"barkwise/pet-api/pkg/security"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type createBody struct {
	Text        string `json:"text" binding:"required"`
	ComponentID string `json:"componentId" binding:"required"`
}

func CommentCreate(c *gin.Context, d *internal.Deps) {
	var data createBody
	if !respond.Bind(c, &data, "Text and componentId are required") {
		return
	}

	claims := middleware.Claims(c)

	comment := model.Comment{
		Author:      authorName(claims),
		Text:        data.Text,
		ComponentID: data.ComponentID,
		CreatedAt:   d.Now().UTC(),
	}

	if id := security.CurrentUserID(claims); id != uuid.Nil {
		comment.AuthorID = &id
	}

	if err := d.DB.WithContext(c.Request.Context()).Create(&comment).Error; err != nil {
		respond.Error(c, apperr.Internal(fmt.Errorf("failed to create comment, %w", err)))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Comment added",
		"comment": comment,
	})
}
