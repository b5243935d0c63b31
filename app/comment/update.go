package comment

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

type updateBody struct {
	Text string `json:"text" binding:"required"`
}

var errNotAuthor = apperr.Forbidden("Unauthorized")

func CommentUpdate(c *gin.Context, d *internal.Deps) {
	id, ok := respond.ParamID(c, notFound)
	if !ok {
		return
	}

	var data updateBody
	if !respond.Bind(c, &data, "Text is required") {
		return
	}

	claims := middleware.Claims(c)

	var comment model.Comment

	err := d.DB.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&comment).Error; err != nil {
			return err
		}

		if !isAuthor(&comment, claims) {
			return errNotAuthor
		}

		if err := tx.Model(&comment).Update("text", data.Text).Error; err != nil {
			return err
		}

		return tx.Where("id = ?", id).First(&comment).Error
	})
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			respond.Error(c, apperr.NotFound(notFound))
		case errors.Is(err, errNotAuthor):
			respond.Error(c, err)
		default:
			respond.Error(c, apperr.Internal(fmt.Errorf("failed to update comment, %w", err)))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Comment updated",
		"comment": comment,
	})
}
