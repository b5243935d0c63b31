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

var errNotAuthorDelete = apperr.Forbidden("Unauthorized to delete this comment")

func CommentDelete(c *gin.Context, d *internal.Deps) {
	id, ok := respond.ParamID(c, notFound)
	if !ok {
		return
	}

	claims := middleware.Claims(c)

	err := d.DB.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		var comment model.Comment
		if err := tx.Where("id = ?", id).First(&comment).Error; err != nil {
			return err
		}

		if !isAuthor(&comment, claims) {
			return errNotAuthorDelete
		}

		return tx.Delete(&comment).Error
	})
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			respond.Error(c, apperr.NotFound(notFound))
		case errors.Is(err, errNotAuthorDelete):
			respond.Error(c, err)
		default:
			respond.Error(c, apperr.Internal(fmt.Errorf("failed to delete comment, %w", err)))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Comment deleted",
	})
}
