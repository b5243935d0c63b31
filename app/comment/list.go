package comment

import (
	"barkwise/pet-api/internal"
	"barkwise/pet-api/internal/model"
	"barkwise/pet-api/internal/respond"
	"barkwise/pet-api/pkg/apperr"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CommentList returns all comments, or those of one component when the
// componentId query parameter is set
func CommentList(c *gin.Context, d *internal.Deps) {
	q := d.DB.WithContext(c.Request.Context()).Order("created_at asc")

	if componentID := c.Query("componentId"); componentID != "" {
		q = q.Where("component_id = ?", componentID)
	}

	comments := []model.Comment{}
	if err := q.Find(&comments).Error; err != nil {
		respond.Error(c, apperr.Internal(fmt.Errorf("failed to list comments, %w", err)))
		return
	}

	c.JSON(http.StatusOK, comments)
}

func CommentFetch(c *gin.Context, d *internal.Deps) {
	id, ok := respond.ParamID(c, notFound)
	if !ok {
		return
	}

	var comment model.Comment

	err := d.DB.WithContext(c.Request.Context()).
		Where("id = ?", id).
		First(&comment).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respond.Error(c, apperr.NotFound(notFound))
			return
		}

		respond.Error(c, apperr.Internal(fmt.Errorf("failed to fetch comment, %w", err)))
		return
	}

	c.JSON(http.StatusOK, comment)
}
