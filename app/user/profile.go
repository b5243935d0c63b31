package user

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

// UserProfile returns the profile of the logged in user
func UserProfile(c *gin.Context, d *internal.Deps) {
	var user model.User

	err := d.DB.WithContext(c.Request.Context()).
		Where("id = ?", middleware.UserID(c)).
		First(&user).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respond.Error(c, apperr.NotFound("User not found"))
			return
		}

		respond.Error(c, apperr.Internal(fmt.Errorf("failed to fetch profile, %w", err)))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name":           user.Name,
		"birthday":       user.Birthday,
		"colorPattern":   user.ColorPattern,
		"email":          user.Email,
		"profilePicture": user.PictureURL(),
	})
}
