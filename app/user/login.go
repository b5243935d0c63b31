package user

import (
	"barkwise/pet-api/internal"
	"barkwise/pet-api/internal/model"
	"barkwise/pet-api/internal/respond"
	"barkwise/pet-api/pkg/apperr"
	"barkwise/pet-api/pkg/security"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type loginBody struct {
	Email    string `json:"email" form:"email" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

var errInvalidCredentials = apperr.Unauthenticated("Invalid credentials")

func UserLogin(c *gin.Context, d *internal.Deps) {
	var data loginBody
	if !respond.Bind(c, &data, "Email and password are required.") {
		return
	}

	var user model.User

	err := d.DB.WithContext(c.Request.Context()).
		Where("email = ?", data.Email).
		First(&user).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respond.Error(c, errInvalidCredentials)
			return
		}

		respond.Error(c, apperr.Internal(fmt.Errorf("failed to look up user, %w", err)))
		return
	}

	ok, err := d.Hasher.Verify(data.Password, user.PasswordHash)
	if err != nil {
		respond.Error(c, apperr.Internal(fmt.Errorf("failed to verify password, %w", err)))
		return
	}

	if !ok {
		respond.Error(c, errInvalidCredentials)
		return
	}

	token, err := d.Tokens.Issue(&security.Claims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   security.RoleUser,
	})
	if err != nil {
		respond.Error(c, apperr.Internal(fmt.Errorf("failed to generate JWT auth token, %w", err)))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful!",
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
			"token": token,
		},
	})
}
