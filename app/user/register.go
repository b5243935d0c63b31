// Package user contains the account endpoints
package user

import (
	"barkwise/pet-api/internal"
	"barkwise/pet-api/internal/model"
	"barkwise/pet-api/internal/respond"
	"barkwise/pet-api/pkg/apperr"
	"barkwise/pet-api/validators"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type registerBody struct {
	Name            string `json:"name" form:"name" binding:"required"`
	Birthday        string `json:"birthday" form:"birthday"`
	ColorPattern    string `json:"colorPattern" form:"colorPattern"`
	Email           string `json:"email" form:"email" binding:"required"`
	Password        string `json:"password" form:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword" binding:"required"`
	// Name of an already stored picture, uploads are handled elsewhere
	ProfilePicture string `json:"profilePicture" form:"profilePicture"`
}

func UserRegister(c *gin.Context, d *internal.Deps) {
	requestID := c.GetString("requestID")

	var data registerBody
	if !respond.Bind(c, &data, "Missing required fields") {
		return
	}

	if err := validators.PasswordValidator(data.Password, data.ConfirmPassword); err != nil {
		msg := err.Error()
		if errors.Is(err, validators.ErrPasswordMismatch) {
			msg = "Passwords do not match"
		}

		respond.Error(c, apperr.Validation(msg))
		return
	}

	if err := validators.EmailValidator(data.Email); err != nil {
		zap.L().Debug("Invalid email", zap.Error(err), zap.String("requestID", requestID))
		respond.Error(c, apperr.Validation("Invalid email address provided"))
		return
	}

	var found int64

	err := d.DB.WithContext(c.Request.Context()).
		Model(&model.User{}).
		Where("email = ?", data.Email).
		Count(&found).
		Error
	if err != nil {
		respond.Error(c, apperr.Internal(fmt.Errorf("failed to check if user is registered, %w", err)))
		return
	}

	if found > 0 {
		respond.Error(c, apperr.Conflict("Email already registered"))
		return
	}

	hash, err := d.Hasher.Hash(data.Password)
	if err != nil {
		respond.Error(c, apperr.Internal(fmt.Errorf("failed to hash password, %w", err)))
		return
	}

	user := model.User{
		Name:         data.Name,
		Birthday:     data.Birthday,
		ColorPattern: data.ColorPattern,
		Email:        data.Email,
		PasswordHash: hash,
	}

	if data.ProfilePicture != "" {
		user.ProfilePicture = &data.ProfilePicture
	}

	if err := d.DB.WithContext(c.Request.Context()).Create(&user).Error; err != nil {
		// Lost a race with a concurrent registration
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			respond.Error(c, apperr.Conflict("Email already registered"))
			return
		}

		respond.Error(c, apperr.Internal(fmt.Errorf("failed to create user, %w", err)))
		return
	}

	zap.L().Info("User registered", zap.String("userID", user.ID.String()), zap.String("requestID", requestID))

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful!",
		"user": gin.H{
			"id":             user.ID,
			"email":          user.Email,
			"name":           user.Name,
			"profilePicture": user.PictureURL(),
		},
	})
}
