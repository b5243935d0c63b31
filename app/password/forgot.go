// Package password contains the password recovery endpoints
package password

import (
	"barkwise/pet-api/internal"
	"barkwise/pet-api/internal/respond"
	"net/http"

	"github.com/gin-gonic/gin"
)

// The same answer is sent whether or not the account exists
const forgotMessage = "If that email exists, a reset link has been sent."

type forgotBody struct {
	Email string `json:"email" form:"email" binding:"required"`
}

func ForgotPassword(c *gin.Context, d *internal.Deps) {
	var data forgotBody
	if !respond.Bind(c, &data, "Email required") {
		return
	}

	if _, err := d.Resets.Request(c.Request.Context(), data.Email); err != nil {
		respond.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": forgotMessage,
	})
}
