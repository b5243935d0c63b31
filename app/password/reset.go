package password

import (
	"barkwise/pet-api/internal"
	"barkwise/pet-api/internal/respond"
	"net/http"

	"github.com/gin-gonic/gin"
)

type resetBody struct {
	Token           string `json:"token" form:"token"`
	NewPassword     string `json:"newPassword" form:"newPassword"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword"`
}

func ResetPassword(c *gin.Context, d *internal.Deps) {
	var data resetBody
	if !respond.Bind(c, &data, "") {
		return
	}

	err := d.Resets.Consume(c.Request.Context(), data.Token, data.NewPassword, data.ConfirmPassword)
	if err != nil {
		respond.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Password successfully reset",
	})
}
