// Package root contains service level endpoints
package root

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Heartbeat is used to check if the server is alive
func Heartbeat(c *gin.Context) {
	c.Status(http.StatusOK)
}

// Validate answers 200 for requests that made it past the JWT middleware
func Validate(c *gin.Context) {
	c.Status(http.StatusOK)
}
