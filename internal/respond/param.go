package respond

import (
	"barkwise/pet-api/pkg/apperr"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ParamID parses the :id path parameter. A malformed id can't belong to any
// record so it is answered with notFoundMsg.
func ParamID(c *gin.Context, notFoundMsg string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		Error(c, apperr.NotFound(notFoundMsg))
		return uuid.Nil, false
	}

	return id, true
}
