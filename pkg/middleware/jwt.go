package middleware

import (
	"barkwise/pet-api/pkg/apperr"
	"barkwise/pet-api/pkg/security"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const claimsKey = "claims"

// TokenVerifier is satisfied by *security.TokenIssuer
type TokenVerifier interface {
	Verify(raw string) (*security.Claims, error)
}

// NewJWTMiddleware rejects requests without a valid bearer token. Verified
// claims are stored on the request context for the handler.
func NewJWTMiddleware(v TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetString("requestID")

		claims, err := v.Verify(security.BearerToken(c.GetHeader("Authorization")))
		if err != nil {
			if !errors.Is(err, security.ErrMissingToken) {
				zap.L().Debug("Rejected token", zap.Error(err), zap.String("requestID", requestID))
			}

			c.AbortWithStatusJSON(apperr.Status(err), gin.H{
				"error":     apperr.Message(err),
				"requestID": requestID,
			})
			return
		}

		c.Set(claimsKey, claims)
		c.Set("userID", security.CurrentUserID(claims).String())
		c.Next()
	}
}

// Claims returns the verified claims of the current request. It must only be
// called behind NewJWTMiddleware.
func Claims(c *gin.Context) *security.Claims {
	return c.MustGet(claimsKey).(*security.Claims)
}

// UserID returns the id of the acting user of the current request
func UserID(c *gin.Context) uuid.UUID {
	return security.CurrentUserID(Claims(c))
}
