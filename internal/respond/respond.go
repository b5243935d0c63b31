// Package respond writes JSON error responses and binds request bodies
package respond

import (
	"barkwise/pet-api/pkg/apperr"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var setupOnce sync.Once

// Setup makes validation errors refer to fields by their JSON names
func Setup() {
	setupOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "" || name == "-" {
				return f.Name
			}

			return name
		})
	})
}

// Error aborts the request with the status and message belonging to err.
// Internal errors are logged, their details never reach the client.
func Error(c *gin.Context, err error) {
	requestID := c.GetString("requestID")

	if apperr.KindOf(err) == apperr.KindInternal {
		zap.L().Error("Request failed",
			zap.Error(err),
			zap.String("requestID", requestID),
			zap.String("path", c.FullPath()),
		)
	}

	c.AbortWithStatusJSON(apperr.Status(err), gin.H{
		"error":     apperr.Message(err),
		"requestID": requestID,
	})
}

// Bind binds the request body into v. When a required field is missing the
// client gets missingMsg, or a generated message if missingMsg is empty.
// It reports whether the handler should continue.
func Bind(c *gin.Context, v any, missingMsg string) bool {
	err := c.ShouldBind(v)
	if err == nil {
		return true
	}

	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{
			"error":     "Request body size exceeds limit",
			"requestID": c.GetString("requestID"),
		})
		return false
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		Error(c, apperr.Validation(validationMessage(verrs, missingMsg)))
		return false
	}

	zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", c.GetString("requestID")))
	Error(c, apperr.Validation("Invalid request body"))
	return false
}

func validationMessage(verrs validator.ValidationErrors, missingMsg string) string {
	fe := verrs[0]

	switch fe.Tag() {
	case "required":
		if missingMsg != "" {
			return missingMsg
		}

		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "Invalid email address provided"
	case "eqfield":
		return "Passwords do not match"
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
