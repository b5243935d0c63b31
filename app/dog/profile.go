// Package dog contains the endpoints of the shared dog profile and its
// weight history. None of them need a token.
package dog

import (
	"barkwise/pet-api/internal"
	"barkwise/pet-api/internal/model"
	"barkwise/pet-api/internal/respond"
	"barkwise/pet-api/internal/service"
	"barkwise/pet-api/pkg/apperr"
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// flexString accepts both JSON strings and numbers, clients send the age
// either way
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	if bytes.HasPrefix(b, []byte(`"`)) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}

		*f = flexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}

	*f = flexString(n.String())
	return nil
}

type profileBody struct {
	Name          string     `json:"name" binding:"required"`
	Breed         string     `json:"breed" binding:"required"`
	Age           flexString `json:"age" binding:"required"`
	Health        string     `json:"health" binding:"required"`
	TrainingLevel string     `json:"trainingLevel" binding:"required"`
}

func DogProfileFetch(c *gin.Context, d *internal.Deps) {
	profile, err := service.CurrentDogProfile(c.Request.Context(), d.DB)
	if err != nil {
		respond.Error(c, apperr.Internal(fmt.Errorf("failed to fetch dog profile, %w", err)))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Dog profile route reached",
		"dogProfile": profile,
	})
}

// DogProfileCreate replaces the dog profile with the one in the request
func DogProfileCreate(c *gin.Context, d *internal.Deps) {
	var data profileBody
	if !respond.Bind(c, &data, "All fields required") {
		return
	}

	profile := model.DogProfile{
		Name:          data.Name,
		Breed:         data.Breed,
		Age:           string(data.Age),
		Health:        data.Health,
		TrainingLevel: data.TrainingLevel,
	}

	if err := service.ReplaceDogProfile(c.Request.Context(), d.DB, &profile); err != nil {
		respond.Error(c, apperr.Internal(fmt.Errorf("failed to replace dog profile, %w", err)))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Dog profile created successfully",
		"dogProfile": profile,
	})
}
