package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", Validation("bad"), http.StatusBadRequest},
		{"missing token", Unauthenticated("Missing token"), http.StatusUnauthorized},
		{"invalid token", InvalidToken("Invalid token"), http.StatusForbidden},
		{"forbidden", Forbidden("no"), http.StatusForbidden},
		{"not found", NotFound("gone"), http.StatusNotFound},
		{"conflict", Conflict("dup"), http.StatusConflict},
		{"internal", Internal(errors.New("db down")), http.StatusInternalServerError},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
		{"wrapped", fmt.Errorf("ctx, %w", NotFound("gone")), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Status(tt.err))
		})
	}
}

func TestMessageHidesInternalDetails(t *testing.T) {
	err := Internal(errors.New("pq: password authentication failed for user admin"))

	assert.Equal(t, "Internal server error", Message(err))
	assert.Contains(t, err.Error(), "pq: password authentication failed")
	assert.Equal(t, "Entry not found", Message(NotFound("Entry not found")))
}
