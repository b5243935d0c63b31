package security

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCurrentUserID(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name   string
		claims *Claims
		want   uuid.UUID
	}{
		{"canonical id", &Claims{UserID: id}, id},
		{"raw bytes", &Claims{UserID: [16]byte(id)}, id},
		{"string encoding", &Claims{UserID: id.String()}, id},
		{"garbage string", &Claims{UserID: "not-an-id"}, uuid.Nil},
		{"number", &Claims{UserID: float64(42)}, uuid.Nil},
		{"missing claim", &Claims{}, uuid.Nil},
		{"nil claims", nil, uuid.Nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CurrentUserID(tt.claims))
		})
	}
}
