package security

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResetToken(t *testing.T) {
	raw, hash, err := NewResetToken()
	require.NoError(t, err)

	b, err := hex.DecodeString(raw)
	require.NoError(t, err)
	assert.Len(t, b, ResetTokenSize)

	assert.Equal(t, HashResetToken(raw), hash)
	assert.NotEqual(t, raw, hash)

	raw2, _, err := NewResetToken()
	require.NoError(t, err)
	assert.NotEqual(t, raw, raw2)
}
