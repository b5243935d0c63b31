package util

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	a, err := GenerateToken(32)
	require.NoError(t, err)

	b, err := GenerateToken(32)
	require.NoError(t, err)

	raw, err := hex.DecodeString(a)
	require.NoError(t, err)
	assert.Len(t, raw, 32)
	assert.NotEqual(t, a, b)
}

func TestRandStr(t *testing.T) {
	s := RandStr(24)

	assert.Len(t, s, 24)
	assert.Regexp(t, "^[a-zA-Z]+$", s)
}
