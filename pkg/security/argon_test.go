package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Cheap parameters so the suite stays fast
func testHasher() *ArgonHash {
	return NewWithParams(1024, 1, 1)
}

func TestArgonHashAndVerify(t *testing.T) {
	a := testHasher()

	encoded, err := a.Hash("p1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "$argon2id$v=19$m=1024,t=1,p=1$"))
	assert.NotContains(t, encoded, "p1$")

	ok, err := a.Verify("p1", encoded)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = a.Verify("p2", encoded)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestArgonHashIsSalted(t *testing.T) {
	a := testHasher()

	h1, err := a.Hash("same")
	require.NoError(t, err)
	h2, err := a.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestArgonVerifyUsesStoredParams(t *testing.T) {
	old := NewWithParams(2048, 2, 1)
	encoded, err := old.Hash("secret")
	require.NoError(t, err)

	ok, err := testHasher().Verify("secret", encoded)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestArgonVerifyInvalidHash(t *testing.T) {
	a := testHasher()

	for _, e := range []string{"", "plain", "$2a$10$abcdefghijklmnopqrstuv", "$argon2id$v=19$m=x$a$b"} {
		ok, err := a.Verify("secret", e)
		assert.False(t, ok)
		assert.ErrorIs(t, err, ErrInvalidHash, e)
	}
}

func TestNewWithParamsDefaults(t *testing.T) {
	a := NewWithParams(0, 0, 0)

	assert.Equal(t, New(), a)
}
