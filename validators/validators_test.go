package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailValidator(t *testing.T) {
	assert.NoError(t, EmailValidator("a@x.com"))
	assert.ErrorIs(t, EmailValidator(""), ErrEmailEmpty)
	assert.ErrorIs(t, EmailValidator("not an email"), ErrEmailInvalid)
	assert.ErrorIs(t, EmailValidator("Ana <a@x.com>"), ErrEmailInvalid)
	assert.ErrorIs(t, EmailValidator(strings.Repeat("a", 250)+"@x.com"), ErrEmailInvalid)
}

func TestPasswordValidator(t *testing.T) {
	assert.NoError(t, PasswordValidator("p1", "p1"))
	assert.ErrorIs(t, PasswordValidator("", ""), ErrPasswordEmpty)
	assert.ErrorIs(t, PasswordValidator("p1", "p2"), ErrPasswordMismatch)

	long := strings.Repeat("x", 256)
	assert.ErrorIs(t, PasswordValidator(long, long), ErrPasswordTooLong)
}
