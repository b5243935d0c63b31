package validators

import "errors"

var (
	ErrPasswordTooLong  = errors.New("password is too long")
	ErrPasswordEmpty    = errors.New("no password provided")
	ErrPasswordMismatch = errors.New("passwords do not match")
)

// PasswordValidator checks a new password and its confirmation
func PasswordValidator(p, confirm string) error {
	if p == "" {
		return ErrPasswordEmpty
	}

	if len(p) > 255 {
		return ErrPasswordTooLong
	}

	if p != confirm {
		return ErrPasswordMismatch
	}

	return nil
}
