// Package validators contains checks on user supplied account data
package validators

import (
	"errors"
	"net/mail"
)

const maxEmailLength = 254

var (
	ErrEmailEmpty   = errors.New("no email address provided")
	ErrEmailInvalid = errors.New("invalid email address provided")
)

// EmailValidator accepts a bare address like a@x.io. Display names such as
// "Ana <a@x.io>" are rejected since the value is stored and mailed as is.
func EmailValidator(e string) error {
	if e == "" {
		return ErrEmailEmpty
	}

	if len(e) > maxEmailLength {
		return ErrEmailInvalid
	}

	addr, err := mail.ParseAddress(e)
	if err != nil || addr.Address != e {
		return ErrEmailInvalid
	}

	return nil
}
