// Package util contains any functions used across the application that don't match
// any other package
package util

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateToken returns n cryptographically random bytes encoded as hex
func GenerateToken(n int) (string, error) {
	b := make([]byte, n)

	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(b), nil
}
