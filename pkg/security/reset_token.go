package security

import (
	"crypto/sha256"
	"encoding/hex"

	"barkwise/pet-api/pkg/util"
)

// ResetTokenSize is the number of random bytes in a password reset token
const ResetTokenSize = 32

// NewResetToken returns a random hex encoded reset token and the hash that
// gets persisted in its place
func NewResetToken() (raw, hash string, err error) {
	raw, err = util.GenerateToken(ResetTokenSize)
	if err != nil {
		return "", "", err
	}

	return raw, HashResetToken(raw), nil
}

// HashResetToken returns the SHA-256 hex digest of a raw reset token
func HashResetToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
