package util

import gonanoid "github.com/matoous/go-nanoid/v2"

const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// RandStr returns a random string of n letters. It's used for request and
// delivery IDs, never for anything secret.
func RandStr(n int) string {
	s, err := gonanoid.Generate(charset, n)
	if err != nil {
		// Only fails when the system entropy source does
		panic(err)
	}

	return s
}
