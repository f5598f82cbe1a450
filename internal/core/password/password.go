// Package password wraps bcrypt hashing behind a minimal hash/verify pair so
// the rest of the code never touches the primitive directly.
package password

import "golang.org/x/crypto/bcrypt"

// cost is the bcrypt work factor. Fixed; changing it only affects newly
// created hashes, existing ones carry their own factor.
const cost = 10

// Hash derives a salted one-way digest from plaintext. Each call produces a
// different digest for the same input.
func Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches digest. A mismatch is a false
// return, never an error surfaced to callers.
func Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
