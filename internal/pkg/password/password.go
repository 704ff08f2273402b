// Package password wraps bcrypt for credential storage. Digests are
// self-describing ($2a$<cost>$...), so the hashing scheme can change
// without touching stored records.
package password

import "golang.org/x/crypto/bcrypt"

// Hash returns a one-way digest of plaintext suitable for storage.
func Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches digest. A malformed digest is
// treated as a mismatch, never an error.
func Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
