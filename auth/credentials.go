// Package auth isolates credential comparison so the stored-password
// scheme can change without touching handlers or repositories.
package auth

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// VerifyPassword reports whether supplied matches the stored credential.
// Records migrated from the legacy data files hold plaintext passwords and
// are compared in constant time; records that carry a bcrypt hash are
// verified with bcrypt, so collections can be re-hashed incrementally.
func VerifyPassword(stored, supplied string) bool {
	if isBcryptHash(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}
