package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashResetToken generates a SHA256 hash of a password-reset token.
// Only the hash is stored; the raw token goes out by email.
func HashResetToken(token string) string {
	hasher := sha256.New()
	hasher.Write([]byte(token))
	return hex.EncodeToString(hasher.Sum(nil))
}

// CompareResetTokenHash compares a raw reset token with its stored SHA256 hash.
func CompareResetTokenHash(token string, storedHash string) bool {
	return HashResetToken(token) == storedHash
}
