package crypto

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
)

// OpaqueTokenBytes is the entropy of refresh and reset tokens (256 bits).
const OpaqueTokenBytes = 32

// NewOpaqueToken returns a random URL-safe bearer secret.
func NewOpaqueToken() (string, error) {
	b, err := RandBytes(OpaqueTokenBytes)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// HashToken returns the hex SHA-256 of an opaque token, the form persisted in the store.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// EqualHash compares two token digests in constant time.
func EqualHash(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
