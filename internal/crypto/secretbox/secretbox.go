// Package secretbox encrypts at-rest secrets (SMTP passwords) with a key derived from the
// process master secret.
package secretbox

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"github.com/and161185/gatekeeper/internal/crypto"
	"github.com/and161185/gatekeeper/internal/errs"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

const keyInfo = "gatekeeper/secretbox/v1"

// Box seals strings with XChaCha20-Poly1305. The output is base64url(nonce||ciphertext).
type Box struct {
	key []byte
}

// New derives the symmetric key from master via HKDF-SHA256. The master itself is not retained.
func New(master string) (*Box, error) {
	if master == "" {
		return nil, errors.New("secretbox: empty master secret")
	}
	key := make([]byte, chacha20poly1305.KeySize)
	r := hkdf.New(sha256.New, []byte(master), nil, []byte(keyInfo))
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, fmt.Errorf("secretbox: derive key: %w", err)
	}
	return &Box{key: key}, nil
}

// Encrypt seals plaintext. The empty string maps to the empty string.
func (b *Box) Encrypt(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}
	aead, err := chacha20poly1305.NewX(b.key)
	if err != nil {
		return "", err
	}
	nonce, err := crypto.RandBytes(chacha20poly1305.NonceSizeX)
	if err != nil {
		return "", err
	}
	out := make([]byte, 0, len(nonce)+len(plaintext)+aead.Overhead())
	out = append(out, nonce...)
	out = aead.Seal(out, nonce, []byte(plaintext), nil)
	return base64.RawURLEncoding.EncodeToString(out), nil
}

// Decrypt opens ciphertext produced by Encrypt. The empty string maps to the empty string.
// Tampered, truncated or foreign input fails with errs.ErrDecryption.
func (b *Box) Decrypt(ciphertext string) (string, error) {
	if ciphertext == "" {
		return "", nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", errs.ErrDecryption
	}
	aead, err := chacha20poly1305.NewX(b.key)
	if err != nil {
		return "", err
	}
	if len(raw) < aead.NonceSize()+aead.Overhead() {
		return "", errs.ErrDecryption
	}
	nonce, ct := raw[:aead.NonceSize()], raw[aead.NonceSize():]
	pt, err := aead.Open(nil, nonce, ct, nil)
	if err != nil {
		return "", errs.ErrDecryption
	}
	return string(pt), nil
}
