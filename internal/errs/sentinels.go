// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across repo/service layers.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a unique constraint violation (e.g., username taken).
	ErrConflict = errors.New("conflict")

	// ErrUnauthenticated indicates bad credentials or an invalid access token.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrInvalidToken indicates a refresh or reset token that is absent, expired, revoked or used.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrWrongPassword indicates the current password did not match on change-password.
	ErrWrongPassword = errors.New("current password is incorrect")

	// ErrForbidden indicates the authenticated caller lacks the required permission.
	ErrForbidden = errors.New("forbidden")

	// ErrDecryption indicates tampered or foreign ciphertext in the secret store.
	ErrDecryption = errors.New("decryption failed")

	// ErrInvalidInput indicates request validation failure.
	ErrInvalidInput = errors.New("invalid input")

	// ErrRateLimited indicates temporary login lock due to rate limiting.
	ErrRateLimited = errors.New("rate limited")

	// ErrDeliveryFailed indicates an e-mail could not be delivered.
	ErrDeliveryFailed = errors.New("delivery failed")
)
