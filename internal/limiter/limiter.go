// Package limiter throttles repeated failed logins per (username, client address).
package limiter

import (
	"context"
	"crypto/sha256"
	"time"
)

// Limiter controls login attempts and temporary lockouts.
type Limiter interface {
	// Allow reports whether a login may be attempted now and, if not, how long to wait.
	Allow(ctx context.Context, username string, ipHash []byte) (bool, time.Duration, error)
	// Success clears the failure streak.
	Success(ctx context.Context, username string, ipHash []byte) error
	// Failure records a failed attempt and reports whether it triggered a lockout.
	Failure(ctx context.Context, username string, ipHash []byte) (bool, time.Duration, error)
}

// Policy is the lockout policy shared by implementations.
type Policy struct {
	Window   time.Duration // failures older than this no longer count
	MaxFails int
	BlockFor time.Duration
}

// DefaultPolicy locks a pair out for 15 minutes after 5 failures within 15 minutes.
var DefaultPolicy = Policy{Window: 15 * time.Minute, MaxFails: 5, BlockFor: 15 * time.Minute}

// HashIP returns a stable digest of a client address so raw addresses are never stored.
func HashIP(ip string) []byte {
	h := sha256.Sum256([]byte(ip))
	return h[:]
}
