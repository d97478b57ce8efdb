// Package crypto implements server-side password hashing and opaque token primitives.
package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

// Argon2Params tunes the Argon2id cost.
type Argon2Params struct {
	Time    uint32 // iterations
	Memory  uint32 // KiB
	Threads uint8
	KeyLen  uint32
	SaltLen int
}

// DefaultArgon2Params are tuned for server-side hashing.
var DefaultArgon2Params = Argon2Params{
	Time:    3,
	Memory:  64 * 1024, // 64 MB
	Threads: 1,
	KeyLen:  32,
	SaltLen: 16,
}

var errEmptyPassword = errors.New("empty password")

// Hasher produces Argon2id digests in PHC string format:
//
//	$argon2id$v=19$m=65536,t=3,p=1$<salt>$<hash>
//
// Verify also accepts bcrypt digests ($2a$, $2b$, $2y$) carried over from older deployments.
type Hasher struct {
	p Argon2Params
}

// NewHasher returns a hasher with the given Argon2id parameters.
func NewHasher(p Argon2Params) *Hasher {
	return &Hasher{p: p}
}

// RandBytes returns n cryptographically secure random bytes.
func RandBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	_, err := rand.Read(b)
	return b, err
}

// Hash returns an encoded Argon2id digest of password using a fresh random salt.
func (h *Hasher) Hash(password string) (string, error) {
	if password == "" {
		return "", errEmptyPassword
	}
	salt, err := RandBytes(h.p.SaltLen)
	if err != nil {
		return "", err
	}
	key := argon2.IDKey([]byte(password), salt, h.p.Time, h.p.Memory, h.p.Threads, h.p.KeyLen)
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, h.p.Memory, h.p.Time, h.p.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify reports whether password matches digest. Malformed digests yield false.
func (h *Hasher) Verify(password, digest string) bool {
	switch {
	case strings.HasPrefix(digest, "$argon2id$"):
		return verifyArgon2id(password, digest)
	case strings.HasPrefix(digest, "$2a$"), strings.HasPrefix(digest, "$2b$"), strings.HasPrefix(digest, "$2y$"):
		return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
	default:
		return false
	}
}

func verifyArgon2id(password, digest string) bool {
	// "", "argon2id", "v=19", "m=..,t=..,p=..", salt, hash
	parts := strings.Split(digest, "$")
	if len(parts) != 6 {
		return false
	}
	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return false
	}
	var (
		memory, iters uint32
		threads       uint8
	)
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iters, &threads); err != nil {
		return false
	}
	if memory == 0 || iters == 0 || threads == 0 {
		return false
	}
	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(want) == 0 {
		return false
	}
	got := argon2.IDKey([]byte(password), salt, iters, memory, threads, uint32(len(want)))
	return subtle.ConstantTimeCompare(got, want) == 1
}
