// Package token issues and verifies stateless HS256 access tokens.
package token

import (
	"errors"
	"time"

	"github.com/and161185/gatekeeper/internal/errs"
	"github.com/golang-jwt/jwt/v5"
)

// MinKeyLen is the minimum accepted signing key length in bytes.
const MinKeyLen = 32

const leeway = 30 * time.Second

// Codec signs and verifies access tokens. The key is fixed for the lifetime of the process.
type Codec struct {
	key    []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

// Option configures a Codec.
type Option func(*Codec)

// WithIssuer sets the "iss" claim; verification then requires it.
func WithIssuer(iss string) Option { return func(c *Codec) { c.issuer = iss } }

// WithClock overrides the time source (tests).
func WithClock(now func() time.Time) Option {
	return func(c *Codec) {
		if now != nil {
			c.now = now
		}
	}
}

// NewCodec constructs a codec with the given signing key and default TTL.
func NewCodec(key []byte, ttl time.Duration, opts ...Option) (*Codec, error) {
	if len(key) < MinKeyLen {
		return nil, errors.New("token: signing key too short")
	}
	if ttl <= 0 {
		return nil, errors.New("token: ttl must be positive")
	}
	c := &Codec{key: append([]byte(nil), key...), ttl: ttl, now: time.Now}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// TTL returns the default access token lifetime.
func (c *Codec) TTL() time.Duration { return c.ttl }

// Issue signs a token for subject with the default TTL.
func (c *Codec) Issue(subject string) (string, time.Time, error) {
	return c.IssueTTL(subject, c.ttl)
}

// IssueTTL signs a token for subject that expires after ttl.
func (c *Codec) IssueTTL(subject string, ttl time.Duration) (string, time.Time, error) {
	if subject == "" {
		return "", time.Time{}, errors.New("token: empty subject")
	}
	now := c.now()
	exp := now.Add(ttl)
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    c.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(c.key)
	return signed, exp, err
}

// Verify checks signature, algorithm and expiry and returns the subject.
// Every failure yields errs.ErrUnauthenticated without further detail.
func (c *Codec) Verify(raw string) (string, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(leeway),
		jwt.WithTimeFunc(c.now),
		jwt.WithStrictDecoding(),
	}
	if c.issuer != "" {
		opts = append(opts, jwt.WithIssuer(c.issuer))
	}

	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return c.key, nil
	}, opts...)
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return "", errs.ErrUnauthenticated
	}
	return claims.Subject, nil
}
