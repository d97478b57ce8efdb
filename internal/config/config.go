// Package config loads server settings from GATEKEEPER_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// MinSigningKeyLen is the shortest accepted access-token signing key, in bytes.
const MinSigningKeyLen = 32

// Config holds every runtime setting of the server and seed binaries.
type Config struct {
	Addr        string `env:"GATEKEEPER_ADDR"         envDefault:":8443"`
	DSN         string `env:"GATEKEEPER_DSN"`
	MetricsAddr string `env:"GATEKEEPER_METRICS_ADDR" envDefault:":9090"`
	TLSCert     string `env:"GATEKEEPER_TLS_CERT"`
	TLSKey      string `env:"GATEKEEPER_TLS_KEY"`
	LogLevel    string `env:"GATEKEEPER_LOG_LEVEL"    envDefault:"info"`

	SigningKey string        `env:"GATEKEEPER_SIGNING_KEY"`
	Issuer     string        `env:"GATEKEEPER_ISSUER"      envDefault:"gatekeeper"`
	AccessTTL  time.Duration `env:"GATEKEEPER_ACCESS_TTL"  envDefault:"30m"`
	RefreshTTL time.Duration `env:"GATEKEEPER_REFRESH_TTL" envDefault:"168h"`
	ResetTTL   time.Duration `env:"GATEKEEPER_RESET_TTL"   envDefault:"24h"`

	// MasterSecret derives the key that encrypts stored SMTP passwords.
	MasterSecret  string        `env:"GATEKEEPER_MASTER_SECRET"`
	ResetURL      string        `env:"GATEKEEPER_RESET_URL"      envDefault:"http://localhost:3000/auth/reset-password"`
	NotifyTimeout time.Duration `env:"GATEKEEPER_NOTIFY_TIMEOUT" envDefault:"15s"`

	LoginWindow   time.Duration `env:"GATEKEEPER_LOGIN_WINDOW"    envDefault:"15m"`
	LoginMaxFails int           `env:"GATEKEEPER_LOGIN_MAX_FAILS" envDefault:"5"`
	LoginBlockFor time.Duration `env:"GATEKEEPER_LOGIN_BLOCK_FOR" envDefault:"15m"`

	AdminUsername string `env:"GATEKEEPER_ADMIN_USERNAME" envDefault:"admin"`
	AdminEmail    string `env:"GATEKEEPER_ADMIN_EMAIL"    envDefault:"admin@example.com"`
	AdminPassword string `env:"GATEKEEPER_ADMIN_PASSWORD"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return c, c.Validate()
}

// Validate reports every problem at once.
func (c Config) Validate() error {
	var problems []error
	if c.DSN == "" {
		problems = append(problems, errors.New("GATEKEEPER_DSN is required"))
	}
	if len(c.SigningKey) < MinSigningKeyLen {
		problems = append(problems, fmt.Errorf("GATEKEEPER_SIGNING_KEY must be at least %d bytes", MinSigningKeyLen))
	}
	if c.MasterSecret == "" {
		problems = append(problems, errors.New("GATEKEEPER_MASTER_SECRET is required"))
	}
	for name, d := range map[string]time.Duration{
		"GATEKEEPER_ACCESS_TTL":     c.AccessTTL,
		"GATEKEEPER_REFRESH_TTL":    c.RefreshTTL,
		"GATEKEEPER_RESET_TTL":      c.ResetTTL,
		"GATEKEEPER_NOTIFY_TIMEOUT": c.NotifyTimeout,
	} {
		if d <= 0 {
			problems = append(problems, fmt.Errorf("%s must be positive", name))
		}
	}
	if c.LoginMaxFails < 1 {
		problems = append(problems, errors.New("GATEKEEPER_LOGIN_MAX_FAILS must be at least 1"))
	}
	if (c.TLSCert == "") != (c.TLSKey == "") {
		problems = append(problems, errors.New("GATEKEEPER_TLS_CERT and GATEKEEPER_TLS_KEY must be set together"))
	}
	if !strings.Contains(c.AdminEmail, "@") {
		problems = append(problems, errors.New("GATEKEEPER_ADMIN_EMAIL must be an e-mail address"))
	}
	return errors.Join(problems...)
}
