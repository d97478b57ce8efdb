// Package model defines domain entities used by services and repositories.
package model

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// Tokens collects an issued access/refresh token pair.
type Tokens struct {
	AccessToken      string
	RefreshToken     string
	AccessExpiresAt  time.Time
	RefreshExpiresAt time.Time
}

// User is an identity record. PasswordHash is a self-describing digest (argon2id or bcrypt).
type User struct {
	ID           uuid.UUID
	Email        string // unique
	Username     string // unique
	PasswordHash string
	FirstName    string
	LastName     string
	IsActive     bool
	IsSuperuser  bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DisplayName is the name used to greet the user in notifications.
func (u User) DisplayName() string {
	if u.FirstName != "" {
		return u.FirstName
	}
	return u.Username
}

// Role is a named permission bundle.
type Role struct {
	ID          uuid.UUID
	Name        string // unique
	Description string
	IsActive    bool
	Permissions []Permission
}

// Permission is an atomic capability identified by a "resource.action" code.
type Permission struct {
	ID          uuid.UUID
	Name        string
	Code        string // unique
	Description string
	Resource    string
	Action      string
	IsActive    bool
}

// RefreshToken is a persisted, single-use refresh credential. Only the SHA-256 of the
// opaque value is stored.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	IsRevoked bool
	CreatedAt time.Time
}

// IsValid reports whether the token can still be exchanged at instant now.
func (t RefreshToken) IsValid(now time.Time) bool {
	return now.Before(t.ExpiresAt) && !t.IsRevoked
}

// PasswordResetToken is a persisted, single-use reset credential.
type PasswordResetToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	IsUsed    bool
	CreatedAt time.Time
}

// IsValid reports whether the token can still be consumed at instant now.
func (t PasswordResetToken) IsValid(now time.Time) bool {
	return now.Before(t.ExpiresAt) && !t.IsUsed
}

// EmailConfig is an SMTP delivery profile. PasswordEnc holds secret-store ciphertext.
type EmailConfig struct {
	ID           uuid.UUID
	Provider     string
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	PasswordEnc  string
	SenderEmail  string
	SenderName   string
	UseTLS       bool
	UseSSL       bool
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// EmailConfigInput is the plaintext form accepted when creating a profile.
type EmailConfigInput struct {
	Provider     string
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SenderEmail  string
	SenderName   string
	UseTLS       bool
	UseSSL       bool
	IsActive     bool
}

// EmailConfigUpdate is a partial update; nil fields are left untouched.
// SMTPPassword is plaintext at the service boundary and replaced by PasswordEnc before persistence.
type EmailConfigUpdate struct {
	Provider     *string
	SMTPHost     *string
	SMTPPort     *int
	SMTPUsername *string
	SMTPPassword *string
	PasswordEnc  *string
	SenderEmail  *string
	SenderName   *string
	UseTLS       *bool
	UseSSL       *bool
	IsActive     *bool
}

// EmailPreset is a suggested SMTP profile for a well-known provider.
type EmailPreset struct {
	Name         string
	SMTPHost     string
	SMTPPort     int
	UseTLS       bool
	UseSSL       bool
	Instructions string
}
