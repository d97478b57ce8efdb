package repository

import (
	"context"
	"time"

	"github.com/and161185/gatekeeper/internal/model"
	"github.com/gofrs/uuid/v5"
)

// RefreshTokenRepository stores refresh tokens by digest. Rows are append-plus-flag only.
type RefreshTokenRepository interface {
	// Create inserts a freshly issued token.
	Create(ctx context.Context, t *model.RefreshToken) error
	// GetByHash loads a token by the digest of its opaque value.
	GetByHash(ctx context.Context, tokenHash string) (*model.RefreshToken, error)
	// Rotate revokes the presented token and inserts its successor as one unit.
	// It fails with errs.ErrInvalidToken when the presented token is no longer valid at
	// now or belongs to a different user than successor, and then nothing changes.
	Rotate(ctx context.Context, presentedHash string, successor *model.RefreshToken, now time.Time) error
	// Revoke marks the token revoked only if it belongs to userID. Absence is not an error.
	Revoke(ctx context.Context, tokenHash string, userID uuid.UUID) error
}

// ResetTokenRepository stores password reset tokens by digest.
type ResetTokenRepository interface {
	// Replace marks every unused token of t.UserID as used and inserts t, as one unit.
	Replace(ctx context.Context, t *model.PasswordResetToken) error
	// Consume marks the token used and sets the owner's password hash, as one unit.
	// It fails with errs.ErrInvalidToken when the token is absent, used or expired at now.
	Consume(ctx context.Context, tokenHash, passwordHash string, now time.Time) (uuid.UUID, error)
}

// EmailConfigRepository stores SMTP profiles. At most one row is active at any time.
type EmailConfigRepository interface {
	// Create inserts c; when c.IsActive, every other row is deactivated in the same unit.
	Create(ctx context.Context, c *model.EmailConfig) error
	// Update applies a partial update; activating deactivates every other row in the same unit.
	Update(ctx context.Context, id uuid.UUID, upd model.EmailConfigUpdate) (*model.EmailConfig, error)
	// Activate makes id the only active row. A missing id changes nothing.
	Activate(ctx context.Context, id uuid.UUID) (*model.EmailConfig, error)
	// Delete removes a row.
	Delete(ctx context.Context, id uuid.UUID) error
	// GetByID loads a row.
	GetByID(ctx context.Context, id uuid.UUID) (*model.EmailConfig, error)
	// GetActive loads the active row.
	GetActive(ctx context.Context) (*model.EmailConfig, error)
	// List returns every row ordered by creation time.
	List(ctx context.Context) ([]model.EmailConfig, error)
}
