package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/and161185/gatekeeper/internal/errs"
	"github.com/and161185/gatekeeper/internal/model"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
)

// RefreshRepo implements RefreshTokenRepository using PostgreSQL.
type RefreshRepo struct{ db *DB }

// NewRefreshRepo constructs a refresh token repository.
func NewRefreshRepo(db *DB) *RefreshRepo { return &RefreshRepo{db: db} }

const insertRefresh = `INSERT INTO refresh_tokens (id, user_id, token_hash, expires_at, is_revoked) VALUES ($1, $2, $3, $4, false) RETURNING created_at`

// Create inserts a freshly issued token.
func (r *RefreshRepo) Create(ctx context.Context, t *model.RefreshToken) error {
	err := r.db.Pool.QueryRow(ctx, insertRefresh, t.ID, t.UserID, t.TokenHash, t.ExpiresAt).Scan(&t.CreatedAt)
	if isUniqueViolation(err) {
		return errs.ErrConflict
	}
	return err
}

// GetByHash loads a token by digest.
func (r *RefreshRepo) GetByHash(ctx context.Context, tokenHash string) (*model.RefreshToken, error) {
	const q = `SELECT id, user_id, token_hash, expires_at, is_revoked, created_at FROM refresh_tokens WHERE token_hash=$1`
	var t model.RefreshToken
	err := r.db.Pool.QueryRow(ctx, q, tokenHash).Scan(&t.ID, &t.UserID, &t.TokenHash, &t.ExpiresAt, &t.IsRevoked, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

// Rotate revokes the presented token with a conditional update and inserts the successor.
// Of two concurrent rotations of the same token only one sees the row still unrevoked.
func (r *RefreshRepo) Rotate(ctx context.Context, presentedHash string, successor *model.RefreshToken, now time.Time) error {
	const revoke = `UPDATE refresh_tokens SET is_revoked=true WHERE token_hash=$1 AND is_revoked=false AND expires_at > $2 RETURNING user_id`

	return r.db.inTx(ctx, func(tx pgx.Tx) error {
		var owner uuid.UUID
		if err := tx.QueryRow(ctx, revoke, presentedHash, now).Scan(&owner); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return errs.ErrInvalidToken
			}
			return err
		}
		if owner != successor.UserID {
			return errs.ErrInvalidToken
		}
		err := tx.QueryRow(ctx, insertRefresh, successor.ID, successor.UserID, successor.TokenHash, successor.ExpiresAt).
			Scan(&successor.CreatedAt)
		if isUniqueViolation(err) {
			return errs.ErrConflict
		}
		return err
	})
}

// Revoke marks the token revoked if userID owns it.
func (r *RefreshRepo) Revoke(ctx context.Context, tokenHash string, userID uuid.UUID) error {
	const q = `UPDATE refresh_tokens SET is_revoked=true WHERE token_hash=$1 AND user_id=$2`
	_, err := r.db.Pool.Exec(ctx, q, tokenHash, userID)
	return err
}
