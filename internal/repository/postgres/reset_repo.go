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

// ResetRepo implements ResetTokenRepository using PostgreSQL.
type ResetRepo struct{ db *DB }

// NewResetRepo constructs a password reset token repository.
func NewResetRepo(db *DB) *ResetRepo { return &ResetRepo{db: db} }

// Replace invalidates outstanding tokens of the owner and stores t.
// The owner row is locked first so concurrent requests for one user serialize.
func (r *ResetRepo) Replace(ctx context.Context, t *model.PasswordResetToken) error {
	const (
		lock = `SELECT id FROM users WHERE id=$1 FOR UPDATE`
		burn = `UPDATE password_reset_tokens SET is_used=true WHERE user_id=$1 AND is_used=false`
		ins  = `INSERT INTO password_reset_tokens (id, user_id, token_hash, expires_at, is_used) VALUES ($1, $2, $3, $4, false) RETURNING created_at`
	)
	return r.db.inTx(ctx, func(tx pgx.Tx) error {
		var id uuid.UUID
		if err := tx.QueryRow(ctx, lock, t.UserID).Scan(&id); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return errs.ErrNotFound
			}
			return err
		}
		if _, err := tx.Exec(ctx, burn, t.UserID); err != nil {
			return err
		}
		err := tx.QueryRow(ctx, ins, t.ID, t.UserID, t.TokenHash, t.ExpiresAt).Scan(&t.CreatedAt)
		if isUniqueViolation(err) {
			return errs.ErrConflict
		}
		return err
	})
}

// Consume burns the token and sets the owner's password hash.
func (r *ResetRepo) Consume(ctx context.Context, tokenHash, passwordHash string, now time.Time) (uuid.UUID, error) {
	const (
		use = `UPDATE password_reset_tokens SET is_used=true WHERE token_hash=$1 AND is_used=false AND expires_at > $2 RETURNING user_id`
		set = `UPDATE users SET password_hash=$2, updated_at=now() WHERE id=$1`
	)
	var owner uuid.UUID
	err := r.db.inTx(ctx, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, use, tokenHash, now).Scan(&owner); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return errs.ErrInvalidToken
			}
			return err
		}
		tag, err := tx.Exec(ctx, set, owner, passwordHash)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return errs.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return owner, nil
}
