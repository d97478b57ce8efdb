package postgres

import (
	"context"
	"errors"

	"github.com/and161185/gatekeeper/internal/errs"
	"github.com/and161185/gatekeeper/internal/model"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
)

// emailConfigLockKey serializes writers that may change which row is active.
const emailConfigLockKey int64 = 0x6761746b_656d6c31

const emailConfigColumns = `id, provider, smtp_host, smtp_port, smtp_username, smtp_password_encrypted, sender_email, sender_name, use_tls, use_ssl, is_active, created_at, updated_at`

// EmailConfigRepo implements EmailConfigRepository using PostgreSQL.
type EmailConfigRepo struct{ db *DB }

// NewEmailConfigRepo constructs an email config repository.
func NewEmailConfigRepo(db *DB) *EmailConfigRepo { return &EmailConfigRepo{db: db} }

func scanEmailConfig(row pgx.Row) (*model.EmailConfig, error) {
	var c model.EmailConfig
	err := row.Scan(&c.ID, &c.Provider, &c.SMTPHost, &c.SMTPPort, &c.SMTPUsername, &c.PasswordEnc,
		&c.SenderEmail, &c.SenderName, &c.UseTLS, &c.UseSSL, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func lockEmailConfigs(ctx context.Context, tx pgx.Tx) error {
	_, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, emailConfigLockKey)
	return err
}

func deactivateOthers(ctx context.Context, tx pgx.Tx, keep uuid.UUID) error {
	_, err := tx.Exec(ctx, `UPDATE email_configs SET is_active=false, updated_at=now() WHERE id<>$1 AND is_active`, keep)
	return err
}

// Create stores c, deactivating the previous active row when c is active.
func (r *EmailConfigRepo) Create(ctx context.Context, c *model.EmailConfig) error {
	const ins = `
INSERT INTO email_configs (id, provider, smtp_host, smtp_port, smtp_username, smtp_password_encrypted, sender_email, sender_name, use_tls, use_ssl, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING created_at, updated_at`

	err := r.db.inTx(ctx, func(tx pgx.Tx) error {
		if err := lockEmailConfigs(ctx, tx); err != nil {
			return err
		}
		if c.IsActive {
			if err := deactivateOthers(ctx, tx, c.ID); err != nil {
				return err
			}
		}
		return tx.QueryRow(ctx, ins, c.ID, c.Provider, c.SMTPHost, c.SMTPPort, c.SMTPUsername, c.PasswordEnc,
			c.SenderEmail, c.SenderName, c.UseTLS, c.UseSSL, c.IsActive).Scan(&c.CreatedAt, &c.UpdatedAt)
	})
	if isUniqueViolation(err) {
		return errs.ErrConflict
	}
	return err
}

// Update applies the non-nil fields of upd.
func (r *EmailConfigRepo) Update(ctx context.Context, id uuid.UUID, upd model.EmailConfigUpdate) (*model.EmailConfig, error) {
	const q = `
UPDATE email_configs SET
 provider = COALESCE($2, provider),
 smtp_host = COALESCE($3, smtp_host),
 smtp_port = COALESCE($4, smtp_port),
 smtp_username = COALESCE($5, smtp_username),
 smtp_password_encrypted = COALESCE($6, smtp_password_encrypted),
 sender_email = COALESCE($7, sender_email),
 sender_name = COALESCE($8, sender_name),
 use_tls = COALESCE($9, use_tls),
 use_ssl = COALESCE($10, use_ssl),
 is_active = COALESCE($11, is_active),
 updated_at = now()
WHERE id=$1
RETURNING ` + emailConfigColumns

	var out *model.EmailConfig
	err := r.db.inTx(ctx, func(tx pgx.Tx) error {
		if err := lockEmailConfigs(ctx, tx); err != nil {
			return err
		}
		if upd.IsActive != nil && *upd.IsActive {
			if err := deactivateOthers(ctx, tx, id); err != nil {
				return err
			}
		}
		c, err := scanEmailConfig(tx.QueryRow(ctx, q, id, upd.Provider, upd.SMTPHost, upd.SMTPPort, upd.SMTPUsername,
			upd.PasswordEnc, upd.SenderEmail, upd.SenderName, upd.UseTLS, upd.UseSSL, upd.IsActive))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return errs.ErrNotFound
			}
			return err
		}
		out = c
		return nil
	})
	if isUniqueViolation(err) {
		return nil, errs.ErrConflict
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Activate makes id the single active row.
func (r *EmailConfigRepo) Activate(ctx context.Context, id uuid.UUID) (*model.EmailConfig, error) {
	const q = `UPDATE email_configs SET is_active=true, updated_at=now() WHERE id=$1 RETURNING ` + emailConfigColumns

	var out *model.EmailConfig
	err := r.db.inTx(ctx, func(tx pgx.Tx) error {
		if err := lockEmailConfigs(ctx, tx); err != nil {
			return err
		}
		if err := deactivateOthers(ctx, tx, id); err != nil {
			return err
		}
		c, err := scanEmailConfig(tx.QueryRow(ctx, q, id))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return errs.ErrNotFound
			}
			return err
		}
		out = c
		return nil
	})
	if isUniqueViolation(err) {
		return nil, errs.ErrConflict
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes a row.
func (r *EmailConfigRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM email_configs WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// GetByID loads a row.
func (r *EmailConfigRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.EmailConfig, error) {
	c, err := scanEmailConfig(r.db.Pool.QueryRow(ctx, `SELECT `+emailConfigColumns+` FROM email_configs WHERE id=$1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errs.ErrNotFound
	}
	return c, err
}

// GetActive loads the active row.
func (r *EmailConfigRepo) GetActive(ctx context.Context) (*model.EmailConfig, error) {
	c, err := scanEmailConfig(r.db.Pool.QueryRow(ctx, `SELECT `+emailConfigColumns+` FROM email_configs WHERE is_active LIMIT 1`))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errs.ErrNotFound
	}
	return c, err
}

// List returns every row, oldest first.
func (r *EmailConfigRepo) List(ctx context.Context) ([]model.EmailConfig, error) {
	rows, err := r.db.Pool.Query(ctx, `SELECT `+emailConfigColumns+` FROM email_configs ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.EmailConfig
	for rows.Next() {
		c, err := scanEmailConfig(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}
