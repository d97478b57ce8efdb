package postgres

import (
	"context"

	"github.com/and161185/gatekeeper/internal/model"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
)

// RBACRepo implements RBACRepository using PostgreSQL.
type RBACRepo struct{ db *DB }

// NewRBACRepo constructs a role/permission catalogue repository.
func NewRBACRepo(db *DB) *RBACRepo { return &RBACRepo{db: db} }

// EnsurePermissions inserts permissions whose code is not present yet.
func (r *RBACRepo) EnsurePermissions(ctx context.Context, perms []model.Permission) error {
	const q = `
INSERT INTO permissions (id, name, code, description, resource, action, is_active)
VALUES ($1, $2, $3, $4, $5, $6, true)
ON CONFLICT (code) DO NOTHING`
	return r.db.inTx(ctx, func(tx pgx.Tx) error {
		for _, p := range perms {
			id := p.ID
			if id == uuid.Nil {
				id = uuid.Must(uuid.NewV4())
			}
			if _, err := tx.Exec(ctx, q, id, p.Name, p.Code, p.Description, p.Resource, p.Action); err != nil {
				return err
			}
		}
		return nil
	})
}

// EnsureRole upserts a role by name and grants it the permissions with the given codes.
func (r *RBACRepo) EnsureRole(ctx context.Context, name, description string, codes []string) (uuid.UUID, error) {
	const (
		upsert = `
INSERT INTO roles (id, name, description, is_active)
VALUES ($1, $2, $3, true)
ON CONFLICT (name) DO UPDATE SET description = EXCLUDED.description, updated_at = now()
RETURNING id`
		grant = `
INSERT INTO role_permissions (role_id, permission_id)
SELECT $1, id FROM permissions WHERE code = ANY($2)
ON CONFLICT DO NOTHING`
	)
	var id uuid.UUID
	err := r.db.inTx(ctx, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, upsert, uuid.Must(uuid.NewV4()), name, description).Scan(&id); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, grant, id, codes)
		return err
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}
