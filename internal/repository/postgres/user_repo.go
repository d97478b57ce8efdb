package postgres

import (
	"context"
	"errors"

	"github.com/and161185/gatekeeper/internal/errs"
	"github.com/and161185/gatekeeper/internal/model"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
)

// UserRepo implements UserRepository using PostgreSQL.
type UserRepo struct{ db *DB }

// NewUserRepo constructs a user repository.
func NewUserRepo(db *DB) *UserRepo { return &UserRepo{db: db} }

const userColumns = `id, email, username, password_hash, first_name, last_name, is_active, is_superuser, created_at, updated_at`

// Create inserts a new user row and its role assignments.
func (r *UserRepo) Create(ctx context.Context, u *model.User, roleIDs []uuid.UUID) error {
	const ins = `
INSERT INTO users (id, email, username, password_hash, first_name, last_name, is_active, is_superuser)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING created_at, updated_at`
	const link = `INSERT INTO user_roles (user_id, role_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`

	err := r.db.inTx(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, ins, u.ID, u.Email, u.Username, u.PasswordHash, u.FirstName, u.LastName, u.IsActive, u.IsSuperuser).
			Scan(&u.CreatedAt, &u.UpdatedAt)
		if err != nil {
			return err
		}
		for _, roleID := range roleIDs {
			if _, err := tx.Exec(ctx, link, u.ID, roleID); err != nil {
				return err
			}
		}
		return nil
	})
	if isUniqueViolation(err) {
		return errs.ErrConflict
	}
	return err
}

// GetByID selects a user by ID.
func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id=$1`, id)
}

// GetByUsername selects a user by username.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE username=$1`, username)
}

// GetByEmail selects a user by e-mail.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email=$1`, email)
}

func (r *UserRepo) getOne(ctx context.Context, q string, arg any) (*model.User, error) {
	var u model.User
	err := r.db.Pool.QueryRow(ctx, q, arg).Scan(
		&u.ID, &u.Email, &u.Username, &u.PasswordHash, &u.FirstName, &u.LastName,
		&u.IsActive, &u.IsSuperuser, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// UpdatePassword replaces the password hash.
func (r *UserRepo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	const q = `UPDATE users SET password_hash=$2, updated_at=now() WHERE id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, id, passwordHash)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// Roles loads the user's roles joined with their permissions.
// A role without permissions appears with an empty permission list.
func (r *UserRepo) Roles(ctx context.Context, userID uuid.UUID) ([]model.Role, error) {
	const q = `
SELECT r.id, r.name, r.description, r.is_active, COALESCE(p.code, ''), COALESCE(p.is_active, false)
FROM user_roles ur
JOIN roles r ON r.id = ur.role_id
LEFT JOIN role_permissions rp ON rp.role_id = r.id
LEFT JOIN permissions p ON p.id = rp.permission_id
WHERE ur.user_id=$1
ORDER BY r.name, p.code`
	rows, err := r.db.Pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Role
	idx := map[uuid.UUID]int{}
	for rows.Next() {
		var (
			role       model.Role
			code       string
			permActive bool
		)
		if err = rows.Scan(&role.ID, &role.Name, &role.Description, &role.IsActive, &code, &permActive); err != nil {
			return nil, err
		}
		i, ok := idx[role.ID]
		if !ok {
			out = append(out, role)
			i = len(out) - 1
			idx[role.ID] = i
		}
		if code != "" {
			out[i].Permissions = append(out[i].Permissions, model.Permission{Code: code, IsActive: permActive})
		}
	}
	return out, rows.Err()
}
