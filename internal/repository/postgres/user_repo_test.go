package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/and161185/gatekeeper/internal/errs"
	"github.com/and161185/gatekeeper/internal/model"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"
)

var userCols = []string{"id", "email", "username", "password_hash", "first_name", "last_name", "is_active", "is_superuser", "created_at", "updated_at"}

func TestUserRepo_Create_OK_and_UniqueViolation(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewUserRepo(db)
	ctx := context.Background()
	now := time.Now()
	roleID := uuid.Must(uuid.NewV4())
	u := &model.User{
		ID:           uuid.Must(uuid.NewV4()),
		Email:        "alice@example.com",
		Username:     "alice",
		PasswordHash: "$argon2id$...",
		IsActive:     true,
	}

	// OK
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO users \(id, email, username, password_hash, first_name, last_name, is_active, is_superuser\) VALUES \(\$1, \$2, \$3, \$4, \$5, \$6, \$7, \$8\) RETURNING created_at, updated_at`).
		WithArgs(u.ID, u.Email, u.Username, u.PasswordHash, "", "", true, false).
		WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))
	mock.ExpectExec(`INSERT INTO user_roles \(user_id, role_id\) VALUES \(\$1, \$2\) ON CONFLICT DO NOTHING`).
		WithArgs(u.ID, roleID).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()
	require.NoError(t, r.Create(ctx, u, []uuid.UUID{roleID}))
	require.Equal(t, now, u.CreatedAt)

	// Unique violation
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs(u.ID, u.Email, u.Username, u.PasswordHash, "", "", true, false).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()
	err := r.Create(ctx, u, nil)
	require.ErrorIs(t, err, errs.ErrConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_GetByID(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewUserRepo(db)
	ctx := context.Background()
	id := uuid.Must(uuid.NewV4())
	now := time.Now()

	mock.ExpectQuery(`SELECT id, email, username, password_hash, first_name, last_name, is_active, is_superuser, created_at, updated_at FROM users WHERE id=\$1`).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(userCols).
			AddRow(id, "a@example.com", "a", "h", "Ann", "", true, false, now, now))
	u, err := r.GetByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, id, u.ID)
	require.Equal(t, "Ann", u.FirstName)

	mock.ExpectQuery(`FROM users WHERE id=\$1`).
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)
	_, err = r.GetByID(ctx, id)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestUserRepo_GetByUsernameAndEmail(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewUserRepo(db)
	ctx := context.Background()
	id := uuid.Must(uuid.NewV4())
	now := time.Now()

	mock.ExpectQuery(`FROM users WHERE username=\$1`).
		WithArgs("bob").
		WillReturnRows(pgxmock.NewRows(userCols).
			AddRow(id, "bob@example.com", "bob", "h", "", "", true, false, now, now))
	u, err := r.GetByUsername(ctx, "bob")
	require.NoError(t, err)
	require.Equal(t, "bob", u.Username)

	mock.ExpectQuery(`FROM users WHERE email=\$1`).
		WithArgs("nobody@example.com").
		WillReturnError(pgx.ErrNoRows)
	_, err = r.GetByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestUserRepo_UpdatePassword(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewUserRepo(db)
	ctx := context.Background()
	id := uuid.Must(uuid.NewV4())

	mock.ExpectExec(`UPDATE users SET password_hash=\$2, updated_at=now\(\) WHERE id=\$1`).
		WithArgs(id, "new").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	require.NoError(t, r.UpdatePassword(ctx, id, "new"))

	mock.ExpectExec(`UPDATE users SET password_hash`).
		WithArgs(id, "new").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	require.ErrorIs(t, r.UpdatePassword(ctx, id, "new"), errs.ErrNotFound)
}

func TestUserRepo_Roles_GroupsPermissions(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewUserRepo(db)
	ctx := context.Background()
	userID := uuid.Must(uuid.NewV4())
	admin := uuid.Must(uuid.NewV4())
	empty := uuid.Must(uuid.NewV4())

	mock.ExpectQuery(`SELECT r.id, r.name, r.description, r.is_active, COALESCE\(p.code, ''\), COALESCE\(p.is_active, false\) FROM user_roles ur`).
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "description", "is_active", "code", "perm_active"}).
			AddRow(admin, "Administrator", "", true, "role.read", true).
			AddRow(admin, "Administrator", "", true, "user.delete", false).
			AddRow(empty, "Empty", "", true, "", false))

	roles, err := r.Roles(ctx, userID)
	require.NoError(t, err)
	require.Len(t, roles, 2)
	require.Equal(t, "Administrator", roles[0].Name)
	require.Equal(t, []model.Permission{{Code: "role.read", IsActive: true}, {Code: "user.delete"}}, roles[0].Permissions)
	require.Empty(t, roles[1].Permissions)
}
