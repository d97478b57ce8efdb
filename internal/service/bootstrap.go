package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/and161185/gatekeeper/internal/authz"
	"github.com/and161185/gatekeeper/internal/errs"
	"github.com/and161185/gatekeeper/internal/model"
	"github.com/and161185/gatekeeper/internal/repository"
	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"
)

// Admin describes the initial superuser.
type Admin struct {
	Username string
	Email    string
	Password string
}

// Bootstrap seeds the builtin permission catalogue, the Administrator and User roles
// and the initial superuser. Running it again changes nothing.
func Bootstrap(ctx context.Context, rbac repository.RBACRepository, users repository.UserRepository, hasher PasswordHasher, admin Admin, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	if err := rbac.EnsurePermissions(ctx, authz.BuiltinPermissions); err != nil {
		return fmt.Errorf("seed permissions: %w", err)
	}
	adminRole, err := rbac.EnsureRole(ctx, authz.RoleAdministrator, "Full access to users, roles and permissions", authz.AdministratorCodes())
	if err != nil {
		return fmt.Errorf("seed role %s: %w", authz.RoleAdministrator, err)
	}
	if _, err := rbac.EnsureRole(ctx, authz.RoleUser, "Read-only access", authz.UserCodes()); err != nil {
		return fmt.Errorf("seed role %s: %w", authz.RoleUser, err)
	}

	_, err = users.GetByUsername(ctx, admin.Username)
	if err == nil {
		log.Info("admin user already present", zap.String("username", admin.Username))
		return nil
	}
	if !errors.Is(err, errs.ErrNotFound) {
		return err
	}
	if len(admin.Password) < MinPasswordLen {
		return fmt.Errorf("%w: admin password must be at least %d characters", errs.ErrInvalidInput, MinPasswordLen)
	}
	digest, err := hasher.Hash(admin.Password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	u := &model.User{
		ID:           uuid.Must(uuid.NewV4()),
		Email:        admin.Email,
		Username:     admin.Username,
		PasswordHash: digest,
		FirstName:    "Admin",
		IsActive:     true,
		IsSuperuser:  true,
	}
	if err := users.Create(ctx, u, []uuid.UUID{adminRole}); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	log.Info("admin user created", zap.String("username", u.Username))
	return nil
}
