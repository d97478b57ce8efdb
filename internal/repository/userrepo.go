// Package repository defines storage interfaces implemented by concrete backends.
//
// Every method that must keep an invariant across several rows runs as one transaction
// inside the implementation; callers never compose those steps themselves.
package repository

import (
	"context"

	"github.com/and161185/gatekeeper/internal/model"
	"github.com/gofrs/uuid/v5"
)

// UserRepository provides access to identity records and their role graph.
type UserRepository interface {
	// Create inserts a new user and its role assignments atomically.
	Create(ctx context.Context, u *model.User, roleIDs []uuid.UUID) error
	// GetByID loads a user by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	// GetByUsername loads a user by username.
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	// GetByEmail loads a user by e-mail.
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	// UpdatePassword replaces the stored password hash.
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	// Roles loads the user's roles with their permissions in a single round-trip.
	Roles(ctx context.Context, userID uuid.UUID) ([]model.Role, error)
}

// RBACRepository maintains the role/permission catalogue.
type RBACRepository interface {
	// EnsurePermissions inserts missing permissions by code; existing rows are kept.
	EnsurePermissions(ctx context.Context, perms []model.Permission) error
	// EnsureRole upserts a role by name and grants the listed permission codes.
	EnsureRole(ctx context.Context, name, description string, codes []string) (uuid.UUID, error)
}
