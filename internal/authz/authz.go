// Package authz resolves whether an authenticated identity holds a permission.
package authz

import (
	"sort"

	"github.com/and161185/gatekeeper/internal/errs"
	"github.com/and161185/gatekeeper/internal/model"
)

// Principal is a user with the role→permission graph loaded once per request.
// The gate derives every decision from this value and keeps no state of its own.
type Principal struct {
	User  model.User
	Roles []model.Role
}

// NewPrincipal constructs a principal from a user and its preloaded roles.
func NewPrincipal(u model.User, roles []model.Role) Principal {
	return Principal{User: u, Roles: roles}
}

// Permissions returns the sorted union of active permission codes across active roles.
// Superuser status is not reflected here; see Authorize.
func (p Principal) Permissions() []string {
	set := make(map[string]struct{})
	for _, r := range p.Roles {
		if !r.IsActive {
			continue
		}
		for _, perm := range r.Permissions {
			if perm.IsActive {
				set[perm.Code] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(set))
	for code := range set {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// Authorize reports whether p may exercise the permission identified by code.
//
// A superuser is granted unconditionally: the bypass ignores roles entirely, so an
// empty or inactive role set does not restrict a superuser. Everyone else needs
// the code on at least one active permission of an active role.
func Authorize(p Principal, code string) bool {
	if p.User.IsSuperuser {
		return true
	}
	if code == "" {
		return false
	}
	for _, r := range p.Roles {
		if !r.IsActive {
			continue
		}
		for _, perm := range r.Permissions {
			if perm.IsActive && perm.Code == code {
				return true
			}
		}
	}
	return false
}

// Require returns errs.ErrForbidden unless Authorize grants code.
func Require(p Principal, code string) error {
	if !Authorize(p, code) {
		return errs.ErrForbidden
	}
	return nil
}
