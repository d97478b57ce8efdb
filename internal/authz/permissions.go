package authz

import "github.com/and161185/gatekeeper/internal/model"

// Builtin permission codes.
const (
	UserCreate       = "user.create"
	UserRead         = "user.read"
	UserUpdate       = "user.update"
	UserDelete       = "user.delete"
	RoleCreate       = "role.create"
	RoleRead         = "role.read"
	RoleUpdate       = "role.update"
	RoleDelete       = "role.delete"
	PermissionCreate = "permission.create"
	PermissionRead   = "permission.read"
	PermissionUpdate = "permission.update"
	PermissionDelete = "permission.delete"

	// EmailConfigManage guards SMTP profile administration. Seeded roles do not carry it,
	// so only superusers hold it unless an operator grants it explicitly.
	EmailConfigManage = "email_config.manage"
)

// Builtin role names created by bootstrap.
const (
	RoleAdministrator = "Administrator"
	RoleUser          = "User"
)

// BuiltinPermissions is the catalogue ensured at bootstrap.
var BuiltinPermissions = []model.Permission{
	perm("Create user", UserCreate, "users", "create"),
	perm("Read user", UserRead, "users", "read"),
	perm("Update user", UserUpdate, "users", "update"),
	perm("Delete user", UserDelete, "users", "delete"),
	perm("Create role", RoleCreate, "roles", "create"),
	perm("Read role", RoleRead, "roles", "read"),
	perm("Update role", RoleUpdate, "roles", "update"),
	perm("Delete role", RoleDelete, "roles", "delete"),
	perm("Create permission", PermissionCreate, "permissions", "create"),
	perm("Read permission", PermissionRead, "permissions", "read"),
	perm("Update permission", PermissionUpdate, "permissions", "update"),
	perm("Delete permission", PermissionDelete, "permissions", "delete"),
	perm("Manage e-mail delivery", EmailConfigManage, "email_configs", "manage"),
}

// AdministratorCodes are granted to the Administrator role.
func AdministratorCodes() []string {
	return codesWhere(func(p model.Permission) bool { return p.Code != EmailConfigManage })
}

// UserCodes are granted to the User role (read-only).
func UserCodes() []string {
	return codesWhere(func(p model.Permission) bool { return p.Action == "read" })
}

func codesWhere(keep func(model.Permission) bool) []string {
	var out []string
	for _, p := range BuiltinPermissions {
		if keep(p) {
			out = append(out, p.Code)
		}
	}
	return out
}

func perm(name, code, resource, action string) model.Permission {
	return model.Permission{Name: name, Code: code, Resource: resource, Action: action, IsActive: true}
}
