// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "slices"

// Permission is a single capability token attachable to roles.
// The set of valid permissions is a closed enumeration; unknown strings
// are rejected at the edges and filtered when loaded from storage.
type Permission string

// System permissions.
const (
	PermSendMailTest Permission = "SEND_MAIL_TEST"
)

// User module permissions.
const (
	PermCreateUser     Permission = "CREATE_USER"
	PermListUser       Permission = "LIST_USER"
	PermViewUser       Permission = "VIEW_USER"
	PermUpdateUser     Permission = "UPDATE_USER"
	PermDeleteUser     Permission = "DELETE_USER"
	PermSoftDeleteUser Permission = "SOFT_DELETE_USER"
	PermRestoreUser    Permission = "RESTORE_USER"
)

// Role module permissions.
const (
	PermListRole       Permission = "LIST_ROLE"
	PermListPermission Permission = "LIST_PERMISSION"
	PermCreateRole     Permission = "CREATE_ROLE"
	PermUpdateRole     Permission = "UPDATE_ROLE"
	PermDeleteRole     Permission = "DELETE_ROLE"
)

// Media module permissions.
const (
	PermUploadFile Permission = "UPLOAD_FILE"
)

// Product module permissions.
const (
	PermCreateProduct     Permission = "CREATE_PRODUCT"
	PermListProduct       Permission = "LIST_PRODUCT"
	PermViewProduct       Permission = "VIEW_PRODUCT"
	PermUpdateProduct     Permission = "UPDATE_PRODUCT"
	PermDeleteProduct     Permission = "DELETE_PRODUCT"
	PermSoftDeleteProduct Permission = "SOFT_DELETE_PRODUCT"
	PermRestoreProduct    Permission = "RESTORE_PRODUCT"
	PermPublishProduct    Permission = "PUBLISH_PRODUCT"
	PermUnpublishProduct  Permission = "UNPUBLISH_PRODUCT"
)

// PermissionGroup categorizes permissions by their functional area,
// mainly for the permission listing endpoint.
type PermissionGroup struct {
	Group       string      `json:"group"`
	Permissions Permissions `json:"permissions"`
}

// PermissionCatalog returns the full enumeration grouped by module.
// The catalog is the single source of truth the role seeder reconciles
// stored roles against; extending a group here is all that is needed to
// grant the administrator role the new permission on next startup.
func PermissionCatalog() []PermissionGroup {
	return []PermissionGroup{
		{
			Group:       "SYSTEM",
			Permissions: Permissions{PermSendMailTest},
		},
		{
			Group: "USER",
			Permissions: Permissions{
				PermCreateUser,
				PermListUser,
				PermViewUser,
				PermUpdateUser,
				PermDeleteUser,
				PermSoftDeleteUser,
				PermRestoreUser,
			},
		},
		{
			Group: "ROLE",
			Permissions: Permissions{
				PermListRole,
				PermListPermission,
				PermCreateRole,
				PermUpdateRole,
				PermDeleteRole,
			},
		},
		{
			Group:       "MEDIA",
			Permissions: Permissions{PermUploadFile},
		},
		{
			Group: "PRODUCT",
			Permissions: Permissions{
				PermCreateProduct,
				PermListProduct,
				PermViewProduct,
				PermUpdateProduct,
				PermDeleteProduct,
				PermSoftDeleteProduct,
				PermRestoreProduct,
				PermPublishProduct,
				PermUnpublishProduct,
			},
		},
	}
}

// AllPermissions returns the flattened closed enumeration.
func AllPermissions() Permissions {
	var all Permissions
	for _, group := range PermissionCatalog() {
		all = append(all, group.Permissions...)
	}

	return all
}

// String returns the string representation of the Permission.
func (p Permission) String() string {
	return string(p)
}

// IsValid checks if the Permission is part of the closed enumeration.
func (p Permission) IsValid() bool {
	return AllPermissions().Contains(p)
}

// Permissions is a set of Permission values.
type Permissions []Permission

// Contains checks if the set contains a specific permission.
func (ps Permissions) Contains(perm Permission) bool {
	return slices.Contains(ps, perm)
}

// IntersectsAny reports whether the set shares at least one permission
// with required. Route authorization uses at-least-one semantics, so this
// is the only set operation the guard needs.
func (ps Permissions) IntersectsAny(required Permissions) bool {
	for _, perm := range required {
		if ps.Contains(perm) {
			return true
		}
	}

	return false
}

// ToStrings converts Permissions to []string for serialization.
func (ps Permissions) ToStrings() []string {
	result := make([]string, len(ps))
	for i, p := range ps {
		result[i] = p.String()
	}

	return result
}

// PermissionsFromStrings converts []string to Permissions, filtering out
// tokens that are not part of the enumeration.
func PermissionsFromStrings(ss []string) Permissions {
	result := make(Permissions, 0, len(ss))
	for _, s := range ss {
		perm := Permission(s)
		if perm.IsValid() {
			result = append(result, perm)
		}
	}

	return result
}
