package entity

import (
	"strings"
	"time"
)

// User is the core identity record of the system.
//
// PasswordHash is only populated on the authentication paths (login,
// refresh); regular reads leave it empty and it is never serialized.
type User struct {
	ID           int64      `json:"id"`
	Email        string     `json:"email"`    // Unique, stored trimmed and lower-cased.
	Username     string     `json:"username"` // Unique, stored trimmed and lower-cased.
	PasswordHash string     `json:"-"`
	Active       bool       `json:"active"` // Inactive users never pass authorization.
	Roles        []Role     `json:"roles"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	DeletedAt    *time.Time `json:"deletedAt,omitempty"` // Soft delete marker.
}

// PermissionUnion returns the union of permissions across all of the
// user's roles. The authorization guard compares this set against the
// route's required permissions.
func (u *User) PermissionUnion() Permissions {
	var union Permissions
	for _, role := range u.Roles {
		for _, perm := range role.Permissions {
			if !union.Contains(perm) {
				union = append(union, perm)
			}
		}
	}

	return union
}

// NormalizeIdentifier trims and lower-cases an email or username for
// storage and lookups.
func NormalizeIdentifier(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
