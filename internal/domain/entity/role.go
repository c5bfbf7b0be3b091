// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"
)

// Reserved role codes managed by the startup seeder.
const (
	// RoleCodeAdministrator is the role holding the full permission set.
	RoleCodeAdministrator = "ADMINISTRATOR"
	// RoleCodeGuest is the default role assigned on self registration.
	RoleCodeGuest = "GUEST"
)

// Role is a named permission bundle assignable to users.
type Role struct {
	ID          int64       `json:"id"`
	Code        string      `json:"code"`        // Unique, always stored trimmed and upper-cased.
	Description string      `json:"description"` // Optional, free text.
	Permissions Permissions `json:"permissions"` // Subset of the closed permission enumeration.
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// NormalizeRoleCode trims surrounding whitespace and upper-cases a role
// code. Every write path must store codes in this canonical form so that
// "editor" and "Editor " collide on the same unique key.
func NormalizeRoleCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
