package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_PermissionUnion_DeduplicatesAcrossRoles(t *testing.T) {
	user := &User{
		Roles: []Role{
			{Code: "SUPPORT", Permissions: Permissions{PermListUser, PermViewUser}},
			{Code: "AUDITOR", Permissions: Permissions{PermViewUser, PermListRole}},
		},
	}

	union := user.PermissionUnion()

	assert.ElementsMatch(t, Permissions{PermListUser, PermViewUser, PermListRole}, union)
}

func TestUser_PermissionUnion_EmptyWithoutRoles(t *testing.T) {
	user := &User{}

	assert.Empty(t, user.PermissionUnion())
}

func TestNormalizeIdentifier(t *testing.T) {
	assert.Equal(t, "alice@example.com", NormalizeIdentifier("  Alice@Example.COM "))
	assert.Equal(t, "alice", NormalizeIdentifier("ALICE"))
}
