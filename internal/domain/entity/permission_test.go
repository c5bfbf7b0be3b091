package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermissionCatalog_CoversEveryPermission(t *testing.T) {
	all := AllPermissions()
	require.NotEmpty(t, all)

	seen := make(map[Permission]bool, len(all))
	for _, perm := range all {
		assert.True(t, perm.IsValid(), "catalog permission %q should be valid", perm)
		assert.False(t, seen[perm], "catalog permission %q listed twice", perm)
		seen[perm] = true
	}
}

func TestPermission_IsValid_RejectsUnknownToken(t *testing.T) {
	assert.True(t, PermCreateUser.IsValid())
	assert.False(t, Permission("DO_EVERYTHING").IsValid())
	assert.False(t, Permission("").IsValid())
}

func TestPermissions_IntersectsAny(t *testing.T) {
	held := Permissions{PermListUser, PermViewUser}

	assert.True(t, held.IntersectsAny(Permissions{PermViewUser, PermDeleteUser}))
	assert.False(t, held.IntersectsAny(Permissions{PermDeleteUser}))
	assert.False(t, held.IntersectsAny(Permissions{}))
	assert.False(t, Permissions{}.IntersectsAny(Permissions{PermListUser}))
}

func TestPermissionsFromStrings_FiltersUnknownTokens(t *testing.T) {
	perms := PermissionsFromStrings([]string{"LIST_USER", "NOT_A_PERMISSION", "VIEW_USER"})

	assert.Equal(t, Permissions{PermListUser, PermViewUser}, perms)
}

func TestPermissions_ToStrings(t *testing.T) {
	perms := Permissions{PermListRole, PermCreateRole}

	assert.Equal(t, []string{"LIST_ROLE", "CREATE_ROLE"}, perms.ToStrings())
}
