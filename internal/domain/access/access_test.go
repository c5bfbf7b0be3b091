package access

import (
	"testing"

	"backstage/internal/domain/entity"
	domainerrors "backstage/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeUser(perms ...entity.Permission) *entity.User {
	return &entity.User{
		ID:     1,
		Active: true,
		Roles: []entity.Role{
			{Code: "TESTER", Permissions: perms},
		},
	}
}

func TestAuthorize_PublicSkipsEverything(t *testing.T) {
	// No user at all, still allowed.
	assert.NoError(t, Authorize(nil, PublicPolicy()))

	// Even an inactive user passes a public route.
	assert.NoError(t, Authorize(&entity.User{Active: false}, PublicPolicy()))
}

func TestAuthorize_NilUserIsUnauthorized(t *testing.T) {
	err := Authorize(nil, RequireAuth())
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthorize_InactiveUserIsDisabled(t *testing.T) {
	user := activeUser(entity.PermListUser)
	user.Active = false

	err := Authorize(user, Require(entity.PermListUser))
	assert.ErrorIs(t, err, domainerrors.ErrAccountDisabled)
}

func TestAuthorize_UserWithoutRolesIsRejected(t *testing.T) {
	user := &entity.User{ID: 1, Active: true}

	// Role presence is checked even when the route lists no permissions.
	err := Authorize(user, RequireAuth())
	assert.ErrorIs(t, err, domainerrors.ErrNoRoleAssigned)
}

func TestAuthorize_EmptyRequirementNeedsAuthOnly(t *testing.T) {
	// A role with zero permissions still satisfies an auth-only route.
	user := activeUser()

	assert.NoError(t, Authorize(user, RequireAuth()))
}

func TestAuthorize_AtLeastOnePermissionSuffices(t *testing.T) {
	user := activeUser(entity.PermViewUser)

	// The route accepts either permission; the user holds only one.
	err := Authorize(user, Require(entity.PermListUser, entity.PermViewUser))
	assert.NoError(t, err)
}

func TestAuthorize_NoIntersectionIsDenied(t *testing.T) {
	user := activeUser(entity.PermListUser)

	err := Authorize(user, Require(entity.PermDeleteUser, entity.PermSoftDeleteUser))
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}

func TestAuthorize_UnionAcrossRoles(t *testing.T) {
	user := &entity.User{
		ID:     1,
		Active: true,
		Roles: []entity.Role{
			{Code: "SUPPORT", Permissions: entity.Permissions{entity.PermListUser}},
			{Code: "AUDITOR", Permissions: entity.Permissions{entity.PermListRole}},
		},
	}

	assert.NoError(t, Authorize(user, Require(entity.PermListRole)))
}

func TestAuthorize_CheckOrderShortCircuits(t *testing.T) {
	// An inactive user without roles reports the active failure, not the
	// role failure.
	user := &entity.User{ID: 1, Active: false}

	err := Authorize(user, Require(entity.PermListUser))
	assert.ErrorIs(t, err, domainerrors.ErrAccountDisabled)
}

func TestRegistry_LookupReturnsRegisteredPolicy(t *testing.T) {
	registry := NewRegistry()
	registry.Register("GET", "/v1/user", Require(entity.PermListUser))
	registry.Register("GET", "/v1/health/check-health", PublicPolicy())

	policy := registry.Lookup("GET", "/v1/user")
	require.False(t, policy.Public)
	assert.Equal(t, entity.Permissions{entity.PermListUser}, policy.Permissions)

	assert.True(t, registry.Lookup("GET", "/v1/health/check-health").Public)
}

func TestRegistry_UnregisteredRouteFailsClosed(t *testing.T) {
	registry := NewRegistry()

	policy := registry.Lookup("DELETE", "/v1/forgotten")

	// Default is protected with no permissions: authentication plus an
	// assigned role are still required.
	assert.False(t, policy.Public)
	assert.Empty(t, policy.Permissions)
	assert.ErrorIs(t, Authorize(nil, policy), domainerrors.ErrUnauthorized)
}

func TestRegistry_MethodIsPartOfTheKey(t *testing.T) {
	registry := NewRegistry()
	registry.Register("GET", "/v1/user/:id", Require(entity.PermViewUser))

	// Same path, different method: must not inherit the GET policy.
	policy := registry.Lookup("PATCH", "/v1/user/:id")
	assert.Empty(t, policy.Permissions)
	assert.False(t, policy.Public)
}
