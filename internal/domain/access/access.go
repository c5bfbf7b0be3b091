// Package access holds the per-route authorization policy model and the
// pure authorization decision function.
//
// Policies are plain records attached at route-registration time and kept
// in a registry the guard middleware consults per request. This keeps the
// authorization rules independent of the authentication mechanism: the
// decision function takes an already-resolved user and a policy, so it can
// be tested with entity fixtures and no signed tokens.
package access

import (
	"sync"

	"backstage/internal/domain/entity"
	domainerrors "backstage/internal/domain/errors"
)

// Policy describes what a route demands from a caller.
type Policy struct {
	// Public routes skip authentication and authorization entirely.
	Public bool

	// Permissions the route requires. The caller needs at least one of
	// them, not all. An empty list means authentication alone suffices.
	Permissions entity.Permissions
}

// PublicPolicy marks a route as accessible without authentication.
func PublicPolicy() Policy {
	return Policy{Public: true}
}

// RequireAuth marks a route as requiring a valid access token but no
// specific permission.
func RequireAuth() Policy {
	return Policy{}
}

// Require marks a route as requiring at least one of the given permissions.
func Require(perms ...entity.Permission) Policy {
	return Policy{Permissions: perms}
}

// Authorize decides whether user may proceed under policy.
//
// Checks run in fixed order and short-circuit on the first failure:
// public flag, authentication presence, active flag, role presence,
// permission intersection. It returns nil when access is granted and a
// typed domain error otherwise.
func Authorize(user *entity.User, policy Policy) error {
	if policy.Public {
		return nil
	}

	if user == nil {
		return domainerrors.ErrUnauthorized
	}

	if !user.Active {
		return domainerrors.ErrAccountDisabled
	}

	// A user without any role cannot be authorized for anything beyond
	// public routes, even when the route lists no permissions.
	if len(user.Roles) == 0 {
		return domainerrors.ErrNoRoleAssigned
	}

	if len(policy.Permissions) == 0 {
		return nil
	}

	if !user.PermissionUnion().IntersectsAny(policy.Permissions) {
		return domainerrors.ErrPermissionDenied
	}

	return nil
}

// Registry stores the policy for every registered route, keyed by HTTP
// method and the route's path pattern (e.g. "PATCH /v1/user/:id").
type Registry struct {
	mu       sync.RWMutex
	policies map[string]Policy
}

// NewRegistry creates an empty policy registry.
func NewRegistry() *Registry {
	return &Registry{policies: make(map[string]Policy)}
}

// Register records the policy for a route. Registration happens once
// during router setup, before the server accepts traffic.
func (r *Registry) Register(method, path string, policy Policy) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.policies[method+" "+path] = policy
}

// Lookup returns the policy registered for a route. Routes that were never
// registered default to protected-with-no-permissions, so forgetting to
// attach a policy can only fail closed.
func (r *Registry) Lookup(method, path string) Policy {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if policy, ok := r.policies[method+" "+path]; ok {
		return policy
	}

	return Policy{}
}
