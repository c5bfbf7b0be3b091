package repository

import (
	"context"
	"errors"

	"backstage/internal/domain/entity"
)

// Domain-specific persistence errors for roles.
var (
	// ErrRoleNotFound is returned when a role lookup matches nothing.
	ErrRoleNotFound = errors.New("role not found")

	// ErrRoleCodeTaken is returned when a write collides with the unique
	// role code constraint. The seeder treats it as "already exists" and
	// retries its read instead of failing startup.
	ErrRoleCodeTaken = errors.New("role code already taken")
)

// ListRolesQuery carries the filters, ordering and pagination for role
// listings.
type ListRolesQuery struct {
	Search   string  // Substring match on code.
	InIDs    []int64 // Restrict to these ids when non-empty.
	NotInIDs []int64 // Exclude these ids when non-empty.
	Page     int     // 1-based page number.
	Limit    int     // Page size, [0,100].
	OrderBy  SortField
	Order    SortOrder
}

// RoleRepository defines the standard operations for role persistence.
type RoleRepository interface {
	// FindByID retrieves a single role by id.
	FindByID(ctx context.Context, id int64) (*entity.Role, error)

	// FindByCode retrieves a single role by its normalized code.
	FindByCode(ctx context.Context, code string) (*entity.Role, error)

	// FindByIDs retrieves all roles whose id is in ids. Missing ids are
	// simply absent from the result; callers compare lengths.
	FindByIDs(ctx context.Context, ids []int64) ([]entity.Role, error)

	// Create persists a new role. Returns ErrRoleCodeTaken when the
	// normalized code already exists.
	Create(ctx context.Context, role *entity.Role) error

	// Update modifies an existing role. Returns ErrRoleCodeTaken on a
	// code collision with a different role.
	Update(ctx context.Context, role *entity.Role) error

	// Delete hard-deletes a role and clears any user memberships
	// referencing it within the same transaction.
	Delete(ctx context.Context, id int64) error

	// List returns a page of roles and the total match count.
	List(ctx context.Context, query ListRolesQuery) ([]*entity.Role, int64, error)
}
