package usecase

import (
	"context"

	"backstage/internal/domain/entity"
)

// --- Input DTOs ---

// CreateRoleInput defines the data for role creation. The code is
// normalized (trimmed, uppercased) before persistence.
type CreateRoleInput struct {
	Code        string
	Description string
	Permissions []string
}

// UpdateRoleInput defines a partial role update. Nil fields are left
// untouched; a nil Permissions keeps the current set.
type UpdateRoleInput struct {
	Code        *string
	Description *string
	Permissions []string
}

// ListRolesInput defines the filters and pagination for role listings.
type ListRolesInput struct {
	Search   string
	InIDs    []int64
	NotInIDs []int64
	Page     int
	Limit    int
	OrderBy  string
	Order    string
}

// --- Output DTOs ---

// ListRolesOutput returns one page of roles plus the total match count.
type ListRolesOutput struct {
	Roles []*entity.Role
	Total int64
	Page  int
	Limit int
}

// RoleUsecase defines the interface for role management operations.
type RoleUsecase interface {
	Create(ctx context.Context, input CreateRoleInput) (*entity.Role, error)
	Get(ctx context.Context, id int64) (*entity.Role, error)
	List(ctx context.Context, input ListRolesInput) (*ListRolesOutput, error)
	Update(ctx context.Context, id int64, input UpdateRoleInput) (*entity.Role, error)
	Delete(ctx context.Context, id int64) error

	// ListPermissions serves the grouped permission catalog. The catalog
	// is a closed enumeration in code; the result is cached with a TTL.
	ListPermissions(ctx context.Context) ([]entity.PermissionGroup, error)
}

// RoleSeeder reconciles the built-in roles at startup, before the server
// accepts traffic.
type RoleSeeder interface {
	Seed(ctx context.Context) error
}
