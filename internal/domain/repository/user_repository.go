// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"backstage/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// SortOrder selects ascending or descending ordering for list queries.
type SortOrder string

// Sort orders.
const (
	OrderAsc  SortOrder = "ASC"
	OrderDesc SortOrder = "DESC"
)

// SortField selects the column list queries order by.
type SortField string

// Sort fields.
const (
	OrderByID        SortField = "id"
	OrderByCreatedAt SortField = "created_at"
)

// ListUsersQuery carries the filters, ordering and pagination for user
// listings. Callers are expected to pass it through NormalizeListQuery
// style clamping in the use case layer before it reaches a repository.
type ListUsersQuery struct {
	Search      string  // Substring match on email.
	InIDs       []int64 // Restrict to these ids when non-empty.
	NotInIDs    []int64 // Exclude these ids when non-empty.
	OnlyDeleted bool    // Return only soft-deleted records.
	WithDeleted bool    // Include soft-deleted records.
	Page        int     // 1-based page number.
	Limit       int     // Page size, [0,100].
	OrderBy     SortField
	Order       SortOrder
}

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user with roles preloaded. The password
	// hash is not populated.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindForAuthByUsername retrieves a user with roles AND the stored
	// password hash. Reserved for the authentication subsystem.
	FindForAuthByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindForAuthByID is FindForAuthByUsername keyed by id, used by the
	// refresh-token flow to compare the embedded password digest.
	FindForAuthByID(ctx context.Context, id int64) (*entity.User, error)

	// ExistsByEmailOrUsername reports whether any user (including
	// soft-deleted ones) already claims the email or username.
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)

	// Create persists a new user with its role memberships.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies a user's base fields and, when roles is non-nil,
	// replaces the role memberships.
	Update(ctx context.Context, user *entity.User, roles []entity.Role) error

	// UpdatePassword replaces the stored password hash.
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error

	// List returns a page of users and the total match count.
	List(ctx context.Context, query ListUsersQuery) ([]*entity.User, int64, error)

	// SoftDelete marks users as deleted without removing rows.
	SoftDelete(ctx context.Context, ids []int64) (int64, error)

	// Restore clears the soft-delete marker.
	Restore(ctx context.Context, ids []int64) (int64, error)

	// Delete removes users permanently.
	Delete(ctx context.Context, ids []int64) (int64, error)
}
