package usecase

import (
	"context"

	"backstage/internal/domain/entity"
)

// --- Input DTOs ---

// CreateUserInput defines the data for administrative user creation.
type CreateUserInput struct {
	Email    string
	Username string
	Password string
	Active   bool
	RoleIDs  []int64
}

// UpdateUserInput defines a partial user update. Nil fields are left
// untouched; a nil RoleIDs keeps the current memberships.
type UpdateUserInput struct {
	Email    *string
	Username *string
	Active   *bool
	RoleIDs  []int64
}

// UpdateProfileInput defines the fields a user may change on their own
// account.
type UpdateProfileInput struct {
	Email    *string
	Username *string
}

// ListUsersInput defines the filters and pagination for user listings.
type ListUsersInput struct {
	Search      string
	InIDs       []int64
	NotInIDs    []int64
	OnlyDeleted bool
	WithDeleted bool
	Page        int
	Limit       int
	OrderBy     string
	Order       string
}

// --- Output DTOs ---

// ListUsersOutput returns one page of users plus the total match count.
type ListUsersOutput struct {
	Users []*entity.User
	Total int64
	Page  int
	Limit int
}

// UserUsecase defines the interface for user management operations.
type UserUsecase interface {
	Create(ctx context.Context, input CreateUserInput) (*entity.User, error)
	Get(ctx context.Context, id int64) (*entity.User, error)
	List(ctx context.Context, input ListUsersInput) (*ListUsersOutput, error)
	Update(ctx context.Context, id int64, input UpdateUserInput) (*entity.User, error)
	UpdateProfile(ctx context.Context, id int64, input UpdateProfileInput) (*entity.User, error)
	SetPassword(ctx context.Context, id int64, password string) error
	SoftDelete(ctx context.Context, ids []int64) (int64, error)
	Restore(ctx context.Context, ids []int64) (int64, error)
	Delete(ctx context.Context, ids []int64) (int64, error)
}
