package impl

import (
	"context"
	"log/slog"

	deliverycontext "backstage/internal/delivery/context"
	"backstage/internal/domain/entity"
	domainerrors "backstage/internal/domain/errors"
	"backstage/internal/domain/repository"
	"backstage/internal/domain/service"
	"backstage/internal/errors"
	"backstage/internal/usecase"

	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	RoleRepo repository.RoleRepository
	Hasher   service.PasswordHasher
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		roleRepo: params.RoleRepo,
		hasher:   params.Hasher,
		logger:   params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create performs administrative user creation with explicit role ids and
// an explicit active flag.
func (srv *userService) Create(ctx context.Context, input usecase.CreateUserInput) (*entity.User, error) {
	email := entity.NormalizeIdentifier(input.Email)
	username := entity.NormalizeIdentifier(input.Username)

	exists, err := srv.userRepo.ExistsByEmailOrUsername(ctx, email, username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check user uniqueness")
	}
	if exists {
		return nil, domainerrors.ErrUserAlreadyExists
	}

	roles, err := srv.resolveRoles(ctx, input.RoleIDs)
	if err != nil {
		return nil, err
	}

	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		Email:        email,
		Username:     username,
		PasswordHash: hashed,
		Active:       input.Active,
		Roles:        roles,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User created", slog.Int64("userID", user.ID), slog.String("username", username))

	user.PasswordHash = ""

	return user, nil
}

// Get retrieves a single user by id.
func (srv *userService) Get(ctx context.Context, id int64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, err
	}

	return user, nil
}

// List returns a page of users.
func (srv *userService) List(ctx context.Context, input usecase.ListUsersInput) (*usecase.ListUsersOutput, error) {
	page, limit := normalizePaging(input.Page, input.Limit)
	orderBy, order := normalizeOrdering(input.OrderBy, input.Order)

	users, total, err := srv.userRepo.List(ctx, repository.ListUsersQuery{
		Search:      input.Search,
		InIDs:       input.InIDs,
		NotInIDs:    input.NotInIDs,
		OnlyDeleted: input.OnlyDeleted,
		WithDeleted: input.WithDeleted,
		Page:        page,
		Limit:       limit,
		OrderBy:     orderBy,
		Order:       order,
	})
	if err != nil {
		return nil, err
	}

	return &usecase.ListUsersOutput{
		Users: users,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

// Update applies a partial administrative update, optionally replacing the
// role memberships.
func (srv *userService) Update(ctx context.Context, id int64, input usecase.UpdateUserInput) (*entity.User, error) {
	user, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Email != nil {
		user.Email = entity.NormalizeIdentifier(*input.Email)
	}
	if input.Username != nil {
		user.Username = entity.NormalizeIdentifier(*input.Username)
	}
	if input.Active != nil {
		user.Active = *input.Active
	}

	var roles []entity.Role
	if input.RoleIDs != nil {
		roles, err = srv.resolveRoles(ctx, input.RoleIDs)
		if err != nil {
			return nil, err
		}
	}

	if err := srv.userRepo.Update(ctx, user, roles); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, err
	}

	srv.log(ctx).Info("User updated", slog.Int64("userID", id))

	return srv.Get(ctx, id)
}

// UpdateProfile lets a user change their own identifiers. Roles and the
// active flag stay out of reach.
func (srv *userService) UpdateProfile(ctx context.Context, id int64, input usecase.UpdateProfileInput) (*entity.User, error) {
	return srv.Update(ctx, id, usecase.UpdateUserInput{
		Email:    input.Email,
		Username: input.Username,
	})
}

// SetPassword rehashes and replaces the stored password. Outstanding
// refresh tokens die with the old hash digest.
func (srv *userService) SetPassword(ctx context.Context, id int64, password string) error {
	hashed, err := srv.hasher.Hash(password)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	if err := srv.userRepo.UpdatePassword(ctx, id, hashed); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return err
	}

	srv.log(ctx).Info("Password changed", slog.Int64("userID", id))

	return nil
}

// SoftDelete marks users as deleted.
func (srv *userService) SoftDelete(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("at least one id is required")
	}

	return srv.userRepo.SoftDelete(ctx, ids)
}

// Restore clears the soft-delete marker.
func (srv *userService) Restore(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("at least one id is required")
	}

	return srv.userRepo.Restore(ctx, ids)
}

// Delete removes users permanently.
func (srv *userService) Delete(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("at least one id is required")
	}

	return srv.userRepo.Delete(ctx, ids)
}

// resolveRoles loads the requested roles and rejects ids that do not
// exist.
func (srv *userService) resolveRoles(ctx context.Context, roleIDs []int64) ([]entity.Role, error) {
	if len(roleIDs) == 0 {
		return []entity.Role{}, nil
	}

	seen := make(map[int64]struct{}, len(roleIDs))
	unique := make([]int64, 0, len(roleIDs))
	for _, id := range roleIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	roles, err := srv.roleRepo.FindByIDs(ctx, unique)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve roles")
	}
	if len(roles) != len(unique) {
		return nil, domainerrors.ErrRoleNotFound.WithDetails("one or more role ids do not exist")
	}

	return roles, nil
}
