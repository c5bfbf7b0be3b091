package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	deliverycontext "backstage/internal/delivery/context"
	"backstage/internal/domain/entity"
	domainerrors "backstage/internal/domain/errors"
	"backstage/internal/domain/repository"
	"backstage/internal/domain/service"
	"backstage/internal/errors"
	"backstage/internal/usecase"

	"go.uber.org/fx"
)

const (
	permissionCatalogCacheKey = "role:permission-catalog"
	permissionCatalogCacheTTL = 10 * time.Minute
)

// roleService implements the RoleUsecase interface.
type roleService struct {
	roleRepo repository.RoleRepository
	cache    service.CacheService
	logger   *slog.Logger
}

// RoleServiceParams holds dependencies for roleService, injected by Fx.
type RoleServiceParams struct {
	fx.In

	RoleRepo repository.RoleRepository
	Cache    service.CacheService
	Logger   *slog.Logger
}

// NewRoleService is the constructor for roleService.
func NewRoleService(params RoleServiceParams) usecase.RoleUsecase {
	return &roleService{
		roleRepo: params.RoleRepo,
		cache:    params.Cache,
		logger:   params.Logger,
	}
}

func (srv *roleService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create persists a new role under its normalized code.
func (srv *roleService) Create(ctx context.Context, input usecase.CreateRoleInput) (*entity.Role, error) {
	code := entity.NormalizeRoleCode(input.Code)
	if code == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("role code must not be empty")
	}

	permissions, err := validatePermissions(input.Permissions)
	if err != nil {
		return nil, err
	}

	role := &entity.Role{
		Code:        code,
		Description: input.Description,
		Permissions: permissions,
	}

	if err := srv.roleRepo.Create(ctx, role); err != nil {
		if errors.Is(err, repository.ErrRoleCodeTaken) {
			return nil, domainerrors.ErrRoleAlreadyExists
		}

		return nil, err
	}

	srv.log(ctx).Info("Role created", slog.Int64("roleID", role.ID), slog.String("code", code))

	return role, nil
}

// Get retrieves a single role by id.
func (srv *roleService) Get(ctx context.Context, id int64) (*entity.Role, error) {
	role, err := srv.roleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			return nil, domainerrors.ErrRoleNotFound
		}

		return nil, err
	}

	return role, nil
}

// List returns a page of roles.
func (srv *roleService) List(ctx context.Context, input usecase.ListRolesInput) (*usecase.ListRolesOutput, error) {
	page, limit := normalizePaging(input.Page, input.Limit)
	orderBy, order := normalizeOrdering(input.OrderBy, input.Order)

	roles, total, err := srv.roleRepo.List(ctx, repository.ListRolesQuery{
		Search:   input.Search,
		InIDs:    input.InIDs,
		NotInIDs: input.NotInIDs,
		Page:     page,
		Limit:    limit,
		OrderBy:  orderBy,
		Order:    order,
	})
	if err != nil {
		return nil, err
	}

	return &usecase.ListRolesOutput{
		Roles: roles,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

// Update applies a partial update to an existing role.
func (srv *roleService) Update(ctx context.Context, id int64, input usecase.UpdateRoleInput) (*entity.Role, error) {
	role, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Code != nil {
		code := entity.NormalizeRoleCode(*input.Code)
		if code == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("role code must not be empty")
		}
		role.Code = code
	}
	if input.Description != nil {
		role.Description = *input.Description
	}
	if input.Permissions != nil {
		permissions, err := validatePermissions(input.Permissions)
		if err != nil {
			return nil, err
		}
		role.Permissions = permissions
	}

	if err := srv.roleRepo.Update(ctx, role); err != nil {
		if errors.Is(err, repository.ErrRoleCodeTaken) {
			return nil, domainerrors.ErrRoleAlreadyExists
		}
		if errors.Is(err, repository.ErrRoleNotFound) {
			return nil, domainerrors.ErrRoleNotFound
		}

		return nil, err
	}

	srv.log(ctx).Info("Role updated", slog.Int64("roleID", id))

	return role, nil
}

// Delete hard-deletes a role and its memberships.
func (srv *roleService) Delete(ctx context.Context, id int64) error {
	if err := srv.roleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			return domainerrors.ErrRoleNotFound
		}

		return err
	}

	srv.log(ctx).Info("Role deleted", slog.Int64("roleID", id))

	return nil
}

// ListPermissions serves the grouped permission catalog through the TTL
// cache. Cache failures degrade to serving the in-code enumeration.
func (srv *roleService) ListPermissions(ctx context.Context) ([]entity.PermissionGroup, error) {
	if cached, err := srv.cache.Get(ctx, permissionCatalogCacheKey); err == nil {
		var groups []entity.PermissionGroup
		if err := json.Unmarshal([]byte(cached), &groups); err == nil {
			return groups, nil
		}
	} else if !errors.Is(err, service.ErrCacheMiss) {
		srv.log(ctx).Warn("Permission catalog cache read failed", slog.Any("error", err))
	}

	groups := entity.PermissionCatalog()

	if payload, err := json.Marshal(groups); err == nil {
		if err := srv.cache.Set(ctx, permissionCatalogCacheKey, string(payload), permissionCatalogCacheTTL); err != nil {
			srv.log(ctx).Warn("Permission catalog cache write failed", slog.Any("error", err))
		}
	}

	return groups, nil
}

// validatePermissions rejects codes outside the closed enumeration.
func validatePermissions(codes []string) (entity.Permissions, error) {
	permissions := make(entity.Permissions, 0, len(codes))
	for _, code := range codes {
		perm := entity.Permission(code)
		if !perm.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown permission: " + code)
		}
		if !permissions.Contains(perm) {
			permissions = append(permissions, perm)
		}
	}

	return permissions, nil
}
