package impl

import (
	"context"
	"log/slog"

	"backstage/internal/domain/entity"
	"backstage/internal/domain/repository"
	"backstage/internal/errors"
	"backstage/internal/usecase"

	"go.uber.org/fx"
)

// roleSeeder reconciles the built-in roles against the permission
// enumeration at startup.
type roleSeeder struct {
	roleRepo repository.RoleRepository
	logger   *slog.Logger
}

// RoleSeederParams holds dependencies for roleSeeder, injected by Fx.
type RoleSeederParams struct {
	fx.In

	RoleRepo repository.RoleRepository
	Logger   *slog.Logger
}

// NewRoleSeeder is the constructor for roleSeeder.
func NewRoleSeeder(params RoleSeederParams) usecase.RoleSeeder {
	return &roleSeeder{
		roleRepo: params.RoleRepo,
		logger:   params.Logger,
	}
}

// Seed is idempotent: running it any number of times leaves ADMINISTRATOR
// holding exactly the full permission enumeration and GUEST untouched.
func (s *roleSeeder) Seed(ctx context.Context) error {
	if err := s.seedAdministrator(ctx); err != nil {
		return err
	}

	return s.seedGuest(ctx)
}

// seedAdministrator creates the ADMINISTRATOR role with the full
// enumeration, or rewrites its permission set when it drifted (a release
// adding new permissions, or manual edits).
func (s *roleSeeder) seedAdministrator(ctx context.Context) error {
	full := entity.AllPermissions()

	role, err := s.roleRepo.FindByCode(ctx, entity.RoleCodeAdministrator)
	if errors.Is(err, repository.ErrRoleNotFound) {
		role = &entity.Role{
			Code:        entity.RoleCodeAdministrator,
			Description: "Built-in role holding every permission",
			Permissions: full,
		}

		err = s.roleRepo.Create(ctx, role)
		if err == nil {
			s.logger.Info("Seeded administrator role", slog.Int("permissions", len(full)))

			return nil
		}
		// Another instance won the create race; fall through to a fresh
		// read and reconcile against that row instead.
		if !errors.Is(err, repository.ErrRoleCodeTaken) {
			return errors.Wrap(err, "failed to create administrator role")
		}

		role, err = s.roleRepo.FindByCode(ctx, entity.RoleCodeAdministrator)
	}
	if err != nil {
		return errors.Wrap(err, "failed to load administrator role")
	}

	if !needsReconcile(role.Permissions, full) {
		return nil
	}

	role.Permissions = full
	if err := s.roleRepo.Update(ctx, role); err != nil {
		return errors.Wrap(err, "failed to reconcile administrator role")
	}

	s.logger.Info("Reconciled administrator role", slog.Int("permissions", len(full)))

	return nil
}

// seedGuest creates the GUEST role with an empty permission set. Existing
// guest roles are never mutated.
func (s *roleSeeder) seedGuest(ctx context.Context) error {
	_, err := s.roleRepo.FindByCode(ctx, entity.RoleCodeGuest)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrRoleNotFound) {
		return errors.Wrap(err, "failed to load guest role")
	}

	role := &entity.Role{
		Code:        entity.RoleCodeGuest,
		Description: "Built-in default role with no permissions",
		Permissions: entity.Permissions{},
	}

	if err := s.roleRepo.Create(ctx, role); err != nil {
		if errors.Is(err, repository.ErrRoleCodeTaken) {
			return nil
		}

		return errors.Wrap(err, "failed to create guest role")
	}

	s.logger.Info("Seeded guest role")

	return nil
}

// needsReconcile reports whether the stored set differs from the expected
// enumeration: any expected permission missing, or a count mismatch
// (stale extras).
func needsReconcile(stored, expected entity.Permissions) bool {
	if len(stored) != len(expected) {
		return true
	}

	for _, perm := range expected {
		if !stored.Contains(perm) {
			return true
		}
	}

	return false
}
