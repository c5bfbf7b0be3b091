package impl

import (
	"context"
	"testing"

	"backstage/internal/domain/entity"
	"backstage/internal/domain/repository"
	mockRepo "backstage/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRoleSeeder_Seed_FreshDatabase(t *testing.T) {
	mockRoleRepo := mockRepo.NewMockRoleRepository(t)
	seeder := NewRoleSeeder(RoleSeederParams{RoleRepo: mockRoleRepo, Logger: testLogger()})

	ctx := context.Background()

	mockRoleRepo.EXPECT().
		FindByCode(ctx, entity.RoleCodeAdministrator).
		Return(nil, repository.ErrRoleNotFound)

	mockRoleRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Role")).
		Run(func(ctx context.Context, role *entity.Role) {
			if role.Code == entity.RoleCodeAdministrator {
				assert.ElementsMatch(t, entity.AllPermissions(), role.Permissions)
			}
			if role.Code == entity.RoleCodeGuest {
				assert.Empty(t, role.Permissions)
			}
		}).
		Return(nil).
		Times(2)

	mockRoleRepo.EXPECT().
		FindByCode(ctx, entity.RoleCodeGuest).
		Return(nil, repository.ErrRoleNotFound)

	require.NoError(t, seeder.Seed(ctx))
}

func TestRoleSeeder_Seed_IsIdempotent(t *testing.T) {
	mockRoleRepo := mockRepo.NewMockRoleRepository(t)
	seeder := NewRoleSeeder(RoleSeederParams{RoleRepo: mockRoleRepo, Logger: testLogger()})

	ctx := context.Background()
	admin := &entity.Role{ID: 1, Code: entity.RoleCodeAdministrator, Permissions: entity.AllPermissions()}
	guest := &entity.Role{ID: 2, Code: entity.RoleCodeGuest, Permissions: entity.Permissions{}}

	// Both roles already hold their expected shapes; no writes happen.
	mockRoleRepo.EXPECT().
		FindByCode(ctx, entity.RoleCodeAdministrator).
		Return(admin, nil).
		Times(3)

	mockRoleRepo.EXPECT().
		FindByCode(ctx, entity.RoleCodeGuest).
		Return(guest, nil).
		Times(3)

	for range 3 {
		require.NoError(t, seeder.Seed(ctx))
	}
}

func TestRoleSeeder_Seed_ReconcilesDriftedAdministrator(t *testing.T) {
	mockRoleRepo := mockRepo.NewMockRoleRepository(t)
	seeder := NewRoleSeeder(RoleSeederParams{RoleRepo: mockRoleRepo, Logger: testLogger()})

	ctx := context.Background()
	// A previous release seeded fewer permissions.
	stale := &entity.Role{
		ID:          1,
		Code:        entity.RoleCodeAdministrator,
		Permissions: entity.Permissions{entity.PermListUser, entity.PermViewUser},
	}
	guest := &entity.Role{ID: 2, Code: entity.RoleCodeGuest, Permissions: entity.Permissions{}}

	mockRoleRepo.EXPECT().
		FindByCode(ctx, entity.RoleCodeAdministrator).
		Return(stale, nil)

	mockRoleRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Role")).
		Run(func(ctx context.Context, role *entity.Role) {
			assert.ElementsMatch(t, entity.AllPermissions(), role.Permissions)
		}).
		Return(nil)

	mockRoleRepo.EXPECT().
		FindByCode(ctx, entity.RoleCodeGuest).
		Return(guest, nil)

	require.NoError(t, seeder.Seed(ctx))
}

func TestRoleSeeder_Seed_ReconcilesStaleExtras(t *testing.T) {
	mockRoleRepo := mockRepo.NewMockRoleRepository(t)
	seeder := NewRoleSeeder(RoleSeederParams{RoleRepo: mockRoleRepo, Logger: testLogger()})

	ctx := context.Background()
	// Same count but one stored token was removed from the enumeration.
	drifted := append(entity.Permissions{}, entity.AllPermissions()...)
	drifted[0] = entity.Permission("RETIRED_PERMISSION")
	stale := &entity.Role{ID: 1, Code: entity.RoleCodeAdministrator, Permissions: drifted}
	guest := &entity.Role{ID: 2, Code: entity.RoleCodeGuest, Permissions: entity.Permissions{}}

	mockRoleRepo.EXPECT().
		FindByCode(ctx, entity.RoleCodeAdministrator).
		Return(stale, nil)

	mockRoleRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Role")).
		Return(nil)

	mockRoleRepo.EXPECT().
		FindByCode(ctx, entity.RoleCodeGuest).
		Return(guest, nil)

	require.NoError(t, seeder.Seed(ctx))
}

func TestRoleSeeder_Seed_SurvivesCreateRace(t *testing.T) {
	mockRoleRepo := mockRepo.NewMockRoleRepository(t)
	seeder := NewRoleSeeder(RoleSeederParams{RoleRepo: mockRoleRepo, Logger: testLogger()})

	ctx := context.Background()
	admin := &entity.Role{ID: 1, Code: entity.RoleCodeAdministrator, Permissions: entity.AllPermissions()}
	guest := &entity.Role{ID: 2, Code: entity.RoleCodeGuest, Permissions: entity.Permissions{}}

	// Another instance creates the row between our read and our create.
	mockRoleRepo.EXPECT().
		FindByCode(ctx, entity.RoleCodeAdministrator).
		Return(nil, repository.ErrRoleNotFound).
		Once()

	mockRoleRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Role")).
		Return(repository.ErrRoleCodeTaken).
		Once()

	mockRoleRepo.EXPECT().
		FindByCode(ctx, entity.RoleCodeAdministrator).
		Return(admin, nil).
		Once()

	mockRoleRepo.EXPECT().
		FindByCode(ctx, entity.RoleCodeGuest).
		Return(guest, nil)

	require.NoError(t, seeder.Seed(ctx))
}

func TestRoleSeeder_Seed_NeverMutatesExistingGuest(t *testing.T) {
	mockRoleRepo := mockRepo.NewMockRoleRepository(t)
	seeder := NewRoleSeeder(RoleSeederParams{RoleRepo: mockRoleRepo, Logger: testLogger()})

	ctx := context.Background()
	admin := &entity.Role{ID: 1, Code: entity.RoleCodeAdministrator, Permissions: entity.AllPermissions()}
	// An operator granted GUEST a permission by hand; the seeder must
	// leave that alone.
	customizedGuest := &entity.Role{
		ID:          2,
		Code:        entity.RoleCodeGuest,
		Permissions: entity.Permissions{entity.PermListProduct},
	}

	mockRoleRepo.EXPECT().
		FindByCode(ctx, entity.RoleCodeAdministrator).
		Return(admin, nil)

	mockRoleRepo.EXPECT().
		FindByCode(ctx, entity.RoleCodeGuest).
		Return(customizedGuest, nil)

	// No Create or Update expectation: any write would fail the test.
	require.NoError(t, seeder.Seed(ctx))
}

func TestNeedsReconcile(t *testing.T) {
	full := entity.AllPermissions()

	assert.False(t, needsReconcile(full, full))
	assert.True(t, needsReconcile(full[:len(full)-1], full))
	assert.True(t, needsReconcile(append(entity.Permissions{"STALE"}, full[1:]...), full))
}
