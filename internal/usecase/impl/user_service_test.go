package impl

import (
	"context"
	"testing"

	"backstage/internal/domain/entity"
	domainerrors "backstage/internal/domain/errors"
	"backstage/internal/domain/repository"
	mockRepo "backstage/internal/mocks/repository"
	mockSvc "backstage/internal/mocks/service"
	"backstage/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_Create_ResolvesRolesAndHashes(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockRoleRepo := mockRepo.NewMockRoleRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	svc := NewUserService(UserServiceParams{
		UserRepo: mockUserRepo,
		RoleRepo: mockRoleRepo,
		Hasher:   mockHasher,
		Logger:   testLogger(),
	})

	ctx := context.Background()
	editor := entity.Role{ID: 3, Code: "EDITOR"}

	mockUserRepo.EXPECT().
		ExistsByEmailOrUsername(ctx, "bob@example.com", "bob").
		Return(false, nil)

	// Duplicated ids collapse before the lookup.
	mockRoleRepo.EXPECT().
		FindByIDs(ctx, []int64{3}).
		Return([]entity.Role{editor}, nil)

	mockHasher.EXPECT().
		Hash("s3cret-password").
		Return("hashed", nil)

	mockUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = 20
			assert.Equal(t, "hashed", user.PasswordHash)
		}).
		Return(nil)

	user, err := svc.Create(ctx, usecase.CreateUserInput{
		Email:    " Bob@Example.com ",
		Username: "Bob",
		Password: "s3cret-password",
		Active:   true,
		RoleIDs:  []int64{3, 3},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(20), user.ID)
	assert.True(t, user.Active)
	require.Len(t, user.Roles, 1)
	assert.Equal(t, "EDITOR", user.Roles[0].Code)
	assert.Empty(t, user.PasswordHash)
}

func TestUserService_Create_UnknownRoleID(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockRoleRepo := mockRepo.NewMockRoleRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	svc := NewUserService(UserServiceParams{
		UserRepo: mockUserRepo,
		RoleRepo: mockRoleRepo,
		Hasher:   mockHasher,
		Logger:   testLogger(),
	})

	ctx := context.Background()

	mockUserRepo.EXPECT().
		ExistsByEmailOrUsername(ctx, "bob@example.com", "bob").
		Return(false, nil)

	// One of the two ids does not exist.
	mockRoleRepo.EXPECT().
		FindByIDs(ctx, []int64{3, 404}).
		Return([]entity.Role{{ID: 3, Code: "EDITOR"}}, nil)

	_, err := svc.Create(ctx, usecase.CreateUserInput{
		Email:    "bob@example.com",
		Username: "bob",
		Password: "s3cret-password",
		RoleIDs:  []int64{3, 404},
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "ROLE_NOT_FOUND", appErr.ErrorCode())
}

func TestUserService_Create_DuplicateIdentifier(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockRoleRepo := mockRepo.NewMockRoleRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	svc := NewUserService(UserServiceParams{
		UserRepo: mockUserRepo,
		RoleRepo: mockRoleRepo,
		Hasher:   mockHasher,
		Logger:   testLogger(),
	})

	ctx := context.Background()

	mockUserRepo.EXPECT().
		ExistsByEmailOrUsername(ctx, "bob@example.com", "bob").
		Return(true, nil)

	_, err := svc.Create(ctx, usecase.CreateUserInput{
		Email:    "bob@example.com",
		Username: "bob",
		Password: "s3cret-password",
	})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Update_NilRoleIDsKeepMemberships(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockRoleRepo := mockRepo.NewMockRoleRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	svc := NewUserService(UserServiceParams{
		UserRepo: mockUserRepo,
		RoleRepo: mockRoleRepo,
		Hasher:   mockHasher,
		Logger:   testLogger(),
	})

	ctx := context.Background()
	stored := &entity.User{ID: 7, Email: "bob@example.com", Username: "bob", Active: true}

	mockUserRepo.EXPECT().
		FindByID(ctx, int64(7)).
		Return(stored, nil).
		Times(2)

	// A nil roles slice reaches the repository, which interprets it as
	// "leave memberships alone".
	mockUserRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User"), mock.Anything).
		Run(func(ctx context.Context, user *entity.User, roles []entity.Role) {
			assert.Nil(t, roles)
			assert.Equal(t, "robert", user.Username)
		}).
		Return(nil)

	username := "Robert"
	_, err := svc.Update(ctx, 7, usecase.UpdateUserInput{Username: &username})
	require.NoError(t, err)
}

func TestUserService_Update_UnknownUser(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockRoleRepo := mockRepo.NewMockRoleRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	svc := NewUserService(UserServiceParams{
		UserRepo: mockUserRepo,
		RoleRepo: mockRoleRepo,
		Hasher:   mockHasher,
		Logger:   testLogger(),
	})

	ctx := context.Background()

	mockUserRepo.EXPECT().
		FindByID(ctx, int64(404)).
		Return(nil, repository.ErrUserNotFound)

	_, err := svc.Update(ctx, 404, usecase.UpdateUserInput{})
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_SetPassword_RehashesAndStores(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockRoleRepo := mockRepo.NewMockRoleRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	svc := NewUserService(UserServiceParams{
		UserRepo: mockUserRepo,
		RoleRepo: mockRoleRepo,
		Hasher:   mockHasher,
		Logger:   testLogger(),
	})

	ctx := context.Background()

	mockHasher.EXPECT().
		Hash("new-password").
		Return("new-hash", nil)

	mockUserRepo.EXPECT().
		UpdatePassword(ctx, int64(7), "new-hash").
		Return(nil)

	require.NoError(t, svc.SetPassword(ctx, 7, "new-password"))
}

func TestUserService_SoftDelete_RequiresIDs(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockRoleRepo := mockRepo.NewMockRoleRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	svc := NewUserService(UserServiceParams{
		UserRepo: mockUserRepo,
		RoleRepo: mockRoleRepo,
		Hasher:   mockHasher,
		Logger:   testLogger(),
	})

	_, err := svc.SoftDelete(context.Background(), nil)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestUserService_SoftDeleteRestoreDelete_ReportAffectedRows(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockRoleRepo := mockRepo.NewMockRoleRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	svc := NewUserService(UserServiceParams{
		UserRepo: mockUserRepo,
		RoleRepo: mockRoleRepo,
		Hasher:   mockHasher,
		Logger:   testLogger(),
	})

	ctx := context.Background()
	ids := []int64{1, 2, 3}

	mockUserRepo.EXPECT().SoftDelete(ctx, ids).Return(int64(3), nil)
	mockUserRepo.EXPECT().Restore(ctx, ids).Return(int64(2), nil)
	mockUserRepo.EXPECT().Delete(ctx, ids).Return(int64(1), nil)

	affected, err := svc.SoftDelete(ctx, ids)
	require.NoError(t, err)
	assert.Equal(t, int64(3), affected)

	affected, err = svc.Restore(ctx, ids)
	require.NoError(t, err)
	assert.Equal(t, int64(2), affected)

	affected, err = svc.Delete(ctx, ids)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
}

func TestUserService_List_ClampsPagingAndOrdering(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockRoleRepo := mockRepo.NewMockRoleRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	svc := NewUserService(UserServiceParams{
		UserRepo: mockUserRepo,
		RoleRepo: mockRoleRepo,
		Hasher:   mockHasher,
		Logger:   testLogger(),
	})

	ctx := context.Background()

	mockUserRepo.EXPECT().
		List(ctx, repository.ListUsersQuery{
			Search:  "bob",
			Page:    1,
			Limit:   10,
			OrderBy: repository.OrderByCreatedAt,
			Order:   repository.OrderAsc,
		}).
		Return([]*entity.User{}, int64(0), nil)

	output, err := svc.List(ctx, usecase.ListUsersInput{
		Search:  "bob",
		Page:    0,
		Limit:   -5,
		OrderBy: "CREATED_at",
		Order:   "asc",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, output.Page)
	assert.Equal(t, 10, output.Limit)
}
