package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"backstage/internal/domain/entity"
	domainerrors "backstage/internal/domain/errors"
	"backstage/internal/domain/repository"
	"backstage/internal/domain/service"
	mockRepo "backstage/internal/mocks/repository"
	mockSvc "backstage/internal/mocks/service"
	"backstage/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAuthService_Register_CreatesInactiveGuest(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockRoleRepo := mockRepo.NewMockRoleRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockTokens := mockSvc.NewMockTokenService(t)
	svc := NewAuthService(AuthServiceParams{
		UserRepo:     mockUserRepo,
		RoleRepo:     mockRoleRepo,
		Hasher:       mockHasher,
		TokenService: mockTokens,
		Logger:       testLogger(),
	})

	ctx := context.Background()
	guest := &entity.Role{ID: 2, Code: entity.RoleCodeGuest, Permissions: entity.Permissions{}}

	mockUserRepo.EXPECT().
		ExistsByEmailOrUsername(ctx, "alice@example.com", "alice").
		Return(false, nil)

	mockHasher.EXPECT().
		Hash("s3cret-password").
		Return("hashed", nil)

	mockRoleRepo.EXPECT().
		FindByCode(ctx, entity.RoleCodeGuest).
		Return(guest, nil)

	mockUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = 10
		}).
		Return(nil)

	user, err := svc.Register(ctx, usecase.RegisterInput{
		Email:    "  Alice@Example.COM ",
		Username: "ALICE",
		Password: "s3cret-password",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), user.ID)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "alice", user.Username)
	assert.False(t, user.Active)
	require.Len(t, user.Roles, 1)
	assert.Equal(t, entity.RoleCodeGuest, user.Roles[0].Code)
	// The hash never leaves the service.
	assert.Empty(t, user.PasswordHash)
}

func TestAuthService_Register_DuplicateIdentifier(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockRoleRepo := mockRepo.NewMockRoleRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockTokens := mockSvc.NewMockTokenService(t)
	svc := NewAuthService(AuthServiceParams{
		UserRepo:     mockUserRepo,
		RoleRepo:     mockRoleRepo,
		Hasher:       mockHasher,
		TokenService: mockTokens,
		Logger:       testLogger(),
	})

	ctx := context.Background()

	mockUserRepo.EXPECT().
		ExistsByEmailOrUsername(ctx, "alice@example.com", "alice").
		Return(true, nil)

	_, err := svc.Register(ctx, usecase.RegisterInput{
		Email:    "alice@example.com",
		Username: "alice",
		Password: "s3cret-password",
	})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Login_Succeeds(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockRoleRepo := mockRepo.NewMockRoleRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockTokens := mockSvc.NewMockTokenService(t)
	svc := NewAuthService(AuthServiceParams{
		UserRepo:     mockUserRepo,
		RoleRepo:     mockRoleRepo,
		Hasher:       mockHasher,
		TokenService: mockTokens,
		Logger:       testLogger(),
	})

	ctx := context.Background()
	user := &entity.User{ID: 1, Username: "alice", PasswordHash: "stored-hash", Active: true}

	mockUserRepo.EXPECT().
		FindForAuthByUsername(ctx, "alice").
		Return(user, nil)

	mockHasher.EXPECT().
		Check("s3cret-password", "stored-hash").
		Return(true)

	mockTokens.EXPECT().
		IssueTokens(user).
		Return("access-token", "refresh-token", nil)

	output, err := svc.Login(ctx, usecase.LoginInput{Username: " Alice ", Password: "s3cret-password"})
	require.NoError(t, err)
	assert.Equal(t, "access-token", output.Tokens.AccessToken)
	assert.Equal(t, "refresh-token", output.Tokens.RefreshToken)
	assert.Equal(t, int64(1), output.User.ID)
	assert.Empty(t, output.User.PasswordHash)
}

func TestAuthService_Login_UnknownUserLooksLikeBadPassword(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockRoleRepo := mockRepo.NewMockRoleRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockTokens := mockSvc.NewMockTokenService(t)
	svc := NewAuthService(AuthServiceParams{
		UserRepo:     mockUserRepo,
		RoleRepo:     mockRoleRepo,
		Hasher:       mockHasher,
		TokenService: mockTokens,
		Logger:       testLogger(),
	})

	ctx := context.Background()

	mockUserRepo.EXPECT().
		FindForAuthByUsername(ctx, "ghost").
		Return(nil, repository.ErrUserNotFound)

	_, err := svc.Login(ctx, usecase.LoginInput{Username: "ghost", Password: "whatever"})

	// Same error as a wrong password so usernames cannot be enumerated.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockRoleRepo := mockRepo.NewMockRoleRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockTokens := mockSvc.NewMockTokenService(t)
	svc := NewAuthService(AuthServiceParams{
		UserRepo:     mockUserRepo,
		RoleRepo:     mockRoleRepo,
		Hasher:       mockHasher,
		TokenService: mockTokens,
		Logger:       testLogger(),
	})

	ctx := context.Background()
	user := &entity.User{ID: 1, Username: "alice", PasswordHash: "stored-hash", Active: true}

	mockUserRepo.EXPECT().
		FindForAuthByUsername(ctx, "alice").
		Return(user, nil)

	mockHasher.EXPECT().
		Check("wrong", "stored-hash").
		Return(false)

	_, err := svc.Login(ctx, usecase.LoginInput{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_DisabledAccount(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockRoleRepo := mockRepo.NewMockRoleRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockTokens := mockSvc.NewMockTokenService(t)
	svc := NewAuthService(AuthServiceParams{
		UserRepo:     mockUserRepo,
		RoleRepo:     mockRoleRepo,
		Hasher:       mockHasher,
		TokenService: mockTokens,
		Logger:       testLogger(),
	})

	ctx := context.Background()
	user := &entity.User{ID: 1, Username: "alice", PasswordHash: "stored-hash", Active: false}

	mockUserRepo.EXPECT().
		FindForAuthByUsername(ctx, "alice").
		Return(user, nil)

	// The active check fires before the password check, so no Check
	// expectation is registered.
	_, err := svc.Login(ctx, usecase.LoginInput{Username: "alice", Password: "s3cret-password"})
	assert.ErrorIs(t, err, domainerrors.ErrAccountDisabled)
}

func TestAuthService_Refresh_Succeeds(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockRoleRepo := mockRepo.NewMockRoleRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockTokens := mockSvc.NewMockTokenService(t)
	svc := NewAuthService(AuthServiceParams{
		UserRepo:     mockUserRepo,
		RoleRepo:     mockRoleRepo,
		Hasher:       mockHasher,
		TokenService: mockTokens,
		Logger:       testLogger(),
	})

	ctx := context.Background()
	user := &entity.User{ID: 5, Username: "alice", PasswordHash: "stored-hash", Active: true}

	mockTokens.EXPECT().
		ValidateToken("refresh-token").
		Return(&service.Claims{UserID: 5, Type: service.TokenTypeRefresh, Hash: "digest"}, nil)

	mockUserRepo.EXPECT().
		FindForAuthByID(ctx, int64(5)).
		Return(user, nil)

	mockTokens.EXPECT().
		PasswordDigest("stored-hash").
		Return("digest")

	mockTokens.EXPECT().
		IssueTokens(user).
		Return("new-access", "new-refresh", nil)

	pair, err := svc.Refresh(ctx, "refresh-token")
	require.NoError(t, err)
	assert.Equal(t, "new-access", pair.AccessToken)
	assert.Equal(t, "new-refresh", pair.RefreshToken)
}

func TestAuthService_Refresh_RejectsAccessToken(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockRoleRepo := mockRepo.NewMockRoleRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockTokens := mockSvc.NewMockTokenService(t)
	svc := NewAuthService(AuthServiceParams{
		UserRepo:     mockUserRepo,
		RoleRepo:     mockRoleRepo,
		Hasher:       mockHasher,
		TokenService: mockTokens,
		Logger:       testLogger(),
	})

	ctx := context.Background()

	// An access token cannot stand in for a refresh token.
	mockTokens.EXPECT().
		ValidateToken("access-token").
		Return(&service.Claims{UserID: 5, Type: service.TokenTypeAccess}, nil)

	_, err := svc.Refresh(ctx, "access-token")
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_Refresh_DigestMismatchAfterPasswordChange(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockRoleRepo := mockRepo.NewMockRoleRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockTokens := mockSvc.NewMockTokenService(t)
	svc := NewAuthService(AuthServiceParams{
		UserRepo:     mockUserRepo,
		RoleRepo:     mockRoleRepo,
		Hasher:       mockHasher,
		TokenService: mockTokens,
		Logger:       testLogger(),
	})

	ctx := context.Background()
	user := &entity.User{ID: 5, Username: "alice", PasswordHash: "new-hash", Active: true}

	mockTokens.EXPECT().
		ValidateToken("old-refresh-token").
		Return(&service.Claims{UserID: 5, Type: service.TokenTypeRefresh, Hash: "old-digest"}, nil)

	mockUserRepo.EXPECT().
		FindForAuthByID(ctx, int64(5)).
		Return(user, nil)

	mockTokens.EXPECT().
		PasswordDigest("new-hash").
		Return("new-digest")

	_, err := svc.Refresh(ctx, "old-refresh-token")
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_Refresh_DisabledAccount(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockRoleRepo := mockRepo.NewMockRoleRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockTokens := mockSvc.NewMockTokenService(t)
	svc := NewAuthService(AuthServiceParams{
		UserRepo:     mockUserRepo,
		RoleRepo:     mockRoleRepo,
		Hasher:       mockHasher,
		TokenService: mockTokens,
		Logger:       testLogger(),
	})

	ctx := context.Background()
	user := &entity.User{ID: 5, Username: "alice", PasswordHash: "stored-hash", Active: false}

	mockTokens.EXPECT().
		ValidateToken("refresh-token").
		Return(&service.Claims{UserID: 5, Type: service.TokenTypeRefresh, Hash: "digest"}, nil)

	mockUserRepo.EXPECT().
		FindForAuthByID(ctx, int64(5)).
		Return(user, nil)

	_, err := svc.Refresh(ctx, "refresh-token")
	assert.ErrorIs(t, err, domainerrors.ErrAccountDisabled)
}

func TestAuthService_Refresh_DeletedUser(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockRoleRepo := mockRepo.NewMockRoleRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockTokens := mockSvc.NewMockTokenService(t)
	svc := NewAuthService(AuthServiceParams{
		UserRepo:     mockUserRepo,
		RoleRepo:     mockRoleRepo,
		Hasher:       mockHasher,
		TokenService: mockTokens,
		Logger:       testLogger(),
	})

	ctx := context.Background()

	mockTokens.EXPECT().
		ValidateToken("refresh-token").
		Return(&service.Claims{UserID: 99, Type: service.TokenTypeRefresh, Hash: "digest"}, nil)

	mockUserRepo.EXPECT().
		FindForAuthByID(ctx, int64(99)).
		Return(nil, repository.ErrUserNotFound)

	_, err := svc.Refresh(ctx, "refresh-token")
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_Authenticate_ResolvesUser(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockRoleRepo := mockRepo.NewMockRoleRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockTokens := mockSvc.NewMockTokenService(t)
	svc := NewAuthService(AuthServiceParams{
		UserRepo:     mockUserRepo,
		RoleRepo:     mockRoleRepo,
		Hasher:       mockHasher,
		TokenService: mockTokens,
		Logger:       testLogger(),
	})

	ctx := context.Background()
	user := &entity.User{ID: 3, Username: "alice", PasswordHash: "stored-hash", Active: true}

	mockTokens.EXPECT().
		ValidateToken("access-token").
		Return(&service.Claims{UserID: 3, Type: service.TokenTypeAccess}, nil)

	mockUserRepo.EXPECT().
		FindForAuthByID(ctx, int64(3)).
		Return(user, nil)

	resolved, err := svc.Authenticate(ctx, "access-token")
	require.NoError(t, err)
	assert.Equal(t, int64(3), resolved.ID)
	assert.Empty(t, resolved.PasswordHash)
}

func TestAuthService_Authenticate_RejectsRefreshToken(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockRoleRepo := mockRepo.NewMockRoleRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockTokens := mockSvc.NewMockTokenService(t)
	svc := NewAuthService(AuthServiceParams{
		UserRepo:     mockUserRepo,
		RoleRepo:     mockRoleRepo,
		Hasher:       mockHasher,
		TokenService: mockTokens,
		Logger:       testLogger(),
	})

	ctx := context.Background()

	mockTokens.EXPECT().
		ValidateToken("refresh-token").
		Return(&service.Claims{UserID: 3, Type: service.TokenTypeRefresh, Hash: "digest"}, nil)

	_, err := svc.Authenticate(ctx, "refresh-token")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthService_Authenticate_InvalidToken(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockRoleRepo := mockRepo.NewMockRoleRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockTokens := mockSvc.NewMockTokenService(t)
	svc := NewAuthService(AuthServiceParams{
		UserRepo:     mockUserRepo,
		RoleRepo:     mockRoleRepo,
		Hasher:       mockHasher,
		TokenService: mockTokens,
		Logger:       testLogger(),
	})

	ctx := context.Background()

	mockTokens.EXPECT().
		ValidateToken("garbage").
		Return(nil, domainerrors.ErrUnauthorized)

	_, err := svc.Authenticate(ctx, "garbage")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}
