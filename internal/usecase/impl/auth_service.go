// Package impl contains the implementation of the application's business logic.
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

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	roleRepo     repository.RoleRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	RoleRepo     repository.RoleRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		roleRepo:     params.RoleRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an inactive account holding the GUEST role.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, error) {
	email := entity.NormalizeIdentifier(input.Email)
	username := entity.NormalizeIdentifier(input.Username)

	exists, err := srv.userRepo.ExistsByEmailOrUsername(ctx, email, username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check registration uniqueness")
	}
	if exists {
		return nil, domainerrors.ErrUserAlreadyExists
	}

	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password")
	}

	guest, err := srv.roleRepo.FindByCode(ctx, entity.RoleCodeGuest)
	if err != nil {
		// The seeder creates GUEST before the server accepts traffic, so
		// a miss here is an operational fault, not a client error.
		srv.log(ctx).Error("Guest role missing during registration", slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WrapMessage("guest role not seeded")
	}

	user := &entity.User{
		Email:        email,
		Username:     username,
		PasswordHash: hashed,
		Active:       false,
		Roles:        []entity.Role{*guest},
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User registered", slog.Int64("userID", user.ID), slog.String("username", username))

	user.PasswordHash = ""

	return user, nil
}

// Login verifies credentials and issues the token pair.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	username := entity.NormalizeIdentifier(input.Username)

	user, err := srv.userRepo.FindForAuthByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Same error as a password mismatch; do not leak which
			// usernames exist.
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	if !user.Active {
		return nil, domainerrors.ErrAccountDisabled
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login rejected", slog.String("username", username))

		return nil, domainerrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := srv.tokenService.IssueTokens(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue tokens")
	}

	srv.log(ctx).Info("Login succeeded", slog.Int64("userID", user.ID))

	user.PasswordHash = ""

	return &usecase.LoginOutput{
		User: user,
		Tokens: usecase.TokenPair{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
		},
	}, nil
}

// Refresh exchanges a valid refresh token for a fresh pair.
func (srv *authService) Refresh(ctx context.Context, refreshToken string) (*usecase.TokenPair, error) {
	claims, err := srv.tokenService.ValidateToken(refreshToken)
	if err != nil || claims.Type != service.TokenTypeRefresh {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	user, err := srv.userRepo.FindForAuthByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to load user for refresh")
	}

	if !user.Active {
		return nil, domainerrors.ErrAccountDisabled
	}

	// A password change rotates the stored hash, so the digest embedded
	// in older refresh tokens stops matching here.
	if srv.tokenService.PasswordDigest(user.PasswordHash) != claims.Hash {
		srv.log(ctx).Warn("Refresh token digest mismatch", slog.Int64("userID", user.ID))

		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	accessToken, newRefreshToken, err := srv.tokenService.IssueTokens(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue tokens")
	}

	return &usecase.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

// Authenticate resolves an access token to the current user with roles.
func (srv *authService) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	claims, err := srv.tokenService.ValidateToken(accessToken)
	if err != nil || claims.Type != service.TokenTypeAccess {
		return nil, domainerrors.ErrUnauthorized
	}

	user, err := srv.userRepo.FindForAuthByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUnauthorized
		}

		return nil, errors.Wrap(err, "failed to load user for authentication")
	}

	user.PasswordHash = ""

	return user, nil
}

// Logout records the sign-out. Tokens are stateless so there is nothing to
// revoke server-side; outstanding tokens simply age out.
func (srv *authService) Logout(ctx context.Context, userID int64) error {
	srv.log(ctx).Info("User logged out", slog.Int64("userID", userID))

	return nil
}
