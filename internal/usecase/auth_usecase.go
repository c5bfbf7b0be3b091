// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"backstage/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required for self registration.
type RegisterInput struct {
	Email    string
	Username string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// TokenPair carries the issued access and refresh tokens.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	User   *entity.User
	Tokens TokenPair
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates an inactive account holding the GUEST role.
	Register(ctx context.Context, input RegisterInput) (*entity.User, error)

	// Login verifies credentials and issues the token pair.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// Refresh exchanges a valid refresh token for a fresh pair. The token
	// dies when the user's password hash digest no longer matches.
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)

	// Authenticate resolves an access token to the current user with
	// roles. It does not evaluate the active flag; that is the guard's
	// responsibility.
	Authenticate(ctx context.Context, accessToken string) (*entity.User, error)

	// Logout records the sign-out. Tokens are stateless so nothing is
	// revoked server-side.
	Logout(ctx context.Context, userID int64) error
}
