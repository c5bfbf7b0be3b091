package service

import (
	"github.com/golang-jwt/jwt/v5"

	"backstage/internal/domain/entity"
)

// Token types carried in the "type" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID   int64  `json:"uid"`
	Username string `json:"username"`
	// Hash is present on refresh tokens only: a one-way digest of the
	// user's stored password hash at issue time. Changing the password
	// changes the digest and implicitly invalidates outstanding refresh
	// tokens without a revocation list.
	Hash string `json:"hash,omitempty"`
	Type string `json:"type"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating the JWT
// pair. This abstracts the token format from the use cases.
type TokenService interface {
	// IssueTokens creates an access token and a refresh token for the
	// given user. Pure function of user state at call time; no I/O.
	IssueTokens(user *entity.User) (accessToken string, refreshToken string, err error)

	// ValidateToken verifies signature and expiry and returns the decoded
	// claims.
	ValidateToken(tokenString string) (*Claims, error)

	// PasswordDigest computes the one-way digest of a stored password
	// hash that refresh tokens embed.
	PasswordDigest(passwordHash string) string
}
