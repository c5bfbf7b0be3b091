package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"backstage/config"
	"backstage/internal/domain/entity"
	domainerrors "backstage/internal/domain/errors"
	"backstage/internal/domain/service"
	"backstage/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret     []byte        // Shared signing key for both token types.
	accessTTL  time.Duration // Time-to-live for access tokens.
	refreshTTL time.Duration // Time-to-live for refresh tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth == nil || cfg.Auth.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret:     []byte(cfg.Auth.Secret),
		accessTTL:  cfg.Auth.AccessTTL,
		refreshTTL: cfg.Auth.RefreshTTL,
	}, nil
}

// IssueTokens creates a new access token and refresh token for a given user.
func (s *jwtService) IssueTokens(user *entity.User) (accessToken string, refreshToken string, err error) {
	accessToken, err = s.signToken(user, service.TokenTypeAccess, "", s.accessTTL)
	if err != nil {
		return "", "", err
	}

	// The refresh token binds to the current password hash: rotating the
	// password rotates the digest and orphans every older refresh token.
	refreshToken, err = s.signToken(user, service.TokenTypeRefresh, s.PasswordDigest(user.PasswordHash), s.refreshTTL)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// ValidateToken checks signature and expiry and decodes the custom claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrUnauthorized
	}

	return claims, nil
}

// PasswordDigest returns the hex SHA-256 digest of a stored password hash.
func (s *jwtService) PasswordDigest(passwordHash string) string {
	sum := sha256.Sum256([]byte(passwordHash))

	return hex.EncodeToString(sum[:])
}

// signToken is a private helper to create a JWT with the service claims.
func (s *jwtService) signToken(user *entity.User, tokenType, hash string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		UserID:   user.ID,
		Username: user.Username,
		Hash:     hash,
		Type:     tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}
