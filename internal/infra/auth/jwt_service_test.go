package auth

import (
	"testing"
	"time"

	"backstage/config"
	"backstage/internal/domain/entity"
	domainerrors "backstage/internal/domain/errors"
	"backstage/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T, secret string) service.TokenService {
	t.Helper()

	svc, err := NewJWTService(&config.Config{Auth: &config.AuthConfig{
		Secret:     secret,
		AccessTTL:  time.Minute,
		RefreshTTL: time.Hour,
	}})
	require.NoError(t, err)

	return svc
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{Auth: &config.AuthConfig{}})
	assert.Error(t, err)

	_, err = NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_IssueAndValidateRoundTrip(t *testing.T) {
	svc := newTestTokenService(t, "test-secret")
	user := &entity.User{ID: 42, Username: "alice", PasswordHash: "$2a$10$stored"}

	accessToken, refreshToken, err := svc.IssueTokens(user)
	require.NoError(t, err)
	require.NotEmpty(t, accessToken)
	require.NotEmpty(t, refreshToken)
	assert.NotEqual(t, accessToken, refreshToken)

	accessClaims, err := svc.ValidateToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(42), accessClaims.UserID)
	assert.Equal(t, "alice", accessClaims.Username)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)
	// Access tokens never carry the password digest.
	assert.Empty(t, accessClaims.Hash)

	refreshClaims, err := svc.ValidateToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, int64(42), refreshClaims.UserID)
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.Type)
	assert.Equal(t, svc.PasswordDigest("$2a$10$stored"), refreshClaims.Hash)
}

func TestJWTService_PasswordChangeRotatesRefreshDigest(t *testing.T) {
	svc := newTestTokenService(t, "test-secret")
	user := &entity.User{ID: 7, Username: "bob", PasswordHash: "old-hash"}

	_, refreshToken, err := svc.IssueTokens(user)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(refreshToken)
	require.NoError(t, err)

	// The digest embedded at issue time no longer matches after the
	// stored hash rotates, which is how old refresh tokens die.
	assert.Equal(t, svc.PasswordDigest("old-hash"), claims.Hash)
	assert.NotEqual(t, svc.PasswordDigest("new-hash"), claims.Hash)
}

func TestJWTService_PasswordDigestIsDeterministic(t *testing.T) {
	svc := newTestTokenService(t, "test-secret")

	assert.Equal(t, svc.PasswordDigest("hash"), svc.PasswordDigest("hash"))
	assert.NotEqual(t, svc.PasswordDigest("hash"), svc.PasswordDigest("other"))
	assert.Len(t, svc.PasswordDigest("hash"), 64)
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	issuer := newTestTokenService(t, "secret-a")
	verifier := newTestTokenService(t, "secret-b")

	accessToken, _, err := issuer.IssueTokens(&entity.User{ID: 1, Username: "alice"})
	require.NoError(t, err)

	_, err = verifier.ValidateToken(accessToken)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc, err := NewJWTService(&config.Config{Auth: &config.AuthConfig{
		Secret:     "test-secret",
		AccessTTL:  -time.Minute,
		RefreshTTL: -time.Minute,
	}})
	require.NoError(t, err)

	accessToken, _, err := svc.IssueTokens(&entity.User{ID: 1, Username: "alice"})
	require.NoError(t, err)

	_, err = svc.ValidateToken(accessToken)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestJWTService_RejectsGarbageToken(t *testing.T) {
	svc := newTestTokenService(t, "test-secret")

	_, err := svc.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)

	_, err = svc.ValidateToken("")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}
