package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "backstage/internal/delivery/context"
	"backstage/internal/domain/access"
	"backstage/internal/domain/entity"
	domainerrors "backstage/internal/domain/errors"
	"backstage/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAuthUsecase satisfies usecase.AuthUsecase for guard tests; only
// Authenticate is exercised here.
type stubAuthUsecase struct {
	user *entity.User
	err  error
}

func (s *stubAuthUsecase) Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, error) {
	return nil, nil
}

func (s *stubAuthUsecase) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	return nil, nil
}

func (s *stubAuthUsecase) Refresh(ctx context.Context, refreshToken string) (*usecase.TokenPair, error) {
	return nil, nil
}

func (s *stubAuthUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	return s.user, s.err
}

func (s *stubAuthUsecase) Logout(ctx context.Context, userID int64) error {
	return nil
}

func guardContext(method, pattern string, header http.Header) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(method, "/", nil)
	if header != nil {
		req.Header = header
	}
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath(pattern)

	return c
}

func bearerHeader(token string) http.Header {
	header := http.Header{}
	header.Set(echo.HeaderAuthorization, "Bearer "+token)

	return header
}

func TestGuard_PublicRouteSkipsAuthentication(t *testing.T) {
	registry := access.NewRegistry()
	registry.Register(http.MethodPost, "/v1/auth/login", access.PublicPolicy())
	guard := NewAuthMiddleware(&stubAuthUsecase{err: domainerrors.ErrUnauthorized}, registry)

	called := false
	next := func(c echo.Context) error {
		called = true

		return nil
	}

	c := guardContext(http.MethodPost, "/v1/auth/login", nil)
	require.NoError(t, guard.Guard(next)(c))
	assert.True(t, called)
}

func TestGuard_MissingBearerToken(t *testing.T) {
	registry := access.NewRegistry()
	registry.Register(http.MethodGet, "/v1/user", access.Require(entity.PermListUser))
	guard := NewAuthMiddleware(&stubAuthUsecase{}, registry)

	next := func(c echo.Context) error {
		t.Fatal("handler must not run without a token")

		return nil
	}

	c := guardContext(http.MethodGet, "/v1/user", nil)
	err := guard.Guard(next)(c)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestGuard_MalformedAuthorizationHeader(t *testing.T) {
	registry := access.NewRegistry()
	registry.Register(http.MethodGet, "/v1/user", access.Require(entity.PermListUser))
	guard := NewAuthMiddleware(&stubAuthUsecase{}, registry)

	next := func(c echo.Context) error { return nil }

	header := http.Header{}
	header.Set(echo.HeaderAuthorization, "Basic dXNlcjpwYXNz")

	c := guardContext(http.MethodGet, "/v1/user", header)
	err := guard.Guard(next)(c)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestGuard_GrantsAccessAndStoresUser(t *testing.T) {
	registry := access.NewRegistry()
	registry.Register(http.MethodGet, "/v1/user", access.Require(entity.PermListUser))

	user := &entity.User{
		ID:     1,
		Active: true,
		Roles: []entity.Role{
			{Code: "SUPPORT", Permissions: entity.Permissions{entity.PermListUser}},
		},
	}
	guard := NewAuthMiddleware(&stubAuthUsecase{user: user}, registry)

	var seen *entity.User
	next := func(c echo.Context) error {
		seen = deliverycontext.GetUser(c)

		return nil
	}

	c := guardContext(http.MethodGet, "/v1/user", bearerHeader("valid-token"))
	require.NoError(t, guard.Guard(next)(c))
	require.NotNil(t, seen)
	assert.Equal(t, int64(1), seen.ID)
}

func TestGuard_DeniesMissingPermission(t *testing.T) {
	registry := access.NewRegistry()
	registry.Register(http.MethodDelete, "/v1/user/:id", access.Require(entity.PermDeleteUser))

	user := &entity.User{
		ID:     1,
		Active: true,
		Roles: []entity.Role{
			{Code: "SUPPORT", Permissions: entity.Permissions{entity.PermListUser}},
		},
	}
	guard := NewAuthMiddleware(&stubAuthUsecase{user: user}, registry)

	next := func(c echo.Context) error {
		t.Fatal("handler must not run without the permission")

		return nil
	}

	c := guardContext(http.MethodDelete, "/v1/user/:id", bearerHeader("valid-token"))
	err := guard.Guard(next)(c)
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}

func TestGuard_DeniesInactiveUser(t *testing.T) {
	registry := access.NewRegistry()
	registry.Register(http.MethodGet, "/v1/user/my-profile", access.RequireAuth())

	user := &entity.User{
		ID:     1,
		Active: false,
		Roles:  []entity.Role{{Code: "SUPPORT"}},
	}
	guard := NewAuthMiddleware(&stubAuthUsecase{user: user}, registry)

	next := func(c echo.Context) error { return nil }

	c := guardContext(http.MethodGet, "/v1/user/my-profile", bearerHeader("valid-token"))
	err := guard.Guard(next)(c)
	assert.ErrorIs(t, err, domainerrors.ErrAccountDisabled)
}

func TestGuard_UnregisteredRouteFailsClosed(t *testing.T) {
	// Nothing registered: the lookup falls back to protected-with-no-
	// permissions, so anonymous calls are rejected.
	guard := NewAuthMiddleware(&stubAuthUsecase{}, access.NewRegistry())

	next := func(c echo.Context) error { return nil }

	c := guardContext(http.MethodGet, "/v1/unregistered", nil)
	err := guard.Guard(next)(c)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}
