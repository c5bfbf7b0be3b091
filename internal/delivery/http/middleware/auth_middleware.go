package middleware

import (
	"strings"

	deliverycontext "backstage/internal/delivery/context"
	"backstage/internal/domain/access"
	domainerrors "backstage/internal/domain/errors"
	"backstage/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware guards every route through the policy registry. Policies
// are attached at route-registration time; the guard looks them up by
// method and route pattern, resolves the caller from the bearer token and
// lets access.Authorize make the decision.
type AuthMiddleware struct {
	authUC   usecase.AuthUsecase
	registry *access.Registry
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase, registry *access.Registry) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC, registry: registry}
}

// Guard enforces the route's access policy.
//
// Public routes pass straight through. Everything else requires a valid
// access token; the resolved user then runs the active, role-presence and
// permission-intersection checks. Routes missing from the registry fall
// back to protected-with-no-permissions, so the guard fails closed.
func (m *AuthMiddleware) Guard(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		policy := m.registry.Lookup(c.Request().Method, c.Path())
		if policy.Public {
			return next(c)
		}

		token, err := bearerToken(c)
		if err != nil {
			return err
		}

		user, err := m.authUC.Authenticate(c.Request().Context(), token)
		if err != nil {
			return err
		}

		if err := access.Authorize(user, policy); err != nil {
			return err
		}

		deliverycontext.SetUser(c, user)

		return next(c)
	}
}

func bearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return "", domainerrors.ErrUnauthorized
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader || token == "" {
		return "", domainerrors.ErrUnauthorized
	}

	return token, nil
}
