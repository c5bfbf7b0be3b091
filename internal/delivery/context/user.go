package context

import (
	"github.com/labstack/echo/v4"

	"backstage/internal/domain/entity"
)

// SetUser stores the authenticated user in echo.Context. The guard
// middleware calls this after a successful token check.
func SetUser(c echo.Context, user *entity.User) {
	c.Set(string(KeyUser), user)
}

// GetUser extracts the authenticated user from echo.Context. Returns nil
// on public routes where no token was presented.
func GetUser(c echo.Context) *entity.User {
	if user, ok := c.Get(string(KeyUser)).(*entity.User); ok {
		return user
	}

	return nil
}
