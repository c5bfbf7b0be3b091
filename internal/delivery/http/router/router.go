// Package router contains routing and policy setup for the HTTP delivery.
package router

import (
	"backstage/internal/delivery/http/middleware"
	"backstage/internal/delivery/http/router/handler"
	"backstage/internal/domain/access"
	"backstage/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds every handler plus the guard pieces, injected by Fx.
type RouterParams struct {
	fx.In

	AuthHandler   *handler.AuthHandler
	UserHandler   *handler.UserHandler
	RoleHandler   *handler.RoleHandler
	HealthHandler *handler.HealthHandler
	MediaHandler  *handler.MediaHandler
	MailHandler   *handler.MailHandler

	AuthMiddleware *middleware.AuthMiddleware
	Registry       *access.Registry
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes and their access policies.
// Each route registers its policy under the same method + path pattern the
// guard middleware later looks up, so the route table and the policy table
// can never drift apart.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.params.AuthMiddleware.Guard)

	r.add(e, echo.POST, "/v1/auth/register", r.params.AuthHandler.Register, access.PublicPolicy())
	r.add(e, echo.POST, "/v1/auth/login", r.params.AuthHandler.Login, access.PublicPolicy())
	r.add(e, echo.POST, "/v1/auth/refresh-token", r.params.AuthHandler.RefreshToken, access.PublicPolicy())
	r.add(e, echo.POST, "/v1/auth/logout", r.params.AuthHandler.Logout, access.RequireAuth())

	r.add(e, echo.GET, "/v1/user", r.params.UserHandler.List, access.Require(entity.PermListUser))
	r.add(e, echo.POST, "/v1/user", r.params.UserHandler.Create, access.Require(entity.PermCreateUser))
	r.add(e, echo.GET, "/v1/user/my-profile", r.params.UserHandler.MyProfile, access.RequireAuth())
	r.add(e, echo.PATCH, "/v1/user/my-profile", r.params.UserHandler.UpdateMyProfile, access.RequireAuth())
	r.add(e, echo.GET, "/v1/user/:id", r.params.UserHandler.Get, access.Require(entity.PermViewUser))
	r.add(e, echo.PATCH, "/v1/user/:id", r.params.UserHandler.Update, access.Require(entity.PermUpdateUser))
	r.add(e, echo.PATCH, "/v1/user/:id/set-password", r.params.UserHandler.SetPassword, access.Require(entity.PermUpdateUser))
	r.add(e, echo.DELETE, "/v1/user/:id/soft-delete", r.params.UserHandler.SoftDelete, access.Require(entity.PermSoftDeleteUser))
	r.add(e, echo.PATCH, "/v1/user/:id/restore", r.params.UserHandler.Restore, access.Require(entity.PermRestoreUser))
	r.add(e, echo.DELETE, "/v1/user/:id", r.params.UserHandler.Delete, access.Require(entity.PermDeleteUser))

	r.add(e, echo.GET, "/v1/role", r.params.RoleHandler.List, access.Require(entity.PermListRole))
	r.add(e, echo.GET, "/v1/role/permission", r.params.RoleHandler.ListPermissions, access.Require(entity.PermListPermission))
	r.add(e, echo.POST, "/v1/role", r.params.RoleHandler.Create, access.Require(entity.PermCreateRole))
	r.add(e, echo.PATCH, "/v1/role/:id", r.params.RoleHandler.Update, access.Require(entity.PermUpdateRole))
	r.add(e, echo.DELETE, "/v1/role/:id", r.params.RoleHandler.Delete, access.Require(entity.PermDeleteRole))

	r.add(e, echo.GET, "/v1/health/check-health", r.params.HealthHandler.CheckHealth, access.PublicPolicy())
	r.add(e, echo.GET, "/v1/health/database-health", r.params.HealthHandler.DatabaseHealth, access.PublicPolicy())
	r.add(e, echo.GET, "/v1/health/redis-health", r.params.HealthHandler.RedisHealth, access.PublicPolicy())

	r.add(e, echo.POST, "/v1/media/upload", r.params.MediaHandler.Upload, access.Require(entity.PermUploadFile))

	r.add(e, echo.POST, "/v1/mail/test", r.params.MailHandler.SendTest, access.Require(entity.PermSendMailTest))
}

// add registers the handler and its policy under the same key.
func (r *router) add(e *echo.Echo, method, path string, h echo.HandlerFunc, policy access.Policy) {
	e.Add(method, path, h)
	r.params.Registry.Register(method, path, policy)
}
