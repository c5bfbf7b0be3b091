package handler

import (
	"log/slog"
	"net/http"

	"backstage/internal/delivery/http/response"
	"backstage/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RoleHandler holds dependencies for role management handlers.
type RoleHandler struct {
	uc     usecase.RoleUsecase
	logger *slog.Logger
}

// NewRoleHandler is the constructor for RoleHandler, injected by Fx.
func NewRoleHandler(uc usecase.RoleUsecase, logger *slog.Logger) *RoleHandler {
	return &RoleHandler{uc: uc, logger: logger}
}

type createRoleRequest struct {
	Code        string   `json:"code" validate:"required,min=2,max=64"`
	Description string   `json:"description" validate:"max=255"`
	Permissions []string `json:"permissions"`
}

type updateRoleRequest struct {
	Code        *string  `json:"code" validate:"omitempty,min=2,max=64"`
	Description *string  `json:"description" validate:"omitempty,max=255"`
	Permissions []string `json:"permissions"`
}

// Create handles role creation.
func (h *RoleHandler) Create(c echo.Context) error {
	var input createRoleRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid role input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	role, err := h.uc.Create(c.Request().Context(), usecase.CreateRoleInput{
		Code:        input.Code,
		Description: input.Description,
		Permissions: input.Permissions,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, role, "Role created successfully")
}

// List handles the paginated role listing.
func (h *RoleHandler) List(c echo.Context) error {
	output, err := h.uc.List(c.Request().Context(), usecase.ListRolesInput{
		Search:   c.QueryParam("search"),
		InIDs:    queryIDList(c, "inIds"),
		NotInIDs: queryIDList(c, "notInIds"),
		Page:     queryInt(c, "page"),
		Limit:    queryInt(c, "limit"),
		OrderBy:  c.QueryParam("orderBy"),
		Order:    c.QueryParam("order"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.Paginated{
		Items: output.Roles,
		Total: output.Total,
		Page:  output.Page,
		Limit: output.Limit,
	}, "")
}

// ListPermissions serves the grouped permission catalog.
func (h *RoleHandler) ListPermissions(c echo.Context) error {
	groups, err := h.uc.ListPermissions(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, groups, "")
}

// Update handles partial role updates.
func (h *RoleHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input updateRoleRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid role input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	role, err := h.uc.Update(c.Request().Context(), id, usecase.UpdateRoleInput{
		Code:        input.Code,
		Description: input.Description,
		Permissions: input.Permissions,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, role, "Role updated successfully")
}

// Delete removes a role and its memberships.
func (h *RoleHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Role deleted")
}
