package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "backstage/internal/delivery/context"
	"backstage/internal/delivery/http/response"
	domainerrors "backstage/internal/domain/errors"
	"backstage/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user management handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{uc: uc, logger: logger}
}

type createUserRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Username string  `json:"username" validate:"required,min=3,max=100"`
	Password string  `json:"password" validate:"required,min=8,max=72"`
	Active   bool    `json:"active"`
	RoleIDs  []int64 `json:"roleIds"`
}

type updateUserRequest struct {
	Email    *string `json:"email" validate:"omitempty,email"`
	Username *string `json:"username" validate:"omitempty,min=3,max=100"`
	Active   *bool   `json:"active"`
	RoleIDs  []int64 `json:"roleIds"`
}

type updateProfileRequest struct {
	Email    *string `json:"email" validate:"omitempty,email"`
	Username *string `json:"username" validate:"omitempty,min=3,max=100"`
}

type setPasswordRequest struct {
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// Create handles administrative user creation.
func (h *UserHandler) Create(c echo.Context) error {
	var input createUserRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.Create(c.Request().Context(), usecase.CreateUserInput{
		Email:    input.Email,
		Username: input.Username,
		Password: input.Password,
		Active:   input.Active,
		RoleIDs:  input.RoleIDs,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, user, "User created successfully")
}

// List handles the paginated user listing.
func (h *UserHandler) List(c echo.Context) error {
	output, err := h.uc.List(c.Request().Context(), usecase.ListUsersInput{
		Search:      c.QueryParam("search"),
		InIDs:       queryIDList(c, "inIds"),
		NotInIDs:    queryIDList(c, "notInIds"),
		OnlyDeleted: queryBool(c, "onlyDeleted"),
		WithDeleted: queryBool(c, "withDeleted"),
		Page:        queryInt(c, "page"),
		Limit:       queryInt(c, "limit"),
		OrderBy:     c.QueryParam("orderBy"),
		Order:       c.QueryParam("order"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.Paginated{
		Items: output.Users,
		Total: output.Total,
		Page:  output.Page,
		Limit: output.Limit,
	}, "")
}

// Get handles reading a single user by id.
func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "")
}

// MyProfile returns the authenticated caller's record.
func (h *UserHandler) MyProfile(c echo.Context) error {
	user := deliverycontext.GetUser(c)
	if user == nil {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	fresh, err := h.uc.Get(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, fresh, "")
}

// UpdateMyProfile lets the caller change their own identifiers.
func (h *UserHandler) UpdateMyProfile(c echo.Context) error {
	user := deliverycontext.GetUser(c)
	if user == nil {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	var input updateProfileRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	updated, err := h.uc.UpdateProfile(c.Request().Context(), user.ID, usecase.UpdateProfileInput{
		Email:    input.Email,
		Username: input.Username,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, updated, "Profile updated successfully")
}

// Update handles administrative partial updates.
func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input updateUserRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.Update(c.Request().Context(), id, usecase.UpdateUserInput{
		Email:    input.Email,
		Username: input.Username,
		Active:   input.Active,
		RoleIDs:  input.RoleIDs,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "User updated successfully")
}

// SetPassword replaces a user's password.
func (h *UserHandler) SetPassword(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input setPasswordRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.SetPassword(c.Request().Context(), id, input.Password); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password updated successfully")
}

// SoftDelete marks a user as deleted.
func (h *UserHandler) SoftDelete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	affected, err := h.uc.SoftDelete(c.Request().Context(), []int64{id})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"affected": affected}, "User soft-deleted")
}

// Restore clears a user's soft-delete marker.
func (h *UserHandler) Restore(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	affected, err := h.uc.Restore(c.Request().Context(), []int64{id})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"affected": affected}, "User restored")
}

// Delete removes a user permanently.
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	affected, err := h.uc.Delete(c.Request().Context(), []int64{id})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"affected": affected}, "User deleted")
}
