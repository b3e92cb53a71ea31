package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/growtiva/crm-api/internal/core/ports"
)

// UserHandler handles HTTP requests for user management.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type createUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required"`
	Name     string `json:"name" validate:"required"`
	City     string `json:"city" validate:"required"`
}

type updateUserRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Name     string  `json:"name" validate:"required"`
	City     string  `json:"city" validate:"required"`
	Password string  `json:"password" validate:"omitempty,min=8"`
	Role     *string `json:"role"`
	IsActive *bool   `json:"is_active"`
}

// List handles GET /users (admin only, enforced by RequireAdmin).
func (h *UserHandler) List(c echo.Context) error {
	skip, limit := pagination(c)

	users, err := h.service.List(c.Request().Context(), skip, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Create handles POST /users (admin only).
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "User details"
// @Success      201  {object}  domain.User
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Create(c.Request().Context(), ports.CreateUserInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		Name:     req.Name,
		City:     req.City,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

// Get handles GET /users/:id (admin or self).
func (h *UserHandler) Get(c echo.Context) error {
	claims, err := claimsFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	user, err := h.service.Get(c.Request().Context(), claims, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Update handles PUT /users/:id (admin or self; role/is_active admin only).
func (h *UserHandler) Update(c echo.Context) error {
	claims, err := claimsFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Update(c.Request().Context(), claims, id, ports.UpdateUserInput{
		Email:    req.Email,
		Name:     req.Name,
		City:     req.City,
		Password: req.Password,
		Role:     req.Role,
		IsActive: req.IsActive,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Delete handles DELETE /users/:id (admin only).
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
