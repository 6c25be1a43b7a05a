package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smart-erp/identity-service/internal/core/ports"
)

// UserHandler serves the account administration routes. All of them sit
// behind the auth middleware.
type UserHandler struct {
	accounts ports.AccountService
}

func NewUserHandler(accounts ports.AccountService) *UserHandler {
	return &UserHandler{accounts: accounts}
}

type assignRoleRequest struct {
	RoleID string `json:"role_id" validate:"required"`
}

// Get returns a user by id, role resolved.
//
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  map[string]string
// @Router       /auth/user/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.accounts.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// List returns all users. Restricted to the Admin role by the RBAC
// middleware.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Success      200  {array}   domain.User
// @Failure      403  {object}  map[string]string
// @Router       /auth/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.accounts.ListUsers(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, users)
}

// Delete removes a user account.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /auth/user/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.accounts.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "user deleted successfully"})
}

// GetRoles returns the role currently assigned to the user. The route is
// plural for historical reasons; a user holds exactly one role.
//
// @Summary      Get a user's role
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  domain.Role
// @Failure      404  {object}  map[string]string
// @Router       /auth/user/{id}/roles [get]
func (h *UserHandler) GetRoles(c echo.Context) error {
	role, err := h.accounts.GetUserRole(c.Request().Context(), c.Param("id"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, role)
}

// AssignRole points the user at a different role.
//
// @Summary      Assign a role to a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "User ID"
// @Param        body  body      assignRoleRequest  true  "Role assignment"
// @Success      200   {object}  messageResponse
// @Failure      404   {object}  map[string]string
// @Router       /auth/user/{id}/roles [post]
func (h *UserHandler) AssignRole(c echo.Context) error {
	var req assignRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.accounts.AssignRole(c.Request().Context(), c.Param("id"), req.RoleID); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "role assigned to user successfully"})
}
