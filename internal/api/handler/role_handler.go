package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smart-erp/identity-service/internal/core/ports"
)

// RoleHandler serves role CRUD.
type RoleHandler struct {
	roles ports.RoleService
}

func NewRoleHandler(roles ports.RoleService) *RoleHandler {
	return &RoleHandler{roles: roles}
}

type roleRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// Create persists a new role.
//
// @Summary      Create a role
// @Tags         roles
// @Accept       json
// @Produce      json
// @Param        body  body      roleRequest  true  "Role details"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /auth/role [post]
func (h *RoleHandler) Create(c echo.Context) error {
	var req roleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if _, err := h.roles.CreateRole(c.Request().Context(), req.Name, req.Description); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "role created successfully"})
}

// Update overwrites a role's name and description.
//
// @Summary      Update a role
// @Tags         roles
// @Accept       json
// @Produce      json
// @Param        id    path      string       true  "Role ID"
// @Param        body  body      roleRequest  true  "Role details"
// @Success      200   {object}  messageResponse
// @Failure      404   {object}  map[string]string
// @Router       /auth/role/{id} [put]
func (h *RoleHandler) Update(c echo.Context) error {
	var req roleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.roles.UpdateRole(c.Request().Context(), c.Param("id"), req.Name, req.Description); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "role updated successfully"})
}

// Delete removes a role. Deletion is refused while users still hold the role.
//
// @Summary      Delete a role
// @Tags         roles
// @Produce      json
// @Param        id   path      string  true  "Role ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /auth/role/{id} [delete]
func (h *RoleHandler) Delete(c echo.Context) error {
	if err := h.roles.DeleteRole(c.Request().Context(), c.Param("id")); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "role deleted successfully"})
}

// Get returns a role by id.
//
// @Summary      Get a role
// @Tags         roles
// @Produce      json
// @Param        id   path      string  true  "Role ID"
// @Success      200  {object}  domain.Role
// @Failure      404  {object}  map[string]string
// @Router       /auth/role/{id} [get]
func (h *RoleHandler) Get(c echo.Context) error {
	role, err := h.roles.GetRole(c.Request().Context(), c.Param("id"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, role)
}

// List returns all roles.
//
// @Summary      List all roles
// @Tags         roles
// @Produce      json
// @Success      200  {array}  domain.Role
// @Router       /auth/roles [get]
func (h *RoleHandler) List(c echo.Context) error {
	roles, err := h.roles.ListRoles(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, roles)
}
